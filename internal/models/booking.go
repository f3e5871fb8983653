package models

import "time"

// Booking links a customer to one claimed slot. Immutable once created.
type Booking struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`

	UserID   uint `gorm:"index" json:"user_id"`
	BarberID uint `json:"barber_id"`
	ShopID   uint `json:"shop_id"`

	SlotID uint `gorm:"uniqueIndex" json:"slot_id"`
	Slot   Slot `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"slot"`

	Date      time.Time `json:"date"`
	TimeOfDay string    `gorm:"size:5" json:"time_of_day"`
	Status    string    `gorm:"size:20;default:'booked'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
}
