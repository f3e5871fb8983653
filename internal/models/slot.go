package models

import "time"

// Slot is one bookable unit of time. Created only by the generator,
// mutated only by the booking allocator (available -> booked, one-way).
type Slot struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	BarberID uint   `gorm:"uniqueIndex:idx_slot_barber_date_time" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"barber"`

	ShopID uint `gorm:"index" json:"shop_id"`

	Date      time.Time `gorm:"uniqueIndex:idx_slot_barber_date_time" json:"date"`
	TimeOfDay string    `gorm:"size:5;uniqueIndex:idx_slot_barber_date_time" json:"time_of_day"`

	Status   string `gorm:"size:20;default:'available'" json:"status"`
	IsBooked bool   `gorm:"default:false" json:"is_booked"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
