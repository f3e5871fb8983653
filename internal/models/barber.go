package models

import "time"

type Barber struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	ShopID uint `gorm:"index" json:"shop_id"`
	Shop   Shop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"shop"`

	Name string `gorm:"size:100;not null" json:"name"`

	// Default work window, used when GenerateDaily seeds an availability
	// row for the current day.
	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	IsAvailable   bool `gorm:"default:true" json:"is_available"`
	GenerateDaily bool `gorm:"default:false" json:"generate_daily"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
