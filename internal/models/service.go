package models

import "time"

type Service struct {
	ServiceID uint `gorm:"primaryKey" json:"service_id"`

	Name            string  `gorm:"size:50;not null" json:"name"`
	DurationMin     int     `gorm:"not null" json:"duration_min"`
	Price           float64 `gorm:"not null" json:"price"`
	Category        string  `gorm:"size:50" json:"category"`
	Description     string  `gorm:"size:255" json:"description"`
	PopularityScore int     `gorm:"default:0" json:"popularity_score"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
