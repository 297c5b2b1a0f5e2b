package models

import "time"

// A barber is always backed by a user account. Deleting the user
// removes the barber row as well.
type Barber struct {
	BarberID uint `gorm:"primaryKey" json:"barber_id"`

	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
