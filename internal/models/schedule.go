package models

import "time"

// Schedule is one barber's working day. A barber can have at most one
// schedule per date; the uq_barber_date index is the hard guarantee.
type Schedule struct {
	ScheduleID uint `gorm:"primaryKey" json:"schedule_id"`

	BarberID uint   `gorm:"not null;uniqueIndex:uq_barber_date" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"barber"`

	// Date in "2006-01-02" form, validated at the boundary.
	Date      string `gorm:"size:10;not null;uniqueIndex:uq_barber_date" json:"date"`
	IsWorking bool   `gorm:"default:true" json:"is_working"`

	TimeSlots []TimeSlot `gorm:"foreignKey:ScheduleID" json:"time_slots"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
