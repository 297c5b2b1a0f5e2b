package models

import "time"

type Appointment struct {
	AppointmentID uint `gorm:"primaryKey" json:"appointment_id"`

	// Derived from the schedule date of the reserved slots, never
	// supplied by the client directly.
	AppointmentDate string `gorm:"size:10" json:"appointment_date"`

	UserID uint `gorm:"not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	BarberID uint   `gorm:"not null" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"barber"`

	Status string `gorm:"size:20;not null" json:"status"`

	TimeSlotLinks []AppointmentTimeSlot `gorm:"foreignKey:AppointmentID" json:"-"`
	ServiceLinks  []AppointmentService  `gorm:"foreignKey:AppointmentID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
