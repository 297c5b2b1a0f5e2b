package models

// AppointmentTimeSlot links an appointment to one reserved slot.
// A slot with at least one live link is considered booked.
type AppointmentTimeSlot struct {
	SlotID        uint `gorm:"primaryKey;autoIncrement:false" json:"slot_id"`
	AppointmentID uint `gorm:"primaryKey;autoIncrement:false" json:"appointment_id"`

	TimeSlot    TimeSlot    `gorm:"foreignKey:SlotID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"time_slot"`
	Appointment Appointment `gorm:"foreignKey:AppointmentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

func (AppointmentTimeSlot) TableName() string { return "appointment_time_slots" }

// AppointmentService links an appointment to one rendered service.
type AppointmentService struct {
	ServiceID     uint `gorm:"primaryKey;autoIncrement:false" json:"service_id"`
	AppointmentID uint `gorm:"primaryKey;autoIncrement:false" json:"appointment_id"`

	Service     Service     `gorm:"foreignKey:ServiceID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"service"`
	Appointment Appointment `gorm:"foreignKey:AppointmentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

func (AppointmentService) TableName() string { return "appointment_services" }
