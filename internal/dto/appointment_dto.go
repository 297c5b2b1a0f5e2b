package dto

import "github.com/barberbook/barbershop-api/internal/models"

// AppointmentDTO is the hydrated booking view: scalar fields plus the
// resolved user, barber, slot, and service details.
type AppointmentDTO struct {
	AppointmentID   uint   `json:"appointment_id"`
	AppointmentDate string `json:"appointment_date"`
	Status          string `json:"status"`

	User   models.User   `json:"user"`
	Barber models.Barber `json:"barber"`

	TimeSlots []models.TimeSlot `json:"time_slots"`
	Services  []models.Service  `json:"services"`
}

func NewAppointmentDTO(ap *models.Appointment) AppointmentDTO {
	slots := make([]models.TimeSlot, 0, len(ap.TimeSlotLinks))
	for _, link := range ap.TimeSlotLinks {
		slots = append(slots, link.TimeSlot)
	}

	services := make([]models.Service, 0, len(ap.ServiceLinks))
	for _, link := range ap.ServiceLinks {
		services = append(services, link.Service)
	}

	return AppointmentDTO{
		AppointmentID:   ap.AppointmentID,
		AppointmentDate: ap.AppointmentDate,
		Status:          ap.Status,
		User:            ap.User,
		Barber:          ap.Barber,
		TimeSlots:       slots,
		Services:        services,
	}
}

func NewAppointmentDTOs(aps []models.Appointment) []AppointmentDTO {
	out := make([]AppointmentDTO, 0, len(aps))
	for i := range aps {
		out = append(out, NewAppointmentDTO(&aps[i]))
	}
	return out
}
