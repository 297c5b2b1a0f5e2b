package appointment

import (
	"context"

	domain "github.com/barberbook/barbershop-api/internal/domain/booking"
	"github.com/barberbook/barbershop-api/internal/models"
)

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

// Execute returns (nil, nil) for an unknown id; the handler turns
// that into a 404. An absent appointment is not a storage error.
func (uc *GetAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {
	return uc.repo.GetByID(ctx, appointmentID)
}
