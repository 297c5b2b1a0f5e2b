package appointment

import (
	"context"

	domain "github.com/barberbook/barbershop-api/internal/domain/booking"
	"github.com/barberbook/barbershop-api/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute never returns nil for "no rows": an empty page is an empty
// slice, distinct from the not-found signal of GetAppointment.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Appointment, error) {

	aps, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if aps == nil {
		aps = []models.Appointment{}
	}
	return aps, nil
}
