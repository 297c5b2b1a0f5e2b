package appointment

import (
	"context"

	"github.com/barberbook/barbershop-api/internal/audit"
	domain "github.com/barberbook/barbershop-api/internal/domain/booking"
	"github.com/barberbook/barbershop-api/internal/httperr"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
) error {

	found, err := uc.repo.Delete(ctx, appointmentID)
	if err != nil {
		return err
	}
	if !found {
		return httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &appointmentID,
	})

	return nil
}
