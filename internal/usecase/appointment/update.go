package appointment

import (
	"context"

	"github.com/barberbook/barbershop-api/internal/audit"
	"github.com/barberbook/barbershop-api/internal/directory"
	domain "github.com/barberbook/barbershop-api/internal/domain/booking"
	"github.com/barberbook/barbershop-api/internal/httperr"
	"github.com/barberbook/barbershop-api/internal/models"
)

type UpdateAppointment struct {
	repo  domain.Repository
	dir   directory.Directory
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	dir directory.Directory,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		dir:   dir,
		audit: audit,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	in domain.UpdateInput,
) (*models.Appointment, error) {

	if in.Status != nil && !domain.ValidStatus(*in.Status) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	if in.UserID != nil {
		ok, err := uc.dir.UserExists(ctx, *in.UserID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidUser)
		}
	}
	if in.BarberID != nil {
		ok, err := uc.dir.BarberExists(ctx, *in.BarberID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidBarber)
		}
	}
	if in.ServiceIDs != nil {
		deduped := dedupe(*in.ServiceIDs)
		for _, serviceID := range deduped {
			ok, err := uc.dir.ServiceExists(ctx, serviceID)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, httperr.ErrBusiness(httperr.CodeInvalidService)
			}
		}
		in.ServiceIDs = &deduped
	}
	if in.SlotIDs != nil {
		deduped := dedupe(*in.SlotIDs)
		if len(deduped) == 0 {
			return nil, httperr.ErrBusiness("no_slots")
		}
		in.SlotIDs = &deduped
	}

	ap, err := uc.repo.Update(ctx, appointmentID, in)
	if err != nil {
		return nil, err
	}
	if ap == nil {
		return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &appointmentID,
	})

	return ap, nil
}
