package appointment

import (
	"context"
	"fmt"

	"github.com/barberbook/barbershop-api/internal/audit"
	"github.com/barberbook/barbershop-api/internal/directory"
	domain "github.com/barberbook/barbershop-api/internal/domain/booking"
	"github.com/barberbook/barbershop-api/internal/httperr"
	"github.com/barberbook/barbershop-api/internal/models"
	"github.com/barberbook/barbershop-api/internal/notify"
)

type CreateAppointmentInput struct {
	UserID   uint
	BarberID uint
	Status   domain.Status

	SlotIDs    []uint
	ServiceIDs []uint
}

type CreateAppointment struct {
	repo   domain.Repository
	dir    directory.Directory
	audit  *audit.Dispatcher
	notify *notify.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	dir directory.Directory,
	audit *audit.Dispatcher,
	notify *notify.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:   repo,
		dir:    dir,
		audit:  audit,
		notify: notify,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if !domain.ValidInitialStatus(in.Status) {
		return nil, httperr.ErrBusiness("invalid_initial_status")
	}

	slotIDs := dedupe(in.SlotIDs)
	if len(slotIDs) == 0 {
		return nil, httperr.ErrBusiness("no_slots")
	}
	serviceIDs := dedupe(in.ServiceIDs)

	if err := uc.checkReferences(ctx, in.UserID, in.BarberID, serviceIDs); err != nil {
		return nil, err
	}

	ap, err := uc.repo.Create(ctx, domain.CreateInput{
		UserID:     in.UserID,
		BarberID:   in.BarberID,
		Status:     in.Status,
		SlotIDs:    slotIDs,
		ServiceIDs: serviceIDs,
	})
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeSlotAlreadyBooked) {
			uc.audit.Dispatch(audit.Event{
				ActorID:  &in.UserID,
				Action:   "appointment_conflict",
				Entity:   "appointment",
				Metadata: map[string]any{"slot_ids": slotIDs},
			})
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.AppointmentID,
	})

	uc.notify.Dispatch(notify.Notification{
		Recipient: ap.User.Email,
		Subject:   "Appointment booked",
		Body: fmt.Sprintf(
			"Your appointment on %s is %s.",
			ap.AppointmentDate, ap.Status,
		),
	})

	return ap, nil
}

func (uc *CreateAppointment) checkReferences(
	ctx context.Context,
	userID uint,
	barberID uint,
	serviceIDs []uint,
) error {

	ok, err := uc.dir.UserExists(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return httperr.ErrBusiness(httperr.CodeInvalidUser)
	}

	ok, err = uc.dir.BarberExists(ctx, barberID)
	if err != nil {
		return err
	}
	if !ok {
		return httperr.ErrBusiness(httperr.CodeInvalidBarber)
	}

	for _, serviceID := range serviceIDs {
		ok, err := uc.dir.ServiceExists(ctx, serviceID)
		if err != nil {
			return err
		}
		if !ok {
			return httperr.ErrBusiness(httperr.CodeInvalidService)
		}
	}

	return nil
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
