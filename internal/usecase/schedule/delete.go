package schedule

import (
	"context"

	"github.com/barberbook/barbershop-api/internal/audit"
	domain "github.com/barberbook/barbershop-api/internal/domain/schedule"
	"github.com/barberbook/barbershop-api/internal/httperr"
)

type DeleteSchedule struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteSchedule(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteSchedule {
	return &DeleteSchedule{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteSchedule) Execute(
	ctx context.Context,
	scheduleID uint,
) error {

	found, err := uc.repo.Delete(ctx, scheduleID)
	if err != nil {
		return err
	}
	if !found {
		return httperr.ErrBusiness(httperr.CodeScheduleNotFound)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "schedule_deleted",
		Entity:   "schedule",
		EntityID: &scheduleID,
	})

	return nil
}
