package schedule

import (
	"context"

	"github.com/barberbook/barbershop-api/internal/audit"
	domain "github.com/barberbook/barbershop-api/internal/domain/schedule"
	"github.com/barberbook/barbershop-api/internal/models"
)

type UpdateSchedule struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateSchedule(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateSchedule {
	return &UpdateSchedule{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateSchedule) Execute(
	ctx context.Context,
	scheduleID uint,
	p domain.Patch,
) (*models.Schedule, error) {

	if p.Date != nil {
		if err := domain.ParseDate(*p.Date); err != nil {
			return nil, err
		}
	}

	for _, sp := range p.TimeSlots {
		if sp.StartTime != nil && sp.EndTime != nil {
			if _, _, err := domain.ParseInterval(*sp.StartTime, *sp.EndTime); err != nil {
				return nil, err
			}
		}
	}

	s, err := uc.repo.Update(ctx, scheduleID, p)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "schedule_updated",
		Entity:   "schedule",
		EntityID: &scheduleID,
	})

	return s, nil
}
