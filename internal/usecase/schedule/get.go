package schedule

import (
	"context"

	domain "github.com/barberbook/barbershop-api/internal/domain/schedule"
	"github.com/barberbook/barbershop-api/internal/httperr"
	"github.com/barberbook/barbershop-api/internal/models"
)

type GetSchedule struct {
	repo domain.Repository
}

func NewGetSchedule(repo domain.Repository) *GetSchedule {
	return &GetSchedule{repo: repo}
}

func (uc *GetSchedule) Execute(
	ctx context.Context,
	scheduleID uint,
) (*models.Schedule, error) {

	s, err := uc.repo.GetByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, httperr.ErrBusiness(httperr.CodeScheduleNotFound)
	}
	return s, nil
}
