package schedule

import (
	"context"

	domain "github.com/barberbook/barbershop-api/internal/domain/schedule"
	"github.com/barberbook/barbershop-api/internal/models"
)

type ListSchedules struct {
	repo domain.Repository
}

func NewListSchedules(repo domain.Repository) *ListSchedules {
	return &ListSchedules{repo: repo}
}

func (uc *ListSchedules) Execute(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Schedule, error) {

	schedules, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if schedules == nil {
		schedules = []models.Schedule{}
	}
	return schedules, nil
}
