package schedule

import (
	"context"

	"github.com/barberbook/barbershop-api/internal/audit"
	"github.com/barberbook/barbershop-api/internal/directory"
	domain "github.com/barberbook/barbershop-api/internal/domain/schedule"
	"github.com/barberbook/barbershop-api/internal/httperr"
	"github.com/barberbook/barbershop-api/internal/models"
)

type SlotInput struct {
	StartTime   string
	EndTime     string
	IsAvailable *bool
}

// GenerateInput asks the slot generator to cut the working day into
// fixed-size intervals instead of supplying them one by one.
type GenerateInput struct {
	DayStart    string
	DayEnd      string
	StepMinutes int
}

type CreateScheduleInput struct {
	BarberID  uint
	Date      string
	IsWorking *bool

	TimeSlots []SlotInput
	Generate  *GenerateInput
}

type CreateSchedule struct {
	repo  domain.Repository
	dir   directory.Directory
	audit *audit.Dispatcher
}

func NewCreateSchedule(
	repo domain.Repository,
	dir directory.Directory,
	audit *audit.Dispatcher,
) *CreateSchedule {
	return &CreateSchedule{
		repo:  repo,
		dir:   dir,
		audit: audit,
	}
}

func (uc *CreateSchedule) Execute(
	ctx context.Context,
	in CreateScheduleInput,
) (*models.Schedule, error) {

	if err := domain.ParseDate(in.Date); err != nil {
		return nil, err
	}

	ok, err := uc.dir.BarberExists(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidBarber)
	}

	slots, err := uc.buildSlots(in)
	if err != nil {
		return nil, err
	}

	s := models.Schedule{
		BarberID:  in.BarberID,
		Date:      in.Date,
		IsWorking: true,
		TimeSlots: slots,
	}
	if in.IsWorking != nil {
		s.IsWorking = *in.IsWorking
	}

	if err := uc.repo.Create(ctx, &s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.BarberID,
		Action:   "schedule_created",
		Entity:   "schedule",
		EntityID: &s.ScheduleID,
	})

	return uc.repo.GetByID(ctx, s.ScheduleID)
}

func (uc *CreateSchedule) buildSlots(in CreateScheduleInput) ([]models.TimeSlot, error) {

	if len(in.TimeSlots) == 0 && in.Generate != nil {
		return domain.GenerateSlots(
			in.Generate.DayStart,
			in.Generate.DayEnd,
			in.Generate.StepMinutes,
		)
	}

	slots := make([]models.TimeSlot, 0, len(in.TimeSlots))
	for _, si := range in.TimeSlots {
		if _, _, err := domain.ParseInterval(si.StartTime, si.EndTime); err != nil {
			return nil, err
		}

		slot := models.TimeSlot{
			StartTime:   si.StartTime,
			EndTime:     si.EndTime,
			IsAvailable: true,
		}
		if si.IsAvailable != nil {
			slot.IsAvailable = *si.IsAvailable
		}
		slots = append(slots, slot)
	}

	if err := domain.CheckDistinct(slots); err != nil {
		return nil, err
	}

	return slots, nil
}
