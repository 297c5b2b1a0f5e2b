package schedule

import (
	"context"
	"testing"

	domain "github.com/barberbook/barbershop-api/internal/domain/schedule"
	"github.com/barberbook/barbershop-api/internal/httperr"
	"github.com/barberbook/barbershop-api/internal/models"
)

type fakeRepo struct {
	createFn func(ctx context.Context, s *models.Schedule) error
	getFn    func(ctx context.Context, id uint) (*models.Schedule, error)
	listFn   func(ctx context.Context, f domain.ListFilter) ([]models.Schedule, error)
	updateFn func(ctx context.Context, id uint, p domain.Patch) (*models.Schedule, error)
	deleteFn func(ctx context.Context, id uint) (bool, error)
}

func (f *fakeRepo) Create(ctx context.Context, s *models.Schedule) error {
	if f.createFn == nil {
		panic("Create not configured")
	}
	return f.createFn(ctx, s)
}

func (f *fakeRepo) GetByID(ctx context.Context, id uint) (*models.Schedule, error) {
	if f.getFn == nil {
		panic("GetByID not configured")
	}
	return f.getFn(ctx, id)
}

func (f *fakeRepo) List(ctx context.Context, fl domain.ListFilter) ([]models.Schedule, error) {
	if f.listFn == nil {
		panic("List not configured")
	}
	return f.listFn(ctx, fl)
}

func (f *fakeRepo) Update(ctx context.Context, id uint, p domain.Patch) (*models.Schedule, error) {
	if f.updateFn == nil {
		panic("Update not configured")
	}
	return f.updateFn(ctx, id, p)
}

func (f *fakeRepo) Delete(ctx context.Context, id uint) (bool, error) {
	if f.deleteFn == nil {
		panic("Delete not configured")
	}
	return f.deleteFn(ctx, id)
}

type fakeDirectory struct {
	barbers map[uint]bool
}

func (f *fakeDirectory) UserExists(ctx context.Context, id uint) (bool, error)    { return false, nil }
func (f *fakeDirectory) ServiceExists(ctx context.Context, id uint) (bool, error) { return false, nil }
func (f *fakeDirectory) BarberExists(ctx context.Context, id uint) (bool, error) {
	return f.barbers[id], nil
}

func knownBarbers() *fakeDirectory {
	return &fakeDirectory{barbers: map[uint]bool{2: true}}
}

// --------- Create ---------

func TestCreateScheduleWithExplicitSlots(t *testing.T) {
	var saved *models.Schedule
	repo := &fakeRepo{
		createFn: func(ctx context.Context, s *models.Schedule) error {
			s.ScheduleID = 5
			saved = s
			return nil
		},
		getFn: func(ctx context.Context, id uint) (*models.Schedule, error) {
			return saved, nil
		},
	}

	uc := NewCreateSchedule(repo, knownBarbers(), nil)

	unavailable := false
	s, err := uc.Execute(context.Background(), CreateScheduleInput{
		BarberID: 2,
		Date:     "2026-03-15",
		TimeSlots: []SlotInput{
			{StartTime: "09:00", EndTime: "09:30"},
			{StartTime: "09:30", EndTime: "10:00", IsAvailable: &unavailable},
		},
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if s.ScheduleID != 5 {
		t.Fatalf("schedule id = %d, want 5", s.ScheduleID)
	}
	if !s.IsWorking {
		t.Fatal("IsWorking should default to true")
	}
	if len(s.TimeSlots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(s.TimeSlots))
	}
	if !s.TimeSlots[0].IsAvailable || s.TimeSlots[1].IsAvailable {
		t.Fatal("slot availability flags not preserved")
	}
}

func TestCreateScheduleGeneratesSlots(t *testing.T) {
	var saved *models.Schedule
	repo := &fakeRepo{
		createFn: func(ctx context.Context, s *models.Schedule) error {
			saved = s
			return nil
		},
		getFn: func(ctx context.Context, id uint) (*models.Schedule, error) {
			return saved, nil
		},
	}

	uc := NewCreateSchedule(repo, knownBarbers(), nil)

	s, err := uc.Execute(context.Background(), CreateScheduleInput{
		BarberID: 2,
		Date:     "2026-03-15",
		Generate: &GenerateInput{DayStart: "09:00", DayEnd: "12:00", StepMinutes: 60},
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(s.TimeSlots) != 3 {
		t.Fatalf("expected 3 generated slots, got %d", len(s.TimeSlots))
	}
}

func TestCreateScheduleInvalidDate(t *testing.T) {
	uc := NewCreateSchedule(&fakeRepo{}, knownBarbers(), nil)

	_, err := uc.Execute(context.Background(), CreateScheduleInput{BarberID: 2, Date: "next tuesday"})
	if !httperr.IsBusiness(err, "invalid_date") {
		t.Fatalf("expected invalid_date, got %v", err)
	}
}

func TestCreateScheduleUnknownBarber(t *testing.T) {
	uc := NewCreateSchedule(&fakeRepo{}, knownBarbers(), nil)

	_, err := uc.Execute(context.Background(), CreateScheduleInput{BarberID: 99, Date: "2026-03-15"})
	if !httperr.IsBusiness(err, httperr.CodeInvalidBarber) {
		t.Fatalf("expected invalid_barber, got %v", err)
	}
}

func TestCreateScheduleRejectsDuplicateSlots(t *testing.T) {
	uc := NewCreateSchedule(&fakeRepo{}, knownBarbers(), nil)

	_, err := uc.Execute(context.Background(), CreateScheduleInput{
		BarberID: 2,
		Date:     "2026-03-15",
		TimeSlots: []SlotInput{
			{StartTime: "09:00", EndTime: "09:30"},
			{StartTime: "09:00", EndTime: "09:30"},
		},
	})
	if !httperr.IsBusiness(err, httperr.CodeDuplicateSlot) {
		t.Fatalf("expected duplicate_slot, got %v", err)
	}
}

func TestCreateScheduleRejectsBadInterval(t *testing.T) {
	uc := NewCreateSchedule(&fakeRepo{}, knownBarbers(), nil)

	_, err := uc.Execute(context.Background(), CreateScheduleInput{
		BarberID:  2,
		Date:      "2026-03-15",
		TimeSlots: []SlotInput{{StartTime: "10:00", EndTime: "09:00"}},
	})
	if !httperr.IsBusiness(err, "invalid_time_range") {
		t.Fatalf("expected invalid_time_range, got %v", err)
	}
}

func TestCreateSchedulePassesDuplicateScheduleThrough(t *testing.T) {
	repo := &fakeRepo{
		createFn: func(ctx context.Context, s *models.Schedule) error {
			return httperr.ErrBusiness(httperr.CodeDuplicateSchedule)
		},
	}

	uc := NewCreateSchedule(repo, knownBarbers(), nil)

	_, err := uc.Execute(context.Background(), CreateScheduleInput{BarberID: 2, Date: "2026-03-15"})
	if !httperr.IsBusiness(err, httperr.CodeDuplicateSchedule) {
		t.Fatalf("expected duplicate_schedule, got %v", err)
	}
}

// --------- Get / List ---------

func TestGetScheduleNotFound(t *testing.T) {
	repo := &fakeRepo{
		getFn: func(ctx context.Context, id uint) (*models.Schedule, error) {
			return nil, nil
		},
	}

	_, err := NewGetSchedule(repo).Execute(context.Background(), 404)
	if !httperr.IsBusiness(err, httperr.CodeScheduleNotFound) {
		t.Fatalf("expected schedule_not_found, got %v", err)
	}
}

func TestListSchedulesNormalizesNil(t *testing.T) {
	repo := &fakeRepo{
		listFn: func(ctx context.Context, f domain.ListFilter) ([]models.Schedule, error) {
			return nil, nil
		},
	}

	schedules, err := NewListSchedules(repo).Execute(context.Background(), domain.ListFilter{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if schedules == nil {
		t.Fatal("expected empty slice, got nil")
	}
}

// --------- Update / Delete ---------

func TestUpdateScheduleValidatesPatch(t *testing.T) {
	uc := NewUpdateSchedule(&fakeRepo{}, nil)

	badDate := "soon"
	if _, err := uc.Execute(context.Background(), 5, domain.Patch{Date: &badDate}); !httperr.IsBusiness(err, "invalid_date") {
		t.Fatalf("expected invalid_date, got %v", err)
	}

	start, end := "11:00", "10:00"
	_, err := uc.Execute(context.Background(), 5, domain.Patch{
		TimeSlots: []domain.SlotPatch{{SlotID: 1, StartTime: &start, EndTime: &end}},
	})
	if !httperr.IsBusiness(err, "invalid_time_range") {
		t.Fatalf("expected invalid_time_range, got %v", err)
	}
}

func TestUpdateSchedulePassesPatchThrough(t *testing.T) {
	working := false
	var got domain.Patch
	repo := &fakeRepo{
		updateFn: func(ctx context.Context, id uint, p domain.Patch) (*models.Schedule, error) {
			got = p
			return &models.Schedule{ScheduleID: id, IsWorking: *p.IsWorking}, nil
		},
	}

	s, err := NewUpdateSchedule(repo, nil).Execute(context.Background(), 5, domain.Patch{IsWorking: &working})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if s.IsWorking {
		t.Fatal("IsWorking patch not applied")
	}
	if got.IsWorking == nil || *got.IsWorking {
		t.Fatalf("patch not forwarded: %+v", got)
	}
}

func TestDeleteSchedule(t *testing.T) {
	repo := &fakeRepo{
		deleteFn: func(ctx context.Context, id uint) (bool, error) {
			return id == 5, nil
		},
	}

	uc := NewDeleteSchedule(repo, nil)

	if err := uc.Execute(context.Background(), 5); err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	err := uc.Execute(context.Background(), 404)
	if !httperr.IsBusiness(err, httperr.CodeScheduleNotFound) {
		t.Fatalf("expected schedule_not_found, got %v", err)
	}
}
