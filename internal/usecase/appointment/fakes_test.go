package appointment

import (
	"context"

	domain "github.com/barberbook/barbershop-api/internal/domain/booking"
	"github.com/barberbook/barbershop-api/internal/models"
)

type fakeRepo struct {
	createFn func(ctx context.Context, in domain.CreateInput) (*models.Appointment, error)
	getFn    func(ctx context.Context, id uint) (*models.Appointment, error)
	listFn   func(ctx context.Context, f domain.ListFilter) ([]models.Appointment, error)
	updateFn func(ctx context.Context, id uint, in domain.UpdateInput) (*models.Appointment, error)
	deleteFn func(ctx context.Context, id uint) (bool, error)
}

func (f *fakeRepo) Create(ctx context.Context, in domain.CreateInput) (*models.Appointment, error) {
	if f.createFn == nil {
		panic("Create not configured")
	}
	return f.createFn(ctx, in)
}

func (f *fakeRepo) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	if f.getFn == nil {
		panic("GetByID not configured")
	}
	return f.getFn(ctx, id)
}

func (f *fakeRepo) List(ctx context.Context, fl domain.ListFilter) ([]models.Appointment, error) {
	if f.listFn == nil {
		panic("List not configured")
	}
	return f.listFn(ctx, fl)
}

func (f *fakeRepo) Update(ctx context.Context, id uint, in domain.UpdateInput) (*models.Appointment, error) {
	if f.updateFn == nil {
		panic("Update not configured")
	}
	return f.updateFn(ctx, id, in)
}

func (f *fakeRepo) Delete(ctx context.Context, id uint) (bool, error) {
	if f.deleteFn == nil {
		panic("Delete not configured")
	}
	return f.deleteFn(ctx, id)
}

// fakeDirectory answers existence checks from fixed sets.
type fakeDirectory struct {
	users    map[uint]bool
	barbers  map[uint]bool
	services map[uint]bool
}

func (f *fakeDirectory) UserExists(ctx context.Context, id uint) (bool, error) {
	return f.users[id], nil
}

func (f *fakeDirectory) BarberExists(ctx context.Context, id uint) (bool, error) {
	return f.barbers[id], nil
}

func (f *fakeDirectory) ServiceExists(ctx context.Context, id uint) (bool, error) {
	return f.services[id], nil
}

func allKnownDirectory() *fakeDirectory {
	return &fakeDirectory{
		users:    map[uint]bool{1: true},
		barbers:  map[uint]bool{2: true},
		services: map[uint]bool{7: true, 8: true},
	}
}
