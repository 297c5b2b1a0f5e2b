package booking

import (
	"context"

	"github.com/barberbook/barbershop-api/internal/models"
)

type CreateInput struct {
	UserID   uint
	BarberID uint
	Status   Status

	SlotIDs    []uint
	ServiceIDs []uint
}

// UpdateInput carries a partial patch. Nil pointer means "leave
// untouched"; a non-nil slot/service set means full replacement.
type UpdateInput struct {
	UserID   *uint
	BarberID *uint
	Status   *Status

	SlotIDs    *[]uint
	ServiceIDs *[]uint
}

type ListFilter struct {
	UserID   *uint
	BarberID *uint
	Page     int
	Limit    int
}

// Repository owns appointments, their link rows, and every
// TimeSlot.IsBooked mutation. Each mutating call is one transaction:
// it commits whole or not at all.
type Repository interface {
	// Create reserves the slots, writes the appointment and both link
	// sets, and returns the hydrated result. Reserving an
	// already-booked slot fails the whole call.
	Create(ctx context.Context, in CreateInput) (*models.Appointment, error)

	// GetByID returns (nil, nil) when the appointment does not exist.
	GetByID(ctx context.Context, id uint) (*models.Appointment, error)

	List(ctx context.Context, f ListFilter) ([]models.Appointment, error)

	// Update applies scalars and replaces link sets. Replaced slot
	// sets are re-derived: old slots are released, new slots reserved,
	// in the same transaction.
	Update(ctx context.Context, id uint, in UpdateInput) (*models.Appointment, error)

	// Delete removes the appointment with its link rows and releases
	// the freed slots. Returns false when the id is unknown.
	Delete(ctx context.Context, id uint) (bool, error)
}
