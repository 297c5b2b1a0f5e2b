package schedule

import (
	"context"

	"github.com/barberbook/barbershop-api/internal/models"
)

// SlotPatch updates an existing slot matched by SlotID, or inserts a
// new slot when SlotID is zero / unknown. Slots are never deleted
// implicitly through a schedule update.
type SlotPatch struct {
	SlotID      uint
	StartTime   *string
	EndTime     *string
	IsAvailable *bool
}

type Patch struct {
	Date      *string
	IsWorking *bool
	TimeSlots []SlotPatch
}

type ListFilter struct {
	Date     *string
	BarberID *uint
	Page     int
	Limit    int
}

// Repository owns Schedule and TimeSlot rows (slot availability flips
// excepted — those belong to the booking repository).
type Repository interface {
	// Create persists the schedule and its slots as one transaction.
	Create(ctx context.Context, s *models.Schedule) error

	// GetByID returns (nil, nil) when the schedule does not exist.
	GetByID(ctx context.Context, id uint) (*models.Schedule, error)

	List(ctx context.Context, f ListFilter) ([]models.Schedule, error)

	Update(ctx context.Context, id uint, p Patch) (*models.Schedule, error)

	// Delete cascades to the schedule's slots and to any appointment
	// links that reference them. Returns false when the id is unknown.
	Delete(ctx context.Context, id uint) (bool, error)
}
