package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/barberbook/barbershop-api/internal/domain/schedule"
	"github.com/barberbook/barbershop-api/internal/httperr"
	"github.com/barberbook/barbershop-api/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Create
// --------------------------------------------------

func (r *ScheduleGormRepository) Create(
	ctx context.Context,
	s *models.Schedule,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var count int64
		if err := tx.
			Model(&models.Schedule{}).
			Where("barber_id = ? AND date = ?", s.BarberID, s.Date).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness(httperr.CodeDuplicateSchedule)
		}

		// Inserts the schedule and its slots together; any failure
		// rolls the whole thing back.
		return tx.Create(s).Error
	})

	return mapUniqueViolation(err)
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *ScheduleGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Schedule, error) {

	var s models.Schedule
	err := r.db.WithContext(ctx).
		Preload("TimeSlots").
		Preload("Barber").
		Preload("Barber.User").
		First(&s, id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *ScheduleGormRepository) List(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Schedule, error) {

	q := r.db.WithContext(ctx).
		Preload("TimeSlots").
		Preload("Barber").
		Preload("Barber.User")

	if f.Date != nil {
		q = q.Where("date = ?", *f.Date)
	}
	if f.BarberID != nil {
		q = q.Where("barber_id = ?", *f.BarberID)
	}

	var schedules []models.Schedule
	if err := q.
		Order("date ASC").
		Offset((f.Page - 1) * f.Limit).
		Limit(f.Limit).
		Find(&schedules).Error; err != nil {
		return nil, err
	}

	return schedules, nil
}

// --------------------------------------------------
// Update
// --------------------------------------------------

func (r *ScheduleGormRepository) Update(
	ctx context.Context,
	id uint,
	p domain.Patch,
) (*models.Schedule, error) {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var s models.Schedule
		if err := tx.First(&s, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrBusiness(httperr.CodeScheduleNotFound)
			}
			return err
		}

		if p.Date != nil {
			s.Date = *p.Date
		}
		if p.IsWorking != nil {
			s.IsWorking = *p.IsWorking
		}
		if err := tx.Save(&s).Error; err != nil {
			return err
		}

		// Slot entries are upserted by identity, never deleted here.
		for _, sp := range p.TimeSlots {
			if err := r.upsertSlot(tx, id, sp); err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		return nil, mapUniqueViolation(err)
	}

	return r.GetByID(ctx, id)
}

func (r *ScheduleGormRepository) upsertSlot(
	tx *gorm.DB,
	scheduleID uint,
	sp domain.SlotPatch,
) error {

	var slot models.TimeSlot
	err := tx.
		Where("slot_id = ? AND schedule_id = ?", sp.SlotID, scheduleID).
		First(&slot).Error

	if err == nil {
		if sp.StartTime != nil {
			slot.StartTime = *sp.StartTime
		}
		if sp.EndTime != nil {
			slot.EndTime = *sp.EndTime
		}
		if sp.IsAvailable != nil {
			slot.IsAvailable = *sp.IsAvailable
		}
		return tx.Save(&slot).Error
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if sp.StartTime == nil || sp.EndTime == nil {
		return httperr.ErrBusiness("slot_times_required")
	}

	slot = models.TimeSlot{
		ScheduleID:  scheduleID,
		StartTime:   *sp.StartTime,
		EndTime:     *sp.EndTime,
		IsAvailable: true,
	}
	if sp.IsAvailable != nil {
		slot.IsAvailable = *sp.IsAvailable
	}

	return tx.Create(&slot).Error
}

// --------------------------------------------------
// Delete
// --------------------------------------------------

// Delete removes the schedule, its slots, and any appointment links
// still pointing at those slots, as one transaction. Appointments
// themselves survive with a reduced slot set.
func (r *ScheduleGormRepository) Delete(
	ctx context.Context,
	id uint,
) (bool, error) {

	found := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var s models.Schedule
		if err := tx.First(&s, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		found = true

		var slotIDs []uint
		if err := tx.
			Model(&models.TimeSlot{}).
			Where("schedule_id = ?", id).
			Pluck("slot_id", &slotIDs).Error; err != nil {
			return err
		}

		if len(slotIDs) > 0 {
			if err := tx.
				Where("slot_id IN ?", slotIDs).
				Delete(&models.AppointmentTimeSlot{}).Error; err != nil {
				return err
			}
			if err := tx.
				Where("schedule_id = ?", id).
				Delete(&models.TimeSlot{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&s).Error
	})

	if err != nil {
		return false, err
	}
	return found, nil
}

// mapUniqueViolation converts the database backstop for the two
// unique indexes into the same business codes the proactive checks
// use.
func mapUniqueViolation(err error) error {
	name, ok := httperr.UniqueConstraintName(err)
	if !ok {
		return err
	}

	switch name {
	case "uq_barber_date":
		return httperr.ErrBusiness(httperr.CodeDuplicateSchedule)
	case "uq_schedule_time":
		return httperr.ErrBusiness(httperr.CodeDuplicateSlot)
	default:
		return httperr.ErrBusiness("conflict")
	}
}

var _ domain.Repository = (*ScheduleGormRepository)(nil)
