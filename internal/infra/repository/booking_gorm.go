package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/barberbook/barbershop-api/internal/domain/booking"
	"github.com/barberbook/barbershop-api/internal/httperr"
	"github.com/barberbook/barbershop-api/internal/models"
)

// BookingGormRepository coordinates appointments with their slot and
// service links. Every TimeSlot.IsBooked mutation in the codebase
// lives in this file (reserveSlots / releaseSlots); nothing else may
// flip that flag.
type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Create
// --------------------------------------------------

func (r *BookingGormRepository) Create(
	ctx context.Context,
	in domain.CreateInput,
) (*models.Appointment, error) {

	var created *models.Appointment

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		date, err := r.lockAndResolveDate(tx, in.SlotIDs)
		if err != nil {
			return err
		}

		if err := r.reserveSlots(tx, in.SlotIDs); err != nil {
			return err
		}

		ap := models.Appointment{
			AppointmentDate: date,
			UserID:          in.UserID,
			BarberID:        in.BarberID,
			Status:          string(in.Status),
		}
		if err := tx.Create(&ap).Error; err != nil {
			return err
		}

		if err := r.linkSlots(tx, ap.AppointmentID, in.SlotIDs); err != nil {
			return err
		}
		if err := r.linkServices(tx, ap.AppointmentID, in.ServiceIDs); err != nil {
			return err
		}

		// Hydration happens before commit: the caller always gets the
		// row it just wrote, even if someone deletes it right after.
		created, err = r.getByID(tx, ap.AppointmentID)
		return err
	})

	if err != nil {
		return nil, err
	}

	return created, nil
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *BookingGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {
	return r.getByID(r.db.WithContext(ctx), id)
}

func (r *BookingGormRepository) getByID(q *gorm.DB, id uint) (*models.Appointment, error) {
	var ap models.Appointment
	err := q.
		Preload("User").
		Preload("Barber").
		Preload("Barber.User").
		Preload("TimeSlotLinks.TimeSlot").
		Preload("ServiceLinks.Service").
		First(&ap, id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *BookingGormRepository) List(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("User").
		Preload("Barber").
		Preload("Barber.User").
		Preload("TimeSlotLinks.TimeSlot").
		Preload("ServiceLinks.Service")

	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}
	if f.BarberID != nil {
		q = q.Where("barber_id = ?", *f.BarberID)
	}

	var aps []models.Appointment
	if err := q.
		Order("appointment_date ASC, appointment_id ASC").
		Offset((f.Page - 1) * f.Limit).
		Limit(f.Limit).
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// --------------------------------------------------
// Update
// --------------------------------------------------

func (r *BookingGormRepository) Update(
	ctx context.Context,
	id uint,
	in domain.UpdateInput,
) (*models.Appointment, error) {

	found := true

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var ap models.Appointment
		if err := tx.First(&ap, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				found = false
				return nil
			}
			return err
		}

		if in.UserID != nil {
			ap.UserID = *in.UserID
		}
		if in.BarberID != nil {
			ap.BarberID = *in.BarberID
		}
		if in.Status != nil {
			ap.Status = string(*in.Status)
		}

		if in.SlotIDs != nil {
			date, err := r.replaceSlots(tx, id, *in.SlotIDs)
			if err != nil {
				return err
			}
			ap.AppointmentDate = date
		}

		if in.ServiceIDs != nil {
			if err := tx.
				Where("appointment_id = ?", id).
				Delete(&models.AppointmentService{}).Error; err != nil {
				return err
			}
			if err := r.linkServices(tx, id, *in.ServiceIDs); err != nil {
				return err
			}
		}

		return tx.Save(&ap).Error
	})

	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	return r.GetByID(ctx, id)
}

// replaceSlots swaps the appointment's slot set for slotIDs: the old
// slots are released and the new ones reserved inside the caller's
// transaction, so IsBooked stays true exactly for linked slots.
func (r *BookingGormRepository) replaceSlots(
	tx *gorm.DB,
	appointmentID uint,
	slotIDs []uint,
) (string, error) {

	var oldIDs []uint
	if err := tx.
		Model(&models.AppointmentTimeSlot{}).
		Where("appointment_id = ?", appointmentID).
		Pluck("slot_id", &oldIDs).Error; err != nil {
		return "", err
	}

	if err := r.releaseSlots(tx, oldIDs); err != nil {
		return "", err
	}
	if err := tx.
		Where("appointment_id = ?", appointmentID).
		Delete(&models.AppointmentTimeSlot{}).Error; err != nil {
		return "", err
	}

	date, err := r.lockAndResolveDate(tx, slotIDs)
	if err != nil {
		return "", err
	}

	if err := r.reserveSlots(tx, slotIDs); err != nil {
		return "", err
	}

	return date, r.linkSlots(tx, appointmentID, slotIDs)
}

// --------------------------------------------------
// Delete
// --------------------------------------------------

func (r *BookingGormRepository) Delete(
	ctx context.Context,
	id uint,
) (bool, error) {

	found := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var ap models.Appointment
		if err := tx.First(&ap, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		found = true

		var slotIDs []uint
		if err := tx.
			Model(&models.AppointmentTimeSlot{}).
			Where("appointment_id = ?", id).
			Pluck("slot_id", &slotIDs).Error; err != nil {
			return err
		}

		if err := r.releaseSlots(tx, slotIDs); err != nil {
			return err
		}

		if err := tx.
			Where("appointment_id = ?", id).
			Delete(&models.AppointmentTimeSlot{}).Error; err != nil {
			return err
		}
		if err := tx.
			Where("appointment_id = ?", id).
			Delete(&models.AppointmentService{}).Error; err != nil {
			return err
		}

		return tx.Delete(&ap).Error
	})

	if err != nil {
		return false, err
	}
	return found, nil
}

// --------------------------------------------------
// Slot reservation
// --------------------------------------------------

// lockAndResolveDate row-locks the requested slots, verifies they all
// exist, and derives the appointment date from their schedules. Slots
// spanning more than one schedule date are rejected rather than
// picking an arbitrary winner.
func (r *BookingGormRepository) lockAndResolveDate(
	tx *gorm.DB,
	slotIDs []uint,
) (string, error) {

	var slots []models.TimeSlot
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("slot_id IN ?", slotIDs).
		Find(&slots).Error; err != nil {
		return "", err
	}

	if len(slots) != len(slotIDs) {
		return "", httperr.ErrBusiness(httperr.CodeInvalidSlot)
	}

	scheduleIDs := make([]uint, 0, len(slots))
	for _, s := range slots {
		scheduleIDs = append(scheduleIDs, s.ScheduleID)
	}

	var dates []string
	if err := tx.
		Model(&models.Schedule{}).
		Distinct("date").
		Where("schedule_id IN ?", scheduleIDs).
		Pluck("date", &dates).Error; err != nil {
		return "", err
	}

	if len(dates) != 1 {
		return "", httperr.ErrBusiness(httperr.CodeMixedScheduleDates)
	}

	return dates[0], nil
}

// reserveSlots is a single conditional write: it books exactly the
// slots that are still free, and fails the transaction when any slot
// in the set was already taken. This closes the check-then-act window
// between validation and booking under concurrent requests.
func (r *BookingGormRepository) reserveSlots(tx *gorm.DB, slotIDs []uint) error {
	if len(slotIDs) == 0 {
		return nil
	}

	res := tx.
		Model(&models.TimeSlot{}).
		Where("slot_id IN ? AND is_booked = ?", slotIDs, false).
		Update("is_booked", true)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected != int64(len(slotIDs)) {
		return httperr.ErrBusiness(httperr.CodeSlotAlreadyBooked)
	}
	return nil
}

func (r *BookingGormRepository) releaseSlots(tx *gorm.DB, slotIDs []uint) error {
	if len(slotIDs) == 0 {
		return nil
	}

	return tx.
		Model(&models.TimeSlot{}).
		Where("slot_id IN ?", slotIDs).
		Update("is_booked", false).Error
}

// --------------------------------------------------
// Links
// --------------------------------------------------

func (r *BookingGormRepository) linkSlots(tx *gorm.DB, appointmentID uint, slotIDs []uint) error {
	if len(slotIDs) == 0 {
		return nil
	}

	links := make([]models.AppointmentTimeSlot, 0, len(slotIDs))
	for _, slotID := range slotIDs {
		links = append(links, models.AppointmentTimeSlot{
			SlotID:        slotID,
			AppointmentID: appointmentID,
		})
	}
	return tx.Create(&links).Error
}

func (r *BookingGormRepository) linkServices(tx *gorm.DB, appointmentID uint, serviceIDs []uint) error {
	if len(serviceIDs) == 0 {
		return nil
	}

	links := make([]models.AppointmentService, 0, len(serviceIDs))
	for _, serviceID := range serviceIDs {
		links = append(links, models.AppointmentService{
			ServiceID:     serviceID,
			AppointmentID: appointmentID,
		})
	}
	return tx.Create(&links).Error
}

var _ domain.Repository = (*BookingGormRepository)(nil)
