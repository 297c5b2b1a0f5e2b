package schedule

import (
	"time"

	"github.com/barberbook/barbershop-api/internal/httperr"
	"github.com/barberbook/barbershop-api/internal/models"
)

const (
	DateLayout         = "2006-01-02"
	timeLayout         = "15:04"
	DefaultDayStart    = "09:00"
	DefaultDayEnd      = "17:00"
	DefaultStepMinutes = 30
)

// ParseDate validates a "2006-01-02" schedule date.
func ParseDate(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return httperr.ErrBusiness("invalid_date")
	}
	return nil
}

// ParseInterval validates a "HH:MM" pair and requires start < end.
func ParseInterval(start, end string) (time.Time, time.Time, error) {
	s, err := time.Parse(timeLayout, start)
	if err != nil {
		return time.Time{}, time.Time{}, httperr.ErrBusiness("invalid_time_format")
	}
	e, err := time.Parse(timeLayout, end)
	if err != nil {
		return time.Time{}, time.Time{}, httperr.ErrBusiness("invalid_time_format")
	}
	if !s.Before(e) {
		return time.Time{}, time.Time{}, httperr.ErrBusiness("invalid_time_range")
	}
	return s, e, nil
}

// GenerateSlots cuts [dayStart, dayEnd) into stepMinutes-sized
// intervals. A trailing remainder shorter than one step is dropped.
func GenerateSlots(dayStart, dayEnd string, stepMinutes int) ([]models.TimeSlot, error) {
	if stepMinutes <= 0 {
		return nil, httperr.ErrBusiness("invalid_slot_step")
	}

	start, end, err := ParseInterval(dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	step := time.Duration(stepMinutes) * time.Minute

	var slots []models.TimeSlot
	for cur := start; !cur.Add(step).After(end); cur = cur.Add(step) {
		slots = append(slots, models.TimeSlot{
			StartTime:   cur.Format(timeLayout),
			EndTime:     cur.Add(step).Format(timeLayout),
			IsAvailable: true,
		})
	}

	return slots, nil
}

// CheckDistinct rejects two supplied slots with the same
// (start, end) range before they ever reach the unique index.
func CheckDistinct(slots []models.TimeSlot) error {
	seen := make(map[string]struct{}, len(slots))
	for _, s := range slots {
		key := s.StartTime + "-" + s.EndTime
		if _, dup := seen[key]; dup {
			return httperr.ErrBusiness(httperr.CodeDuplicateSlot)
		}
		seen[key] = struct{}{}
	}
	return nil
}
