package models

import "time"

// TimeSlot is a bookable interval inside one schedule. The same
// (schedule, start, end) range can exist only once.
//
// IsAvailable is the barber-controlled visibility flag; IsBooked is
// derived from live appointment links and is mutated only by the
// booking repository.
type TimeSlot struct {
	SlotID uint `gorm:"primaryKey" json:"slot_id"`

	ScheduleID uint `gorm:"not null;uniqueIndex:uq_schedule_time" json:"schedule_id"`

	StartTime string `gorm:"size:5;not null;uniqueIndex:uq_schedule_time" json:"start_time"`
	EndTime   string `gorm:"size:5;not null;uniqueIndex:uq_schedule_time" json:"end_time"`

	IsAvailable bool `gorm:"default:true" json:"is_available"`
	IsBooked    bool `gorm:"default:false" json:"is_booked"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
