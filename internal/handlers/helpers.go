package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/barberbook/barbershop-api/internal/httperr"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// pagination reads ?page and ?limit with the shared convention:
// page >= 1, limit capped at 100, offset = (page-1)*limit.
func pagination(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(defaultPage)))
	if err != nil || page < 1 {
		page = defaultPage
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return page, limit
}

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Invalid identifier.")
		return 0, false
	}
	return uint(id), true
}

// writeBusinessError maps business codes to HTTP statuses. It reports
// whether err was a business error; anything else is the caller's
// storage-error path.
func writeBusinessError(c *gin.Context, err error) bool {
	codes := map[string]func(*gin.Context, string, string){
		httperr.CodeInvalidUser:    httperr.BadRequest,
		httperr.CodeInvalidBarber:  httperr.BadRequest,
		httperr.CodeInvalidSlot:    httperr.BadRequest,
		httperr.CodeInvalidService: httperr.BadRequest,

		httperr.CodeMixedScheduleDates: httperr.BadRequest,
		"invalid_initial_status":       httperr.BadRequest,
		"invalid_status":               httperr.BadRequest,
		"invalid_date":                 httperr.BadRequest,
		"invalid_time_format":          httperr.BadRequest,
		"invalid_time_range":           httperr.BadRequest,
		"invalid_slot_step":            httperr.BadRequest,
		"slot_times_required":          httperr.BadRequest,
		"no_slots":                     httperr.BadRequest,

		httperr.CodeScheduleNotFound:    httperr.NotFound,
		httperr.CodeAppointmentNotFound: httperr.NotFound,

		httperr.CodeDuplicateSchedule: httperr.Conflict,
		httperr.CodeDuplicateSlot:     httperr.Conflict,
		httperr.CodeSlotAlreadyBooked: httperr.Conflict,
		"conflict":                    httperr.Conflict,
	}

	for code, write := range codes {
		if httperr.IsBusiness(err, code) {
			write(c, code, messageFor(code))
			return true
		}
	}
	return false
}

func messageFor(code string) string {
	switch code {
	case httperr.CodeInvalidUser:
		return "User does not exist."
	case httperr.CodeInvalidBarber:
		return "Barber does not exist."
	case httperr.CodeInvalidSlot:
		return "Time slot does not exist."
	case httperr.CodeInvalidService:
		return "Service does not exist."
	case httperr.CodeScheduleNotFound:
		return "Schedule not found."
	case httperr.CodeAppointmentNotFound:
		return "Appointment not found."
	case httperr.CodeDuplicateSchedule:
		return "A schedule already exists for this barber and date."
	case httperr.CodeDuplicateSlot:
		return "Duplicate time slot range."
	case httperr.CodeSlotAlreadyBooked:
		return "One or more time slots are already booked."
	case httperr.CodeMixedScheduleDates:
		return "All time slots must belong to the same schedule date."
	default:
		return "Invalid request."
	}
}
