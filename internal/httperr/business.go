package httperr

import "errors"

// BusinessError is a domain failure identified by a stable code.
// Handlers map codes to HTTP statuses; the code is the contract.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// Codes used across the booking core.
const (
	CodeInvalidUser    = "invalid_user"
	CodeInvalidBarber  = "invalid_barber"
	CodeInvalidSlot    = "invalid_slot"
	CodeInvalidService = "invalid_service"

	CodeScheduleNotFound    = "schedule_not_found"
	CodeAppointmentNotFound = "appointment_not_found"

	CodeDuplicateSchedule = "duplicate_schedule"
	CodeDuplicateSlot     = "duplicate_slot"
	CodeSlotAlreadyBooked = "slot_already_booked"

	CodeMixedScheduleDates = "slots_span_multiple_dates"
)
