package booking

// Appointment status. New appointments start as pending or confirmed;
// updates may move between any pair of statuses (no transition graph
// is enforced, matching the booking API contract).
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func ValidInitialStatus(s Status) bool {
	return s == StatusPending || s == StatusConfirmed
}
