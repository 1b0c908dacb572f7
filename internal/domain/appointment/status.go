package appointment

import "github.com/cannaconscious/booking-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

func InitialStatus() Status {
	return StatusScheduled
}

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusScheduled, StatusConfirmed, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}

// ===============================
// Validations
// ===============================

// CanCancel rejects a second cancellation; the record stays canceled and no
// further notification goes out.
func CanCancel(current Status) error {
	if current == StatusCanceled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// ===============================
// Service Types
// ===============================

var ServiceTypes = []string{
	"consultation",
	"compliance-audit",
	"training",
	"strategy-planning",
	"other",
}

func IsValidServiceType(s string) bool {
	for _, t := range ServiceTypes {
		if t == s {
			return true
		}
	}
	return false
}
