package booking

import "github.com/amalynlocs/salon-api/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// IsValid reports whether s is one of the four accepted statuses.
func IsValid(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ValidateTransition accepts any move between valid statuses. The admin
// console is free to reopen or re-confirm bookings, so there is no
// transition graph — only the value set is enforced.
func ValidateTransition(_ Status, target Status) error {
	if !IsValid(target) {
		return httperr.ErrBusiness("invalid_status")
	}
	return nil
}

// InitialStatus is the status every publicly submitted booking starts in.
func InitialStatus() Status {
	return StatusPending
}
