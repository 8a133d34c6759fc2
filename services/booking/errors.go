package booking

import "fmt"

// ConflictError reports that the event was already booked by another trainee
// by the time the conditional update reached the store. Distinct from a
// transient failure so the caller can prompt a fresh search instead of a retry.
type ConflictError struct {
	EventID string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("event %s has already been booked", e.EventID)
}

// NotFoundError reports that the targeted event no longer exists, typically a
// stale-catalog artifact recoverable by refreshing.
type NotFoundError struct {
	EventID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("event %s not found", e.EventID)
}
