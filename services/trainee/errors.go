package trainee

import "fmt"

// ValidationError reports a bad search or apply request, rejected before any
// store call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
