package members

import (
	"errors"
	"fmt"
)

// Messages surfaced to the user when an operation fails without a usable error text.
const (
	msgMissingFields = "Please fill in both name and phone number"
	msgAddFailed     = "Failed to add member."
	msgDeleteFailed  = "Failed to delete member."
)

// ValidationError is returned before any gateway call when input is unusable.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ErrDuplicateMember is returned when the gateway confirms a create with an id
// the local list already holds.
var ErrDuplicateMember = errors.New("gateway returned an id already in the list")

func duplicateMember(id int64) error {
	return fmt.Errorf("member %d: %w", id, ErrDuplicateMember)
}

func messageOr(err error, fallback string) string {
	if err == nil || err.Error() == "" {
		return fallback
	}
	return err.Error()
}
