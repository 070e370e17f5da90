package eventdesk

import (
	"errors"
	"fmt"
)

// Sentinel errors for enum and view parameter parsing.
var (
	// ErrUnknownCategory indicates a category tag outside {work, personal, other}.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrUnknownStatus indicates a status tag outside {upcoming, completed}.
	ErrUnknownStatus = errors.New("unknown status")

	// ErrUnknownSortField indicates a sort field outside {name, date, category}.
	ErrUnknownSortField = errors.New("unknown sort field")

	// ErrUnknownFilter indicates a filter outside {all, work, personal, other}.
	ErrUnknownFilter = errors.New("unknown filter category")
)

// Sentinel errors for snapshot decoding.
var (
	// ErrSnapshotVersion indicates a snapshot written by an incompatible format version.
	ErrSnapshotVersion = errors.New("snapshot version mismatch")

	// ErrSnapshotInvalid indicates a snapshot that decoded but failed shape validation.
	ErrSnapshotInvalid = errors.New("invalid snapshot")
)

// ValidationError reports a form submission that was rejected before
// reaching the Store. It is surfaced to the user through the
// notification channel and never propagates further.
type ValidationError struct {
	// Field is the draft field that failed ("name", "date"), or empty
	// when the failure spans fields.
	Field string
	// Message is the user-facing description of the failure.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error on %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}
