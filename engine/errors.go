package engine

import (
	"errors"
	"fmt"
)

// ErrNoTemplate is returned when no active template satisfies the
// selector's constraints after the full format fallback.
var ErrNoTemplate = errors.New("no active template available")

// DanglingOverrideError reports an override whose destination zone is
// absent from the event's current venue zone catalog. It is raised at
// resolution time, never auto-corrected.
type DanglingOverrideError struct {
	OverrideID string
	EventID    string
	ZoneID     string
}

func (e *DanglingOverrideError) Error() string {
	return fmt.Sprintf("override %s points at zone %s which does not exist for event %s", e.OverrideID, e.ZoneID, e.EventID)
}

// MissingFieldError reports a placeholder in a template's content with no
// corresponding metadata key. Rendering never partially succeeds.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("no metadata value for placeholder %q", e.Field)
}
