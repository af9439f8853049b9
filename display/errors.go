package display

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownDisplay means the requested id is not in the enumeration
	ErrUnknownDisplay = errors.New("no display with that id")
	// ErrInactiveDisplay means the display is enumerated but has no active
	// configuration to read or change
	ErrInactiveDisplay = errors.New("display has no active settings")
	// ErrNoPrimary means no display qualifies as the primary
	ErrNoPrimary = errors.New("no primary display")
)

// ParseError reports malformed or duplicated property input. It is raised
// while arguments are read, before anything touches the X server.
type ParseError struct {
	Property string // property kind, e.g. "position"
	Input    string // offending text, empty for non-value errors
	Reason   string
}

func (e *ParseError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("parse error: %s %s", e.Property, e.Reason)
	}
	return fmt.Sprintf("parse error: invalid %s %q: %s", e.Property, e.Input, e.Reason)
}
