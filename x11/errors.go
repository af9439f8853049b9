package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"
)

// NativeError reports a display query or configuration request the X server
// rejected. The server's own status or error is carried verbatim.
type NativeError struct {
	Op     string
	Status string // RandR config status name, empty when Err holds an X error
	Code   byte
	Err    error
}

func (e *NativeError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("native error: %s: %s (status %d)", e.Op, e.Status, e.Code)
	}
	return fmt.Sprintf("native error: %s: %v", e.Op, e.Err)
}

func (e *NativeError) Unwrap() error {
	return e.Err
}

// nativeErr wraps an X reply error.
func nativeErr(op string, err error) *NativeError {
	return &NativeError{Op: op, Err: err}
}

// statusErr wraps a non-success RandR config status.
func statusErr(op string, status byte) *NativeError {
	return &NativeError{Op: op, Status: configStatusName(status), Code: status}
}

func configStatusName(status byte) string {
	switch status {
	case randr.SetConfigSuccess:
		return "Success"
	case randr.SetConfigInvalidConfigTime:
		return "InvalidConfigTime"
	case randr.SetConfigInvalidTime:
		return "InvalidTime"
	case randr.SetConfigFailed:
		return "Failed"
	default:
		return fmt.Sprintf("Unknown(%d)", status)
	}
}
