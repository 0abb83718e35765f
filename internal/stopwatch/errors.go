package stopwatch

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBoundary means a lap closed before the previous boundary.
	// It signals a broken invariant and is not recoverable.
	ErrInvalidBoundary = errors.New("elapsed time is before lap boundary")
	ErrNotRunning      = errors.New("stopwatch is not running")
	ErrConfigLocked    = errors.New("configuration is locked while running")
	ErrOutOfRange      = errors.New("value out of range")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrInvalidPeriod   = errors.New("tick period must be a positive whole number of milliseconds")
)

type OpError struct {
	Op    string
	Field string
	Err   error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapOpErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Err: err}
}

func wrapFieldErr(op, field string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Field: field, Err: err}
}
