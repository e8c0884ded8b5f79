package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the single validation failure kind of the calculator.
var ErrInvalidInput = errors.New("invalid input")

// InputError names the offending field. It unwraps to ErrInvalidInput.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidInput, e.Field, e.Reason)
}

func (e *InputError) Unwrap() error { return ErrInvalidInput }
