package eca

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter reports a size, rule, state or step count outside its domain.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrNotInitialized reports an operation that needs at least one recorded state.
	ErrNotInitialized = errors.New("automaton not initialized")
	// ErrAlreadyInitialized reports an attempt to seed a non-empty trajectory.
	ErrAlreadyInitialized = errors.New("automaton already initialized")
)

// ParamError names the offending parameter. It matches ErrInvalidParameter
// under errors.Is.
type ParamError struct {
	Field  string
	Value  int
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %s=%d %s", ErrInvalidParameter, e.Field, e.Value, e.Reason)
}

func (e *ParamError) Unwrap() error { return ErrInvalidParameter }

func paramErr(field string, value int, reason string) error {
	return &ParamError{Field: field, Value: value, Reason: reason}
}
