package domain

import "fmt"

// Error types for consistent error handling across the bridge.

// ErrValidation indicates a malformed or contradictory tool input.
// It is raised before any upstream call is made.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error on '%s': %s", e.Field, e.Message)
}

// ErrUpstream indicates a non-2xx response from the budgeting API.
type ErrUpstream struct {
	Status int
	Reason string
}

func (e *ErrUpstream) Error() string {
	return fmt.Sprintf("upstream status %d: %s", e.Status, e.Reason)
}

// ErrPersistence indicates a file system failure while writing a spill file.
type ErrPersistence struct {
	Path string
	Err  error
}

func (e *ErrPersistence) Error() string {
	return fmt.Sprintf("failed to write output file %s: %v", e.Path, e.Err)
}

func (e *ErrPersistence) Unwrap() error {
	return e.Err
}

// ErrCircuitOpen indicates the circuit breaker is open for the upstream API.
type ErrCircuitOpen struct {
	Service string
}

func (e *ErrCircuitOpen) Error() string {
	return fmt.Sprintf("circuit breaker open for service: %s", e.Service)
}

// ErrTimeout indicates an operation exceeded its deadline.
type ErrTimeout struct {
	Operation string
}

func (e *ErrTimeout) Error() string {
	return fmt.Sprintf("operation timed out: %s", e.Operation)
}
