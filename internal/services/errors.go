package services

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrSnapshotsDisabled is returned by Snapshot when no object store is configured.
var ErrSnapshotsDisabled = errors.New("snapshots are disabled: object storage is not configured")

// ValidationError reports missing or malformed request input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError reports that no building carries the requested id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Building with id %s not found", e.ID)
}

// MethodNotAllowedError reports an unsupported HTTP verb on the buildings route.
type MethodNotAllowedError struct {
	Method string
}

func (e *MethodNotAllowedError) Error() string { return "Method not allowed" }

func newValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

// IsValidation reports whether err is, or wraps, a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsNotFound reports whether err is, or wraps, a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsMethodNotAllowed reports whether err is, or wraps, a MethodNotAllowedError.
func IsMethodNotAllowed(err error) bool {
	var m *MethodNotAllowedError
	return errors.As(err, &m)
}

// outcome labels an operation result for metrics.
func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case IsValidation(err):
		return "invalid"
	case IsNotFound(err):
		return "not_found"
	default:
		return "error"
	}
}
