package service

import (
	"errors"
	"fmt"
)

// Registry error values returned to handlers for status mapping
var (
	// ErrNIKExists is returned when a create or update would duplicate an
	// existing resident's NIK
	ErrNIKExists = errors.New("NIK ini sudah terdaftar dalam sistem. Gunakan NIK yang berbeda")

	// ErrResidentNotFound is returned when an update or lookup targets an
	// id that is not in the collection
	ErrResidentNotFound = errors.New("data penduduk tidak ditemukan")

	// ErrExportFailed wraps failures from the export libraries
	ErrExportFailed = errors.New("export failed")
)

// ValidationError describes a malformed or incomplete candidate record.
// It is raised before any persistence attempt.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// newValidationError builds a ValidationError for a field
func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError reports whether err is a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// wrapExport tags an export library failure with ErrExportFailed
func wrapExport(err error) error {
	return fmt.Errorf("%w: %v", ErrExportFailed, err)
}
