package service

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrPatientNotFound     = fmt.Errorf("patient %w", ErrNotFound)
	ErrDoctorNotFound      = fmt.Errorf("doctor %w", ErrNotFound)
	ErrAppointmentNotFound = fmt.Errorf("appointment %w", ErrNotFound)

	ErrUserAlreadyExists  = errors.New("already exists")
	ErrUsernameExists     = fmt.Errorf("username %w", ErrUserAlreadyExists)
	ErrEmailExists        = fmt.Errorf("email %w", ErrUserAlreadyExists)
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrValidation marks a missing or malformed request field
	ErrValidation = errors.New("validation failed")

	// ErrDanglingReference is returned when an appointment points at a
	// patient or doctor that no longer exists
	ErrDanglingReference = errors.New("appointment references a missing record")
)

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// requireNonEmpty checks {name, value} pairs in order
func requireNonEmpty(fields ...[2]string) error {
	for _, f := range fields {
		if f[1] == "" {
			return validationError("%s must not be empty", f[0])
		}
	}
	return nil
}
