package service

import (
	"fmt"
	"strings"
)

// ValidationError reports required fields that were missing or empty.
// Nothing has been stored when it is returned.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// PersistenceError wraps a store failure. No email has been sent when it is returned.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist contact message: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// NotificationError reports notification emails that could not be sent.
// The contact message itself is already stored.
type NotificationError struct {
	Failures []Delivery
}

func (e *NotificationError) Error() string {
	parts := make([]string, 0, len(e.Failures))
	for _, d := range e.Failures {
		parts = append(parts, fmt.Sprintf("%s to %s: %v", d.Kind, d.To, d.Err))
	}
	return "send notifications: " + strings.Join(parts, "; ")
}

// Unwrap exposes the individual send errors to errors.Is / errors.As.
func (e *NotificationError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failures))
	for _, d := range e.Failures {
		errs = append(errs, d.Err)
	}
	return errs
}
