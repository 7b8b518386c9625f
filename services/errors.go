package services

import "fmt"

// The booking core reports failures through a small set of typed errors so
// the HTTP layer can translate each kind into the right response. Codes
// double as the machine-readable "code" field of the API error envelope.

// NotFoundError indicates a referenced salon, service, stylist, customer or
// appointment does not exist (or, for slot computation, that the stylist
// does not offer the requested service).
type NotFoundError struct {
	Entity string // e.g. "stylist", "service", "appointment"
	ID     string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Entity)
	}
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// Code returns the API error code for this error
func (e *NotFoundError) Code() string {
	switch e.Entity {
	case "stylist":
		return "STYLIST_NOT_FOUND"
	case "customer":
		return "CUSTOMER_NOT_FOUND"
	case "service":
		return "SERVICE_NOT_FOUND"
	case "appointment":
		return "APPOINTMENT_NOT_FOUND"
	case "salon":
		return "SALON_NOT_FOUND"
	}
	return "NOT_FOUND"
}

// InvalidTransitionError indicates a requested status change is not in the
// appointment transition table.
type InvalidTransitionError struct {
	AppointmentID string
	From          string
	To            string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("appointment %s cannot transition from %s to %s", e.AppointmentID, e.From, e.To)
}

// ConflictError indicates a booking collided with an existing appointment
// for the same stylist and start time.
type ConflictError struct {
	StylistID string
	DateTime  string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("stylist %s already has an appointment at %s", e.StylistID, e.DateTime)
}

// UnsupportedOperationError indicates an operation that is deliberately
// disabled, such as deleting an appointment or adding a second salon.
type UnsupportedOperationError struct {
	Operation string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("operation not supported: %s", e.Operation)
}

// ConfigurationError indicates system misconfiguration rather than a user
// error: a missing salon row, invalid business hours, or a service with a
// non-positive duration.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// ValidationError indicates invalid caller input that got past request
// binding (e.g. a malformed date or an unknown status name).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
