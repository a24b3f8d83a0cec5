package models

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across repositories and services. Handlers translate
// these into HTTP status codes. Lookups that resolve outside the caller's
// scope return ErrNotFound rather than ErrForbidden so existence is not leaked.
var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrHallUnavailable    = errors.New("hall is not available for booking")
	ErrDuplicateBooking   = errors.New("an active booking already exists for this venue")
)

// OfferTooLowError is returned when a negotiation offer falls below the 70%
// floor. Floor carries the computed minimum so clients can prompt for a
// higher offer.
type OfferTooLowError struct {
	Floor float64
	Mode  OfferMode
}

func (e *OfferTooLowError) Error() string {
	unit := "per plate"
	if e.Mode == OfferTotal {
		unit = "total"
	}
	return fmt.Sprintf("minimum allowed offer is %.2f %s", e.Floor, unit)
}

// CapacityExceededError is returned when the requested guest count is above
// the selected hall's capacity.
type CapacityExceededError struct {
	HallName   string
	Capacity   int
	GuestCount int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("maximum capacity for %s is %d, got %d guests", e.HallName, e.Capacity, e.GuestCount)
}

// InvalidTransitionError is returned when a status change is not legal from
// the booking's current state, including the case where a concurrent update
// won the race and moved the booking first.
type InvalidTransitionError struct {
	From   BookingStatus
	Action string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s a booking in status %q", e.Action, e.From)
}
