package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBookingStatusTransitions(t *testing.T) {
	cases := []struct {
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{BookingStatusPending, BookingStatusAccepted, true},
		{BookingStatusPending, BookingStatusRejected, true},
		{BookingStatusPending, BookingStatusCancelled, true},
		{BookingStatusPending, BookingStatusRunning, false},
		{BookingStatusPending, BookingStatusCompleted, false},
		{BookingStatusAccepted, BookingStatusRejected, true},
		{BookingStatusAccepted, BookingStatusRunning, true},
		{BookingStatusAccepted, BookingStatusCompleted, true},
		{BookingStatusAccepted, BookingStatusCancelled, false},
		{BookingStatusAccepted, BookingStatusPending, false},
		{BookingStatusRunning, BookingStatusCompleted, true},
		{BookingStatusRunning, BookingStatusRejected, false},
		{BookingStatusRejected, BookingStatusAccepted, false},
		{BookingStatusCancelled, BookingStatusAccepted, false},
		{BookingStatusCompleted, BookingStatusRunning, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransition(tc.to); got != tc.allowed {
			t.Errorf("CanTransition(%s -> %s) = %v, want %v", tc.from, tc.to, got, tc.allowed)
		}
	}
}

func TestBookingStatusIsTerminal(t *testing.T) {
	terminal := []BookingStatus{BookingStatusRejected, BookingStatusCancelled, BookingStatusCompleted}
	for _, s := range terminal {
		if !s.IsTerminal() {
			t.Errorf("%s should be terminal", s)
		}
	}

	active := []BookingStatus{BookingStatusPending, BookingStatusAccepted, BookingStatusRunning}
	for _, s := range active {
		if s.IsTerminal() {
			t.Errorf("%s should not be terminal", s)
		}
		if !s.IsActive() {
			t.Errorf("%s should be active", s)
		}
	}
}

func TestInvalidTransitionErrorMessage(t *testing.T) {
	err := &InvalidTransitionError{From: BookingStatusCompleted, Action: "accept"}
	want := `cannot accept a booking in status "Completed"`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestHallIncludesFood(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	hall := &Hall{IncludedFood: []primitive.ObjectID{a}}

	if !hall.IncludesFood(a) {
		t.Error("expected included food to be found")
	}
	if hall.IncludesFood(b) {
		t.Error("unexpected match for food not in the bundle")
	}
}
