package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentStatus_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		status AppointmentStatus
		valid  bool
	}{
		{"Pending is valid", StatusPending, true},
		{"Confirmed is valid", StatusConfirmed, true},
		{"Cancelled is valid", StatusCancelled, true},
		{"Completed is valid", StatusCompleted, true},
		{"NoShow is valid", StatusNoShow, true},
		{"Empty status is invalid", AppointmentStatus(""), false},
		{"Unknown status is invalid", AppointmentStatus("Rescheduled"), false},
		{"Lowercase status is invalid", AppointmentStatus("pending"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.status.IsValid())
		})
	}
}

func TestAppointmentStatus_CanTransitionTo(t *testing.T) {
	all := []AppointmentStatus{
		StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted, StatusNoShow,
	}

	// The only legal moves in the whole lifecycle
	allowed := map[AppointmentStatus]map[AppointmentStatus]bool{
		StatusPending:   {StatusConfirmed: true, StatusCancelled: true},
		StatusConfirmed: {StatusCancelled: true, StatusCompleted: true, StatusNoShow: true},
	}

	// Check every pair so nothing slips through the transition table
	for _, from := range all {
		for _, to := range all {
			want := allowed[from][to]
			assert.Equal(t, want, from.CanTransitionTo(to),
				"transition %s -> %s", from, to)
		}
	}
}

func TestAppointmentStatus_IsTerminal(t *testing.T) {
	tests := []struct {
		name     string
		status   AppointmentStatus
		terminal bool
	}{
		{"Pending is not terminal", StatusPending, false},
		{"Confirmed is not terminal", StatusConfirmed, false},
		{"Cancelled is terminal", StatusCancelled, true},
		{"Completed is terminal", StatusCompleted, true},
		{"NoShow is terminal", StatusNoShow, true},
		{"Unknown status is not terminal", AppointmentStatus("bogus"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.terminal, tt.status.IsTerminal())
		})
	}
}

func TestAppointmentStatus_TerminalStatesAllowNoTransitions(t *testing.T) {
	all := []AppointmentStatus{
		StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted, StatusNoShow,
	}

	for _, terminal := range []AppointmentStatus{StatusCancelled, StatusCompleted, StatusNoShow} {
		for _, to := range all {
			assert.False(t, terminal.CanTransitionTo(to),
				"terminal status %s must not transition to %s", terminal, to)
		}
	}
}

func TestAppointmentStatus_NoSelfTransitions(t *testing.T) {
	all := []AppointmentStatus{
		StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted, StatusNoShow,
	}

	for _, s := range all {
		assert.False(t, s.CanTransitionTo(s), "status %s must not transition to itself", s)
	}
}
