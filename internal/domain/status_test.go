package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want BookingStatus
	}{
		{"pending", StatusPending},
		{"confirmed", StatusConfirmed},
		{"completed", StatusCompleted},
		{"cancelled", StatusCancelled},
		{"canceled", StatusCancelled},
		{"processing", StatusPending},
		{"PROCESSING", StatusPending},
		{"waiting", StatusPending},
		{"active", StatusConfirmed},
		{"approved", StatusConfirmed},
		{"scheduled", StatusConfirmed},
		{"finished", StatusCompleted},
		{"done", StatusCompleted},
		{"Done", StatusCompleted},
		{"Completed", StatusCompleted},
		{"rejected", StatusCancelled},
		{"unknown-garbage", StatusPending},
		{"", StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseStatus(tt.raw))
		})
	}
}

func TestBookingStatus_Spellings(t *testing.T) {
	tests := []struct {
		status BookingStatus
		want   []string
	}{
		{StatusCompleted, []string{"completed", "done", "finished"}},
		{StatusCancelled, []string{"canceled", "cancelled", "rejected"}},
		{StatusConfirmed, []string{"active", "approved", "confirmed", "scheduled"}},
		{StatusPending, []string{"pending", "processing", "waiting"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			spellings := tt.status.Spellings()
			assert.Equal(t, tt.want, spellings)

			// Каждое написание нормализуется обратно в тот же статус
			for _, raw := range spellings {
				assert.Equal(t, tt.status, ParseStatus(raw))
			}
		})
	}
}

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	allowed := []struct {
		from, to BookingStatus
	}{
		{StatusPending, StatusConfirmed},
		{StatusPending, StatusCompleted},
		{StatusPending, StatusCancelled},
		{StatusConfirmed, StatusCompleted},
		{StatusConfirmed, StatusCancelled},
	}

	for _, tt := range allowed {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.NoError(t, tt.from.CanTransitionTo(tt.to))
		})
	}

	denied := []struct {
		from, to BookingStatus
	}{
		{StatusCompleted, StatusPending},
		{StatusCompleted, StatusConfirmed},
		{StatusCompleted, StatusCancelled},
		{StatusCancelled, StatusPending},
		{StatusCancelled, StatusConfirmed},
		{StatusConfirmed, StatusPending},
		// Self-transitions are not listed edges
		{StatusPending, StatusPending},
		{StatusConfirmed, StatusConfirmed},
		{StatusCompleted, StatusCompleted},
		{StatusCancelled, StatusCancelled},
	}

	for _, tt := range denied {
		t.Run(string(tt.from)+"_to_"+string(tt.to)+"_denied", func(t *testing.T) {
			err := tt.from.CanTransitionTo(tt.to)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidTransition)
		})
	}

	t.Run("unknown target status is rejected", func(t *testing.T) {
		err := StatusPending.CanTransitionTo(BookingStatus("archived"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestBookingStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
}

func TestBooking_CanEditServices(t *testing.T) {
	tests := []struct {
		status BookingStatus
		want   bool
	}{
		{StatusPending, true},
		{StatusConfirmed, false},
		{StatusCompleted, false},
		{StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			b := &Booking{Status: tt.status}
			assert.Equal(t, tt.want, b.CanEditServices())
		})
	}
}

func TestBookingStatus_Badge(t *testing.T) {
	assert.Equal(t, StatusBadge{DisplayName: "Pending", Color: "red"}, StatusPending.Badge())
	assert.Equal(t, StatusBadge{DisplayName: "Confirmed", Color: "blue"}, StatusConfirmed.Badge())
	assert.Equal(t, StatusBadge{DisplayName: "Completed", Color: "green"}, StatusCompleted.Badge())
	assert.Equal(t, StatusBadge{DisplayName: "Cancelled", Color: "gray"}, StatusCancelled.Badge())

	// Unknown statuses still render
	badge := BookingStatus("archived").Badge()
	assert.Equal(t, "archived", badge.DisplayName)
	assert.Equal(t, "gray", badge.Color)
}
