package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herlindaapr/beautybook-service/pkg/types"
)

func studioHours(t *testing.T) BusinessHours {
	t.Helper()

	open, err := types.NewTimeStringFromString("09:00")
	require.NoError(t, err)
	closing, err := types.NewTimeStringFromString("16:00")
	require.NoError(t, err)

	return BusinessHours{OpenTime: open, CloseTime: closing, BufferMinutes: 30}
}

func TestBusinessHours_Contains(t *testing.T) {
	hours := studioHours(t)

	tests := []struct {
		name string
		hour int
		min  int
		want bool
	}{
		{"one minute before open", 8, 59, false},
		{"exactly at open", 9, 0, true},
		{"mid day", 12, 30, true},
		{"exactly at close", 16, 0, true},
		{"one minute after close", 16, 1, false},
		{"late evening", 22, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hours.Contains(dayAt(tt.hour, tt.min)))
		})
	}
}

func TestBusinessHours_ValidateSlot(t *testing.T) {
	hours := studioHours(t)

	item := func(minutes int) []BookingLineItem {
		return []BookingLineItem{{DurationMinutes: minutes, Quantity: 1}}
	}

	t.Run("slot inside hours is valid", func(t *testing.T) {
		slot := NewTimeSlot(dayAt(9, 0), item(60))
		assert.NoError(t, hours.ValidateSlot(slot))
	})

	t.Run("slot ending exactly at close is valid", func(t *testing.T) {
		slot := NewTimeSlot(dayAt(15, 0), item(60))
		assert.NoError(t, hours.ValidateSlot(slot))
	})

	t.Run("start before open is rejected", func(t *testing.T) {
		slot := NewTimeSlot(dayAt(8, 59), item(30))
		err := hours.ValidateSlot(slot)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrOutsideBusinessHours)
		assert.Contains(t, err.Error(), "must start between")
	})

	t.Run("end past close is rejected", func(t *testing.T) {
		// 15:30 + 31 minutes -> 16:01
		slot := NewTimeSlot(dayAt(15, 30), item(31))
		err := hours.ValidateSlot(slot)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrOutsideBusinessHours)
		assert.Contains(t, err.Error(), "would end after")
	})

	t.Run("long selection early in the day fits", func(t *testing.T) {
		// 150 minutes at 13:00 ends 15:30
		slot := NewTimeSlot(dayAt(13, 0), item(150))
		assert.NoError(t, hours.ValidateSlot(slot))
	})

	t.Run("long selection late in the day does not fit", func(t *testing.T) {
		// 150 minutes at 15:00 ends 17:30
		slot := NewTimeSlot(dayAt(15, 0), item(150))
		err := hours.ValidateSlot(slot)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrOutsideBusinessHours)
	})
}
