package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid morning", "09:00", false},
		{"valid midnight", "00:00", false},
		{"valid end of day", "23:59", false},
		{"missing leading zero", "9:00", true},
		{"out of range hour", "24:00", true},
		{"out of range minute", "10:60", true},
		{"with seconds", "10:00:00", true},
		{"garbage", "abc", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	tests := []struct {
		input TimeString
		want  int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"10:30", 630},
		{"23:59", 1439},
	}

	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			got, err := tt.input.Minutes()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	t.Run("within day", func(t *testing.T) {
		got, err := TimeString("10:30").AddMinutes(45)
		require.NoError(t, err)
		assert.Equal(t, TimeString("11:15"), got)
	})

	t.Run("negative shift", func(t *testing.T) {
		got, err := TimeString("10:30").AddMinutes(-60)
		require.NoError(t, err)
		assert.Equal(t, TimeString("09:30"), got)
	})

	t.Run("crosses midnight", func(t *testing.T) {
		_, err := TimeString("23:59").AddMinutes(10)
		assert.Error(t, err)
	})

	t.Run("before start of day", func(t *testing.T) {
		_, err := TimeString("00:10").AddMinutes(-20)
		assert.Error(t, err)
	})
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:30").IsAfter("10:00"))
	assert.False(t, TimeString("10:00").IsAfter("10:00"))
}

func TestTimeString_Scan(t *testing.T) {
	tests := []struct {
		name string
		src  interface{}
		want TimeString
	}{
		{"nil", nil, ""},
		{"time.Time", time.Date(2025, 10, 20, 14, 30, 0, 0, time.UTC), "14:30"},
		{"string with seconds", "14:30:00", "14:30"},
		{"plain string", "14:30", "14:30"},
		{"bytes", []byte("08:15:59"), "08:15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts TimeString
			require.NoError(t, ts.Scan(tt.src))
			assert.Equal(t, tt.want, ts)
		})
	}

	t.Run("unsupported type", func(t *testing.T) {
		var ts TimeString
		assert.Error(t, ts.Scan(42))
	})
}

func TestTimeString_Value(t *testing.T) {
	t.Run("set", func(t *testing.T) {
		v, err := TimeString("10:00").Value()
		require.NoError(t, err)
		assert.Equal(t, "10:00", v)
	})

	t.Run("zero maps to NULL", func(t *testing.T) {
		v, err := TimeString("").Value()
		require.NoError(t, err)
		assert.Nil(t, v)
	})
}
