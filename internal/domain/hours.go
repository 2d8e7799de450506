package domain

import (
	"fmt"
	"time"

	"github.com/herlindaapr/beautybook-service/pkg/types"
)

// BusinessHours the daily window during which appointments may start and
// must finish, plus the required buffer between appointments.
// Static configuration, fixed at process start.
type BusinessHours struct {
	OpenTime      types.TimeString
	CloseTime     types.TimeString
	BufferMinutes int
}

// DefaultBusinessHours returns the built-in studio schedule
func DefaultBusinessHours() BusinessHours {
	return BusinessHours{
		OpenTime:      types.TimeString(DefaultOpenTime),
		CloseTime:     types.TimeString(DefaultCloseTime),
		BufferMinutes: DefaultBufferMinutes,
	}
}

// Contains reports whether the clock time of instant lies within the
// business hours. Closed interval on minute-of-day, date ignored.
func (h BusinessHours) Contains(instant time.Time) bool {
	minute := instant.Hour()*60 + instant.Minute()

	open, err := h.OpenTime.Minutes()
	if err != nil {
		return false
	}
	closing, err := h.CloseTime.Minutes()
	if err != nil {
		return false
	}

	return minute >= open && minute <= closing
}

// ValidateSlot requires both the start and the end of the slot to fall
// within business hours. The returned error wraps ErrOutsideBusinessHours
// with a message identifying which bound was violated.
func (h BusinessHours) ValidateSlot(slot TimeSlot) error {
	if !h.Contains(slot.Start) {
		return fmt.Errorf("%w: appointments must start between %s and %s",
			ErrOutsideBusinessHours, h.OpenTime, h.CloseTime)
	}

	if !h.Contains(slot.End) {
		return fmt.Errorf("%w: appointment would end after %s - pick an earlier time or fewer services",
			ErrOutsideBusinessHours, h.CloseTime)
	}

	return nil
}
