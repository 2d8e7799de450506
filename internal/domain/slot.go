package domain

import "time"

// TimeSlot a contiguous interval of time occupied by one booking's services.
// Derived value: recomputed on every validation, never persisted.
type TimeSlot struct {
	Start           time.Time
	End             time.Time
	DurationMinutes int
}

// NewTimeSlot computes the slot for a selection of services starting at
// start. Duration is the sum of all line item durations (times quantity);
// an empty selection yields a zero-duration slot, callers are expected to
// reject empty selections before computing the slot.
func NewTimeSlot(start time.Time, items []BookingLineItem) TimeSlot {
	duration := 0
	for _, item := range items {
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		duration += item.DurationMinutes * qty
	}

	return TimeSlot{
		Start:           start,
		End:             start.Add(time.Duration(duration) * time.Minute),
		DurationMinutes: duration,
	}
}

// Overlaps reports whether two slots conflict given a required buffer
// between appointments. Both slots are expanded by bufferMinutes on each
// side, then tested for standard half-open interval overlap with strict
// comparison: slots that merely touch never conflict with a zero buffer.
func (s TimeSlot) Overlaps(other TimeSlot, bufferMinutes int) bool {
	buffer := time.Duration(bufferMinutes) * time.Minute

	aStart := s.Start.Add(-buffer)
	aEnd := s.End.Add(buffer)
	bStart := other.Start.Add(-buffer)
	bEnd := other.End.Add(buffer)

	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
