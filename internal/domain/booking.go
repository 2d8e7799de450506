package domain

import (
	"time"

	"github.com/herlindaapr/beautybook-service/pkg/types"
)

// Booking represents an appointment for one or more beauty services
type Booking struct {
	ID          int64
	UserID      int64
	BookingDate time.Time
	StartTime   types.TimeString
	LineItems   []BookingLineItem
	Status      BookingStatus

	// Denormalized data for history
	CustomerName string
	Notes        *string

	HandledByAdminID   *int64
	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BookingLineItem one (service, quantity) entry of a booking
// Service name, price and duration are denormalized at booking time
type BookingLineItem struct {
	ID              int64
	BookingID       int64
	ServiceID       int64
	ServiceName     string
	ServicePrice    int64
	DurationMinutes int
	Quantity        int
}

// DurationMinutes total duration of the booking in minutes
func (b *Booking) DurationMinutes() int {
	total := 0
	for _, item := range b.LineItems {
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		total += item.DurationMinutes * qty
	}
	return total
}

// TotalPrice total price of all line items
func (b *Booking) TotalPrice() int64 {
	var total int64
	for _, item := range b.LineItems {
		qty := int64(item.Quantity)
		if qty < 1 {
			qty = 1
		}
		total += item.ServicePrice * qty
	}
	return total
}

// Slot returns the time slot this booking occupies on its date
func (b *Booking) Slot() (TimeSlot, error) {
	startMinutes, err := b.StartTime.Minutes()
	if err != nil {
		return TimeSlot{}, err
	}

	start := time.Date(
		b.BookingDate.Year(), b.BookingDate.Month(), b.BookingDate.Day(),
		startMinutes/60, startMinutes%60, 0, 0, b.BookingDate.Location(),
	)

	duration := b.DurationMinutes()
	return TimeSlot{
		Start:           start,
		End:             start.Add(time.Duration(duration) * time.Minute),
		DurationMinutes: duration,
	}, nil
}

// IsActive returns true if the booking still occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status.CanTransitionTo(StatusCancelled) == nil
}

// CanBeRescheduled returns true if the booking date/time can still change
func (b *Booking) CanBeRescheduled() bool {
	return !b.Status.IsTerminal()
}

// CanEditServices returns true if the service line items can still change.
// Only pending bookings may swap services; a confirmed booking keeps its
// line items and may only move in time.
func (b *Booking) CanEditServices() bool {
	return b.Status == StatusPending
}

// BookingsFilter filter for listing bookings
type BookingsFilter struct {
	StartDate       *time.Time     // Period start (optional)
	EndDate         *time.Time     // Period end (optional)
	Status          *BookingStatus // Filter by status (optional)
	IncludeInactive bool           // Include cancelled bookings
}
