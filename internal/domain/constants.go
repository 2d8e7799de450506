package domain

// Default business hours configuration
const (
	DefaultOpenTime      = "09:00"
	DefaultCloseTime     = "16:00"
	DefaultBufferMinutes = 30

	// SlotStepMinutes is the grid step for candidate start times
	// offered by the availability endpoint.
	SlotStepMinutes = 30
)

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 hours
	MaxServiceNameLength      = 100
	MaxDescriptionLength      = 1000
	MaxNotesLength            = 500
	MaxCancellationReasonLen  = 500
	MaxLineItemQuantity       = 10
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses statuses excluded from conflict checks and availability
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// ActiveStatuses statuses that occupy a time slot
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
