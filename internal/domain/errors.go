package domain

import "errors"

var (
	// ErrOutsideBusinessHours is returned when a slot starts or ends
	// outside the configured business hours. Always wrapped with a
	// display-ready message identifying the violated bound.
	ErrOutsideBusinessHours = errors.New("outside business hours")

	// ErrInvalidTransition is returned for illegal status changes and
	// edit attempts on bookings in a terminal status
	ErrInvalidTransition = errors.New("invalid status transition")
)
