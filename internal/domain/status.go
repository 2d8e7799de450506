package domain

import (
	"fmt"
	"sort"
	"strings"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// allowedTransitions the status workflow: pending and confirmed are
// non-terminal, completed and cancelled have no outgoing edges
var allowedTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCompleted, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

// statusAliases maps free-form upstream status strings onto the four
// canonical statuses. Lookup is case-insensitive; anything unknown
// defaults to pending so a booking list always stays renderable.
var statusAliases = map[string]BookingStatus{
	"pending":    StatusPending,
	"confirmed":  StatusConfirmed,
	"completed":  StatusCompleted,
	"cancelled":  StatusCancelled,
	"canceled":   StatusCancelled, // US spelling
	"processing": StatusPending,
	"waiting":    StatusPending,
	"active":     StatusConfirmed,
	"approved":   StatusConfirmed,
	"scheduled":  StatusConfirmed,
	"finished":   StatusCompleted,
	"done":       StatusCompleted,
	"rejected":   StatusCancelled,
}

// ParseStatus normalizes a raw status string into a BookingStatus.
// Total function: never fails, unrecognized values map to pending.
func ParseStatus(raw string) BookingStatus {
	if status, ok := statusAliases[strings.ToLower(raw)]; ok {
		return status
	}
	return StatusPending
}

// Spellings returns every raw spelling that normalizes to s, sorted.
// For SQL filters on the raw status column, where legacy rows may
// carry pre-normalization values.
func (s BookingStatus) Spellings() []string {
	spellings := make([]string, 0, 4)
	for raw, status := range statusAliases {
		if status == s {
			spellings = append(spellings, raw)
		}
	}
	sort.Strings(spellings)
	return spellings
}

// IsValid returns true if s is one of the four canonical statuses
func (s BookingStatus) IsValid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

// IsTerminal returns true if no further transitions are allowed
func (s BookingStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo checks whether the transition s -> target is allowed.
// Returns ErrInvalidTransition (wrapped with a display-ready message)
// for terminal sources, self-transitions and unreachable targets.
func (s BookingStatus) CanTransitionTo(target BookingStatus) error {
	if !target.IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, string(target))
	}

	if s.IsTerminal() {
		return fmt.Errorf("%w: booking is already %s", ErrInvalidTransition, s)
	}

	for _, allowed := range allowedTransitions[s] {
		if allowed == target {
			return nil
		}
	}

	return fmt.Errorf("%w: cannot change status from %s to %s", ErrInvalidTransition, s, target)
}

// StatusBadge display attributes for a status, rendered wherever a
// booking badge appears. Single source of truth for color and label.
type StatusBadge struct {
	DisplayName string
	Color       string
}

var statusBadges = map[BookingStatus]StatusBadge{
	StatusPending:   {DisplayName: "Pending", Color: "red"},
	StatusConfirmed: {DisplayName: "Confirmed", Color: "blue"},
	StatusCompleted: {DisplayName: "Completed", Color: "green"},
	StatusCancelled: {DisplayName: "Cancelled", Color: "gray"},
}

// Badge returns the display attributes for the status.
// Unknown statuses get the cancelled-style gray badge.
func (s BookingStatus) Badge() StatusBadge {
	if badge, ok := statusBadges[s]; ok {
		return badge
	}
	return StatusBadge{DisplayName: string(s), Color: "gray"}
}
