package schedule

import (
	"fmt"

	"roomhub/internal/domain"
)

// Kind identifies a recoverable scheduling failure. All kinds are user-facing
// validation outcomes, never request-fatal.
type Kind string

const (
	KindInvalidRange         Kind = "invalid_range"
	KindClosedDay            Kind = "closed_day"
	KindOutOfHours           Kind = "out_of_hours"
	KindSlotTaken            Kind = "slot_taken"
	KindInvalidDuration      Kind = "invalid_duration"
	KindTransitionNotAllowed Kind = "transition_not_allowed"
)

// Error is a typed scheduling failure. Besides the kind it carries whatever
// the UI needs to render a specific message: the offending booking for
// SlotTaken, the open/close bounds for OutOfHours, the attempted states for
// TransitionNotAllowed.
type Error struct {
	Kind      Kind
	BookingID int64
	Open      string
	Close     string
	From      domain.BookingStatus
	To        domain.BookingStatus
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindInvalidRange:
		return "end time must be after start time"
	case KindClosedDay:
		return "organization is closed on this day"
	case KindOutOfHours:
		return fmt.Sprintf("must be between %s and %s", e.Open, e.Close)
	case KindSlotTaken:
		return fmt.Sprintf("slot overlaps booking %d", e.BookingID)
	case KindInvalidDuration:
		return "duration must be positive"
	case KindTransitionNotAllowed:
		return fmt.Sprintf("cannot change status from %s to %s", e.From, e.To)
	}
	return string(e.Kind)
}

// Is matches on kind so sentinels below work with errors.Is regardless of
// the detail fields.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrInvalidRange         = &Error{Kind: KindInvalidRange}
	ErrClosedDay            = &Error{Kind: KindClosedDay}
	ErrOutOfHours           = &Error{Kind: KindOutOfHours}
	ErrSlotTaken            = &Error{Kind: KindSlotTaken}
	ErrInvalidDuration      = &Error{Kind: KindInvalidDuration}
	ErrTransitionNotAllowed = &Error{Kind: KindTransitionNotAllowed}
)
