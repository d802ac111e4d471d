package schedule

import "roomhub/internal/domain"

// DefaultCancelReason is applied when a cancellation comes in without one;
// a cancelled booking always carries a reason.
const DefaultCancelReason = "cancelled by owner"

// transitions is the full status graph. Terminal states have no outgoing
// edges. Confirming additionally requires a conflict recheck against other
// confirmed bookings; that gate lives with the callers because it needs the
// room's other bookings.
var transitions = map[domain.BookingStatus][]domain.BookingStatus{
	domain.BookingPending: {
		domain.BookingConfirmed,
		domain.BookingCancelled,
		domain.BookingCompleted,
		domain.BookingNoShow,
	},
	domain.BookingConfirmed: {
		domain.BookingCancelled,
		domain.BookingCompleted,
		domain.BookingNoShow,
	},
}

// CanTransition reports whether the status graph allows from -> to.
func CanTransition(from, to domain.BookingStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition applies a status change in place, enforcing the graph and the
// cancel-reason rule. It never touches date or times; callers that move a
// booking re-run window and conflict checks separately.
func Transition(b *domain.Booking, to domain.BookingStatus, reason string) error {
	if !CanTransition(b.Status, to) {
		return &Error{Kind: KindTransitionNotAllowed, From: b.Status, To: to}
	}
	if to == domain.BookingCancelled {
		if reason == "" {
			reason = DefaultCancelReason
		}
		b.CancelReason = reason
	}
	b.Status = to
	return nil
}
