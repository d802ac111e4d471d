package schedule

import (
	"sort"

	"roomhub/internal/domain"
)

// Blocking status sets. Creation is blocked by any live booking; confirming
// is blocked only by other confirmed bookings, so pending rivals stay
// resolvable as a conflict group instead of hard-failing.
var (
	BlockingForCreate  = []domain.BookingStatus{domain.BookingPending, domain.BookingConfirmed}
	BlockingForConfirm = []domain.BookingStatus{domain.BookingConfirmed}
)

// Overlaps tests two half-open [s1,e1) and [s2,e2) intervals in minutes.
// Touching endpoints do not overlap.
func Overlaps(s1, e1, s2, e2 int) bool {
	return s1 < e2 && e1 > s2
}

func statusIn(s domain.BookingStatus, set []domain.BookingStatus) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

// FindConflict returns the first booking among existing that occupies the
// candidate [start, end) window on the same room and date with a status in
// blocking. excludeID ignores the booking being moved so a reschedule never
// conflicts with itself. Returns nil when the slot is free.
func FindConflict(existing []domain.Booking, roomID int64, date, start, end string, excludeID int64, blocking []domain.BookingStatus) (*domain.Booking, error) {
	s, err := ParseClock(start)
	if err != nil {
		return nil, ErrInvalidRange
	}
	e, err := ParseClock(end)
	if err != nil {
		return nil, ErrInvalidRange
	}

	for i := range existing {
		b := &existing[i]
		if b.RoomID != roomID || b.Date != date || b.ID == excludeID {
			continue
		}
		if !statusIn(b.Status, blocking) {
			continue
		}
		bs, err := ParseClock(b.StartTime)
		if err != nil {
			continue
		}
		be, err := ParseClock(b.EndTime)
		if err != nil {
			continue
		}
		if Overlaps(s, e, bs, be) {
			return b, nil
		}
	}
	return nil, nil
}

// ConflictGroup is a set of two or more live bookings on one room and date
// whose intervals overlap transitively. Derived on read, never persisted;
// resolving one means confirming a single member and cancelling the rest.
type ConflictGroup struct {
	RoomID   int64            `json:"room_id"`
	Date     string           `json:"date"`
	Bookings []domain.Booking `json:"bookings"`
}

// GroupConflicts partitions bookings into connected components under the
// overlap relation, per room and date, keeping only pending/confirmed
// members and only components of size two or more. Transitivity matters: if
// A overlaps B and B overlaps D, all three belong to one group even when A
// and D never touch.
func GroupConflicts(bookings []domain.Booking) []ConflictGroup {
	type bucketKey struct {
		roomID int64
		date   string
	}
	type member struct {
		booking domain.Booking
		start   int
		end     int
	}

	buckets := make(map[bucketKey][]member)
	for _, b := range bookings {
		if !statusIn(b.Status, BlockingForCreate) {
			continue
		}
		s, err := ParseClock(b.StartTime)
		if err != nil {
			continue
		}
		e, err := ParseClock(b.EndTime)
		if err != nil {
			continue
		}
		k := bucketKey{b.RoomID, b.Date}
		buckets[k] = append(buckets[k], member{b, s, e})
	}

	var groups []ConflictGroup
	for k, members := range buckets {
		sort.Slice(members, func(i, j int) bool {
			if members[i].start != members[j].start {
				return members[i].start < members[j].start
			}
			return members[i].booking.ID < members[j].booking.ID
		})

		// Sorted by start, a component ends exactly where a gap appears
		// before the running max end.
		var current []domain.Booking
		maxEnd := 0
		flush := func() {
			if len(current) >= 2 {
				groups = append(groups, ConflictGroup{RoomID: k.roomID, Date: k.date, Bookings: current})
			}
			current = nil
		}
		for _, m := range members {
			if len(current) > 0 && m.start >= maxEnd {
				flush()
			}
			current = append(current, m.booking)
			if m.end > maxEnd || len(current) == 1 {
				maxEnd = m.end
			}
		}
		flush()
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Date != groups[j].Date {
			return groups[i].Date < groups[j].Date
		}
		if groups[i].RoomID != groups[j].RoomID {
			return groups[i].RoomID < groups[j].RoomID
		}
		return groups[i].Bookings[0].ID < groups[j].Bookings[0].ID
	})
	return groups
}
