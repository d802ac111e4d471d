package schedule

import (
	"encoding/json"
	"time"
)

// DayHours is one weekday entry of an organization's operating hours.
// Invariant (enforced on save by the catalog module): when Closed is false,
// Open and Close are both present and Open < Close.
type DayHours struct {
	Open   string `json:"open,omitempty"`
	Close  string `json:"close,omitempty"`
	Closed bool   `json:"closed,omitempty"`
}

// OperatingHours maps canonical English weekday keys to that day's hours.
type OperatingHours map[string]DayHours

// ParseOperatingHours decodes the raw JSON document stored on the
// organization. A nil or empty document yields nil hours, which every
// consumer treats as "no hours data" (permissive fallback).
func ParseOperatingHours(raw json.RawMessage) (OperatingHours, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var h OperatingHours
	if err := json.Unmarshal(raw, &h); err != nil {
		return nil, err
	}
	return h, nil
}

// DayWindow is the result of asking whether a room is open on a given date.
type DayWindow struct {
	Open      bool
	OpenTime  string
	CloseTime string
}

// IsOpenOn maps the date to its weekday key and returns that day's window.
// A missing entry counts as closed; never treat an absent key as always
// open.
func IsOpenOn(hours OperatingHours, date time.Time) DayWindow {
	day, ok := hours[WeekdayKey(date.Weekday())]
	if !ok || day.Closed || day.Open == "" || day.Close == "" {
		return DayWindow{}
	}
	return DayWindow{Open: true, OpenTime: day.Open, CloseTime: day.Close}
}

// TimetableRange scans the week and returns the earliest open hour and the
// latest close hour (integer hour truncation, close rounded up when it has
// minutes) so the rendered grid covers every open window. Falls back to
// 8-19 when hours data is empty and 8-21 when every day is closed or
// unparsable, so the grid never collapses to zero width.
func TimetableRange(hours OperatingHours) (startHour, endHour int) {
	if len(hours) == 0 {
		return 8, 19
	}

	startHour, endHour = 24, 0
	found := false
	for _, day := range hours {
		if day.Closed || day.Open == "" || day.Close == "" {
			continue
		}
		open, err := ParseClock(day.Open)
		if err != nil {
			continue
		}
		close, err := ParseClock(day.Close)
		if err != nil {
			continue
		}
		found = true
		if open/60 < startHour {
			startHour = open / 60
		}
		closeHour := close / 60
		if close%60 != 0 {
			closeHour++
		}
		if closeHour > endHour {
			endHour = closeHour
		}
	}
	if !found {
		return 8, 21
	}
	return startHour, endHour
}

// ValidateWindow is the single gate every booking creation and every
// reschedule passes before touching persisted state. It checks, in order:
// the interval itself (InvalidRange), the day (ClosedDay) and the bounds
// (OutOfHours). Absent hours data skips the day and bounds checks.
func ValidateWindow(hours OperatingHours, date time.Time, start, end string) error {
	s, err := ParseClock(start)
	if err != nil {
		return ErrInvalidRange
	}
	e, err := ParseClock(end)
	if err != nil {
		return ErrInvalidRange
	}
	if e <= s {
		return ErrInvalidRange
	}

	if len(hours) == 0 {
		return nil
	}

	window := IsOpenOn(hours, date)
	if !window.Open {
		return ErrClosedDay
	}

	open, err := ParseClock(window.OpenTime)
	if err != nil {
		return nil
	}
	close, err := ParseClock(window.CloseTime)
	if err != nil {
		return nil
	}
	if s < open || e > close {
		return &Error{Kind: KindOutOfHours, Open: window.OpenTime, Close: window.CloseTime}
	}
	return nil
}
