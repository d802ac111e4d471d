package schedule

import (
	"fmt"
	"time"
)

const (
	clockLayout = "15:04"
	dateLayout  = "2006-01-02"
)

// ParseClock converts a wall-clock "HH:MM" string to minutes since midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock is the inverse of ParseClock.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ClockHours converts minutes since midnight to decimal hours (90 -> 1.5).
func ClockHours(minutes int) float64 {
	return float64(minutes) / 60.0
}

// ParseDate parses a bare "2006-01-02" calendar day. Bookings carry no
// timezone; the day is interpreted as a local date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// FormatDate is the inverse of ParseDate.
func FormatDate(d time.Time) string {
	return d.Format(dateLayout)
}

// WeekdayKey maps a weekday to the canonical English key used by operating
// hours storage. The explicit table guards against a key mismatch silently
// treating a day as always open.
func WeekdayKey(w time.Weekday) string {
	switch w {
	case time.Monday:
		return "monday"
	case time.Tuesday:
		return "tuesday"
	case time.Wednesday:
		return "wednesday"
	case time.Thursday:
		return "thursday"
	case time.Friday:
		return "friday"
	case time.Saturday:
		return "saturday"
	default:
		return "sunday"
	}
}

// weekdayLabelsFR maps storage keys to the French labels rendered by the
// dashboard. Display-only; never used for lookups into hours data.
var weekdayLabelsFR = map[string]string{
	"monday":    "Lundi",
	"tuesday":   "Mardi",
	"wednesday": "Mercredi",
	"thursday":  "Jeudi",
	"friday":    "Vendredi",
	"saturday":  "Samedi",
	"sunday":    "Dimanche",
}

// WeekdayLabelFR returns the French display label for a storage key, or the
// key itself when unknown.
func WeekdayLabelFR(key string) string {
	if label, ok := weekdayLabelsFR[key]; ok {
		return label
	}
	return key
}

// WeekRange returns the Monday and Sunday of the week containing d.
func WeekRange(d time.Time) (time.Time, time.Time) {
	offset := (int(d.Weekday()) + 6) % 7 // Monday = 0
	start := d.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 6)
}

// PreserveDuration shifts a [start, end) window so it begins at newStart,
// keeping the original duration. Dragging moves the whole interval, not a
// single edge.
func PreserveDuration(start, end, newStart string) (string, error) {
	s, err := ParseClock(start)
	if err != nil {
		return "", err
	}
	e, err := ParseClock(end)
	if err != nil {
		return "", err
	}
	ns, err := ParseClock(newStart)
	if err != nil {
		return "", err
	}
	return FormatClock(ns + (e - s)), nil
}
