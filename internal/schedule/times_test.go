package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	m, err := ParseClock("09:30")
	assert.NoError(t, err)
	assert.Equal(t, 570, m)

	m, err = ParseClock("00:00")
	assert.NoError(t, err)
	assert.Equal(t, 0, m)

	_, err = ParseClock("25:00")
	assert.Error(t, err)

	_, err = ParseClock("9h30")
	assert.Error(t, err)
}

func TestFormatClock_RoundTrip(t *testing.T) {
	assert.Equal(t, "09:30", FormatClock(570))
	assert.Equal(t, "00:05", FormatClock(5))
	assert.Equal(t, "23:59", FormatClock(23*60+59))
}

func TestClockHours(t *testing.T) {
	assert.Equal(t, 1.5, ClockHours(90))
	assert.Equal(t, 0.0, ClockHours(0))
}

// Every weekday must map to its storage key; a silent mismatch would make
// the availability check treat a day as always open or always closed.
func TestWeekdayKey_AllSevenDays(t *testing.T) {
	expected := map[time.Weekday]string{
		time.Monday:    "monday",
		time.Tuesday:   "tuesday",
		time.Wednesday: "wednesday",
		time.Thursday:  "thursday",
		time.Friday:    "friday",
		time.Saturday:  "saturday",
		time.Sunday:    "sunday",
	}
	for weekday, key := range expected {
		assert.Equal(t, key, WeekdayKey(weekday))
	}
}

func TestWeekdayLabelFR_AllSevenDays(t *testing.T) {
	expected := map[string]string{
		"monday":    "Lundi",
		"tuesday":   "Mardi",
		"wednesday": "Mercredi",
		"thursday":  "Jeudi",
		"friday":    "Vendredi",
		"saturday":  "Samedi",
		"sunday":    "Dimanche",
	}
	for key, label := range expected {
		assert.Equal(t, label, WeekdayLabelFR(key))
	}
	// unknown keys fall through untouched
	assert.Equal(t, "someday", WeekdayLabelFR("someday"))
}

func TestWeekRange(t *testing.T) {
	// 2026-09-02 is a Wednesday
	wed, err := ParseDate("2026-09-02")
	assert.NoError(t, err)

	start, end := WeekRange(wed)
	assert.Equal(t, "2026-08-31", FormatDate(start))
	assert.Equal(t, "2026-09-06", FormatDate(end))

	// a Monday is its own week start
	mon, _ := ParseDate("2026-08-31")
	start, end = WeekRange(mon)
	assert.Equal(t, "2026-08-31", FormatDate(start))
	assert.Equal(t, "2026-09-06", FormatDate(end))

	// a Sunday closes the week it started
	sun, _ := ParseDate("2026-09-06")
	start, _ = WeekRange(sun)
	assert.Equal(t, "2026-08-31", FormatDate(start))
}

func TestPreserveDuration(t *testing.T) {
	// dragging moves the whole interval
	end, err := PreserveDuration("09:00", "10:30", "14:00")
	assert.NoError(t, err)
	assert.Equal(t, "15:30", end)

	// dropping onto the same start is a no-op
	end, err = PreserveDuration("09:00", "10:30", "09:00")
	assert.NoError(t, err)
	assert.Equal(t, "10:30", end)

	_, err = PreserveDuration("bad", "10:30", "14:00")
	assert.Error(t, err)
}
