package timetable

import (
	"roomhub/internal/domain"
	"roomhub/internal/schedule"
)

// WeekView is everything the owner dashboard needs to render one week of
// the drag-and-drop timetable.
type WeekView struct {
	OrganizationID int64                    `json:"organization_id"`
	WeekStart      string                   `json:"week_start"`
	WeekEnd        string                   `json:"week_end"`
	StartHour      int                      `json:"start_hour"`
	EndHour        int                      `json:"end_hour"`
	Days           []DayColumn              `json:"days"`
	Conflicts      []schedule.ConflictGroup `json:"conflicts"`
}

type DayColumn struct {
	Date      string           `json:"date"`
	Weekday   string           `json:"weekday"`
	Label     string           `json:"label"`
	Open      bool             `json:"open"`
	OpenTime  string           `json:"open_time,omitempty"`
	CloseTime string           `json:"close_time,omitempty"`
	Bookings  []domain.Booking `json:"bookings"`
}

// BookingEvent is what the hub pushes to connected dashboards.
type BookingEvent struct {
	Type    string          `json:"type"`
	Booking *domain.Booking `json:"booking"`
}
