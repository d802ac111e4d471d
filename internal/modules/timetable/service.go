package timetable

import (
	"context"
	"encoding/json"
	"errors"

	"roomhub/internal/domain"
	"roomhub/internal/schedule"
)

var ErrForbidden = errors.New("forbidden")

type BookingRepository interface {
	ListForOrganizationRange(ctx context.Context, orgID int64, from, to string) ([]domain.Booking, error)
}

type OrganizationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Organization, error)
	GetOperatingHours(ctx context.Context, orgID int64) (json.RawMessage, error)
}

type Service struct {
	bookings BookingRepository
	orgs     OrganizationRepository
}

func NewService(bookings BookingRepository, orgs OrganizationRepository) *Service {
	return &Service{bookings: bookings, orgs: orgs}
}

// Authorize checks that the actor may read the organization's timetable:
// its owner, or an admin. The grid exposes client bookings, so it is never
// served across tenants.
func (s *Service) Authorize(ctx context.Context, actorID int64, role domain.UserRole, orgID int64) error {
	if role == domain.RoleAdmin {
		return nil
	}
	org, err := s.orgs.GetByID(ctx, orgID)
	if err != nil {
		return err
	}
	if org.OwnerID != actorID {
		return ErrForbidden
	}
	return nil
}

// WeekView builds the owner's weekly grid for the week containing date:
// the hour range sizing the grid, one column per day carrying that day's
// open window and bookings, and the conflict groups needing resolution.
// Cancelled bookings drop out of the view.
func (s *Service) WeekView(ctx context.Context, actorID int64, role domain.UserRole, orgID int64, dateStr string) (*WeekView, error) {
	if err := s.Authorize(ctx, actorID, role, orgID); err != nil {
		return nil, err
	}

	date, err := schedule.ParseDate(dateStr)
	if err != nil {
		return nil, schedule.ErrInvalidRange
	}

	raw, err := s.orgs.GetOperatingHours(ctx, orgID)
	if err != nil {
		return nil, err
	}
	hours, err := schedule.ParseOperatingHours(raw)
	if err != nil {
		hours = nil
	}

	weekStart, weekEnd := schedule.WeekRange(date)
	from, to := schedule.FormatDate(weekStart), schedule.FormatDate(weekEnd)

	bookings, err := s.bookings.ListForOrganizationRange(ctx, orgID, from, to)
	if err != nil {
		return nil, err
	}

	startHour, endHour := schedule.TimetableRange(hours)
	view := &WeekView{
		OrganizationID: orgID,
		WeekStart:      from,
		WeekEnd:        to,
		StartHour:      startHour,
		EndHour:        endHour,
		Days:           make([]DayColumn, 0, 7),
	}

	byDate := make(map[string][]domain.Booking)
	for _, b := range bookings {
		if b.Status == domain.BookingCancelled {
			continue
		}
		byDate[b.Date] = append(byDate[b.Date], b)
	}

	for i := 0; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i)
		key := schedule.WeekdayKey(day.Weekday())
		window := schedule.IsOpenOn(hours, day)

		col := DayColumn{
			Date:     schedule.FormatDate(day),
			Weekday:  key,
			Label:    schedule.WeekdayLabelFR(key),
			Open:     window.Open,
			Bookings: byDate[schedule.FormatDate(day)],
		}
		if window.Open {
			col.OpenTime = window.OpenTime
			col.CloseTime = window.CloseTime
		}
		if col.Bookings == nil {
			col.Bookings = []domain.Booking{}
		}
		view.Days = append(view.Days, col)
	}

	view.Conflicts = schedule.GroupConflicts(bookings)
	if view.Conflicts == nil {
		view.Conflicts = []schedule.ConflictGroup{}
	}
	return view, nil
}

// Conflicts lists the unresolved conflict groups for the week containing
// date, for the owner's resolution screen.
func (s *Service) Conflicts(ctx context.Context, actorID int64, role domain.UserRole, orgID int64, dateStr string) ([]schedule.ConflictGroup, error) {
	if err := s.Authorize(ctx, actorID, role, orgID); err != nil {
		return nil, err
	}

	date, err := schedule.ParseDate(dateStr)
	if err != nil {
		return nil, schedule.ErrInvalidRange
	}

	weekStart, weekEnd := schedule.WeekRange(date)
	bookings, err := s.bookings.ListForOrganizationRange(ctx, orgID, schedule.FormatDate(weekStart), schedule.FormatDate(weekEnd))
	if err != nil {
		return nil, err
	}

	groups := schedule.GroupConflicts(bookings)
	if groups == nil {
		groups = []schedule.ConflictGroup{}
	}
	return groups, nil
}
