package booking

import (
	"context"
	"time"

	"roomhub/internal/domain"
	"roomhub/internal/schedule"

	"github.com/jackc/pgx/v5/pgconn"
)

type Service struct {
	bookings BookingRepository
	rooms    RoomRepository
	orgs     OrganizationRepository
	events   EventPublisher
}

func NewService(bookings BookingRepository, rooms RoomRepository, orgs OrganizationRepository, events EventPublisher) *Service {
	return &Service{
		bookings: bookings,
		rooms:    rooms,
		orgs:     orgs,
		events:   events,
	}
}

// Create books a room for [req.StartTime, req.EndTime) on req.Date. The
// window is validated against the organization's operating hours, then the
// slot is checked against every live booking for that room and date inside
// the insert transaction. The booking lands in pending; confirming it later
// is the real exclusivity gate.
func (s *Service) Create(ctx context.Context, userID int64, req CreateBookingRequest) (*domain.Booking, error) {
	room, err := s.rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}
	if !room.IsActive {
		return nil, ErrRoomInactive
	}

	hours, date, err := s.loadHours(ctx, room.OrganizationID, req.Date)
	if err != nil {
		return nil, err
	}
	if err := schedule.ValidateWindow(hours, date, req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	quote, err := schedule.Price(room.HourlyRate, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	b := &domain.Booking{
		OrganizationID: room.OrganizationID,
		RoomID:         room.ID,
		UserID:         userID,
		Date:           req.Date,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Status:         domain.BookingPending,
		PaymentStatus:  domain.PaymentPending,
		TotalAmount:    quote.TotalAmount,
		Commission:     quote.Commission,
		Notes:          req.Notes,
	}

	guard := func(existing []domain.Booking) error {
		hit, err := schedule.FindConflict(existing, b.RoomID, b.Date, b.StartTime, b.EndTime, 0, schedule.BlockingForCreate)
		if err != nil {
			return err
		}
		if hit != nil {
			return &schedule.Error{Kind: schedule.KindSlotTaken, BookingID: hit.ID}
		}
		return nil
	}

	if err := s.bookings.CreateInSlot(ctx, b, guard); err != nil {
		return nil, mapConstraintError(err)
	}

	s.publish(b)
	return b, nil
}

// Confirm moves a pending booking to confirmed. Only other confirmed
// bookings block; pending rivals stay in contention and get resolved as a
// conflict group, one confirm and the rest cancelled.
func (s *Service) Confirm(ctx context.Context, actorID int64, role domain.UserRole, bookingID int64) (*domain.Booking, error) {
	b, err := s.authorized(ctx, actorID, role, bookingID)
	if err != nil {
		return nil, err
	}

	if err := schedule.Transition(b, domain.BookingConfirmed, ""); err != nil {
		return nil, err
	}

	guard := func(existing []domain.Booking) error {
		hit, err := schedule.FindConflict(existing, b.RoomID, b.Date, b.StartTime, b.EndTime, b.ID, schedule.BlockingForConfirm)
		if err != nil {
			return err
		}
		if hit != nil {
			return &schedule.Error{Kind: schedule.KindSlotTaken, BookingID: hit.ID}
		}
		return nil
	}

	if err := s.bookings.UpdateInSlot(ctx, b, guard); err != nil {
		return nil, mapConstraintError(err)
	}

	s.publish(b)
	return b, nil
}

// Cancel requires a reason; an empty one is defaulted rather than rejected.
func (s *Service) Cancel(ctx context.Context, actorID int64, role domain.UserRole, bookingID int64, reason string) (*domain.Booking, error) {
	b, err := s.authorized(ctx, actorID, role, bookingID)
	if err != nil {
		return nil, err
	}

	if err := schedule.Transition(b, domain.BookingCancelled, reason); err != nil {
		return nil, err
	}
	if err := s.bookings.CancelWithReason(ctx, b.ID, b.CancelReason); err != nil {
		return nil, err
	}

	s.publish(b)
	return s.bookings.GetByID(ctx, b.ID)
}

// Complete and NoShow are administrative transitions; the lifecycle graph
// is the only gate.
func (s *Service) Complete(ctx context.Context, actorID int64, role domain.UserRole, bookingID int64) (*domain.Booking, error) {
	return s.adminTransition(ctx, actorID, role, bookingID, domain.BookingCompleted)
}

func (s *Service) NoShow(ctx context.Context, actorID int64, role domain.UserRole, bookingID int64) (*domain.Booking, error) {
	return s.adminTransition(ctx, actorID, role, bookingID, domain.BookingNoShow)
}

func (s *Service) adminTransition(ctx context.Context, actorID int64, role domain.UserRole, bookingID int64, to domain.BookingStatus) (*domain.Booking, error) {
	b, err := s.authorized(ctx, actorID, role, bookingID)
	if err != nil {
		return nil, err
	}

	if err := schedule.Transition(b, to, ""); err != nil {
		return nil, err
	}
	if err := s.bookings.UpdateStatus(ctx, b.ID, to); err != nil {
		return nil, err
	}

	s.publish(b)
	return b, nil
}

// Reschedule moves a booking to a new date and slot, preserving duration
// when the request leaves the end open. Window and conflict checks all run
// before anything is written; a blocked drag leaves the booking untouched.
// Only confirmed bookings block the target slot, so dragging a pending
// booking onto other pending ones produces a conflict group instead of a
// hard failure. Status never changes on a reschedule.
func (s *Service) Reschedule(ctx context.Context, actorID int64, role domain.UserRole, bookingID int64, req RescheduleRequest) (*domain.Booking, error) {
	b, err := s.authorized(ctx, actorID, role, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status.IsTerminal() {
		return nil, &schedule.Error{Kind: schedule.KindTransitionNotAllowed, From: b.Status, To: b.Status}
	}

	newEnd := req.EndTime
	if newEnd == "" {
		newEnd, err = schedule.PreserveDuration(b.StartTime, b.EndTime, req.StartTime)
		if err != nil {
			return nil, schedule.ErrInvalidRange
		}
	}

	hours, date, err := s.loadHours(ctx, b.OrganizationID, req.Date)
	if err != nil {
		return nil, err
	}
	if err := schedule.ValidateWindow(hours, date, req.StartTime, newEnd); err != nil {
		return nil, err
	}

	b.Date = req.Date
	b.StartTime = req.StartTime
	b.EndTime = newEnd

	guard := func(existing []domain.Booking) error {
		hit, err := schedule.FindConflict(existing, b.RoomID, b.Date, b.StartTime, b.EndTime, b.ID, schedule.BlockingForConfirm)
		if err != nil {
			return err
		}
		if hit != nil {
			return &schedule.Error{Kind: schedule.KindSlotTaken, BookingID: hit.ID}
		}
		return nil
	}

	if err := s.bookings.UpdateInSlot(ctx, b, guard); err != nil {
		return nil, mapConstraintError(err)
	}

	s.publish(b)
	return b, nil
}

// DayAvailability returns the room's open window for a date and every
// non-cancelled booking on it, for the slot picker.
func (s *Service) DayAvailability(ctx context.Context, roomID int64, dateStr string) (*DayAvailability, error) {
	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return nil, err
	}

	hours, date, err := s.loadHours(ctx, room.OrganizationID, dateStr)
	if err != nil {
		return nil, err
	}

	existing, err := s.bookings.ListForRoomDate(ctx, roomID, dateStr)
	if err != nil {
		return nil, err
	}

	avail := &DayAvailability{
		RoomID:   roomID,
		Date:     dateStr,
		Open:     true,
		Bookings: make([]domain.Booking, 0, len(existing)),
	}
	if hours != nil {
		window := schedule.IsOpenOn(hours, date)
		avail.Open = window.Open
		avail.OpenTime = window.OpenTime
		avail.CloseTime = window.CloseTime
	}
	for _, b := range existing {
		if b.Status == domain.BookingCancelled {
			continue
		}
		avail.Bookings = append(avail.Bookings, b)
	}
	return avail, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

func (s *Service) ListForUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error) {
	return s.bookings.ListForUser(ctx, userID, limit, offset)
}

func (s *Service) UpdatePaymentStatus(ctx context.Context, actorID int64, role domain.UserRole, bookingID int64, status domain.PaymentStatus) (*domain.Booking, error) {
	b, err := s.authorized(ctx, actorID, role, bookingID)
	if err != nil {
		return nil, err
	}
	if err := s.bookings.UpdatePaymentStatus(ctx, b.ID, status); err != nil {
		return nil, err
	}
	return s.bookings.GetByID(ctx, b.ID)
}

// authorized loads the booking and checks the actor manages its
// organization. Admins pass unconditionally.
func (s *Service) authorized(ctx context.Context, actorID int64, role domain.UserRole, bookingID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if role == domain.RoleAdmin {
		return b, nil
	}

	org, err := s.orgs.GetByID(ctx, b.OrganizationID)
	if err != nil {
		return nil, err
	}
	if org.OwnerID != actorID {
		return nil, ErrForbidden
	}
	return b, nil
}

func (s *Service) loadHours(ctx context.Context, orgID int64, dateStr string) (schedule.OperatingHours, time.Time, error) {
	date, err := schedule.ParseDate(dateStr)
	if err != nil {
		return nil, time.Time{}, schedule.ErrInvalidRange
	}

	raw, err := s.orgs.GetOperatingHours(ctx, orgID)
	if err != nil {
		return nil, time.Time{}, err
	}
	hours, err := schedule.ParseOperatingHours(raw)
	if err != nil {
		// unreadable hours data falls back to permissive, not to a 500
		return nil, date, nil
	}
	return hours, date, nil
}

func (s *Service) publish(b *domain.Booking) {
	if s.events != nil {
		s.events.PublishBookingChanged(b.OrganizationID, b)
	}
}

// mapConstraintError turns the partial exclusion constraint on confirmed
// bookings into the same typed failure the in-transaction check produces.
func mapConstraintError(err error) error {
	if pgErr, ok := err.(*pgconn.PgError); ok {
		if pgErr.Code == "23P01" || (pgErr.Code == "23505" && pgErr.ConstraintName == "idx_no_confirmed_overlap") {
			return &schedule.Error{Kind: schedule.KindSlotTaken}
		}
	}
	return err
}
