package booking

import (
	"context"
	"encoding/json"

	"roomhub/internal/domain"
)

// BookingRepository is the persistence surface the service needs. The
// *InSlot methods run their guard against the room/date bucket inside one
// transaction; see internal/repository.
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListForRoomDate(ctx context.Context, roomID int64, date string) ([]domain.Booking, error)
	ListForUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error)
	CreateInSlot(ctx context.Context, b *domain.Booking, guard func(existing []domain.Booking) error) error
	UpdateInSlot(ctx context.Context, b *domain.Booking, guard func(existing []domain.Booking) error) error
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	CancelWithReason(ctx context.Context, id int64, reason string) error
	UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error
}

type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

type OrganizationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Organization, error)
	GetOperatingHours(ctx context.Context, orgID int64) (json.RawMessage, error)
}

// EventPublisher pushes booking changes to connected dashboards so the
// weekly timetable refreshes after a drag or a status change. Best-effort;
// failures are never surfaced to the request.
type EventPublisher interface {
	PublishBookingChanged(orgID int64, b *domain.Booking)
}
