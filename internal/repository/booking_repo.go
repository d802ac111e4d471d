package repository

import (
	"context"
	"time"

	"roomhub/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID             int64      `gorm:"column:id;primaryKey"`
	OrganizationID int64      `gorm:"column:organization_id;index"`
	RoomID         int64      `gorm:"column:room_id;index:idx_room_date"`
	UserID         int64      `gorm:"column:user_id;index"`
	Date           string     `gorm:"column:date;index:idx_room_date"`
	StartTime      string     `gorm:"column:start_time"`
	EndTime        string     `gorm:"column:end_time"`
	Status         string     `gorm:"column:status;index"`
	PaymentStatus  string     `gorm:"column:payment_status"`
	TotalAmount    float64    `gorm:"column:total_amount"`
	Commission     float64    `gorm:"column:commission"`
	Notes          *string    `gorm:"column:notes"`
	CancelReason   *string    `gorm:"column:cancel_reason"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at"`
	CancelledAt    *time.Time `gorm:"column:cancelled_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var notes, reason string
	if m.Notes != nil {
		notes = *m.Notes
	}
	if m.CancelReason != nil {
		reason = *m.CancelReason
	}

	return &domain.Booking{
		ID:             m.ID,
		OrganizationID: m.OrganizationID,
		RoomID:         m.RoomID,
		UserID:         m.UserID,
		Date:           m.Date,
		StartTime:      m.StartTime,
		EndTime:        m.EndTime,
		Status:         domain.BookingStatus(m.Status),
		PaymentStatus:  domain.PaymentStatus(m.PaymentStatus),
		TotalAmount:    m.TotalAmount,
		Commission:     m.Commission,
		Notes:          notes,
		CancelReason:   reason,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
		CancelledAt:    m.CancelledAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	var notes, reason *string
	if b.Notes != "" {
		v := b.Notes
		notes = &v
	}
	if b.CancelReason != "" {
		v := b.CancelReason
		reason = &v
	}

	return bookingModel{
		ID:             b.ID,
		OrganizationID: b.OrganizationID,
		RoomID:         b.RoomID,
		UserID:         b.UserID,
		Date:           b.Date,
		StartTime:      b.StartTime,
		EndTime:        b.EndTime,
		Status:         string(b.Status),
		PaymentStatus:  string(b.PaymentStatus),
		TotalAmount:    b.TotalAmount,
		Commission:     b.Commission,
		Notes:          notes,
		CancelReason:   reason,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
		CancelledAt:    b.CancelledAt,
	}
}

func toDomainBookings(models []bookingModel) []domain.Booking {
	out := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainBooking(m))
	}
	return out
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) ListForRoomDate(ctx context.Context, roomID int64, date string) ([]domain.Booking, error) {
	var models []bookingModel
	err := r.db.WithContext(ctx).
		Where("room_id = ? AND date = ?", roomID, date).
		Order("start_time").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return toDomainBookings(models), nil
}

func (r *BookingRepository) ListForOrganizationRange(ctx context.Context, orgID int64, from, to string) ([]domain.Booking, error) {
	var models []bookingModel
	err := r.db.WithContext(ctx).
		Where("organization_id = ? AND date >= ? AND date <= ?", orgID, from, to).
		Order("date, start_time").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return toDomainBookings(models), nil
}

func (r *BookingRepository) ListForUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error) {
	var models []bookingModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, start_time DESC").
		Limit(limit).Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return toDomainBookings(models), nil
}

// CreateInSlot inserts a booking after running guard against the room/date
// bucket inside one transaction, so two concurrent requests cannot both pass
// the check against the same snapshot. On Postgres the bucket rows are
// locked for the duration; the partial exclusion constraint on confirmed
// bookings backstops anything that still slips through.
func (r *BookingRepository) CreateInSlot(ctx context.Context, b *domain.Booking, guard func(existing []domain.Booking) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := lockRoomDate(tx, b.RoomID, b.Date)
		if err != nil {
			return err
		}
		if err := guard(existing); err != nil {
			return err
		}

		m := toBookingModel(b)
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		*b = *toDomainBooking(m)
		return nil
	})
}

// UpdateInSlot re-reads the target room/date bucket, runs guard against it
// and saves the booking, all in one transaction. Used by confirm and
// reschedule; nothing is written when the guard fails.
func (r *BookingRepository) UpdateInSlot(ctx context.Context, b *domain.Booking, guard func(existing []domain.Booking) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := lockRoomDate(tx, b.RoomID, b.Date)
		if err != nil {
			return err
		}
		if err := guard(existing); err != nil {
			return err
		}

		m := toBookingModel(b)
		if err := tx.Save(&m).Error; err != nil {
			return err
		}
		*b = *toDomainBooking(m)
		return nil
	})
}

func lockRoomDate(tx *gorm.DB, roomID int64, date string) ([]domain.Booking, error) {
	q := tx.Where("room_id = ? AND date = ?", roomID, date)
	if tx.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var models []bookingModel
	if err := q.Find(&models).Error; err != nil {
		return nil, err
	}
	return toDomainBookings(models), nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", id).
		Update("status", string(status)).Error
}

func (r *BookingRepository) CancelWithReason(ctx context.Context, id int64, reason string) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":        string(domain.BookingCancelled),
			"cancel_reason": reason,
			"cancelled_at":  &now,
		}).Error
}

func (r *BookingRepository) UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error {
	return r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", id).
		Update("payment_status", string(status)).Error
}
