package repository

import (
	"context"

	"roomhub/internal/domain"

	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	return r.db.WithContext(ctx).Save(room).Error
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var room domain.Room
	if err := r.db.WithContext(ctx).First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *RoomRepository) ListByOrganization(ctx context.Context, orgID int64, activeOnly bool) ([]domain.Room, error) {
	q := r.db.WithContext(ctx).Where("organization_id = ?", orgID)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var rooms []domain.Room
	if err := q.Order("name").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

// SetActive hides a room from new bookings without touching its history.
func (r *RoomRepository) SetActive(ctx context.Context, id int64, active bool) error {
	return r.db.WithContext(ctx).
		Model(&domain.Room{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}
