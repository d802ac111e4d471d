package repository

import (
	"context"
	"encoding/json"

	"roomhub/internal/domain"

	"gorm.io/gorm"
)

type OrganizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

func (r *OrganizationRepository) Create(ctx context.Context, org *domain.Organization) error {
	return r.db.WithContext(ctx).Create(org).Error
}

func (r *OrganizationRepository) Update(ctx context.Context, org *domain.Organization) error {
	return r.db.WithContext(ctx).Save(org).Error
}

func (r *OrganizationRepository) GetByID(ctx context.Context, id int64) (*domain.Organization, error) {
	var org domain.Organization
	if err := r.db.WithContext(ctx).First(&org, id).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *OrganizationRepository) GetByOwnerID(ctx context.Context, ownerID int64) ([]domain.Organization, error) {
	var orgs []domain.Organization
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Find(&orgs).Error
	if err != nil {
		return nil, err
	}
	return orgs, nil
}

// GetOperatingHours returns the raw hours document for one organization.
// The schedule package parses it; a missing row is not an error, just
// absent hours.
func (r *OrganizationRepository) GetOperatingHours(ctx context.Context, orgID int64) (json.RawMessage, error) {
	var raw []byte
	tx := r.db.WithContext(ctx).
		Model(&domain.Organization{}).
		Select("operating_hours").
		Where("id = ?", orgID).
		Scan(&raw)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return raw, nil
}

func (r *OrganizationRepository) UpdateOperatingHours(ctx context.Context, orgID int64, hours json.RawMessage) error {
	return r.db.WithContext(ctx).
		Model(&domain.Organization{}).
		Where("id = ?", orgID).
		Update("operating_hours", []byte(hours)).Error
}
