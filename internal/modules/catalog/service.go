package catalog

import (
	"context"
	"errors"
	"fmt"

	"roomhub/internal/domain"
	"roomhub/internal/repository"
	"roomhub/internal/schedule"
)

var (
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidHours = errors.New("invalid operating hours")
)

type Service struct {
	orgs  *repository.OrganizationRepository
	rooms *repository.RoomRepository
}

func NewService(orgs *repository.OrganizationRepository, rooms *repository.RoomRepository) *Service {
	return &Service{orgs: orgs, rooms: rooms}
}

/* ---------- ORGANIZATION ---------- */

func (s *Service) CreateOrganization(ctx context.Context, ownerID int64, req CreateOrganizationRequest) (*domain.Organization, error) {
	org := &domain.Organization{
		OwnerID:     ownerID,
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		City:        req.City,
		Phone:       req.Phone,
		Email:       req.Email,
	}

	if err := s.orgs.Create(ctx, org); err != nil {
		return nil, err
	}
	return org, nil
}

func (s *Service) UpdateOrganization(ctx context.Context, userID, orgID int64, req UpdateOrganizationRequest) (*domain.Organization, error) {
	org, err := s.owned(ctx, userID, orgID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		org.Name = *req.Name
	}
	if req.Description != nil {
		org.Description = *req.Description
	}
	if req.Address != nil {
		org.Address = *req.Address
	}
	if req.City != nil {
		org.City = *req.City
	}
	if req.Phone != nil {
		org.Phone = *req.Phone
	}
	if req.Email != nil {
		org.Email = *req.Email
	}

	if err := s.orgs.Update(ctx, org); err != nil {
		return nil, err
	}
	return org, nil
}

func (s *Service) GetOrganization(ctx context.Context, orgID int64) (*domain.Organization, error) {
	return s.orgs.GetByID(ctx, orgID)
}

func (s *Service) GetOrganizationsByOwner(ctx context.Context, ownerID int64) ([]domain.Organization, error) {
	return s.orgs.GetByOwnerID(ctx, ownerID)
}

// UpdateOperatingHours rejects any non-closed day missing open/close or
// with open >= close; a broken document would make every booking check
// misfire for the whole week.
func (s *Service) UpdateOperatingHours(ctx context.Context, userID, orgID int64, req UpdateOperatingHoursRequest) error {
	if _, err := s.owned(ctx, userID, orgID); err != nil {
		return err
	}

	hours, err := schedule.ParseOperatingHours(req.OperatingHours)
	if err != nil {
		return ErrInvalidHours
	}
	if err := validateHours(hours); err != nil {
		return err
	}

	return s.orgs.UpdateOperatingHours(ctx, orgID, req.OperatingHours)
}

func validateHours(hours schedule.OperatingHours) error {
	for key, day := range hours {
		if _, known := knownDays[key]; !known {
			return fmt.Errorf("%w: unknown day %q", ErrInvalidHours, key)
		}
		if day.Closed {
			continue
		}
		if day.Open == "" || day.Close == "" {
			return fmt.Errorf("%w: %s needs open and close times", ErrInvalidHours, key)
		}
		open, err := schedule.ParseClock(day.Open)
		if err != nil {
			return fmt.Errorf("%w: %s open time", ErrInvalidHours, key)
		}
		close, err := schedule.ParseClock(day.Close)
		if err != nil {
			return fmt.Errorf("%w: %s close time", ErrInvalidHours, key)
		}
		if open >= close {
			return fmt.Errorf("%w: %s opens after it closes", ErrInvalidHours, key)
		}
	}
	return nil
}

var knownDays = map[string]struct{}{
	"monday": {}, "tuesday": {}, "wednesday": {}, "thursday": {},
	"friday": {}, "saturday": {}, "sunday": {},
}

/* ---------- ROOM ---------- */

func (s *Service) CreateRoom(ctx context.Context, userID, orgID int64, req CreateRoomRequest) (*domain.Room, error) {
	if _, err := s.owned(ctx, userID, orgID); err != nil {
		return nil, err
	}

	room := &domain.Room{
		OrganizationID: orgID,
		Name:           req.Name,
		Description:    req.Description,
		Capacity:       req.Capacity,
		HourlyRate:     req.HourlyRate,
		IsActive:       true,
	}

	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *Service) UpdateRoom(ctx context.Context, userID, roomID int64, req UpdateRoomRequest) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if _, err := s.owned(ctx, userID, room.OrganizationID); err != nil {
		return nil, err
	}

	if req.Name != nil {
		room.Name = *req.Name
	}
	if req.Description != nil {
		room.Description = *req.Description
	}
	if req.Capacity != nil && *req.Capacity > 0 {
		room.Capacity = *req.Capacity
	}
	if req.HourlyRate != nil && *req.HourlyRate >= 0 {
		room.HourlyRate = *req.HourlyRate
	}

	if err := s.rooms.Update(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// DeactivateRoom hides the room from new bookings; history stays intact.
func (s *Service) DeactivateRoom(ctx context.Context, userID, roomID int64) error {
	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return err
	}
	if _, err := s.owned(ctx, userID, room.OrganizationID); err != nil {
		return err
	}
	return s.rooms.SetActive(ctx, roomID, false)
}

func (s *Service) ListRooms(ctx context.Context, orgID int64, activeOnly bool) ([]domain.Room, error) {
	return s.rooms.ListByOrganization(ctx, orgID, activeOnly)
}

func (s *Service) owned(ctx context.Context, userID, orgID int64) (*domain.Organization, error) {
	org, err := s.orgs.GetByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if org.OwnerID != userID {
		return nil, ErrForbidden
	}
	return org, nil
}
