package domain

import "time"

type Room struct {
	ID             int64     `json:"id"`
	OrganizationID int64     `json:"organization_id"`
	Name           string    `json:"name" validate:"required"`
	Description    string    `json:"description,omitempty"`
	Capacity       int       `json:"capacity" validate:"required,gt=0"`
	HourlyRate     float64   `json:"hourly_rate" validate:"required,gte=0"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
