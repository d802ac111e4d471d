package catalog

import "encoding/json"

type CreateOrganizationRequest struct {
	Name        string `json:"name" binding:"required" validate:"required"`
	Description string `json:"description"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Phone       string `json:"phone"`
	Email       string `json:"email" validate:"omitempty,email"`
}

type UpdateOrganizationRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
}

// UpdateOperatingHoursRequest carries the full weekday-keyed document; a
// partial update would leave unreferenced days in an unknown state.
type UpdateOperatingHoursRequest struct {
	OperatingHours json.RawMessage `json:"operating_hours" binding:"required"`
}

type CreateRoomRequest struct {
	Name        string  `json:"name" binding:"required" validate:"required"`
	Description string  `json:"description"`
	Capacity    int     `json:"capacity" binding:"required,gt=0" validate:"required,gt=0"`
	HourlyRate  float64 `json:"hourly_rate" binding:"required,gte=0" validate:"gte=0"`
}

type UpdateRoomRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Capacity    *int     `json:"capacity"`
	HourlyRate  *float64 `json:"hourly_rate"`
}
