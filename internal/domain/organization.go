package domain

import (
	"encoding/json"
	"time"
)

// Organization is a training center renting out its rooms. OperatingHours is
// the raw weekday-keyed JSON document ({"monday":{"open":"08:00",...}});
// parsing and interpretation belong to the schedule package.
type Organization struct {
	ID             int64           `json:"id"`
	OwnerID        int64           `json:"owner_id"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	Address        string          `json:"address,omitempty"`
	City           string          `json:"city,omitempty"`
	Phone          string          `json:"phone,omitempty"`
	Email          string          `json:"email,omitempty"`
	OperatingHours json.RawMessage `json:"operating_hours,omitempty" gorm:"type:text"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	DeletedAt      *time.Time      `json:"-"`

	Rooms []Room `json:"rooms,omitempty"`
}
