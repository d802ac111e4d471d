package catalog

import (
	"testing"

	"roomhub/internal/schedule"

	"github.com/stretchr/testify/assert"
)

func TestValidateHours(t *testing.T) {
	ok := schedule.OperatingHours{
		"monday": {Open: "08:00", Close: "18:00"},
		"sunday": {Closed: true},
	}
	assert.NoError(t, validateHours(ok))
}

func TestValidateHours_OpenAfterClose(t *testing.T) {
	bad := schedule.OperatingHours{
		"monday": {Open: "18:00", Close: "08:00"},
	}
	assert.ErrorIs(t, validateHours(bad), ErrInvalidHours)

	equal := schedule.OperatingHours{
		"monday": {Open: "08:00", Close: "08:00"},
	}
	assert.ErrorIs(t, validateHours(equal), ErrInvalidHours)
}

func TestValidateHours_MissingTimes(t *testing.T) {
	bad := schedule.OperatingHours{
		"tuesday": {Open: "08:00"},
	}
	assert.ErrorIs(t, validateHours(bad), ErrInvalidHours)
}

func TestValidateHours_UnknownDayKey(t *testing.T) {
	// a typoed key would silently never match any date
	bad := schedule.OperatingHours{
		"mondy": {Open: "08:00", Close: "18:00"},
	}
	assert.ErrorIs(t, validateHours(bad), ErrInvalidHours)
}

func TestValidateHours_UnparsableClock(t *testing.T) {
	bad := schedule.OperatingHours{
		"friday": {Open: "8h00", Close: "18:00"},
	}
	assert.ErrorIs(t, validateHours(bad), ErrInvalidHours)
}
