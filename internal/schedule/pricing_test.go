package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrice(t *testing.T) {
	q, err := Price(80, "09:00", "11:30")
	assert.NoError(t, err)
	assert.Equal(t, 2.5, q.Hours)
	assert.Equal(t, 200.0, q.TotalAmount)
	assert.Equal(t, 20.0, q.Commission)
}

func TestPrice_FractionalHour(t *testing.T) {
	q, err := Price(60, "10:00", "10:45")
	assert.NoError(t, err)
	assert.Equal(t, 0.75, q.Hours)
	assert.Equal(t, 45.0, q.TotalAmount)
	assert.Equal(t, 4.5, q.Commission)
}

func TestPrice_RoundsToCents(t *testing.T) {
	q, err := Price(33.33, "09:00", "10:30")
	assert.NoError(t, err)
	assert.Equal(t, 50.0, q.TotalAmount)
	assert.Equal(t, 5.0, q.Commission)
}

func TestPrice_InvalidDuration(t *testing.T) {
	_, err := Price(80, "11:00", "11:00")
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = Price(80, "12:00", "11:00")
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = Price(80, "oops", "11:00")
	assert.ErrorIs(t, err, ErrInvalidDuration)
}
