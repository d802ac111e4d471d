package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Email string `validate:"required,email"`
	Start string `validate:"required,datetime=15:04"`
}

func TestValidate_ReportsFieldAndTag(t *testing.T) {
	fields := Validate(sample{Email: "not-an-email", Start: "25:99"})

	assert.Equal(t, "email", fields["Email"])
	assert.Equal(t, "datetime", fields["Start"])
}

func TestValidate_NilWhenValid(t *testing.T) {
	assert.Nil(t, Validate(sample{Email: "marie@formapro.fr", Start: "09:30"}))
}

func TestValidate_RequiredFields(t *testing.T) {
	fields := Validate(sample{})

	assert.Equal(t, "required", fields["Email"])
	assert.Equal(t, "required", fields["Start"])
}
