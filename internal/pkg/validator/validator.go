package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate returns field -> failed tag for every violation, or nil when the
// struct passes.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	for _, fe := range err.(validator.ValidationErrors) {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}
