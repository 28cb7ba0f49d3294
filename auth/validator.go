package auth

import (
	"msgboard/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type RegisterRequest struct {
	Username string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// ValidateRegister checks that every registration field is present and
// the email is well formed. Validation failures all surface as
// ErrMissingFields so the caller can answer with a single 400 message.
func ValidateRegister(req RegisterRequest) error {
	if err := validate.Struct(req); err != nil {
		return errors.ErrMissingFields
	}
	return nil
}
