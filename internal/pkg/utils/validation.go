package utils

import (
	"nutrisurvey-service/internal/pkg/exceptions"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func ValidateStruct(request interface{}) error {
	if err := validate.Struct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}
