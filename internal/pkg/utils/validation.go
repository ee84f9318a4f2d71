package utils

import (
	"time"

	"aidentify-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("birthdate", validateBirthdate)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateBirthdate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	_, err := time.Parse(constvars.BirthdateLayout, value)
	return err == nil
}
