package utils

import (
	"regexp"
	"time"

	"clinicdesk-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var ageBrackets = map[string]bool{
	"0-18":  true,
	"19-30": true,
	"31-45": true,
	"46-60": true,
	"61+":   true,
}

func init() {
	validate = validator.New()
	validate.RegisterValidation("phone_number", validatePhoneNumber)
	validate.RegisterValidation("age_bracket", validateAgeBracket)
	validate.RegisterValidation("clock_time", validateClockTime)
	validate.RegisterValidation("iso_date", validateISODate)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	re := regexp.MustCompile(`^\+?[0-9][0-9 -]{6,14}$`)
	return re.MatchString(fl.Field().String())
}

func validateAgeBracket(fl validator.FieldLevel) bool {
	return ageBrackets[fl.Field().String()]
}

func validateClockTime(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if _, err := time.Parse(constvars.TimeLayoutAPI, value); err == nil {
		return true
	}
	_, err := time.Parse(constvars.TimeLayoutShort, value)
	return err == nil
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(constvars.DateLayoutISO, fl.Field().String())
	return err == nil
}
