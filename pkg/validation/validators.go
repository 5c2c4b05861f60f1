package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// Letters and spaces only, as the signup form has always required.
	nameRegex = regexp.MustCompile(`^[a-zA-Z\s]+$`)

	// Ten bare digits.
	phoneRegex = regexp.MustCompile(`^\d{10}$`)

	// Deliberately loose: something@something.tld with no whitespace.
	emailRegex = regexp.MustCompile(`^\S+@\S+\.\S+$`)
)

// New returns a validator with the custom tags registered.
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_email", ValidEmail)
	_ = v.RegisterValidation("valid_name", ValidName)
	_ = v.RegisterValidation("valid_phone", ValidPhone)
	_ = v.RegisterValidation("valid_identifier", ValidIdentifier)
	_ = v.RegisterValidation("notblank", NotBlank)
}

func ValidName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return nameRegex.MatchString(val)
}

func ValidEmail(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return IsEmail(val)
}

func ValidPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return IsPhone(val)
}

// ValidIdentifier accepts either an email address or a 10-digit phone number.
func ValidIdentifier(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	return IsEmail(val) || IsPhone(val)
}

// NotBlank rejects strings made only of whitespace.
func NotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func IsEmail(s string) bool {
	return emailRegex.MatchString(s)
}

func IsPhone(s string) bool {
	return phoneRegex.MatchString(s)
}
