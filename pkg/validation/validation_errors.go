package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to the names clients send.
var FieldLabels = map[string]string{
	"Name":        "name",
	"Email":       "email",
	"Phone":       "phone",
	"Password":    "password",
	"Location":    "location",
	"Identifier":  "identifier",
	"CompanyName": "companyName",
	"Industry":    "industry",
	"CompanySize": "companySize",
	"Title":       "title",
	"Company":     "company",
	"JobType":     "job_type",
	"Description": "description",
	"SalaryMin":   "salary_min",
	"SalaryMax":   "salary_max",
	"UserID":      "user_id",
	"JobID":       "job_id",
	"ResumeLink":  "resume_link",
	"CandidateID": "candidateId",
	"Message":     "message",
	"Reason":      "reason",
	"Status":      "status",
	"Deadline":    "application_deadline",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

// Summary joins the formatted messages into a single line for AppError messages.
func Summary(err error) string {
	return strings.Join(FormatValidationErrors(err), "; ")
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", label)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters long", label, param)
		}
		return fmt.Sprintf("%s must be at least %s", label, param)
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters long", label, param)
		}
		return fmt.Sprintf("%s must be at most %s", label, param)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", label, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(param, " ", ", "))
	case "email", "valid_email":
		return "Invalid email format"
	case "valid_name":
		return fmt.Sprintf("%s must contain only letters and spaces", label)
	case "valid_phone":
		return fmt.Sprintf("%s must be a 10-digit number", label)
	case "valid_identifier":
		return "Identifier must be a valid email or 10-digit phone number"
	case "gtefield":
		return fmt.Sprintf("%s cannot be less than %s", label, getFieldLabel(param))
	default:
		return fmt.Sprintf("%s failed validation (%s)", label, e.Tag())
	}
}

func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return fieldName
}
