package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/funckode/funckode/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// knownBadgeTypes drives the badgetype validation tag
var knownBadgeTypes = map[domain.BadgeType]bool{
	domain.BadgeFirstPR:            true,
	domain.BadgeCodeReviewer:       true,
	domain.BadgeIssueResolver:      true,
	domain.BadgeEventParticipation: true,
	domain.BadgeProjectSubmitted:   true,
	domain.BadgePRMaster:           true,
	domain.BadgeIssueHunter:        true,
	domain.BadgeCommunityChampion:  true,
	domain.BadgeStreakWarrior:      true,
	domain.BadgeTopContributor:     true,
}

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// Register custom validation for badge types
	_ = v.RegisterValidation("badgetype", validateBadgeType)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// validateBadgeType checks that the value is a known badge type identifier
func validateBadgeType(fl validator.FieldLevel) bool {
	return knownBadgeTypes[domain.BadgeType(fl.Field().String())]
}

// FormatValidationError formats validation errors into a user-friendly map
// This prevents leaking internal struct names and provides cleaner error messages
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	// Check if it's a validator.ValidationErrors
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "badgetype":
			errs[field] = "Unknown badge type"
		case "url":
			errs[field] = "Must be a valid URL"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s characters", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s characters", e.Param())
		case "excludesall":
			errs[field] = "Contains invalid characters"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}
