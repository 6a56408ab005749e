package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Contributor errors
	ErrMsgContributorNotFound = "contributor not found"

	// Badge errors
	ErrMsgDuplicateBadge = "badge already awarded"

	// Project errors
	ErrMsgProjectNotFound  = "project not found"
	ErrMsgProjectModerated = "project already moderated"

	// Event errors
	ErrMsgEventNotFound = "event not found"
	ErrMsgDuplicateRSVP = "already attending this event"
	ErrMsgRSVPNotFound  = "rsvp not found"

	// Validation errors
	ErrMsgInvalidInput = "invalid input"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Contributor errors
	ErrContributorNotFound = errors.New(ErrMsgContributorNotFound)

	// Badge errors
	// ErrDuplicateBadge marks the idempotent no-op case: awarding a
	// non-repeatable badge the contributor already holds. It is a business
	// outcome, not a failure; callers log it and report success.
	ErrDuplicateBadge = errors.New(ErrMsgDuplicateBadge)

	// Project errors
	ErrProjectNotFound  = errors.New(ErrMsgProjectNotFound)
	ErrProjectModerated = errors.New(ErrMsgProjectModerated)

	// Event errors
	ErrEventNotFound = errors.New(ErrMsgEventNotFound)
	ErrDuplicateRSVP = errors.New(ErrMsgDuplicateRSVP)
	ErrRSVPNotFound  = errors.New(ErrMsgRSVPNotFound)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// Database/System errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)
