package communityevent

const (
	MaxNameLength = 200
)

// ==================== Error Messages ====================

const (
	ErrMsgNameRequired      = "event name is required"
	ErrMsgNameTooLong       = "event name exceeds %d characters"
	ErrMsgStartRequired     = "event start time is required"
	ErrMsgStartInPast       = "event start time is in the past"
	ErrMsgCreatedByRequired = "event creator is required"
	ErrMsgUsernameRequired  = "username is required"

	ErrMsgCreateFailed = "failed to create event: %w"
	ErrMsgRSVPFailed   = "failed to record rsvp: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgEventCreated  = "Community event created"
	LogMsgRSVPCreated   = "RSVP recorded"
	LogMsgRSVPCancelled = "RSVP cancelled"
	LogMsgPublishFailed = "Failed to publish event"
)
