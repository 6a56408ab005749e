package handler

// ==================== Error Messages ====================

const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing required query parameter: %s"
	ErrMsgInvalidIDParam        = "Invalid id parameter"
)

// ==================== Log Messages ====================

const (
	LogMsgBadgeAwarded     = "Badge award handled"
	LogMsgDuplicateAward   = "Duplicate badge award treated as success"
	LogMsgProjectSubmitted = "Project submission handled"
	LogMsgRSVPHandled      = "RSVP handled"
)
