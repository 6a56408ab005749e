package postgres

// ==================== Error Messages ====================

const (
	ErrMsgInsertProject       = "failed to insert project: %w"
	ErrMsgGetProject          = "failed to get project: %w"
	ErrMsgListProjects        = "failed to list projects: %w"
	ErrMsgScanProject         = "failed to scan project: %w"
	ErrMsgUpdateProjectStatus = "failed to update project status: %w"

	ErrMsgInsertEvent = "failed to insert event: %w"
	ErrMsgGetEvent    = "failed to get event: %w"
	ErrMsgListEvents  = "failed to list events: %w"
	ErrMsgScanEvent   = "failed to scan event: %w"

	ErrMsgInsertRSVP = "failed to insert rsvp: %w"
	ErrMsgDeleteRSVP = "failed to delete rsvp: %w"
	ErrMsgListRSVPs  = "failed to list rsvps: %w"
	ErrMsgCheckRSVP  = "failed to check rsvp: %w"
)
