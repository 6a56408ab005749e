package project

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 4000
	MaxTags              = 10
)

// ==================== Error Messages ====================

const (
	ErrMsgTitleRequired   = "title is required"
	ErrMsgRepoURLRequired = "repo URL is required"
	ErrMsgAuthorRequired  = "author is required"
	ErrMsgTitleTooLong    = "title exceeds %d characters"
	ErrMsgTooManyTags     = "at most %d tags allowed"
	ErrMsgInvalidRepoURL  = "repo URL must be http(s)"

	ErrMsgSubmitFailed   = "failed to submit project: %w"
	ErrMsgModerateFailed = "failed to moderate project: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgProjectSubmitted  = "Project submitted"
	LogMsgProjectModerated  = "Project moderated"
	LogMsgBadgeAwardSkipped = "Submission badge already held, skipping"
	LogMsgBadgeAwardFailed  = "Failed to award submission badge"
	LogMsgPublishFailed     = "Failed to publish project event"
)
