package toprank

// MonthLayout is the wire format for a scored month ("2026-07")
const MonthLayout = "2006-01"

// ==================== Error Messages ====================

const (
	ErrMsgFetchPRs     = "failed to fetch merged pull requests: %w"
	ErrMsgFetchIssues  = "failed to fetch closed issues: %w"
	ErrMsgFetchReviews = "failed to fetch reviews for PR #%d: %w"
	ErrMsgListRecords  = "failed to list contributor records: %w"
	ErrMsgAwardFailed  = "failed to award top contributor badge: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgSelectionStarted  = "Top contributor selection started"
	LogMsgNoActivity        = "No scored activity for month, skipping selection"
	LogMsgBelowMinimum      = "Top score below award minimum, skipping selection"
	LogMsgAlreadySelected   = "Top contributor already selected for month"
	LogMsgWinnerSelected    = "Top contributor selected"
	LogMsgDuplicateWinner   = "Winner already holds the top contributor badge, no new award"
	LogMsgReviewFetchFailed = "Skipping reviews for PR after fetch failure"
)
