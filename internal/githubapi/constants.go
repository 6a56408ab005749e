package githubapi

import "time"

const (
	// DefaultBaseURL is the GitHub REST API root
	DefaultBaseURL = "https://api.github.com"

	// acceptHeader pins the stable REST media type
	acceptHeader = "application/vnd.github+json"

	requestTimeout = 10 * time.Second
	maxRetries     = 3
	retryDelay     = 500 * time.Millisecond

	// perPage is the page size for list and search calls
	perPage = 100

	// maxSearchPages caps search pagination; the search API refuses to
	// serve past the first 1000 results anyway
	maxSearchPages = 10
)

// ==================== Error Messages ====================

const (
	ErrMsgCreateRequest  = "failed to create request: %w"
	ErrMsgExecuteRequest = "failed to execute request after %d attempts: %w"
	ErrMsgDecodeResponse = "failed to decode response: %w"
	ErrMsgAPIError       = "GitHub API error (status %d): %s"
	ErrMsgOwnerRepo      = "owner/repo must be in the form \"owner/repo\", got %q"
)

// ==================== Log Messages ====================

const (
	LogMsgRetryingRequest = "Retrying GitHub request"
	LogMsgRateLimitLow    = "GitHub rate limit running low"
)
