package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameBadgesAwarded     = "badges_awarded_total"
	MetricNameDuplicateAwards   = "duplicate_badge_awards_total"
	MetricNameLevelUps          = "level_ups_total"
	MetricNameStreakMilestones  = "streak_milestones_total"
	MetricNameTopContributors   = "top_contributors_selected_total"
	MetricNameProjectsSubmitted = "projects_submitted_total"
	MetricNameRSVPsCreated      = "event_rsvps_total"
	MetricNameAnnouncements     = "announcements_sent_total"
	MetricNameAnnouncementFails = "announcement_failures_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextBadgesAwarded     = "Total number of badges awarded"
	HelpTextDuplicateAwards   = "Total number of duplicate badge awards rejected"
	HelpTextLevelUps          = "Total number of contributor level ups"
	HelpTextStreakMilestones  = "Total number of streak milestones reached"
	HelpTextTopContributors   = "Total number of monthly top contributors selected"
	HelpTextProjectsSubmitted = "Total number of projects submitted"
	HelpTextRSVPsCreated      = "Total number of event RSVPs created"
	HelpTextAnnouncements     = "Total number of Discord announcements sent"
	HelpTextAnnouncementFails = "Total number of failed Discord announcements"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelBadge  = "badge"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgPayloadDecodeFailed = "Failed to decode event payload for metrics"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
