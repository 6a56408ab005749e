package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	BadgesAwarded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBadgesAwarded,
			Help: HelpTextBadgesAwarded,
		},
		[]string{LabelBadge},
	)

	DuplicateAwards = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDuplicateAwards,
			Help: HelpTextDuplicateAwards,
		},
		[]string{LabelBadge},
	)

	LevelUps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLevelUps,
			Help: HelpTextLevelUps,
		},
	)

	StreakMilestones = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStreakMilestones,
			Help: HelpTextStreakMilestones,
		},
	)

	TopContributorsSelected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTopContributors,
			Help: HelpTextTopContributors,
		},
	)

	ProjectsSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameProjectsSubmitted,
			Help: HelpTextProjectsSubmitted,
		},
	)

	RSVPsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRSVPsCreated,
			Help: HelpTextRSVPsCreated,
		},
	)

	AnnouncementsSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAnnouncements,
			Help: HelpTextAnnouncements,
		},
	)

	AnnouncementFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAnnouncementFails,
			Help: HelpTextAnnouncementFails,
		},
	)
)
