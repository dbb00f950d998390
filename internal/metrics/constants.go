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

// Engine metric names
const (
	MetricNameAssetsLaunched     = "assets_launched_total"
	MetricNameQualityActions     = "quality_actions_total"
	MetricNameQualityLevelUps    = "quality_level_ups_total"
	MetricNameSkillLevelUps      = "skill_level_ups_total"
	MetricNamePayouts            = "payouts_total"
	MetricNameIncomePaid         = "income_paid_total"
	MetricNameTimedEventsStarted = "timed_events_started_total"
	MetricNameTimedEventsEnded   = "timed_events_ended_total"
	MetricNameUpgradesPurchased  = "upgrades_purchased_total"
	MetricNameCoursesCompleted   = "courses_completed_total"
	MetricNameMoneySpent         = "money_spent_total"
	MetricNameCurrentDay         = "game_day"
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

// Engine metric help text
const (
	HelpTextAssetsLaunched     = "Total number of asset instances launched"
	HelpTextQualityActions     = "Total number of completed quality actions"
	HelpTextQualityLevelUps    = "Total number of quality level increases"
	HelpTextSkillLevelUps      = "Total number of skill level increases"
	HelpTextPayouts            = "Total number of instance payouts"
	HelpTextIncomePaid         = "Total income paid out by assets"
	HelpTextTimedEventsStarted = "Total number of timed events started"
	HelpTextTimedEventsEnded   = "Total number of timed events ended"
	HelpTextUpgradesPurchased  = "Total number of upgrades purchased"
	HelpTextCoursesCompleted   = "Total number of education courses completed"
	HelpTextMoneySpent         = "Total money spent across all days"
	HelpTextCurrentDay         = "Current game day"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelType     = "type"
	LabelAsset    = "asset"
	LabelAction   = "action"
	LabelSkill    = "skill"
	LabelTemplate = "template"
	LabelUpgrade  = "upgrade"
	LabelCourse   = "course"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadInvalid = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)

// UnmatchedRoute labels requests that no route pattern matched
const UnmatchedRoute = "unmatched"
