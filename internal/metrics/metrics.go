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

// Engine Metrics
var (
	AssetsLaunched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAssetsLaunched,
			Help: HelpTextAssetsLaunched,
		},
		[]string{LabelAsset},
	)

	QualityActions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameQualityActions,
			Help: HelpTextQualityActions,
		},
		[]string{LabelAsset, LabelAction},
	)

	QualityLevelUps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameQualityLevelUps,
			Help: HelpTextQualityLevelUps,
		},
		[]string{LabelAsset},
	)

	SkillLevelUps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSkillLevelUps,
			Help: HelpTextSkillLevelUps,
		},
		[]string{LabelSkill},
	)

	Payouts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePayouts,
			Help: HelpTextPayouts,
		},
		[]string{LabelAsset},
	)

	IncomePaid = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameIncomePaid,
			Help: HelpTextIncomePaid,
		},
	)

	TimedEventsStarted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTimedEventsStarted,
			Help: HelpTextTimedEventsStarted,
		},
		[]string{LabelTemplate},
	)

	TimedEventsEnded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTimedEventsEnded,
			Help: HelpTextTimedEventsEnded,
		},
		[]string{LabelTemplate},
	)

	UpgradesPurchased = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUpgradesPurchased,
			Help: HelpTextUpgradesPurchased,
		},
		[]string{LabelUpgrade},
	)

	CoursesCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCoursesCompleted,
			Help: HelpTextCoursesCompleted,
		},
		[]string{LabelCourse},
	)

	MoneySpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMoneySpent,
			Help: HelpTextMoneySpent,
		},
	)

	CurrentDay = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameCurrentDay,
			Help: HelpTextCurrentDay,
		},
	)
)
