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

// Planner Metrics
var (
	PlansComputed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePlansComputed,
			Help: HelpTextPlansComputed,
		},
		[]string{LabelMode},
	)

	PlanSlots = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNamePlanSlots,
			Help:    HelpTextPlanSlots,
			Buckets: PlanSlotBuckets,
		},
		[]string{LabelMode},
	)

	PlanRequestsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePlanRequestsDropped,
			Help: HelpTextPlanRequestsDropped,
		},
		[]string{LabelMode},
	)

	PlanMaterialsMissing = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePlanMaterialsMissing,
			Help: HelpTextPlanMaterialsMissing,
		},
		[]string{LabelMode},
	)

	EfficiencyEvaluations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEfficiencyEvaluations,
			Help: HelpTextEfficiencyEvaluations,
		},
		[]string{LabelRecommendation},
	)
)

// Catalog Metrics
var (
	CatalogSnapshotLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatalogSnapshotLookups,
			Help: HelpTextCatalogSnapshotLookups,
		},
		[]string{LabelResult},
	)

	CatalogImports = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatalogImports,
			Help: HelpTextCatalogImports,
		},
		[]string{LabelOutcome},
	)

	CatalogWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatalogWrites,
			Help: HelpTextCatalogWrites,
		},
		[]string{LabelOperation},
	)
)
