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

// Planner metric names
const (
	MetricNamePlansComputed         = "arclab_plans_computed_total"
	MetricNamePlanSlots             = "arclab_plan_slots"
	MetricNamePlanRequestsDropped   = "arclab_plan_requests_dropped_total"
	MetricNamePlanMaterialsMissing  = "arclab_plan_materials_missing_total"
	MetricNameEfficiencyEvaluations = "arclab_efficiency_evaluations_total"
)

// Catalog metric names
const (
	MetricNameCatalogSnapshotLookups = "arclab_catalog_snapshot_lookups_total"
	MetricNameCatalogImports         = "arclab_catalog_imports_total"
	MetricNameCatalogWrites          = "arclab_catalog_writes_total"
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

// Planner metric help text
const (
	HelpTextPlansComputed         = "Total number of carry plans computed"
	HelpTextPlanSlots             = "Total inventory slots of computed plans"
	HelpTextPlanRequestsDropped   = "Desired items left out of a plan for an unknown item or non-positive amount"
	HelpTextPlanMaterialsMissing  = "Recipe materials skipped because they are missing from the catalog"
	HelpTextEfficiencyEvaluations = "Total number of craft vs. materials evaluations by recommendation"
)

// Catalog metric help text
const (
	HelpTextCatalogSnapshotLookups = "Catalog snapshot lookups by cache result"
	HelpTextCatalogImports         = "Catalog document imports by outcome"
	HelpTextCatalogWrites          = "Catalog writes by operation"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod         = "method"
	LabelPath           = "path"
	LabelStatus         = "status"
	LabelMode           = "mode"
	LabelResult         = "result"
	LabelOutcome        = "outcome"
	LabelOperation      = "operation"
	LabelRecommendation = "recommendation"
)

// Label values
const (
	ResultHit  = "hit"
	ResultMiss = "miss"

	OutcomeImported  = "imported"
	OutcomeUnchanged = "unchanged"
	OutcomeInvalid   = "invalid"
	OutcomeFailed    = "failed"

	PathUnmatched = "unmatched"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// PlanSlotBuckets covers plans from a single slot up to a full stash
var PlanSlotBuckets = []float64{1, 2, 5, 10, 20, 50, 100, 200, 300}
