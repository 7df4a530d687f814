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

// Inventory loader metric names
const (
	MetricNameInventoryLoads        = "inventory_loads_total"
	MetricNameInventoryLoadDuration = "inventory_load_duration_seconds"
	MetricNameInventoryItemsLoaded  = "inventory_items_loaded"
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

// Inventory loader metric help text
const (
	HelpTextInventoryLoads        = "Total number of inventory loads by outcome"
	HelpTextInventoryLoadDuration = "Inventory load latency in seconds, including body decoding"
	HelpTextInventoryItemsLoaded  = "Number of items in the most recent successful inventory load"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelOutcome = "outcome"
)

// Inventory load outcomes
const (
	OutcomeSuccess   = "success"
	OutcomeHTTPError = "http_error"
	OutcomeFailure   = "failure"
	OutcomeStale     = "stale"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
