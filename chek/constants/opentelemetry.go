package constant

// TelemetrySDKName identifies this library as an instrumentation scope.
const TelemetrySDKName = "lib-chek/opentelemetry"

// MaxMetricLabelLength bounds metric label values to keep cardinality in check.
const MaxMetricLabelLength = 64

// AttrPrefixAssertion prefixes every assertion span attribute.
const AttrPrefixAssertion = "assertion."

// Span attribute keys for assertion failures.
const (
	AttrAssertionID        = AttrPrefixAssertion + "id"
	AttrAssertionConstruct = AttrPrefixAssertion + "construct"
	AttrAssertionMessage   = AttrPrefixAssertion + "message"
	AttrAssertionText      = AttrPrefixAssertion + "text"
	AttrAssertionComponent = AttrPrefixAssertion + "component"
	AttrAssertionGoroutine = AttrPrefixAssertion + "goroutine_name"
	AttrAssertionStack     = AttrPrefixAssertion + "stack"
)

// Metric label keys.
const (
	LabelConstruct = "construct"
	LabelComponent = "component"
)

// MetricAssertionFailedTotal counts recovered assertion failures.
const MetricAssertionFailedTotal = "assertion_failed_total"

// EventAssertionFailed is the span event recorded for a recovered assertion.
const EventAssertionFailed = "assertion.failed"

// SanitizeMetricLabel truncates value to MaxMetricLabelLength.
func SanitizeMetricLabel(value string) string {
	if len(value) > MaxMetricLabelLength {
		return value[:MaxMetricLabelLength]
	}

	return value
}
