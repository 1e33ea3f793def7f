// Package metrics provides a small caching factory for OpenTelemetry counters.
//
// MetricsFactory creates instruments on first use and hands out immutable
// CounterBuilder values for attribute composition.
package metrics
