// Package constant holds the telemetry names shared by the runtime and metrics
// packages.
//
// Keep this package free of runtime behavior.
package constant
