// Package log defines the logging interface used by the runtime package when
// it recovers assertion failures.
//
// The zap package provides the production implementation.
package log
