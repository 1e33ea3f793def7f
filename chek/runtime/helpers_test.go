//go:build unit

package runtime

import (
	"context"
	"sync"
	"time"

	"github.com/LerianStudio/lib-chek/chek/log"
)

type logEntry struct {
	level  log.Level
	msg    string
	fields map[string]any
}

// testLogger captures log calls. It is shared across all runtime test files.
type testLogger struct {
	mu      sync.Mutex
	entries []logEntry
	logged  chan struct{}
}

func newTestLogger() *testLogger {
	return &testLogger{logged: make(chan struct{}, 1)}
}

func (logger *testLogger) Log(_ context.Context, level log.Level, msg string, fields ...log.Field) {
	logger.mu.Lock()
	defer logger.mu.Unlock()

	entry := logEntry{level: level, msg: msg, fields: make(map[string]any, len(fields))}
	for _, f := range fields {
		entry.fields[f.Key] = f.Value
	}

	logger.entries = append(logger.entries, entry)

	select {
	case logger.logged <- struct{}{}:
	default:
	}
}

func (logger *testLogger) With(_ ...log.Field) log.Logger { return logger }

func (logger *testLogger) WithGroup(_ string) log.Logger { return logger }

func (logger *testLogger) Enabled(_ log.Level) bool { return true }

func (logger *testLogger) Sync(_ context.Context) error { return nil }

func (logger *testLogger) all() []logEntry {
	logger.mu.Lock()
	defer logger.mu.Unlock()

	return append([]logEntry(nil), logger.entries...)
}

func (logger *testLogger) waitForLog(timeout time.Duration) bool {
	select {
	case <-logger.logged:
		return true
	case <-time.After(timeout):
		return false
	}
}

type capturedReport struct {
	err  error
	tags map[string]string
}

type testReporter struct {
	mu      sync.Mutex
	reports []capturedReport
}

func (r *testReporter) CaptureException(_ context.Context, err error, tags map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reports = append(r.reports, capturedReport{err: err, tags: tags})
}

func (r *testReporter) all() []capturedReport {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]capturedReport(nil), r.reports...)
}

// resetGlobals restores every package-level singleton after a test.
func resetGlobals(t interface{ Cleanup(func()) }) {
	t.Cleanup(func() {
		ResetAssertionMetrics()
		SetErrorReporter(nil)
		SetProductionMode(false)
	})
}
