package runtime

import (
	"context"
	"os"
	"strings"
	"sync"

	"github.com/LerianStudio/lib-chek/chek/internal/nilcheck"
	"github.com/LerianStudio/lib-chek/chek/report"
)

// ErrorReporter forwards recovered assertion failures to an external error
// tracking service. Implementations must be safe for concurrent use and must
// not panic.
type ErrorReporter interface {
	// CaptureException reports err. tags carries "assertion_id", "assertion",
	// "component", "goroutine_name" and, outside production, "stack_trace".
	CaptureException(ctx context.Context, err error, tags map[string]string)
}

var (
	errorReporterInstance ErrorReporter
	errorReporterMu       sync.RWMutex
)

// SetErrorReporter configures the global reporter. Pass nil to disable; a
// typed nil disables it too.
func SetErrorReporter(reporter ErrorReporter) {
	errorReporterMu.Lock()
	defer errorReporterMu.Unlock()

	if nilcheck.Nil(reporter) {
		reporter = nil
	}

	errorReporterInstance = reporter
}

// GetErrorReporter returns the configured reporter, or nil.
func GetErrorReporter() ErrorReporter {
	errorReporterMu.RLock()
	defer errorReporterMu.RUnlock()

	return errorReporterInstance
}

var (
	productionMode   bool
	productionModeMu sync.RWMutex
)

const (
	redactedAssertionMsg = "assertion failed (details redacted)"
	maxStackLen          = 4096
)

// SetProductionMode enables or disables production mode. In production mode
// stack traces are not captured and reported errors omit operand values.
func SetProductionMode(enabled bool) {
	productionModeMu.Lock()
	defer productionModeMu.Unlock()

	productionMode = enabled
}

// IsProductionMode reports whether SetProductionMode(true) was called.
func IsProductionMode() bool {
	productionModeMu.RLock()
	defer productionModeMu.RUnlock()

	return productionMode
}

// inProduction falls back to ENV and GO_ENV when production mode was not set
// explicitly.
func inProduction() bool {
	if IsProductionMode() {
		return true
	}

	env := strings.TrimSpace(os.Getenv("ENV"))
	goEnv := strings.TrimSpace(os.Getenv("GO_ENV"))

	return strings.EqualFold(env, "production") || strings.EqualFold(goEnv, "production")
}

func reportAssertionToErrorService(ctx context.Context, inc incident) {
	reporter := GetErrorReporter()
	if reporter == nil {
		return
	}

	tags := map[string]string{
		"assertion_id":   inc.id,
		"assertion":      inc.failure.Construct,
		"component":      inc.component,
		"goroutine_name": inc.name,
	}

	if len(inc.stack) > 0 && !inProduction() {
		stackStr := string(inc.stack)
		if len(stackStr) > maxStackLen {
			stackStr = stackStr[:maxStackLen] + "\n...[truncated]"
		}

		tags["stack_trace"] = stackStr
	}

	reporter.CaptureException(ctx, toReportedError(inc.failure), tags)
}

// redactedError keeps errors.Is(err, report.ErrAssertionFailed) working
// without exposing operand values.
type redactedError struct{}

func (redactedError) Error() string { return redactedAssertionMsg }

func (redactedError) Unwrap() error { return report.ErrAssertionFailed }

func toReportedError(failure *report.AssertionError) error {
	if inProduction() {
		return redactedError{}
	}

	return failure
}
