package runtime

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/LerianStudio/lib-chek/chek/internal/nilcheck"
	"github.com/LerianStudio/lib-chek/chek/log"
	"github.com/LerianStudio/lib-chek/chek/report"
	"github.com/google/uuid"
)

// PanicPolicy decides what happens after a recovered assertion failure has
// been logged and recorded.
type PanicPolicy int

const (
	// KeepRunning swallows the failure and lets the goroutine return normally.
	KeepRunning PanicPolicy = iota
	// CrashProcess re-panics with the original *report.AssertionError.
	CrashProcess
)

// String returns the policy name.
func (p PanicPolicy) String() string {
	switch p {
	case KeepRunning:
		return "KeepRunning"
	case CrashProcess:
		return "CrashProcess"
	default:
		return "Unknown"
	}
}

// AsAssertion reports whether a recovered panic value is an assertion failure.
func AsAssertion(panicValue any) (*report.AssertionError, bool) {
	err, ok := panicValue.(error)
	if !ok {
		return nil, false
	}

	var failure *report.AssertionError
	if errors.As(err, &failure) {
		return failure, true
	}

	return nil, false
}

// Catch runs fn and returns the assertion failure it raised, or nil.
// Any other panic propagates unchanged.
//
//	err := runtime.Catch(func() { chek.Less(i, len(buf)) })
//	if errors.Is(err, chek.ErrAssertionFailed) { ... }
func Catch(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			failure, ok := AsAssertion(r)
			if !ok {
				panic(r)
			}

			err = failure
		}
	}()

	fn()

	return nil
}

// RecoverAndLog recovers an assertion failure and logs it with the stack trace.
// It records no metrics or span events; use RecoverAndLogWithContext for that.
//
//	func worker() {
//	    defer runtime.RecoverAndLog(logger, "worker")
//	    // ...
//	}
func RecoverAndLog(logger log.Logger, name string) {
	if r := recover(); r != nil {
		failure := mustAssertion(r)
		logAssertion(context.Background(), logger, newIncident(failure, "", name))
	}
}

// RecoverAndLogWithContext recovers an assertion failure, logs it and records
// it to metrics, the active span and the configured ErrorReporter.
//
//	func handler(ctx context.Context) {
//	    defer runtime.RecoverAndLogWithContext(ctx, logger, "ledger", "post_entry")
//	    // ...
//	}
func RecoverAndLogWithContext(ctx context.Context, logger log.Logger, component, name string) {
	if r := recover(); r != nil {
		handleAssertion(ctx, logger, mustAssertion(r), component, name)
	}
}

// RecoverAndCrashWithContext is like RecoverAndLogWithContext but re-panics
// once the failure has been recorded.
func RecoverAndCrashWithContext(ctx context.Context, logger log.Logger, component, name string) {
	if r := recover(); r != nil {
		failure := mustAssertion(r)
		handleAssertion(ctx, logger, failure, component, name)
		panic(failure)
	}
}

// RecoverWithPolicy recovers an assertion failure, logs it and applies policy.
func RecoverWithPolicy(logger log.Logger, name string, policy PanicPolicy) {
	if r := recover(); r != nil {
		failure := mustAssertion(r)
		logAssertion(context.Background(), logger, newIncident(failure, "", name))

		if policy == CrashProcess {
			panic(failure)
		}
	}
}

// RecoverWithPolicyAndContext is RecoverWithPolicy with metrics, tracing and
// error reporting.
func RecoverWithPolicyAndContext(
	ctx context.Context,
	logger log.Logger,
	component, name string,
	policy PanicPolicy,
) {
	if r := recover(); r != nil {
		failure := mustAssertion(r)
		handleAssertion(ctx, logger, failure, component, name)

		if policy == CrashProcess {
			panic(failure)
		}
	}
}

// HandleAssertionValue processes a panic value recovered elsewhere, such as by
// a framework's recover middleware. It returns false, recording nothing, when
// panicValue is not an assertion failure.
func HandleAssertionValue(ctx context.Context, logger log.Logger, panicValue any, component, name string) bool {
	failure, ok := AsAssertion(panicValue)
	if !ok {
		return false
	}

	handleAssertion(ctx, logger, failure, component, name)

	return true
}

// mustAssertion re-panics with panicValue unless it is an assertion failure.
func mustAssertion(panicValue any) *report.AssertionError {
	failure, ok := AsAssertion(panicValue)
	if !ok {
		panic(panicValue)
	}

	return failure
}

// incident is one recovered failure. Its id ties together the log entry, the
// span event and the error report.
type incident struct {
	id        string
	failure   *report.AssertionError
	component string
	name      string
	stack     []byte
}

func newIncident(failure *report.AssertionError, component, name string) incident {
	return incident{
		id:        uuid.NewString(),
		failure:   failure,
		component: component,
		name:      name,
		stack:     captureStack(),
	}
}

func handleAssertion(ctx context.Context, logger log.Logger, failure *report.AssertionError, component, name string) {
	if ctx == nil {
		ctx = context.Background()
	}

	inc := newIncident(failure, component, name)

	logAssertion(ctx, logger, inc)
	recordAssertionMetric(ctx, failure.Construct, component, name)
	recordIncidentToSpan(ctx, inc)
	reportAssertionToErrorService(ctx, inc)
}

// captureStack returns nil in production mode.
func captureStack() []byte {
	if inProduction() {
		return nil
	}

	return debug.Stack()
}

func logAssertion(ctx context.Context, logger log.Logger, inc incident) {
	if nilcheck.Nil(logger) {
		fmt.Fprintln(os.Stderr, inc.failure.Error())
		return
	}

	fields := []log.Field{
		log.String("assertion_id", inc.id),
		log.String("assertion", inc.failure.Construct),
		log.String("goroutine_name", inc.name),
		log.String("diagnostic", inc.failure.Error()),
	}

	if inc.component != "" {
		fields = append(fields, log.String("component", inc.component))
	}

	if len(inc.stack) > 0 {
		fields = append(fields, log.String("stack_trace", string(inc.stack)))
	}

	logger.Log(ctx, log.LevelError, "assertion failed", fields...)
}
