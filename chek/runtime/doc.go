// Package runtime recovers assertion failures at goroutine and handler
// boundaries.
//
// The chek package panics with *report.AssertionError and never recovers.
// The helpers here turn such a panic into an error (Catch) or into a log
// entry, an assertion_failed_total increment, an assertion.failed span event
// and an ErrorReporter call (RecoverAndLogWithContext and friends).
//
// Only assertion failures are handled. Any other panic value is re-raised
// unchanged.
//
// Production mode (SetProductionMode, or ENV/GO_ENV set to "production")
// suppresses stack traces and redacts operand values from reported errors.
package runtime
