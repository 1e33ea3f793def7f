package chek

import "github.com/LerianStudio/lib-chek/chek/report"

// DebugUnreachable panics when reached in debug builds (-tags debug) and does
// nothing otherwise.
//
// The panic value is a *AssertionError whose text is
// "internal error: entered unreachable code", followed by ": " and the
// formatted message when msgAndArgs is given.
//
//	if value < 0 {
//		chek.DebugUnreachable("value out of range %v", value)
//		value = 0
//	}
func DebugUnreachable(msgAndArgs ...any) {
	if !DebugAssertions {
		return
	}

	msg, ok := report.FormatMessage(msgAndArgs...)
	report.Unreachable(msg, ok)
}

// DebugUnreachableUnchecked marks code the caller guarantees is never reached.
//
// In debug builds it panics exactly like DebugUnreachable. In other builds it
// performs no check at all and control falls through to the following
// statements; what happens next is undefined as far as this package is
// concerned. Reaching it is a contract violation by the caller, so only use it
// where the surrounding code is provably unreachable, and never rely on it to
// stop execution in production.
func DebugUnreachableUnchecked(msgAndArgs ...any) {
	if !DebugAssertions {
		return
	}

	msg, ok := report.FormatMessage(msgAndArgs...)
	report.Unreachable(msg, ok)
}
