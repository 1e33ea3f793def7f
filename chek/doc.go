// Package chek provides comparison assertions that report both the values and
// the source text of their operands.
//
// Unlike test assertions, these are meant for invariants inside program code.
// A passing assertion returns with no side effect; a failing one panics with a
// *AssertionError and does not return.
//
// # Constructs
//
// Each relation has a primary name, sometimes a short alias, and a debug twin:
//
//	Equal / Eq                  DebugEqual / DebugEq
//	NotEqual / Ne               DebugNotEqual / DebugNe
//	Less / Lt                   DebugLess / DebugLt
//	LessOrEqual / Le            DebugLessOrEqual / DebugLe
//	Greater / Gt                DebugGreater / DebugGt
//	GreaterOrEqual / Ge         DebugGreaterOrEqual / DebugGe
//	AlmostEqual                 DebugAlmostEqual
//	NotAlmostEqual              DebugNotAlmostEqual
//	AlmostZero                  DebugAlmostZero
//	AlmostZeroWithTolerance     DebugAlmostZeroWithTolerance
//	NotAlmostZero               DebugNotAlmostZero
//	NotAlmostZeroWith           DebugNotAlmostZeroWith
//	DebugUnreachable, DebugUnreachableUnchecked
//
// Every construct takes an optional trailing message: a format string and its
// arguments, formatted only on failure.
//
//	chek.Equal(2+2, 4)
//	chek.LessOrEqual(used, capacity, "pool %q overcommitted", name)
//
// # Diagnostics
//
// A failing Equal(2+2, 5) panics with:
//
//	assertion failed: `chek::equal!(left, right)`
//	  left: `4` = `2+2`,
//	 right: `5` = `5`
//
// The source text is read back from the caller's file (see package source).
// When the file is not available each expression is shown as "?".
//
// # Debug builds
//
// The Debug* constructs only run when the program is built with -tags debug
// (see DebugAssertions). They take their operands as functions so that
// nothing is evaluated when they are disabled:
//
//	chek.DebugLess(func() int { return q.Len() }, func() int { return q.Cap() })
//
// DebugUnreachableUnchecked places an obligation on the caller: outside debug
// builds it is not checked at all, and reaching it is a bug whose consequences
// are unspecified.
//
// # Reporting strategy
//
// Building with -tags chek_inline_panics switches the failure reporter from
// out-of-line functions to inlinable ones. Diagnostics are identical.
//
// # Recovery
//
// This package never recovers its own panics. Use package runtime to turn
// failures into errors, logs, metrics and span events at goroutine or handler
// boundaries.
package chek
