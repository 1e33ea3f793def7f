// Package report turns a failed relation into a fatal diagnostic.
//
// Every reporting function panics with a *AssertionError whose Error method
// yields the diagnostic text:
//
//	assertion failed: `chek::equal!(left, right)`
//	  left: `4` = `2+2`,
//	 right: `5` = `5`
//
// Two strategies exist and are chosen at build time. The default keeps the
// reporting functions out of line (//go:noinline) and renders the text only
// when Error is called. Building with -tags chek_inline_panics compiles small
// inlinable reporters that render the text where the assertion failed. Both
// produce the same text.
package report
