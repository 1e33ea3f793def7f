//go:build chek_inline_panics

package report

// Strategy names the reporting strategy compiled into this build.
const Strategy = "inline"

// Each entry point below is a single panic of an out-of-line constructor so it
// stays within the compiler's inlining budget. The constructors render the
// diagnostic text eagerly, before the panic unwinds.

// Cmp reports a failed binary relation. It never returns.
func Cmp(name string, left, right any, leftExpr, rightExpr string) {
	panic(renderedCmp(name, left, right, leftExpr, rightExpr, "", false))
}

// CmpMsg is Cmp with a caller-supplied message.
func CmpMsg(name string, left, right any, leftExpr, rightExpr, msg string) {
	panic(renderedCmp(name, left, right, leftExpr, rightExpr, msg, true))
}

// Value reports a failed single-operand relation. It never returns.
func Value(name string, value any, valueExpr string) {
	panic(renderedValue(name, value, valueExpr, "", false))
}

// ValueMsg is Value with a caller-supplied message.
func ValueMsg(name string, value any, valueExpr, msg string) {
	panic(renderedValue(name, value, valueExpr, msg, true))
}

// Unreachable reports that code marked unreachable was entered.
func Unreachable(msg string, hasMsg bool) {
	panic(renderedUnreachable(msg, hasMsg))
}

//go:noinline
func renderedCmp(name string, left, right any, leftExpr, rightExpr, msg string, hasMsg bool) *AssertionError {
	entry := cmpError(name, left, right, leftExpr, rightExpr)
	entry.Message, entry.HasMessage = msg, hasMsg
	entry.text = formatCmp(name, left, right, leftExpr, rightExpr, msg, hasMsg)

	return entry
}

//go:noinline
func renderedValue(name string, value any, valueExpr, msg string, hasMsg bool) *AssertionError {
	entry := valueError(name, value, valueExpr)
	entry.Message, entry.HasMessage = msg, hasMsg
	entry.text = formatValue(name, value, valueExpr, msg, hasMsg)

	return entry
}

//go:noinline
func renderedUnreachable(msg string, hasMsg bool) *AssertionError {
	return &AssertionError{
		Construct:  UnreachableName,
		Message:    msg,
		HasMessage: hasMsg,
		text:       formatUnreachable(msg, hasMsg),
	}
}
