//go:build !chek_inline_panics

package report

// Strategy names the reporting strategy compiled into this build.
const Strategy = "out-of-line"

// Cmp reports a failed binary relation. It never returns.
//
// The diagnostic text is rendered lazily by AssertionError.Error so the
// passing path of every construct only carries a call to this function.
//
//go:noinline
func Cmp(name string, left, right any, leftExpr, rightExpr string) {
	panic(cmpError(name, left, right, leftExpr, rightExpr))
}

// CmpMsg is Cmp with a caller-supplied message.
//
//go:noinline
func CmpMsg(name string, left, right any, leftExpr, rightExpr, msg string) {
	entry := cmpError(name, left, right, leftExpr, rightExpr)
	entry.Message, entry.HasMessage = msg, true

	panic(entry)
}

// Value reports a failed single-operand relation. It never returns.
//
//go:noinline
func Value(name string, value any, valueExpr string) {
	panic(valueError(name, value, valueExpr))
}

// ValueMsg is Value with a caller-supplied message.
//
//go:noinline
func ValueMsg(name string, value any, valueExpr, msg string) {
	entry := valueError(name, value, valueExpr)
	entry.Message, entry.HasMessage = msg, true

	panic(entry)
}

// Unreachable reports that code marked unreachable was entered.
//
//go:noinline
func Unreachable(msg string, hasMsg bool) {
	panic(&AssertionError{Construct: UnreachableName, Message: msg, HasMessage: hasMsg})
}
