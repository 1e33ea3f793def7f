package report

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAssertionFailed is the sentinel error for failed assertions.
var ErrAssertionFailed = errors.New("assertion failed")

// Diagnostic formats shared by every reporting strategy. The format strings and
// their argument order are part of the public contract.
const (
	cmpHeader      = "assertion failed: `chek::%s!(left, right)`"
	cmpMsgHeader   = "assertion failed: `chek::%s!(left, right): %s`"
	cmpBody        = "\n  left: `%#v` = `%s`,\n right: `%#v` = `%s`"
	valueHeader    = "assertion failed: `chek::%s!(value)`"
	valueMsgHeader = "assertion failed: `chek::%s!(value): %s`"
	valueBody      = "\n value: `%#v` = `%s`"

	unreachableText = "internal error: entered unreachable code"
)

// Operand labels as they appear in diagnostics.
const (
	LabelLeft  = "left"
	LabelRight = "right"
	LabelValue = "value"
)

// UnreachableName is the construct name carried by unreachable failures.
const UnreachableName = "debug_unreachable"

// Operand is one evaluated argument of a failed assertion.
type Operand struct {
	Label string
	Expr  string
	Value any
}

// AssertionError is the panic value raised by a failed assertion.
//
// It is never returned by the chek package; it only travels inside the panic
// and can be inspected by whoever recovers it.
type AssertionError struct {
	// Construct is the diagnostic name of the failing construct, e.g. "debug_eq".
	Construct string
	Operands  []Operand
	// Message is the caller-supplied message, already formatted.
	Message    string
	HasMessage bool

	text string
}

// Error returns the diagnostic text.
func (entry *AssertionError) Error() string {
	if entry == nil {
		return ErrAssertionFailed.Error()
	}

	if entry.text != "" {
		return entry.text
	}

	return entry.render()
}

// Unwrap returns the sentinel assertion error for errors.Is.
func (entry *AssertionError) Unwrap() error {
	return ErrAssertionFailed
}

// Operand returns the operand with the given label.
func (entry *AssertionError) Operand(label string) (Operand, bool) {
	if entry == nil {
		return Operand{}, false
	}

	for _, op := range entry.Operands {
		if op.Label == label {
			return op, true
		}
	}

	return Operand{}, false
}

func (entry *AssertionError) render() string {
	switch {
	case entry.Construct == UnreachableName:
		return formatUnreachable(entry.Message, entry.HasMessage)
	case len(entry.Operands) == 2:
		left, right := entry.Operands[0], entry.Operands[1]
		return formatCmp(entry.Construct, left.Value, right.Value, left.Expr, right.Expr, entry.Message, entry.HasMessage)
	case len(entry.Operands) == 1:
		value := entry.Operands[0]
		return formatValue(entry.Construct, value.Value, value.Expr, entry.Message, entry.HasMessage)
	default:
		return ErrAssertionFailed.Error()
	}
}

func formatCmp(name string, left, right any, leftExpr, rightExpr, msg string, hasMsg bool) string {
	if hasMsg {
		return fmt.Sprintf(cmpMsgHeader+cmpBody, name, msg, left, leftExpr, right, rightExpr)
	}

	return fmt.Sprintf(cmpHeader+cmpBody, name, left, leftExpr, right, rightExpr)
}

func formatValue(name string, value any, valueExpr, msg string, hasMsg bool) string {
	if hasMsg {
		return fmt.Sprintf(valueMsgHeader+valueBody, name, msg, value, valueExpr)
	}

	return fmt.Sprintf(valueHeader+valueBody, name, value, valueExpr)
}

func formatUnreachable(msg string, hasMsg bool) string {
	if hasMsg {
		return unreachableText + ": " + msg
	}

	return unreachableText
}

func cmpError(name string, left, right any, leftExpr, rightExpr string) *AssertionError {
	return &AssertionError{
		Construct: name,
		Operands: []Operand{
			{Label: LabelLeft, Expr: leftExpr, Value: left},
			{Label: LabelRight, Expr: rightExpr, Value: right},
		},
	}
}

func valueError(name string, value any, valueExpr string) *AssertionError {
	return &AssertionError{
		Construct: name,
		Operands:  []Operand{{Label: LabelValue, Expr: valueExpr, Value: value}},
	}
}

// FormatMessage renders an optional trailing message.
//
// An empty msgAndArgs means no message. When the first element is a string it
// is used as a fmt format string for the remaining elements; otherwise all
// elements are joined with fmt.Sprint.
func FormatMessage(msgAndArgs ...any) (string, bool) {
	if len(msgAndArgs) == 0 {
		return "", false
	}

	if format, ok := msgAndArgs[0].(string); ok {
		if len(msgAndArgs) == 1 {
			return format, true
		}

		return fmt.Sprintf(format, msgAndArgs[1:]...), true
	}

	parts := make([]string, len(msgAndArgs))
	for i, arg := range msgAndArgs {
		parts[i] = fmt.Sprint(arg)
	}

	return strings.Join(parts, " "), true
}
