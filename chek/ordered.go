package chek

import "cmp"

// Less panics unless left < right.
//
// A NaN operand always fails.
//
//	chek.Less(index, len(buf))
func Less[T cmp.Ordered](left, right T, msgAndArgs ...any) {
	checkOrdered(constructLess, left, right, msgAndArgs)
}

// Lt is an alias of Less.
func Lt[T cmp.Ordered](left, right T, msgAndArgs ...any) {
	checkOrdered(constructLt, left, right, msgAndArgs)
}

// LessOrEqual panics unless left <= right.
func LessOrEqual[T cmp.Ordered](left, right T, msgAndArgs ...any) {
	checkOrdered(constructLessEq, left, right, msgAndArgs)
}

// Le is an alias of LessOrEqual.
func Le[T cmp.Ordered](left, right T, msgAndArgs ...any) {
	checkOrdered(constructLe, left, right, msgAndArgs)
}

// Greater panics unless left > right.
func Greater[T cmp.Ordered](left, right T, msgAndArgs ...any) {
	checkOrdered(constructGreater, left, right, msgAndArgs)
}

// Gt is an alias of Greater.
func Gt[T cmp.Ordered](left, right T, msgAndArgs ...any) {
	checkOrdered(constructGt, left, right, msgAndArgs)
}

// GreaterOrEqual panics unless left >= right.
func GreaterOrEqual[T cmp.Ordered](left, right T, msgAndArgs ...any) {
	checkOrdered(constructGreaterEq, left, right, msgAndArgs)
}

// Ge is an alias of GreaterOrEqual.
func Ge[T cmp.Ordered](left, right T, msgAndArgs ...any) {
	checkOrdered(constructGe, left, right, msgAndArgs)
}
