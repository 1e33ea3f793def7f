package chek

// Equal panics if left and right are not equal.
//
// Both operands are evaluated once by the caller. On failure the panic value
// is a *AssertionError showing each value and the source text that produced
// it. msgAndArgs is an optional message: a format string followed by its
// arguments, formatted only when the assertion fails.
//
//	chek.Equal(len(items), 4)
//	chek.Equal(got, want, "decoding %s", name)
func Equal[T comparable](left, right T, msgAndArgs ...any) {
	checkEqual(constructEqual, left, right, msgAndArgs)
}

// Eq is an alias of Equal.
func Eq[T comparable](left, right T, msgAndArgs ...any) {
	checkEqual(constructEq, left, right, msgAndArgs)
}

// NotEqual panics if left and right are equal.
//
//	chek.NotEqual(id, "", "id must be assigned")
func NotEqual[T comparable](left, right T, msgAndArgs ...any) {
	checkNotEqual(constructNotEqual, left, right, msgAndArgs)
}

// Ne is an alias of NotEqual.
func Ne[T comparable](left, right T, msgAndArgs ...any) {
	checkNotEqual(constructNe, left, right, msgAndArgs)
}
