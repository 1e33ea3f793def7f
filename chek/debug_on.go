//go:build debug

package chek

// DebugAssertions reports whether the Debug* constructs are compiled in.
// It is true when building with -tags debug.
const DebugAssertions = true
