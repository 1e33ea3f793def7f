//go:build unit

package chek

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// capture runs fn and returns the assertion failure it raised. The test fails
// if fn returns normally or panics with anything else.
func capture(t *testing.T, fn func()) *AssertionError {
	t.Helper()

	var failure *AssertionError

	func() {
		defer func() {
			r := recover()
			require.NotNil(t, r, "expected an assertion failure")

			var ok bool
			failure, ok = r.(*AssertionError)
			require.True(t, ok, "panic value %T is not *AssertionError", r)
		}()

		fn()
	}()

	return failure
}

// counter returns a function yielding 1, 2, 3... and a pointer to its call count.
func counter() (func() int, *int) {
	calls := 0

	return func() int {
		calls++
		return calls
	}, &calls
}

// reporterFrame runs fn, which must fail, and returns the stack frame of the
// report function named suffix as seen while the panic is in flight.
func reporterFrame(t *testing.T, suffix string, fn func()) runtime.Frame {
	t.Helper()

	var found runtime.Frame

	func() {
		defer func() {
			require.NotNil(t, recover())

			pcs := make([]uintptr, 64)
			frames := runtime.CallersFrames(pcs[:runtime.Callers(0, pcs)])

			for {
				frame, more := frames.Next()
				if strings.HasSuffix(frame.Function, suffix) {
					found = frame
					return
				}

				if !more {
					return
				}
			}
		}()

		fn()
	}()

	require.NotEmpty(t, found.Function, "%s not on the panicking stack", suffix)

	return found
}
