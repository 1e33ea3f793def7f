// Package source recovers the text of the expressions passed to an assertion.
//
// Go has no compile-time stringification of call arguments, so the text is
// read back from the caller's source file when an assertion fails: the call
// stack gives the file and line of the call, go/parser gives the call
// expression, and the argument spans are sliced out verbatim.
//
// Binaries built with -trimpath or deployed without their sources lose this
// information; every expression is then reported as Unknown.
package source
