package chek

import "github.com/LerianStudio/lib-chek/chek/report"

// AssertionError is the value every failed construct panics with.
type AssertionError = report.AssertionError

// Operand is one evaluated argument recorded in an AssertionError.
type Operand = report.Operand

// ErrAssertionFailed is the sentinel matched by errors.Is for any AssertionError.
var ErrAssertionFailed = report.ErrAssertionFailed
