// Package zap implements log.Logger on top of go.uber.org/zap.
package zap
