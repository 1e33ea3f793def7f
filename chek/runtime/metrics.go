package runtime

import (
	"context"
	"sync"

	constant "github.com/LerianStudio/lib-chek/chek/constants"
	"github.com/LerianStudio/lib-chek/chek/internal/nilcheck"
	"github.com/LerianStudio/lib-chek/chek/log"
	"github.com/LerianStudio/lib-chek/chek/opentelemetry/metrics"
)

// AssertionMetrics counts recovered assertion failures.
type AssertionMetrics struct {
	factory *metrics.MetricsFactory
	logger  log.Logger
}

var (
	assertionMetricsInstance *AssertionMetrics
	assertionMetricsMu       sync.RWMutex
)

// InitAssertionMetrics installs the factory used for assertion_failed_total.
// The optional logger receives metric recording diagnostics. A nil factory is
// ignored, and only the first successful call takes effect.
func InitAssertionMetrics(factory *metrics.MetricsFactory, logger ...log.Logger) {
	assertionMetricsMu.Lock()
	defer assertionMetricsMu.Unlock()

	if factory == nil || assertionMetricsInstance != nil {
		return
	}

	var l log.Logger
	if len(logger) > 0 {
		l = logger[0]
	}

	assertionMetricsInstance = &AssertionMetrics{
		factory: factory,
		logger:  l,
	}
}

// GetAssertionMetrics returns the installed instance, or nil.
func GetAssertionMetrics() *AssertionMetrics {
	assertionMetricsMu.RLock()
	defer assertionMetricsMu.RUnlock()

	return assertionMetricsInstance
}

// ResetAssertionMetrics clears the singleton. Intended for tests.
func ResetAssertionMetrics() {
	assertionMetricsMu.Lock()
	defer assertionMetricsMu.Unlock()

	assertionMetricsInstance = nil
}

// RecordAssertionFailed increments assertion_failed_total.
func (am *AssertionMetrics) RecordAssertionFailed(ctx context.Context, construct, component, goroutineName string) {
	if am == nil || am.factory == nil {
		return
	}

	counter, err := am.factory.Counter(metrics.MetricAssertionFailed)
	if err != nil {
		am.warn(ctx, "failed to create assertion metric counter", err)
		return
	}

	err = counter.
		WithLabels(map[string]string{
			constant.LabelConstruct: constant.SanitizeMetricLabel(construct),
			constant.LabelComponent: constant.SanitizeMetricLabel(component),
			"goroutine_name":        constant.SanitizeMetricLabel(goroutineName),
		}).
		AddOne(ctx)
	if err != nil {
		am.warn(ctx, "failed to record assertion metric", err)
	}
}

func (am *AssertionMetrics) warn(ctx context.Context, msg string, err error) {
	if !nilcheck.Nil(am.logger) {
		am.logger.Log(ctx, log.LevelWarn, msg, log.Err(err))
	}
}

func recordAssertionMetric(ctx context.Context, construct, component, goroutineName string) {
	if am := GetAssertionMetrics(); am != nil {
		am.RecordAssertionFailed(ctx, construct, component, goroutineName)
	}
}
