//go:build unit

package metrics

import (
	"context"
	"sync"
	"testing"

	constant "github.com/LerianStudio/lib-chek/chek/constants"
	"github.com/LerianStudio/lib-chek/chek/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func newTestFactory(t *testing.T) (*MetricsFactory, *sdkmetric.ManualReader) {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	factory, err := NewMetricsFactory(mp.Meter("test-lib"), log.NewNop())
	require.NoError(t, err)

	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	return factory, reader
}

func collectSum(t *testing.T, reader *sdkmetric.ManualReader, name string) metricdata.Sum[int64] {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name == name {
				sum, ok := m.Data.(metricdata.Sum[int64])
				require.True(t, ok, "metric %q is not an int64 sum", name)

				return sum
			}
		}
	}

	t.Fatalf("metric %q not found", name)

	return metricdata.Sum[int64]{}
}

func TestNewMetricsFactory(t *testing.T) {
	_, err := NewMetricsFactory(nil, log.NewNop())
	require.ErrorIs(t, err, ErrNilMeter)

	factory, err := NewMetricsFactory(sdkmetric.NewMeterProvider().Meter("x"), nil)
	require.NoError(t, err)
	assert.NotNil(t, factory.logger)
}

func TestCounterBuilder(t *testing.T) {
	factory, reader := newTestFactory(t)

	counter, err := factory.Counter(MetricAssertionFailed)
	require.NoError(t, err)
	assert.Equal(t, constant.MetricAssertionFailedTotal, counter.Name())

	require.NoError(t, counter.AddOne(context.Background()))
	require.NoError(t, counter.Add(context.Background(), 2))

	sum := collectSum(t, reader, constant.MetricAssertionFailedTotal)
	assert.True(t, sum.IsMonotonic)
	require.Len(t, sum.DataPoints, 1)
	assert.Equal(t, int64(3), sum.DataPoints[0].Value)
}

func TestCounterBuilderAttributesAreImmutable(t *testing.T) {
	factory, reader := newTestFactory(t)

	base, err := factory.Counter(MetricAssertionFailed)
	require.NoError(t, err)

	eq := base.WithLabels(map[string]string{constant.LabelConstruct: "eq"})
	lt := base.WithAttributes(attribute.String(constant.LabelConstruct, "lt"))

	require.NoError(t, eq.AddOne(context.Background()))
	require.NoError(t, eq.WithLabels(map[string]string{constant.LabelComponent: "ledger"}).AddOne(context.Background()))
	require.NoError(t, lt.AddOne(context.Background()))

	assert.Empty(t, base.attrs)
	assert.Len(t, eq.attrs, 1)

	sum := collectSum(t, reader, constant.MetricAssertionFailedTotal)
	assert.Len(t, sum.DataPoints, 3)
}

func TestCounterIsCached(t *testing.T) {
	factory, _ := newTestFactory(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := factory.Counter(MetricAssertionFailed)
			assert.NoError(t, err)
		}()
	}

	wg.Wait()

	count := 0
	factory.counters.Range(func(_, _ any) bool {
		count++
		return true
	})
	assert.Equal(t, 1, count)
}

func TestCounterBuilderNilCounter(t *testing.T) {
	var nilBuilder *CounterBuilder
	assert.ErrorIs(t, nilBuilder.AddOne(context.Background()), ErrNilCounter)
	assert.ErrorIs(t, (&CounterBuilder{}).Add(context.Background(), 1), ErrNilCounter)
}

func TestNopFactory(t *testing.T) {
	counter, err := NewNopFactory().Counter(MetricAssertionFailed)
	require.NoError(t, err)
	assert.NoError(t, counter.AddOne(context.Background()))
}
