package prometrics

import (
	"bytes"
	"testing"

	"github.com/Zhima-Mochi/cafe-patterns/internal/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_CounterIsRegisteredOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := New(reg, "cafe")

	first := r.Counter("orders_total", "help", "kind")
	second := r.Counter("orders_total", "help", "kind")

	first.Add(1, observability.L("kind", "latte"))
	second.Bind(observability.L("kind", "latte")).Add(2)

	n, err := testutil.GatherAndCount(reg, "cafe_orders_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	cv := first.(*counter).v
	assert.Equal(t, 3.0, testutil.ToFloat64(cv.WithLabelValues("latte")))
}

func TestRegistry_HistogramDefaultsBuckets(t *testing.T) {
	reg := prometheus.NewRegistry()
	h := New(reg, "").Histogram("latency_seconds", "help", nil, "use_case")

	h.Observe(0.2, observability.L("use_case", "x"))
	h.Bind(observability.L("use_case", "x")).Observe(0.3)

	n, err := testutil.GatherAndCount(reg, "latency_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRegisterDefaults_AndDump(t *testing.T) {
	reg := prometheus.NewRegistry()
	counters, histograms := RegisterDefaults(New(reg, ""))

	require.Len(t, counters, 5)
	require.Len(t, histograms, 1)

	counters[observability.MPaymentsProcessed].Add(1, observability.L("provider", "paypal"))

	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, reg))
	assert.Contains(t, buf.String(), `payments_processed_total{provider="paypal"} 1`)
}
