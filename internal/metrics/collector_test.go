package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestCollector(t *testing.T) *Collector {
	t.Helper()
	return NewCollector("stepflow_test", prometheus.NewRegistry(), zap.NewNop())
}

func TestCollector_RecordPlanBuilt(t *testing.T) {
	t.Parallel()
	c := newTestCollector(t)

	c.RecordPlanBuilt("checkout", 4)
	c.RecordPlanBuilt("checkout", 2)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.plansBuilt.WithLabelValues("checkout")))
}

func TestCollector_RecordStep(t *testing.T) {
	t.Parallel()
	c := newTestCollector(t)

	c.RecordStep("success", 300*time.Millisecond)
	c.RecordStep("success", 700*time.Millisecond)
	c.RecordStep("failed", 100*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.stepsTotal.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.stepsTotal.WithLabelValues("failed")))
}

func TestCollector_RecordTrace(t *testing.T) {
	t.Parallel()
	c := newTestCollector(t)

	c.RecordTrace("success", 2*time.Second)
	assert.Equal(t, 1.0, testutil.ToFloat64(c.tracesTotal.WithLabelValues("success")))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.tracesTotal.WithLabelValues("failed")))
}

func TestCollector_RecordLayout(t *testing.T) {
	t.Parallel()
	c := newTestCollector(t)

	c.RecordLayout("hierarchical")
	c.RecordLayout("hierarchical")
	c.RecordLayout("grid")

	assert.Equal(t, 2.0, testutil.ToFloat64(c.layoutRuns.WithLabelValues("hierarchical")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.layoutRuns.WithLabelValues("grid")))
}
