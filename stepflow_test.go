package stepflow

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stepflow-io/stepflow/layout"
	"github.com/stepflow-io/stepflow/model"
	"github.com/stepflow-io/stepflow/sim"
)

func TestNew_Defaults(t *testing.T) {
	t.Parallel()
	e := New()
	require.NotNil(t, e.Simulator)

	result := e.Layout(
		[]model.Node{{ID: "a"}, {ID: "b"}},
		[]model.Edge{{Source: "a", Target: "b"}},
		layout.AlgorithmHierarchical,
		layout.Options{},
	)
	assert.Len(t, result.Nodes, 2)
	for _, n := range result.Nodes {
		assert.NotNil(t, n.Position)
	}
}

func TestNew_WithMetrics(t *testing.T) {
	t.Parallel()
	e := New(WithMetrics(prometheus.NewRegistry()))
	require.NotNil(t, e.collector)

	// Layout runs are counted; output is unchanged.
	plain := layout.Apply([]model.Node{{ID: "a"}}, nil, layout.AlgorithmGrid, layout.Options{})
	counted := e.Layout([]model.Node{{ID: "a"}}, nil, layout.AlgorithmGrid, layout.Options{})
	assert.Equal(t, plain, counted)
}

func TestEngine_Optimize(t *testing.T) {
	t.Parallel()
	e := New()
	rec := e.Optimize([]model.Node{{ID: "a"}}, nil)
	assert.Equal(t, layout.ComplexityLow, rec.Complexity)
}

func TestEngine_SimulatorRoundTrip(t *testing.T) {
	t.Parallel()
	e := New()

	cfg := &model.FlowConfig{
		Requests: map[string]model.WorkflowDefinition{
			"demo": {Root: "A", Edges: []model.EdgeDefinition{{From: "A", To: model.TerminalSuccess}}},
		},
		Steps: map[string]model.StepDefinition{"A": {Type: "t"}},
	}

	id := e.Simulator.CreateTrace("demo", nil, nil)
	err := e.Simulator.StartSimulation(context.Background(), id, cfg, "demo", sim.Options{})
	require.NoError(t, err)

	trace, ok := e.Simulator.GetTrace(id)
	require.True(t, ok)
	assert.Equal(t, sim.TraceSuccess, trace.Status)
}
