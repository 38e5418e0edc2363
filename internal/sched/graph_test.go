package sched

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGraph_LinearWriteChain(t *testing.T) {
	gates := []Gate{
		q(KindGeneric, 0),
		q(KindGeneric, 0),
		q(KindGeneric, 0),
	}
	g, err := NewGraph(gates, 1, 0, 1, DefaultConfig())
	require.NoError(t, err)

	// every generic gate writes qubit 0, so each must depend on the one
	// directly before it (WAW), and SOURCE must feed the first.
	assert.ElementsMatch(t, []int{g.Source}, g.Predecessors(1))
	assert.ElementsMatch(t, []int{1}, g.Predecessors(2))
	assert.ElementsMatch(t, []int{3}, g.Predecessors(g.Sink))
}

func TestNewGraph_CNotCommutes(t *testing.T) {
	// two CNOTs sharing the same control qubit commute on that operand
	// when scheduler_commute is enabled: neither should gate the other.
	gates := []Gate{
		q(KindCNot, 0, 1),
		q(KindCNot, 0, 2),
	}
	cfg := DefaultConfig()
	cfg.Commute = true
	g, err := NewGraph(gates, 3, 0, 1, cfg)
	require.NoError(t, err)

	assert.NotContains(t, g.Predecessors(2), 1, "reads of a shared control qubit should commute under scheduler_commute")
}

func TestNewGraph_CNotNoCommuteSerializes(t *testing.T) {
	gates := []Gate{
		q(KindCNot, 0, 1),
		q(KindCNot, 0, 2),
	}
	cfg := DefaultConfig()
	cfg.Commute = false
	g, err := NewGraph(gates, 3, 0, 1, cfg)
	require.NoError(t, err)

	assert.Contains(t, g.Predecessors(2), 1, "disabling commute must serialize reads of a shared control qubit")
}

func TestNewGraph_CNotWrongOperandCount(t *testing.T) {
	gates := []Gate{q(KindCNot, 0)}
	_, err := NewGraph(gates, 2, 0, 1, DefaultConfig())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInconsistentCommutativity))
}

func TestNewGraph_MeasurementWritesClassical(t *testing.T) {
	gates := []Gate{
		&testGate{kind: KindMeasurement, qubits: []int{0}, classical: []int{0}, duration: 1},
		&testGate{kind: KindClassical, classical: []int{0}, duration: 1},
	}
	g, err := NewGraph(gates, 1, 1, 1, DefaultConfig())
	require.NoError(t, err)
	assert.Contains(t, g.Predecessors(2), 1, "classical read/write must depend on the measurement that wrote the register")
}

func TestNewGraph_ArcWeightFromDuration(t *testing.T) {
	gates := []Gate{
		qd(KindGeneric, 5, 0),
		q(KindGeneric, 0),
	}
	g, err := NewGraph(gates, 1, 0, 2, DefaultConfig())
	require.NoError(t, err)

	var found bool
	for _, a := range g.Arcs {
		if a.Source == 1 && a.Target == 2 {
			found = true
			assert.Equal(t, 3, a.Weight) // ceil(5/2) = 3
		}
	}
	assert.True(t, found, "expected an arc from the duration-5 gate to its successor")
}

func TestNewGraph_IndependentOperandsNoArc(t *testing.T) {
	gates := []Gate{
		q(KindGeneric, 0),
		q(KindGeneric, 1),
	}
	g, err := NewGraph(gates, 2, 0, 1, DefaultConfig())
	require.NoError(t, err)
	assert.NotContains(t, g.Predecessors(2), 1, "gates on disjoint operands must not depend on each other")
}

func TestWriteDOT_ContainsNodesAndArcs(t *testing.T) {
	gates := []Gate{q(KindGeneric, 0)}
	g, err := NewGraph(gates, 1, 0, 1, DefaultConfig())
	require.NoError(t, err)
	out := WriteDOT(g)
	assert.Contains(t, out, "digraph dependence_graph")
	assert.Contains(t, out, "SOURCE")
	assert.Contains(t, out, "SINK")
}
