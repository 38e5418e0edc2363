package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildDiamond makes SOURCE -> {a, b} -> c -> SINK, where a has a longer
// duration than b, so a should come out more critical under forward
// remaining.
func buildDiamond(t *testing.T) *Graph {
	t.Helper()
	gates := []Gate{
		qd(KindGeneric, 3, 0), // node 1: "a", writes qubit 0
		q(KindGeneric, 1),     // node 2: "b", writes qubit 1
		func() Gate {
			gt := &testGate{kind: KindGeneric, qubits: []int{0, 1}, duration: 1}
			return gt
		}(), // node 3: "c", reads/writes both
	}
	g, err := NewGraph(gates, 2, 0, 1, DefaultConfig())
	require.NoError(t, err)
	return g
}

func TestCriticalityLess_LongerRemainingWins(t *testing.T) {
	g := buildDiamond(t)
	rem := ComputeRemaining(g, Forward)
	// node 1 ("a") has a heavier out-arc to node 3 than node 2 ("b"),
	// so it must have a strictly larger remaining value.
	assert.Greater(t, rem[1], rem[2])
	assert.True(t, criticalityLess(g, rem, Forward, 2, 1))
	assert.False(t, criticalityLess(g, rem, Forward, 1, 2))
}

func TestCriticalityLess_Irreflexive(t *testing.T) {
	g := buildDiamond(t)
	rem := ComputeRemaining(g, Forward)
	assert.False(t, criticalityLess(g, rem, Forward, 1, 1))
}

func TestAvailableList_InsertOrdersMostCriticalFirst(t *testing.T) {
	g := buildDiamond(t)
	rem := ComputeRemaining(g, Forward)

	al := &availableList{}
	al.insert(g, rem, Forward, 2) // less critical, inserted first
	al.insert(g, rem, Forward, 1) // more critical, should jump ahead

	require.Len(t, al.order, 2)
	assert.Equal(t, 1, al.order[0], "more critical node must sort first")
	assert.Equal(t, 2, al.order[1])
}

func TestAvailableList_ContainsAndRemove(t *testing.T) {
	g := buildDiamond(t)
	rem := ComputeRemaining(g, Forward)

	al := &availableList{}
	al.insert(g, rem, Forward, 1)
	assert.True(t, al.contains(1))
	assert.False(t, al.contains(2))

	al.remove(1)
	assert.False(t, al.contains(1))
	assert.True(t, al.empty())
}
