package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleUniform_FlattensWideBundle(t *testing.T) {
	// four independent single-qubit gates all land in the first ASAP
	// bundle, with a fifth gate depending on the first pushed one cycle
	// later; balancing should pull gates out of the wide first bundle
	// into the narrower second one until neither exceeds the target.
	gates := []Gate{
		q(KindGeneric, 0),
		q(KindGeneric, 1),
		q(KindGeneric, 2),
		q(KindGeneric, 3),
		q(KindGeneric, 0), // depends on gates[0], forces a second bundle
	}
	g, err := NewGraph(gates, 4, 0, 1, DefaultConfig())
	require.NoError(t, err)

	s := NewScheduler(g, DefaultConfig())
	out, err := s.ScheduleUniform()
	require.NoError(t, err)
	require.Len(t, out, 5)

	counts := map[int]int{}
	for _, gate := range out {
		counts[gate.Cycle()]++
	}
	for cycle, n := range counts {
		assert.LessOrEqualf(t, n, 3, "cycle %d overcrowded after uniform balancing", cycle)
	}
}

func TestScheduleUniform_PreservesDependences(t *testing.T) {
	gates := []Gate{
		q(KindGeneric, 0),
		q(KindGeneric, 0),
	}
	g, err := NewGraph(gates, 1, 0, 1, DefaultConfig())
	require.NoError(t, err)

	s := NewScheduler(g, DefaultConfig())
	out, err := s.ScheduleUniform()
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.LessOrEqual(t, out[0].Cycle(), out[1].Cycle())
}

func TestScheduleUniform_NeverLengthensProgram(t *testing.T) {
	// a chain plus independent singletons: balancing must never push the
	// schedule's maximum cycle past the ASAP schedule's cycle_count.
	gates := []Gate{
		q(KindGeneric, 0),
		q(KindGeneric, 0),
		q(KindGeneric, 1),
		q(KindGeneric, 2),
	}
	g, err := NewGraph(gates, 3, 0, 1, DefaultConfig())
	require.NoError(t, err)

	s := NewScheduler(g, DefaultConfig())
	asapCycleCount := 0
	{
		unconstrained := NewScheduler(g, DefaultConfig())
		asapOut, err := unconstrained.ScheduleUnconstrained(Forward)
		require.NoError(t, err)
		for _, gate := range asapOut {
			if gate.Cycle() > asapCycleCount {
				asapCycleCount = gate.Cycle()
			}
		}
	}

	out, err := s.ScheduleUniform()
	require.NoError(t, err)
	for _, gate := range out {
		assert.LessOrEqualf(t, gate.Cycle(), asapCycleCount, "uniform balancing lengthened the schedule")
	}
}
