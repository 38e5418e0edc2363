package view

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uJhin/qsched/internal/sched"
)

type viewTestGate struct {
	kind   sched.Kind
	qubits []int
	cycle  int
}

func (g *viewTestGate) Kind() sched.Kind          { return g.kind }
func (g *viewTestGate) QubitOperands() []int      { return g.qubits }
func (g *viewTestGate) ClassicalOperands() []int  { return nil }
func (g *viewTestGate) Duration() int             { return 1 }
func (g *viewTestGate) Cycle() int                { return g.cycle }
func (g *viewTestGate) SetCycle(c int)            { g.cycle = c }

func TestRender_ShowsCyclesAndGates(t *testing.T) {
	gates := []sched.Gate{
		&viewTestGate{kind: sched.KindGeneric, qubits: []int{0}},
		&viewTestGate{kind: sched.KindGeneric, qubits: []int{1}},
	}
	g, err := sched.NewGraph(gates, 2, 0, 1, sched.DefaultConfig())
	require.NoError(t, err)

	s := sched.NewScheduler(g, sched.DefaultConfig())
	scheduled, err := s.ScheduleUnconstrained(sched.Forward)
	require.NoError(t, err)

	m := New(g, scheduled, sched.Forward.String())
	out := m.View()
	assert.Contains(t, out, "schedule (ASAP)")
	assert.Contains(t, out, "q[0]")
	assert.Contains(t, out, "q[1]")
}

func TestUpdate_ArrowKeysMoveCursor(t *testing.T) {
	gates := []sched.Gate{
		&viewTestGate{kind: sched.KindGeneric, qubits: []int{0}, cycle: 0},
		&viewTestGate{kind: sched.KindGeneric, qubits: []int{0}, cycle: 1},
	}
	g, err := sched.NewGraph(gates, 1, 0, 1, sched.DefaultConfig())
	require.NoError(t, err)
	m := New(g, gates, "ASAP")
	assert.Equal(t, 0, m.cursorCol)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	mm := updated.(Model)
	assert.Equal(t, 1, mm.cursorCol)

	updated, _ = mm.Update(tea.KeyMsg{Type: tea.KeyLeft})
	mm = updated.(Model)
	assert.Equal(t, 0, mm.cursorCol)
}
