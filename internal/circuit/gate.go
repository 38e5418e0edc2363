// Package circuit loads straight-line quantum programs — from QASM-like
// text or from a YAML program description — into the operand-indexed
// gate sequences internal/sched schedules.
package circuit

import "github.com/uJhin/qsched/internal/sched"

// Gate is a concrete, loader-produced instruction. Duration defaults to
// 1 cycle unless a platform's per-gate timing model overrides it.
type Gate struct {
	Name      string
	GateKind  sched.Kind
	Qubits    []int
	Classical []int
	DurationC int

	cycle int
}

func (g *Gate) Kind() sched.Kind          { return g.GateKind }
func (g *Gate) QubitOperands() []int      { return g.Qubits }
func (g *Gate) ClassicalOperands() []int  { return g.Classical }
func (g *Gate) Cycle() int                { return g.cycle }
func (g *Gate) SetCycle(cycle int)        { g.cycle = cycle }

func (g *Gate) Duration() int {
	if g.DurationC <= 0 {
		return 1
	}
	return g.DurationC
}
