package sched

import (
	"sort"

	"github.com/google/uuid"
)

// alapSinkCycle is the large sentinel ALAP scheduling counts down from
// (spec §4.5 step 2), chosen so every legal backward cycle lands
// non-negative before the mandatory final shift in finalizeSchedule.
const alapSinkCycle = 1 << 30

// Logger is the minimal structured-logging surface the scheduler emits
// diagnostics through. internal/logging's *Logger satisfies it.
type Logger interface {
	Debug(msg string, kv ...any)
	Info(msg string, kv ...any)
	Warn(msg string, kv ...any)
	Error(msg string, kv ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// Scheduler runs the critical-path list scheduler over a single
// dependence Graph. Per spec §5, an instance is not reentrant and holds
// no state shared across distinct regions — build one Graph and
// Scheduler per region.
type Scheduler struct {
	graph *Graph
	cfg   Config
	log   Logger
	RunID uuid.UUID
}

// NewScheduler wraps graph for scheduling under cfg. A random RunID is
// assigned for log correlation across the Available/Reserve calls this
// instance makes against a resource oracle.
func NewScheduler(graph *Graph, cfg Config) *Scheduler {
	return &Scheduler{graph: graph, cfg: cfg, log: nopLogger{}, RunID: uuid.New()}
}

// SetLogger attaches a structured logger; nil restores the no-op default.
func (s *Scheduler) SetLogger(l Logger) {
	if l == nil {
		l = nopLogger{}
	}
	s.log = l
}

// Graph returns the dependence graph this scheduler operates over, for
// introspection (remaining values, SOURCE/SINK cycles, DOT export).
func (s *Scheduler) Graph() *Graph { return s.graph }

func tentativeCycle(g *Graph, n int, dir Direction) int {
	if dir == Forward {
		cur := 0
		for _, ai := range g.in[n] {
			arc := g.Arcs[ai]
			if v := g.Nodes[arc.Source].Gate.Cycle() + arc.Weight; v > cur {
				cur = v
			}
		}
		return cur
	}
	cur := alapSinkCycle
	for _, ai := range g.out[n] {
		arc := g.Arcs[ai]
		if v := g.Nodes[arc.Target].Gate.Cycle() - arc.Weight; v < cur {
			cur = v
		}
	}
	return cur
}

// makeAvailable assigns n's tentative cycle (computed once, from the
// now-final cycles of its counter-direction neighbors) and inserts it
// into avail at its deep-criticality position, unless already present.
func (s *Scheduler) makeAvailable(avail *availableList, rem Remaining, dir Direction, n int) {
	if avail.contains(n) {
		s.log.Debug("duplicate make-available", "node", s.graph.Name(n))
		return
	}
	g := s.graph
	g.Nodes[n].Gate.SetCycle(tentativeCycle(g, n, dir))
	avail.insert(g, rem, dir, n)
}

func allScheduled(g *Graph, scheduled []bool, ids []int) bool {
	for _, id := range ids {
		if !scheduled[id] {
			return false
		}
	}
	return true
}

// takeAvailable removes n from avail, marks it scheduled, and makes
// available every neighbor in the scheduling direction whose
// counter-direction neighbors are now all scheduled — spec §4.5 step (c).
func (s *Scheduler) takeAvailable(avail *availableList, scheduled []bool, rem Remaining, dir Direction, n int) {
	g := s.graph
	scheduled[n] = true
	avail.remove(n)

	if dir == Forward {
		for _, succ := range g.Successors(n) {
			if allScheduled(g, scheduled, g.Predecessors(succ)) {
				s.makeAvailable(avail, rem, dir, succ)
			}
		}
	} else {
		for _, pred := range g.Predecessors(n) {
			if allScheduled(g, scheduled, g.Successors(pred)) {
				s.makeAvailable(avail, rem, dir, pred)
			}
		}
	}
}

// dependenceReady reports whether n's dependences have completed by
// currentCycle, using the tentative cycle assigned when it was made
// available (spec §4.5 step (a)).
func dependenceReady(g *Graph, dir Direction, n, currentCycle int) bool {
	cycle := g.Nodes[n].Gate.Cycle()
	if dir == Forward {
		return cycle <= currentCycle
	}
	return currentCycle <= cycle
}

// selectAvailable scans avail (already deep-criticality ordered highest
// first) and returns the first node that is both dependence-ready and
// resource-ready at currentCycle, per spec §4.5 step (a).
func (s *Scheduler) selectAvailable(avail *availableList, dir Direction, currentCycle int, oracle ResourceOracle) (int, bool) {
	g := s.graph
	for _, n := range avail.order {
		if !dependenceReady(g, dir, n, currentCycle) {
			continue
		}
		if bypassesResources(g, n) {
			return n, true
		}
		if oracle == nil || oracle.Available(currentCycle, g.Nodes[n].Gate) {
			return n, true
		}
	}
	return 0, false
}

// finalizeSchedule performs the mandatory ALAP normalization (spec §4.5
// step 5 / §9's "Backward-direction shift" note): subtract SOURCE's
// cycle from every node so SOURCE lands at 0. A no-op for Forward.
func (s *Scheduler) finalizeSchedule(dir Direction) {
	if dir != Backward {
		return
	}
	g := s.graph
	shift := g.Nodes[g.Source].Gate.Cycle()
	if shift == 0 {
		return
	}
	for _, n := range g.Nodes {
		n.Gate.SetCycle(n.Gate.Cycle() - shift)
	}
}

// sortedGates returns the real (non-synthetic) gates stable-sorted by
// assigned cycle ascending — spec §4.5 step 4's "stable-sort the gate
// sequence by cycle ascending", restricted to caller-visible gates.
func (s *Scheduler) sortedGates() []Gate {
	g := s.graph
	out := make([]Gate, 0, len(g.Nodes)-2)
	for _, n := range g.Nodes {
		if n.ID == g.Source || n.ID == g.Sink {
			continue
		}
		out = append(out, n.Gate)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Cycle() < out[j].Cycle() })
	return out
}

// progressGuardBound bounds the number of consecutive cycle-advances
// with no successful selection before ResourceStarvation is declared
// (spec §7): generously proportional to the longest remaining path plus
// the node count, so a legitimately long resource wait is never mistaken
// for starvation.
func progressGuardBound(rem Remaining, nodeCount int) int {
	max := 0
	for _, r := range rem {
		if r > max {
			max = r
		}
	}
	return (max+nodeCount+1)*4 + 64
}

// ScheduleWithResources implements the resource-constrained list
// scheduler of spec §4.5: build/consult remaining, seed the available
// list with SOURCE (Forward) or SINK (Backward), then repeatedly select
// the most deep-critical ready node, commit it (reserving resources for
// non-bypass gates), and expand the available list, advancing
// current_cycle whenever nothing is selectable. Returns the scheduled
// gates in cycle order.
func (s *Scheduler) ScheduleWithResources(dir Direction, oracle ResourceOracle) ([]Gate, error) {
	g := s.graph
	rem := ComputeRemaining(g, dir)
	scheduled := make([]bool, len(g.Nodes))

	avail := &availableList{}
	var currentCycle int
	if dir == Forward {
		g.Nodes[g.Source].Gate.SetCycle(0)
		avail.order = []int{g.Source}
		currentCycle = 0
	} else {
		g.Nodes[g.Sink].Gate.SetCycle(alapSinkCycle)
		avail.order = []int{g.Sink}
		currentCycle = alapSinkCycle
	}

	guardBound := progressGuardBound(rem, len(g.Nodes))
	stalled := 0

	for !avail.empty() {
		selected, ok := s.selectAvailable(avail, dir, currentCycle, oracle)
		if !ok {
			if dir == Forward {
				currentCycle++
			} else {
				currentCycle--
			}
			stalled++
			if stalled > guardBound {
				n := avail.order[0]
				err := &StarvationError{NodeID: n, Gate: g.Nodes[n].Gate}
				s.log.Error("resource starvation", "run", s.RunID, "node", g.Name(n))
				return nil, err
			}
			continue
		}
		stalled = 0

		gate := g.Nodes[selected].Gate
		gate.SetCycle(currentCycle)
		if !bypassesResources(g, selected) {
			oracle.Reserve(currentCycle, gate)
		}
		s.log.Debug("scheduled", "run", s.RunID, "node", g.Name(selected), "cycle", currentCycle)
		s.takeAvailable(avail, scheduled, rem, dir, selected)
	}

	s.finalizeSchedule(dir)
	return s.sortedGates(), nil
}

// ScheduleUnconstrained implements spec §4.6: with no resource check,
// cycle assignment has a closed form. Since Graph construction stores
// nodes in a topological order (SOURCE, gates in program order, SINK),
// a single forward or reverse scan over cycle_gate's formula suffices —
// no available list is needed.
func (s *Scheduler) ScheduleUnconstrained(dir Direction) ([]Gate, error) {
	g := s.graph
	if dir == Forward {
		g.Nodes[g.Source].Gate.SetCycle(0)
		for i := 1; i < len(g.Nodes); i++ {
			cur := 0
			for _, ai := range g.in[i] {
				arc := g.Arcs[ai]
				if v := g.Nodes[arc.Source].Gate.Cycle() + arc.Weight; v > cur {
					cur = v
				}
			}
			g.Nodes[i].Gate.SetCycle(cur)
		}
	} else {
		g.Nodes[g.Sink].Gate.SetCycle(alapSinkCycle)
		for i := len(g.Nodes) - 2; i >= 0; i-- {
			cur := alapSinkCycle
			for _, ai := range g.out[i] {
				arc := g.Arcs[ai]
				if v := g.Nodes[arc.Target].Gate.Cycle() - arc.Weight; v < cur {
					cur = v
				}
			}
			g.Nodes[i].Gate.SetCycle(cur)
		}
		s.finalizeSchedule(Backward)
	}
	return s.sortedGates(), nil
}
