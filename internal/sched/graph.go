package sched

import "fmt"

// syntheticGate backs the SOURCE and SINK nodes every Graph brackets
// itself with. SOURCE implicitly writes every operand before the
// region; SINK implicitly reads+writes every operand after it.
type syntheticGate struct {
	kind     Kind
	duration int
	cycle    int
}

func (g *syntheticGate) Kind() Kind                { return g.kind }
func (g *syntheticGate) QubitOperands() []int       { return nil }
func (g *syntheticGate) ClassicalOperands() []int   { return nil }
func (g *syntheticGate) Duration() int              { return g.duration }
func (g *syntheticGate) Cycle() int                 { return g.cycle }
func (g *syntheticGate) SetCycle(cycle int)         { g.cycle = cycle }

// Node is a single graph node: a reference to its gate (real or
// synthetic) plus a unique, dense id used to index every parallel
// per-node slice the package keeps (remaining, scheduled, adjacency).
type Node struct {
	ID   int
	Gate Gate
}

// Arc is a directed, weighted dependence: Source must be scheduled at
// least Weight cycles before Target. Operand and Kind are purely
// diagnostic.
type Arc struct {
	Source, Target int
	Weight         int
	Operand        int
	Kind           DepKind
}

// Graph is the dependence DAG built from a straight-line gate sequence.
// Nodes are stored in a dense slice indexed by id (never raw pointers,
// per spec §9's design note), with adjacency kept as arc-index lists so
// the same Arc backing slice can be reused for both directions.
type Graph struct {
	Nodes []*Node
	Arcs  []Arc
	out   [][]int // out[nodeID] = indices into Arcs
	in    [][]int // in[nodeID] = indices into Arcs

	Source int // node id of SOURCE
	Sink   int // node id of SINK

	QubitCount int
	CregCount  int
	CycleTime  int
}

// accessState is the construction-time-only last-access bookkeeping of
// spec §3: per operand, the most recent writer, and the accumulating
// sets of readers/control-targets since that writer.
type accessState struct {
	lastWriter        []int
	lastReaders       [][]int
	lastControlTarget [][]int
}

func newAccessState(operandCount, sourceID int) *accessState {
	s := &accessState{
		lastWriter:        make([]int, operandCount),
		lastReaders:       make([][]int, operandCount),
		lastControlTarget: make([][]int, operandCount),
	}
	for i := range s.lastWriter {
		s.lastWriter[i] = sourceID
	}
	return s
}

// NewGraph builds the dependence graph for gates, a straight-line
// sequence over qubitCount qubits and cregCount classical registers,
// honoring cfg's commutativity and experimental-gate flags. Weights use
// cycleTime per spec §4.2 ("weight equals ceil(source_duration /
// cycle_time)"). Returns ErrCyclicDependenceGraph if the resulting graph
// is not acyclic — an internal-consistency failure, not a property of
// valid circuits.
func NewGraph(gates []Gate, qubitCount, cregCount, cycleTime int, cfg Config) (*Graph, error) {
	if cycleTime <= 0 {
		cycleTime = 1
	}
	operandCount := qubitCount + cregCount

	g := &Graph{
		QubitCount: qubitCount,
		CregCount:  cregCount,
		CycleTime:  cycleTime,
	}

	sourceNode := g.addNode(&syntheticGate{kind: kindSource, duration: 1})
	g.Source = sourceNode

	state := newAccessState(operandCount, g.Source)

	for _, gate := range gates {
		nodeID := g.addNode(gate)
		accesses, err := accessesFor(gate, qubitCount, cregCount, cfg)
		if err != nil {
			return nil, err
		}
		for _, acc := range accesses {
			g.applyAccess(state, acc.operand, nodeID, acc.mode, cfg)
		}
	}

	sinkGate := &syntheticGate{kind: kindSink, duration: 0}
	sinkNode := g.addNode(sinkGate)
	g.Sink = sinkNode
	for operand := 0; operand < operandCount; operand++ {
		g.applyAccess(state, operand, sinkNode, AccessWrite, cfg)
	}

	if !g.isAcyclic() {
		return nil, ErrCyclicDependenceGraph
	}
	return g, nil
}

func (g *Graph) addNode(gate Gate) int {
	id := len(g.Nodes)
	g.Nodes = append(g.Nodes, &Node{ID: id, Gate: gate})
	g.out = append(g.out, nil)
	g.in = append(g.in, nil)
	return id
}

func (g *Graph) addArc(srcID, tgtID, operand int, kind DepKind) {
	weight := ceilDiv(g.Nodes[srcID].Gate.Duration(), g.CycleTime)
	arcIdx := len(g.Arcs)
	g.Arcs = append(g.Arcs, Arc{Source: srcID, Target: tgtID, Weight: weight, Operand: operand, Kind: kind})
	g.out[srcID] = append(g.out[srcID], arcIdx)
	g.in[tgtID] = append(g.in[tgtID], arcIdx)
}

// applyAccess implements the per-operand dependence generation of spec
// §4.2: given the current last-access state for operand and the access
// mode m the node at nodeID performs, add the arcs m's row of the
// commutativity table requires, then update the state.
func (g *Graph) applyAccess(state *accessState, operand, nodeID int, mode AccessMode, cfg Config) {
	switch mode {
	case AccessWrite:
		g.addArc(state.lastWriter[operand], nodeID, operand, depKindOf(AccessWrite, AccessWrite))
		for _, r := range state.lastReaders[operand] {
			g.addArc(r, nodeID, operand, depKindOf(AccessRead, AccessWrite))
		}
		for _, d := range state.lastControlTarget[operand] {
			g.addArc(d, nodeID, operand, depKindOf(AccessControlTarget, AccessWrite))
		}
		state.lastWriter[operand] = nodeID
		state.lastReaders[operand] = nil
		state.lastControlTarget[operand] = nil

	case AccessRead:
		g.addArc(state.lastWriter[operand], nodeID, operand, depKindOf(AccessWrite, AccessRead))
		for _, d := range state.lastControlTarget[operand] {
			g.addArc(d, nodeID, operand, depKindOf(AccessControlTarget, AccessRead))
		}
		if !cfg.Commute {
			for _, r := range state.lastReaders[operand] {
				g.addArc(r, nodeID, operand, depKindOf(AccessRead, AccessRead))
			}
		}
		state.lastReaders[operand] = append(state.lastReaders[operand], nodeID)
		state.lastControlTarget[operand] = nil

	case AccessControlTarget:
		g.addArc(state.lastWriter[operand], nodeID, operand, depKindOf(AccessWrite, AccessControlTarget))
		for _, r := range state.lastReaders[operand] {
			g.addArc(r, nodeID, operand, depKindOf(AccessRead, AccessControlTarget))
		}
		if !cfg.Commute {
			for _, d := range state.lastControlTarget[operand] {
				g.addArc(d, nodeID, operand, depKindOf(AccessControlTarget, AccessControlTarget))
			}
		}
		state.lastControlTarget[operand] = append(state.lastControlTarget[operand], nodeID)
		state.lastReaders[operand] = nil
	}
}

// OutArcs returns the arc indices leaving nodeID.
func (g *Graph) OutArcs(nodeID int) []int { return g.out[nodeID] }

// InArcs returns the arc indices entering nodeID.
func (g *Graph) InArcs(nodeID int) []int { return g.in[nodeID] }

// Successors returns the deduplicated set of nodes nodeID has an
// out-arc to.
func (g *Graph) Successors(nodeID int) []int {
	seen := make(map[int]bool)
	var out []int
	for _, ai := range g.out[nodeID] {
		t := g.Arcs[ai].Target
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}

// Predecessors returns the deduplicated set of nodes with an out-arc to
// nodeID.
func (g *Graph) Predecessors(nodeID int) []int {
	seen := make(map[int]bool)
	var out []int
	for _, ai := range g.in[nodeID] {
		s := g.Arcs[ai].Source
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// isAcyclic runs Kahn's algorithm; it is a debugging aid, not a
// functional necessity, since construction cannot by itself introduce a
// cycle — but spec §4.2 requires the check after construction anyway.
func (g *Graph) isAcyclic() bool {
	indeg := make([]int, len(g.Nodes))
	for _, a := range g.Arcs {
		indeg[a.Target]++
	}
	queue := make([]int, 0, len(g.Nodes))
	for id, d := range indeg {
		if d == 0 {
			queue = append(queue, id)
		}
	}
	visited := 0
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		visited++
		for _, ai := range g.out[n] {
			t := g.Arcs[ai].Target
			indeg[t]--
			if indeg[t] == 0 {
				queue = append(queue, t)
			}
		}
	}
	return visited == len(g.Nodes)
}

// Name returns a short diagnostic label for a node, used by DOT output
// and error messages.
func (g *Graph) Name(nodeID int) string {
	n := g.Nodes[nodeID]
	switch n.Gate.Kind() {
	case kindSource:
		return "SOURCE"
	case kindSink:
		return "SINK"
	default:
		return fmt.Sprintf("%s#%d", n.Gate.Kind(), nodeID)
	}
}
