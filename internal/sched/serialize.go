package sched

import "github.com/vmihailenco/msgpack/v5"

// gateSnapshot is the wire-safe projection of a Gate: interfaces can't
// be msgpack'd directly, so encoding copies out the fields a consumer
// needs to re-render or re-check a schedule without depending on the
// original Gate implementation.
type gateSnapshot struct {
	Kind       Kind  `msgpack:"kind"`
	Qubits     []int `msgpack:"qubits"`
	Classical  []int `msgpack:"classical"`
	Duration   int   `msgpack:"duration"`
	Cycle      int   `msgpack:"cycle"`
}

// nodeSnapshot is a Node plus its gate's encodable fields.
type nodeSnapshot struct {
	ID   int          `msgpack:"id"`
	Gate gateSnapshot `msgpack:"gate"`
}

// GraphSnapshot is the serializable form of a Graph: node/arc data plus
// the operand-space dimensions needed to reconstruct adjacency.
// Intended for cheap cross-process handoff of an already-built or
// already-scheduled graph (spec §9's design note on serialization) —
// not a substitute for NewGraph, which still owns dependence
// construction.
type GraphSnapshot struct {
	Nodes      []nodeSnapshot `msgpack:"nodes"`
	Arcs       []Arc          `msgpack:"arcs"`
	Source     int            `msgpack:"source"`
	Sink       int            `msgpack:"sink"`
	QubitCount int            `msgpack:"qubit_count"`
	CregCount  int            `msgpack:"creg_count"`
	CycleTime  int            `msgpack:"cycle_time"`
}

func snapshotGate(g Gate) gateSnapshot {
	return gateSnapshot{
		Kind:      g.Kind(),
		Qubits:    append([]int(nil), g.QubitOperands()...),
		Classical: append([]int(nil), g.ClassicalOperands()...),
		Duration:  g.Duration(),
		Cycle:     g.Cycle(),
	}
}

// Snapshot captures g's current state (including any assigned cycles)
// into a GraphSnapshot.
func (g *Graph) Snapshot() GraphSnapshot {
	nodes := make([]nodeSnapshot, len(g.Nodes))
	for i, n := range g.Nodes {
		nodes[i] = nodeSnapshot{ID: n.ID, Gate: snapshotGate(n.Gate)}
	}
	return GraphSnapshot{
		Nodes:      nodes,
		Arcs:       append([]Arc(nil), g.Arcs...),
		Source:     g.Source,
		Sink:       g.Sink,
		QubitCount: g.QubitCount,
		CregCount:  g.CregCount,
		CycleTime:  g.CycleTime,
	}
}

// MarshalGraph encodes a GraphSnapshot as msgpack.
func MarshalGraph(s GraphSnapshot) ([]byte, error) {
	return msgpack.Marshal(s)
}

// UnmarshalGraph decodes a msgpack-encoded GraphSnapshot.
func UnmarshalGraph(data []byte) (GraphSnapshot, error) {
	var s GraphSnapshot
	err := msgpack.Unmarshal(data, &s)
	return s, err
}

// snapshotGateHandle adapts a gateSnapshot back into something
// satisfying Gate, so a decoded GraphSnapshot can be fed to Remaining/
// criticality helpers or re-rendered without re-deriving dependences.
type snapshotGateHandle struct {
	snap  *gateSnapshot
}

func (h *snapshotGateHandle) Kind() Kind                { return h.snap.Kind }
func (h *snapshotGateHandle) QubitOperands() []int      { return h.snap.Qubits }
func (h *snapshotGateHandle) ClassicalOperands() []int  { return h.snap.Classical }
func (h *snapshotGateHandle) Duration() int             { return h.snap.Duration }
func (h *snapshotGateHandle) Cycle() int                { return h.snap.Cycle }
func (h *snapshotGateHandle) SetCycle(cycle int)        { h.snap.Cycle = cycle }

// Rehydrate rebuilds a Graph's Nodes/Arcs/adjacency from a snapshot,
// without re-running dependence construction — the arcs are taken
// as-is, trusting the snapshot was produced by a prior NewGraph call.
func (s GraphSnapshot) Rehydrate() *Graph {
	g := &Graph{
		Source:     s.Source,
		Sink:       s.Sink,
		QubitCount: s.QubitCount,
		CregCount:  s.CregCount,
		CycleTime:  s.CycleTime,
	}
	g.Nodes = make([]*Node, len(s.Nodes))
	g.out = make([][]int, len(s.Nodes))
	g.in = make([][]int, len(s.Nodes))
	for i, ns := range s.Nodes {
		snap := ns.Gate
		g.Nodes[i] = &Node{ID: ns.ID, Gate: &snapshotGateHandle{snap: &snap}}
	}
	g.Arcs = append([]Arc(nil), s.Arcs...)
	for idx, a := range g.Arcs {
		g.out[a.Source] = append(g.out[a.Source], idx)
		g.in[a.Target] = append(g.in[a.Target], idx)
	}
	return g
}
