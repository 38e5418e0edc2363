package sched

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// ResourceOracle is the external, direction-aware boundary contract
// spec §6 defines: the scheduler asks Available before tentatively
// selecting a node for a cycle, and calls Reserve exactly once per
// scheduled non-bypass gate after committing to it. Available must be
// idempotent within a cycle; Reserve's effects must be visible to
// subsequent Available calls on the same oracle.
type ResourceOracle interface {
	Available(cycle int, g Gate) bool
	Reserve(cycle int, g Gate)
}

// bypassesResources reports whether a node is exempt from resource
// checks regardless of which oracle is in play: SOURCE, SINK, Dummy,
// Classical, Wait, and (per spec §4.1) generic-control gates, all of
// which spec §4.5 step (a) says have unconditional resource readiness.
func bypassesResources(g *Graph, nodeID int) bool {
	if nodeID == g.Source || nodeID == g.Sink {
		return true
	}
	switch g.Nodes[nodeID].Gate.Kind() {
	case KindDummy, KindClassical, KindWait:
		return true
	default:
		return false
	}
}

// SlotResourceManager is a reference ResourceOracle: each Gate Kind gets
// a fixed number of concurrent slots per cycle, tracked with an
// LRU-bounded cache of per-cycle occupancy counters so long schedules
// don't retain unbounded history. It is a test double for exercising
// schedule_with_resources, not an authoritative hardware resource model
// — a real backend supplies its own oracle (spec §1, §6).
type SlotResourceManager struct {
	slotsPerKind map[Kind]int
	occupancy    *lru.Cache[cycleKindKey, int]
}

type cycleKindKey struct {
	cycle int
	kind  Kind
}

// NewSlotResourceManager builds a SlotResourceManager. slotsPerKind maps
// a Gate Kind to how many instances of that kind may be active in the
// same cycle; kinds absent from the map default to unlimited. window
// bounds the LRU cache of recently touched (cycle, kind) counters.
func NewSlotResourceManager(slotsPerKind map[Kind]int, window int) *SlotResourceManager {
	if window <= 0 {
		window = 256
	}
	cache, _ := lru.New[cycleKindKey, int](window)
	return &SlotResourceManager{slotsPerKind: slotsPerKind, occupancy: cache}
}

func (m *SlotResourceManager) limit(kind Kind) (int, bool) {
	n, ok := m.slotsPerKind[kind]
	return n, ok
}

func (m *SlotResourceManager) Available(cycle int, g Gate) bool {
	limit, bounded := m.limit(g.Kind())
	if !bounded {
		return true
	}
	key := cycleKindKey{cycle, g.Kind()}
	used, _ := m.occupancy.Get(key)
	return used < limit
}

func (m *SlotResourceManager) Reserve(cycle int, g Gate) {
	if _, bounded := m.limit(g.Kind()); !bounded {
		return
	}
	key := cycleKindKey{cycle, g.Kind()}
	used, _ := m.occupancy.Get(key)
	m.occupancy.Add(key, used+1)
}
