package sched

// candidateLegal reports whether n may move from its current bundle to
// currentCycle without lengthening the program or violating a
// successor's already-committed cycle (spec §4.7's two legality
// checks). cycleCount is the ASAP schedule's maximum assigned cycle,
// the bound the moved gate's own completion may not exceed.
func candidateLegal(g *Graph, n, currentCycle, cycleCount int) bool {
	weight := ceilDiv(g.Nodes[n].Gate.Duration(), g.CycleTime)
	if currentCycle+weight > cycleCount+1 {
		return false
	}
	for _, ai := range g.out[n] {
		arc := g.Arcs[ai]
		if currentCycle+arc.Weight > g.Nodes[arc.Target].Gate.Cycle() {
			return false
		}
	}
	return true
}

// leastCriticalMovable picks, among a bundle's nodes, the least
// critical one that candidateLegal allows into currentCycle — spec
// §4.7's "candidate gate with the smallest remaining that can legally
// move". Returns -1, -1 if none qualifies.
func leastCriticalMovable(g *Graph, rem Remaining, nodes []int, currentCycle, cycleCount int) (int, int) {
	best := -1
	bestIdx := -1
	for idx, n := range nodes {
		if !candidateLegal(g, n, currentCycle, cycleCount) {
			continue
		}
		if best == -1 || criticalityLess(g, rem, Forward, n, best) {
			best = n
			bestIdx = idx
		}
	}
	return best, bestIdx
}

// ScheduleUniform implements spec §4.7's bundle balancer: an unconstrained
// ASAP pass establishes each gate's earliest cycle and the per-cycle
// bundle sizes that result; a single backward scan then visits bundles
// from cycle_count down to 1 and, whenever a bundle is smaller than the
// running target size, pulls the least-critical legal candidate forward
// out of the nearest non-empty predecessor bundle — the "rolling pin"
// pass that flattens peaks in the schedule into the valleys below them
// without lengthening the program.
func (s *Scheduler) ScheduleUniform() ([]Gate, error) {
	if _, err := s.ScheduleUnconstrained(Forward); err != nil {
		return nil, err
	}
	g := s.graph

	realIDs := make([]int, 0, len(g.Nodes)-2)
	for _, n := range g.Nodes {
		if n.ID != g.Source && n.ID != g.Sink {
			realIDs = append(realIDs, n.ID)
		}
	}
	if len(realIDs) == 0 {
		return s.sortedGates(), nil
	}

	bundleNodes := make(map[int][]int)
	cycleCount := 0
	for _, n := range realIDs {
		c := g.Nodes[n].Gate.Cycle()
		bundleNodes[c] = append(bundleNodes[c], n)
		if c > cycleCount {
			cycleCount = c
		}
	}

	rem := ComputeRemaining(g, Forward)

	gateCountRemaining := len(realIDs)
	nonEmptyRemaining := 0
	for c := 1; c <= cycleCount; c++ {
		if len(bundleNodes[c]) > 0 {
			nonEmptyRemaining++
		}
	}

	for currentCycle := cycleCount; currentCycle >= 1; currentCycle-- {
		for nonEmptyRemaining > 0 {
			target := ceilDiv(gateCountRemaining, nonEmptyRemaining)
			if len(bundleNodes[currentCycle]) >= target {
				break
			}

			predCycle := currentCycle - 1
			moved := false
			for predCycle >= 1 {
				victim, idx := leastCriticalMovable(g, rem, bundleNodes[predCycle], currentCycle, cycleCount)
				if idx < 0 {
					predCycle--
					continue
				}

				wasEmptyTarget := len(bundleNodes[currentCycle]) == 0

				pred := bundleNodes[predCycle]
				bundleNodes[predCycle] = append(pred[:idx:idx], pred[idx+1:]...)
				if len(bundleNodes[predCycle]) == 0 {
					nonEmptyRemaining--
				}

				g.Nodes[victim].Gate.SetCycle(currentCycle)
				bundleNodes[currentCycle] = append(bundleNodes[currentCycle], victim)
				if wasEmptyTarget {
					nonEmptyRemaining++
				}

				moved = true
				break
			}
			if !moved {
				break
			}
		}

		gateCountRemaining -= len(bundleNodes[currentCycle])
		if len(bundleNodes[currentCycle]) > 0 {
			nonEmptyRemaining--
		}
	}

	return s.sortedGates(), nil
}
