package sched

import (
	"errors"
	"fmt"
)

// ErrCyclicDependenceGraph signals that dependence-graph construction
// produced a non-DAG. This is fatal and internal: it indicates a
// malformed gate stream or a bug in arc generation, never a property of
// valid input. No recovery is attempted; the scheduler returns without a
// schedule.
var ErrCyclicDependenceGraph = errors.New("sched: dependence graph is not a DAG")

// ErrInconsistentCommutativity signals that a controlled-unitary access
// mode combination was requested for a gate whose operand arity the
// access-mode table has no rule for. Construction refuses the gate kind.
var ErrInconsistentCommutativity = errors.New("sched: inconsistent commutativity for controlled gate")

// ErrResourceStarvation signals that the scheduler stopped making
// progress: the available list stayed non-empty but no node in it ever
// became schedulable within the progress guard's bound.
var ErrResourceStarvation = errors.New("sched: resource starvation, no progress")

// StarvationError carries the offending node/gate alongside
// ErrResourceStarvation so callers can report which operation stalled.
type StarvationError struct {
	NodeID int
	Gate   Gate
}

func (e *StarvationError) Error() string {
	return fmt.Sprintf("%s: node %d (%s) never became schedulable", ErrResourceStarvation, e.NodeID, e.Gate.Kind())
}

func (e *StarvationError) Unwrap() error {
	return ErrResourceStarvation
}
