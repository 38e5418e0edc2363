package sched

// Config is the explicit configuration record threaded into graph
// construction and the scheduler, per spec §9's "Global configuration"
// design note: behavior is governed by these flags, never by ambient
// state.
type Config struct {
	// Commute enables the commutation omissions in §4.2's dependence
	// generation (the "scheduler_commute" option). A zero-valued Config
	// has it off; callers that need the default (on) should start from
	// DefaultConfig.
	Commute bool
	// Uniform requests the bundle-balancing post-pass
	// ("scheduler_uniform").
	Uniform bool
	// PrintDotGraphs requests DOT diagnostic output alongside a
	// schedule.
	PrintDotGraphs bool
	// ExperimentalControlUnitaries enables the generic controlled-
	// unitary access-mode rule (spec §4.1 bullet 6 / §9 second Open
	// Question). Off by default, matching the original's
	// compile-time-disabled posture.
	ExperimentalControlUnitaries bool
}

// DefaultConfig returns the configuration matching the documented
// defaults: commutativity on, uniform balancing off, DOT output off,
// experimental control-unitary rule off.
func DefaultConfig() Config {
	return Config{
		Commute:                      true,
		Uniform:                      false,
		PrintDotGraphs:               false,
		ExperimentalControlUnitaries: false,
	}
}
