package circuit

import "github.com/uJhin/qsched/internal/sched"

// kindOf maps a QASM-style mnemonic to the dependence-relevant Kind a
// gate of that name exhibits. Unrecognized mnemonics default to
// sched.KindGeneric, which is conservative (plain write-on-everything).
func kindOf(name string) sched.Kind {
	switch name {
	case "MEASURE":
		return sched.KindMeasurement
	case "BARRIER", "DISPLAY":
		return sched.KindDisplay
	case "CX", "CNOT":
		return sched.KindCNot
	case "CZ":
		return sched.KindCZ
	case "WAIT", "NOISE":
		return sched.KindWait
	case "RESET", "DUMMY":
		return sched.KindDummy
	case "CRX", "CRY", "CRZ", "CP", "CU1", "CH", "CCX", "TOFFOLI":
		return sched.KindGenericQuantum
	default:
		return sched.KindGeneric
	}
}
