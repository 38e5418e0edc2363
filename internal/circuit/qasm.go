package circuit

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/uJhin/qsched/internal/sched"
)

// Regexes mirror a small, pragmatic subset of OPENQASM 2.0 — enough to
// round-trip the straight-line circuits a scheduler region is built
// from. Gate-level semantics (rotation angles, dagger variants) are
// parsed but folded away: the scheduler only needs a gate's kind and
// operands, never its unitary.
var (
	qregRegex       = regexp.MustCompile(`qreg\s+\w+\[(\d+)\]`)
	cregRegex       = regexp.MustCompile(`creg\s+\w+\[(\d+)\]`)
	measureRegex    = regexp.MustCompile(`^measure\s+q\[(\d+)\]\s*->\s*\w+\[(\d+)\];?$`)
	resetRegex      = regexp.MustCompile(`^reset\s+q\[(\d+)\];?$`)
	barrierRegex    = regexp.MustCompile(`^barrier\b`)
	ifRegex         = regexp.MustCompile(`^if\s*\([^)]*\)\s+(.*)$`)
	singleParamRE   = regexp.MustCompile(`^(\w+)\s*\([^)]*\)\s+q\[(\d+)\];?$`)
	singleRegex     = regexp.MustCompile(`^(\w+)\s+q\[(\d+)\];?$`)
	twoParamRegex   = regexp.MustCompile(`^(\w+)\s*\([^)]*\)\s+q\[(\d+)\],\s*q\[(\d+)\];?$`)
	twoRegex        = regexp.MustCompile(`^(\w+)\s+q\[(\d+)\],\s*q\[(\d+)\];?$`)
	threeRegex      = regexp.MustCompile(`^(\w+)\s+q\[(\d+)\],\s*q\[(\d+)\],\s*q\[(\d+)\];?$`)
)

// ParseQASM parses a QASM-like program into a flat Gate sequence plus
// operand-space dimensions, ready for sched.NewGraph. It returns an
// error for lines it cannot classify, rather than silently dropping
// them — a dropped gate would corrupt the dependence graph.
func ParseQASM(text string) (*Program, error) {
	p := &Program{}
	for lineNo, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if strings.HasPrefix(line, "OPENQASM") || strings.HasPrefix(line, "include") {
			continue
		}
		if m := qregRegex.FindStringSubmatch(line); m != nil {
			n, _ := strconv.Atoi(m[1])
			p.Qubits = n
			continue
		}
		if m := cregRegex.FindStringSubmatch(line); m != nil {
			n, _ := strconv.Atoi(m[1])
			if n > p.Classical {
				p.Classical = n
			}
			continue
		}

		// strip a classical-control predicate; the scheduler sees only
		// the gate's unconditional quantum effect (see DESIGN.md).
		if m := ifRegex.FindStringSubmatch(line); m != nil {
			line = strings.TrimSpace(m[1])
		}

		gate, err := parseStatement(line)
		if err != nil {
			return nil, fmt.Errorf("circuit: line %d: %w", lineNo+1, err)
		}
		if gate != nil {
			p.Gates = append(p.Gates, gate)
		}
	}
	p.normalizeDimensions()
	return p, nil
}

func parseStatement(line string) (*Gate, error) {
	switch {
	case barrierRegex.MatchString(line):
		return &Gate{Name: "BARRIER", GateKind: sched.KindDisplay}, nil

	case measureRegex.MatchString(line):
		m := measureRegex.FindStringSubmatch(line)
		qubit, _ := strconv.Atoi(m[1])
		creg, _ := strconv.Atoi(m[2])
		return &Gate{Name: "MEASURE", GateKind: sched.KindMeasurement, Qubits: []int{qubit}, Classical: []int{creg}}, nil

	case resetRegex.MatchString(line):
		m := resetRegex.FindStringSubmatch(line)
		qubit, _ := strconv.Atoi(m[1])
		return &Gate{Name: "RESET", GateKind: sched.KindDummy, Qubits: []int{qubit}}, nil

	case threeRegex.MatchString(line):
		m := threeRegex.FindStringSubmatch(line)
		name := strings.ToUpper(m[1])
		a, _ := strconv.Atoi(m[2])
		b, _ := strconv.Atoi(m[3])
		c, _ := strconv.Atoi(m[4])
		return &Gate{Name: name, GateKind: kindOf(name), Qubits: []int{a, b, c}}, nil

	case twoParamRegex.MatchString(line):
		m := twoParamRegex.FindStringSubmatch(line)
		name := strings.ToUpper(m[1])
		a, _ := strconv.Atoi(m[2])
		b, _ := strconv.Atoi(m[3])
		return &Gate{Name: name, GateKind: kindOf(name), Qubits: []int{a, b}}, nil

	case twoRegex.MatchString(line):
		m := twoRegex.FindStringSubmatch(line)
		name := strings.ToUpper(m[1])
		a, _ := strconv.Atoi(m[2])
		b, _ := strconv.Atoi(m[3])
		return &Gate{Name: name, GateKind: kindOf(name), Qubits: []int{a, b}}, nil

	case singleParamRE.MatchString(line):
		m := singleParamRE.FindStringSubmatch(line)
		name := strings.ToUpper(m[1])
		a, _ := strconv.Atoi(m[2])
		return &Gate{Name: name, GateKind: kindOf(name), Qubits: []int{a}}, nil

	case singleRegex.MatchString(line):
		m := singleRegex.FindStringSubmatch(line)
		name := strings.ToUpper(m[1])
		name = strings.TrimSuffix(name, "DG")
		a, _ := strconv.Atoi(m[2])
		return &Gate{Name: name, GateKind: kindOf(name), Qubits: []int{a}}, nil

	default:
		return nil, fmt.Errorf("unrecognized statement %q", line)
	}
}
