package circuit

import (
	"fmt"
	"os"

	"github.com/uJhin/qsched/internal/sched"
	"gopkg.in/yaml.v3"
)

// Program is a loaded, straight-line circuit: a gate sequence plus the
// operand-space dimensions (qubit and classical register counts) a
// sched.Graph needs to size its per-operand bookkeeping.
type Program struct {
	Qubits    int     `yaml:"qubits"`
	Classical int      `yaml:"classical"`
	Gates     []*Gate `yaml:"gates"`
}

// yamlGate is the on-disk shape of a single instruction in a YAML
// program file — looser than Gate, since a kind name is more
// convenient to hand-author than sched.Kind's integer encoding.
type yamlGate struct {
	Name      string `yaml:"name"`
	Kind      string `yaml:"kind"`
	Qubits    []int  `yaml:"qubits"`
	Classical []int  `yaml:"classical"`
	Duration  int    `yaml:"duration"`
}

type yamlProgram struct {
	Qubits    int        `yaml:"qubits"`
	Classical int        `yaml:"classical"`
	Gates     []yamlGate `yaml:"gates"`
}

var kindNames = map[string]sched.Kind{
	"generic":         sched.KindGeneric,
	"measure":         sched.KindMeasurement,
	"display":         sched.KindDisplay,
	"classical":       sched.KindClassical,
	"cnot":            sched.KindCNot,
	"cz":              sched.KindCZ,
	"control_unitary": sched.KindGenericQuantum,
	"wait":            sched.KindWait,
	"dummy":           sched.KindDummy,
}

// LoadYAMLFile reads a Program from a YAML file on disk.
func LoadYAMLFile(path string) (*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("circuit: reading %s: %w", path, err)
	}
	return LoadYAML(data)
}

// LoadYAML parses a Program from YAML bytes, resolving each gate's
// textual kind name via kindNames and defaulting an unrecognized or
// empty kind to sched.KindGeneric.
func LoadYAML(data []byte) (*Program, error) {
	var raw yamlProgram
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("circuit: parsing yaml: %w", err)
	}

	p := &Program{Qubits: raw.Qubits, Classical: raw.Classical}
	for i, g := range raw.Gates {
		kind, ok := kindNames[g.Kind]
		if !ok {
			kind = sched.KindGeneric
		}
		name := g.Name
		if name == "" {
			name = fmt.Sprintf("gate#%d", i)
		}
		p.Gates = append(p.Gates, &Gate{
			Name:      name,
			GateKind:  kind,
			Qubits:    g.Qubits,
			Classical: g.Classical,
			DurationC: g.Duration,
		})
	}
	p.normalizeDimensions()
	return p, nil
}

// normalizeDimensions widens Qubits/Classical, if necessary, to cover
// every operand index actually referenced by the gate sequence — a
// hand-authored or loosely declared program shouldn't silently lose
// dependence arcs to an out-of-range operand.
func (p *Program) normalizeDimensions() {
	for _, g := range p.Gates {
		for _, q := range g.Qubits {
			if q+1 > p.Qubits {
				p.Qubits = q + 1
			}
		}
		for _, c := range g.Classical {
			if c+1 > p.Classical {
				p.Classical = c + 1
			}
		}
	}
}

// SchedGates projects Program's concrete Gates into the sched.Gate
// interface slice sched.NewGraph consumes.
func (p *Program) SchedGates() []sched.Gate {
	out := make([]sched.Gate, len(p.Gates))
	for i, g := range p.Gates {
		out[i] = g
	}
	return out
}
