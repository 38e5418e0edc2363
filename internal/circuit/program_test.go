package circuit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uJhin/qsched/internal/sched"
)

func TestLoadYAML_Basic(t *testing.T) {
	data := []byte(`
qubits: 2
classical: 1
gates:
  - name: h0
    kind: generic
    qubits: [0]
  - name: cx01
    kind: cnot
    qubits: [0, 1]
  - name: m0
    kind: measure
    qubits: [0]
    classical: [0]
`)
	p, err := LoadYAML(data)
	require.NoError(t, err)
	require.Len(t, p.Gates, 3)
	assert.Equal(t, sched.KindCNot, p.Gates[1].Kind())
	assert.Equal(t, sched.KindMeasurement, p.Gates[2].Kind())
}

func TestLoadYAML_UnknownKindDefaultsGeneric(t *testing.T) {
	data := []byte(`
qubits: 1
gates:
  - name: mystery
    kind: something_weird
    qubits: [0]
`)
	p, err := LoadYAML(data)
	require.NoError(t, err)
	require.Len(t, p.Gates, 1)
	assert.Equal(t, sched.KindGeneric, p.Gates[0].Kind())
}

func TestLoadYAML_NormalizesDimensionsFromOperands(t *testing.T) {
	data := []byte(`
gates:
  - name: x3
    kind: generic
    qubits: [3]
`)
	p, err := LoadYAML(data)
	require.NoError(t, err)
	assert.Equal(t, 4, p.Qubits)
}

func TestLoadYAML_RejectsMalformedYAML(t *testing.T) {
	_, err := LoadYAML([]byte("not: [valid"))
	require.Error(t, err)
}
