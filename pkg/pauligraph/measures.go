package pauligraph

import (
	"fmt"
	"slices"

	"github.com/matzehuels/paulitower/pkg/circuit"
)

// Measurement is a recorded qubit → bit measurement.
type Measurement struct {
	Qubit circuit.Qubit
	Bit   circuit.Bit
}

// Measures is a one-to-one association between measured qubits and the
// bits they were measured into. Both directions are kept in sync on every
// insertion.
type Measures struct {
	q2b map[circuit.Qubit]circuit.Bit
	b2q map[circuit.Bit]circuit.Qubit
}

// NewMeasures returns an empty association.
func NewMeasures() *Measures {
	return &Measures{
		q2b: make(map[circuit.Qubit]circuit.Bit),
		b2q: make(map[circuit.Bit]circuit.Qubit),
	}
}

// Insert records q → b. It fails with ErrAlreadyMeasured if either side is
// already associated, leaving the association unchanged.
func (m *Measures) Insert(q circuit.Qubit, b circuit.Bit) error {
	if prev, ok := m.q2b[q]; ok {
		return fmt.Errorf("%w: %s already measured into %s", ErrAlreadyMeasured, q, prev)
	}
	if prev, ok := m.b2q[b]; ok {
		return fmt.Errorf("%w: %s already holds %s", ErrAlreadyMeasured, b, prev)
	}
	m.q2b[q] = b
	m.b2q[b] = q
	return nil
}

// BitOf returns the bit q was measured into.
func (m *Measures) BitOf(q circuit.Qubit) (circuit.Bit, bool) {
	b, ok := m.q2b[q]
	return b, ok
}

// QubitOf returns the qubit measured into b.
func (m *Measures) QubitOf(b circuit.Bit) (circuit.Qubit, bool) {
	q, ok := m.b2q[b]
	return q, ok
}

// Measured reports whether u (a qubit or a bit) takes part in a recorded
// measurement.
func (m *Measures) Measured(u circuit.Unit) bool {
	if u.IsQubit() {
		_, ok := m.q2b[u.Qubit()]
		return ok
	}
	_, ok := m.b2q[u.Bit()]
	return ok
}

// Len returns the number of recorded measurements.
func (m *Measures) Len() int { return len(m.q2b) }

// Pairs returns the measurements ordered by qubit.
func (m *Measures) Pairs() []Measurement {
	out := make([]Measurement, 0, len(m.q2b))
	for q, b := range m.q2b {
		out = append(out, Measurement{Qubit: q, Bit: b})
	}
	slices.SortFunc(out, func(a, b Measurement) int { return int(a.Qubit) - int(b.Qubit) })
	return out
}

func (m *Measures) clone() *Measures {
	out := NewMeasures()
	for q, b := range m.q2b {
		out.q2b[q] = b
		out.b2q[b] = q
	}
	return out
}
