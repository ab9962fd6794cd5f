package tableau

import (
	"github.com/matzehuels/paulitower/pkg/circuit"
)

// Synthesise returns a Clifford circuit over the frame's qubits that
// realises the frame's unitary up to global phase. Commands are in time
// order and use only H, S, V, X, Z, CX, CZ and SWAP.
//
// The rows are reduced to the identity one qubit at a time by conjugating
// with gates g1..gm, so g_m⋯g_1·C† = I and C is g1..gm in time order.
func (f *Frame) Synthesise() []circuit.Command {
	s := &synth{f: f, t: f.tab.Clone(), n: len(f.qubits)}
	for j := 0; j < s.n; j++ {
		s.reduceX(j)
		s.reduceZ(j)
		if s.t.phase[j] {
			s.apply(circuit.Z, j)
		}
		if s.t.phase[s.n+j] {
			s.apply(circuit.X, j)
		}
	}
	return s.out
}

type synth struct {
	f   *Frame
	t   *Tableau
	n   int
	out []circuit.Command
}

func (s *synth) apply(op circuit.OpType, cols ...int) {
	if err := s.t.ApplyGate(op, cols...); err != nil {
		panic(err)
	}
	args := make([]circuit.Unit, len(cols))
	for i, c := range cols {
		args[i] = circuit.Q(int(s.f.qubits[c]))
	}
	s.out = append(s.out, circuit.Command{Gate: circuit.NewGate(op), Args: args})
}

// reduceX turns X row j into ±X_j. Rows for earlier qubits are already
// reduced, so row j is the identity on them.
func (s *synth) reduceX(j int) {
	x, z := s.t.xmat, s.t.zmat
	pivot := -1
	for k := j; k < s.n; k++ {
		if x.Get(j, k) {
			pivot = k
			break
		}
	}
	if pivot < 0 {
		for k := j; k < s.n; k++ {
			if z.Get(j, k) {
				pivot = k
				break
			}
		}
		s.apply(circuit.H, pivot)
	}
	if pivot != j {
		s.apply(circuit.SWAP, j, pivot)
	}
	for k := j + 1; k < s.n; k++ {
		if x.Get(j, k) {
			s.apply(circuit.CX, j, k)
		}
	}
	if z.Get(j, j) {
		s.apply(circuit.S, j)
	}
	for k := j + 1; k < s.n; k++ {
		if z.Get(j, k) {
			s.apply(circuit.CZ, j, k)
		}
	}
}

// reduceZ turns Z row j into ±Z_j while keeping X row j fixed.
func (s *synth) reduceZ(j int) {
	r := s.n + j
	x, z := s.t.xmat, s.t.zmat
	for k := j + 1; k < s.n; k++ {
		if x.Get(r, k) && z.Get(r, k) {
			s.apply(circuit.S, k)
		}
		if x.Get(r, k) {
			s.apply(circuit.H, k)
		}
		if z.Get(r, k) {
			s.apply(circuit.CX, k, j)
		}
	}
	if x.Get(r, j) {
		s.apply(circuit.V, j)
	}
}
