// Package statevec simulates small circuits on dense state vectors, so tests
// can check that rewrites preserve the circuit's unitary.
//
// Qubit q is bit q of a basis index. Rotations follow the circuit package:
// angles are half-turns and a rotation about a Pauli P by a is
// exp(-iπa/2·P). Global phases of individual gates are not tracked, so
// results are only meaningful up to a global phase.
package statevec

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"math/rand/v2"

	"github.com/matzehuels/paulitower/pkg/angle"
	"github.com/matzehuels/paulitower/pkg/circuit"
	"github.com/matzehuels/paulitower/pkg/pauli"
)

var (
	// ErrNotUnitary is returned for measurements and resets.
	ErrNotUnitary = errors.New("operation is not unitary")

	// ErrSymbolic is returned for a parameter without a numeric value.
	ErrSymbolic = errors.New("symbolic angle")
)

// Unitary returns the columns of the unitary c implements: column i is the
// state reached from basis state i. Intended for a handful of qubits.
func Unitary(c *circuit.Circuit) ([][]complex128, error) {
	dim := 1 << c.NumQubits()
	cols := make([][]complex128, dim)
	for i := range cols {
		psi := make([]complex128, dim)
		psi[i] = 1
		if err := Run(c, psi); err != nil {
			return nil, err
		}
		cols[i] = psi
	}
	return cols, nil
}

// Run applies every command of c to psi in place.
func Run(c *circuit.Circuit, psi []complex128) error {
	if len(psi) != 1<<c.NumQubits() {
		return fmt.Errorf("state has %d amplitudes, want %d", len(psi), 1<<c.NumQubits())
	}
	for i, cmd := range c.Commands() {
		if err := apply(psi, cmd); err != nil {
			return fmt.Errorf("command %d (%v): %w", i, cmd, err)
		}
	}
	return nil
}

// EqualUpToPhase reports whether b is a global phase times a, entry by
// entry within tol.
func EqualUpToPhase(a, b [][]complex128, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	var phase complex128
	found := false
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if !found && cmplx.Abs(a[i][j]) > 0.5/float64(len(a)) {
				phase = b[i][j] / a[i][j]
				found = true
			}
		}
	}
	if !found {
		return false
	}
	for i := range a {
		for j := range a[i] {
			if cmplx.Abs(phase*a[i][j]-b[i][j]) > tol {
				return false
			}
		}
	}
	return true
}

func apply(psi []complex128, cmd circuit.Command) error {
	qs := cmd.Qubits()
	q := func(i int) int { return int(qs[i]) }
	param := func(i int) (float64, error) {
		v, ok := cmd.Gate.Param(i).Float()
		if !ok {
			return 0, fmt.Errorf("%w: %v", ErrSymbolic, cmd.Gate.Param(i))
		}
		return v, nil
	}
	single := func(p pauli.Pauli, turns float64) {
		rotate(psi, turns, term{q(0), p})
	}

	switch op := cmd.Gate.Type; op {
	case circuit.Noop, circuit.Phase, circuit.Barrier:
	case circuit.X:
		applyPauli(psi, psi, term{q(0), pauli.X})
	case circuit.Y:
		applyPauli(psi, psi, term{q(0), pauli.Y})
	case circuit.Z:
		applyPauli(psi, psi, term{q(0), pauli.Z})
	case circuit.S:
		single(pauli.Z, 0.5)
	case circuit.Sdg:
		single(pauli.Z, -0.5)
	case circuit.T:
		single(pauli.Z, 0.25)
	case circuit.Tdg:
		single(pauli.Z, -0.25)
	case circuit.V, circuit.SX:
		single(pauli.X, 0.5)
	case circuit.Vdg, circuit.SXdg:
		single(pauli.X, -0.5)
	case circuit.H:
		// H = X·Ry(1/2)
		single(pauli.Y, 0.5)
		applyPauli(psi, psi, term{q(0), pauli.X})
	case circuit.Rx, circuit.Ry, circuit.Rz:
		a, err := param(0)
		if err != nil {
			return err
		}
		single(map[circuit.OpType]pauli.Pauli{circuit.Rx: pauli.X, circuit.Ry: pauli.Y, circuit.Rz: pauli.Z}[op], a)
	case circuit.PhasedX:
		a, err := param(0)
		if err != nil {
			return err
		}
		b, err := param(1)
		if err != nil {
			return err
		}
		single(pauli.Z, -b)
		single(pauli.X, a)
		single(pauli.Z, b)
	case circuit.CX, circuit.CY, circuit.CZ:
		target := map[circuit.OpType]pauli.Pauli{circuit.CX: pauli.X, circuit.CY: pauli.Y, circuit.CZ: pauli.Z}[op]
		controlled(psi, q(0), term{q(1), target})
	case circuit.SWAP:
		a, b := q(0), q(1)
		for i := range psi {
			if i>>a&1 == 1 && i>>b&1 == 0 {
				j := i ^ (1 << a) ^ (1 << b)
				psi[i], psi[j] = psi[j], psi[i]
			}
		}
	case circuit.ZZMax:
		rotate(psi, 0.5, term{q(0), pauli.Z}, term{q(1), pauli.Z})
	case circuit.ZZPhase, circuit.XXPhase, circuit.YYPhase, circuit.PhaseGadget:
		a, err := param(0)
		if err != nil {
			return err
		}
		p := map[circuit.OpType]pauli.Pauli{circuit.XXPhase: pauli.X, circuit.YYPhase: pauli.Y}[op]
		if p == pauli.I {
			p = pauli.Z
		}
		ts := make([]term, len(qs))
		for i := range qs {
			ts[i] = term{q(i), p}
		}
		rotate(psi, a, ts...)
	case circuit.Measure, circuit.Reset:
		return fmt.Errorf("%w: %v", ErrNotUnitary, op)
	default:
		return fmt.Errorf("unknown op type %v", op)
	}
	return nil
}

type term struct {
	qubit int
	p     pauli.Pauli
}

// applyPauli writes P·src into dst. dst and src may be the same slice.
func applyPauli(dst, src []complex128, ts ...term) {
	var flip int
	for _, t := range ts {
		if t.p == pauli.X || t.p == pauli.Y {
			flip |= 1 << t.qubit
		}
	}
	out := make([]complex128, len(src))
	for i, amp := range src {
		coeff := complex(1, 0)
		for _, t := range ts {
			bit := i >> t.qubit & 1
			switch t.p {
			case pauli.Z:
				if bit == 1 {
					coeff = -coeff
				}
			case pauli.Y:
				// Y|0> = i|1>, Y|1> = -i|0>
				if bit == 1 {
					coeff *= -1i
				} else {
					coeff *= 1i
				}
			}
		}
		out[i^flip] += coeff * amp
	}
	copy(dst, out)
}

// rotate applies exp(-iπa/2·P) for the Pauli string P = ⊗ts.
func rotate(psi []complex128, a float64, ts ...term) {
	theta := math.Pi * a / 2
	p := make([]complex128, len(psi))
	applyPauli(p, psi, ts...)
	c, s := complex(math.Cos(theta), 0), complex(0, -math.Sin(theta))
	for i := range psi {
		psi[i] = c*psi[i] + s*p[i]
	}
}

// controlled applies the single-qubit Pauli t on the basis states where
// control is set.
func controlled(psi []complex128, control int, t term) {
	p := make([]complex128, len(psi))
	applyPauli(p, psi, t)
	for i := range psi {
		if i>>control&1 == 1 {
			psi[i] = p[i]
		}
	}
}

var (
	randomFixed = []circuit.OpType{
		circuit.X, circuit.Y, circuit.Z, circuit.S, circuit.Sdg, circuit.T, circuit.Tdg,
		circuit.V, circuit.Vdg, circuit.SX, circuit.SXdg, circuit.H,
		circuit.CX, circuit.CY, circuit.CZ, circuit.SWAP, circuit.ZZMax,
	}
	randomRotations = []circuit.OpType{
		circuit.Rx, circuit.Ry, circuit.Rz, circuit.Rz, circuit.Rz,
		circuit.ZZPhase, circuit.XXPhase, circuit.YYPhase, circuit.PhaseGadget, circuit.PhasedX,
	}
)

// Random builds a circuit of n gates on qubits wires, drawn from r. Angles
// are multiples of an eighth of a half-turn, so quarter-turn rotations and
// cancelling pairs come up often.
func Random(r *rand.Rand, qubits, n int) *circuit.Circuit {
	c := circuit.New(qubits, 0)
	eighth := func() angle.Expr { return angle.Ratio(int64(r.IntN(17)-8), 8) }
	for c.Len() < n {
		var op circuit.OpType
		if r.IntN(2) == 0 {
			op = randomFixed[r.IntN(len(randomFixed))]
		} else {
			op = randomRotations[r.IntN(len(randomRotations))]
		}
		arity := op.NumQubits()
		if arity == circuit.Variadic {
			arity = 1 + r.IntN(qubits)
		}
		if arity > qubits {
			continue
		}
		params := make([]angle.Expr, op.NumParams())
		for i := range params {
			params[i] = eighth()
		}
		perm := r.Perm(qubits)[:arity]
		_ = c.Add(circuit.NewGate(op, params...), circuit.Qubits(perm...)...)
	}
	return c
}
