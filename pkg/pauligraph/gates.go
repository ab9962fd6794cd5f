package pauligraph

import (
	"fmt"

	"github.com/matzehuels/paulitower/pkg/angle"
	"github.com/matzehuels/paulitower/pkg/circuit"
	"github.com/matzehuels/paulitower/pkg/pauli"
)

var quarter = angle.Ratio(1, 4)

// ApplyGateAtEnd appends one command.
//
// Measurements are recorded and create no vertex. Clifford gates are
// conjugated into the frame. Rotations (Rz, Rx, Ry, T, Tdg, PhasedX, the
// two-qubit phase gates and PhaseGadget) become Pauli gadgets, or frame
// updates when their angle is a multiple of a quarter turn. Barriers and
// global phase are dropped. Any other op type, and any gate on a wire that
// has already been measured, is an error.
func (pg *Graph) ApplyGateAtEnd(cmd circuit.Command) error {
	op := cmd.Gate.Type
	if err := pg.checkArgs(cmd); err != nil {
		return err
	}
	for _, u := range cmd.Args {
		if pg.measures.Measured(u) {
			return fmt.Errorf("%w: %s", ErrMidCircuitMeasurement, u)
		}
	}

	qs := cmd.Qubits()
	switch op {
	case circuit.Measure:
		return pg.measures.Insert(cmd.Args[0].Qubit(), cmd.Args[1].Bit())
	case circuit.Noop, circuit.Phase, circuit.Barrier:
		return nil
	case circuit.X, circuit.Y, circuit.Z, circuit.S, circuit.Sdg, circuit.V, circuit.Vdg,
		circuit.SX, circuit.SXdg, circuit.H, circuit.CX, circuit.CY, circuit.CZ,
		circuit.SWAP, circuit.ZZMax:
		return pg.frame.ApplyGateAtEnd(op, qs...)
	case circuit.T:
		return pg.rotate(pauli.Single(qs[0], pauli.Z), quarter)
	case circuit.Tdg:
		return pg.rotate(pauli.Single(qs[0], pauli.Z), quarter.Neg())
	case circuit.Rz:
		return pg.rotate(pauli.Single(qs[0], pauli.Z), cmd.Gate.Param(0))
	case circuit.Rx:
		return pg.rotate(pauli.Single(qs[0], pauli.X), cmd.Gate.Param(0))
	case circuit.Ry:
		return pg.rotate(pauli.Single(qs[0], pauli.Y), cmd.Gate.Param(0))
	case circuit.PhasedX:
		// PhasedX(α, β) = Rz(β)·Rx(α)·Rz(-β)
		alpha, beta := cmd.Gate.Param(0), cmd.Gate.Param(1)
		z, x := pauli.Single(qs[0], pauli.Z), pauli.Single(qs[0], pauli.X)
		if err := pg.rotate(z, beta.Neg()); err != nil {
			return err
		}
		if err := pg.rotate(x, alpha); err != nil {
			return err
		}
		return pg.rotate(z, beta)
	case circuit.ZZPhase:
		return pg.rotate(uniform(pauli.Z, qs...), cmd.Gate.Param(0))
	case circuit.XXPhase:
		return pg.rotate(uniform(pauli.X, qs...), cmd.Gate.Param(0))
	case circuit.YYPhase:
		return pg.rotate(uniform(pauli.Y, qs...), cmd.Gate.Param(0))
	case circuit.PhaseGadget:
		return pg.rotate(uniform(pauli.Z, qs...), cmd.Gate.Param(0))
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedOp, op)
	}
}

func uniform(p pauli.Pauli, qs ...circuit.Qubit) pauli.Tensor {
	terms := make([]pauli.Term, len(qs))
	for i, q := range qs {
		terms[i] = pauli.Term{Qubit: q, Pauli: p}
	}
	return pauli.FromTerms(pauli.One, terms...)
}

func (pg *Graph) checkArgs(cmd circuit.Command) error {
	op := cmd.Gate.Type
	if !op.Valid() {
		return fmt.Errorf("%w: %v", ErrUnsupportedOp, op)
	}
	nq, nb := op.NumQubits(), op.NumBits()
	if nq == circuit.Variadic {
		nq = len(cmd.Args)
		if nq == 0 {
			return fmt.Errorf("%w: %v on no qubits", ErrBadArguments, op)
		}
	}
	if len(cmd.Args) != nq+nb {
		return fmt.Errorf("%w: %v takes %d units, got %d", ErrBadArguments, op, nq+nb, len(cmd.Args))
	}
	if len(cmd.Gate.Params) != op.NumParams() {
		return fmt.Errorf("%w: %v takes %d params, got %d", ErrBadArguments, op, op.NumParams(), len(cmd.Gate.Params))
	}
	seen := make(map[circuit.Unit]bool, len(cmd.Args))
	for i, u := range cmd.Args {
		if seen[u] {
			return fmt.Errorf("%w: %s repeated in %v", ErrBadArguments, u, op)
		}
		seen[u] = true
		if u.IsQubit() != (i < nq) {
			return fmt.Errorf("%w: %v argument %d is %s", ErrBadArguments, op, i, u)
		}
		limit := pg.nQubits
		if !u.IsQubit() {
			limit = pg.nBits
		}
		if u.Index < 0 || u.Index >= limit {
			return fmt.Errorf("%w: %s", ErrUnknownUnit, u)
		}
	}
	return nil
}
