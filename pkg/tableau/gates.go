package tableau

import (
	"fmt"

	"github.com/matzehuels/paulitower/pkg/circuit"
	"github.com/matzehuels/paulitower/pkg/pauli"
)

// The Apply* conjugation methods replace every row R with g R g†. They
// panic if a qubit index is out of range; use [Tableau.ApplyGate] for
// validated dispatch.

// ApplyS conjugates every row by S on qubit q.
func (t *Tableau) ApplyS(q int) {
	for i := 0; i < t.nRows; i++ {
		x, z := t.xmat.Get(i, q), t.zmat.Get(i, q)
		if x && z {
			t.phase[i] = !t.phase[i]
		}
		if x {
			t.zmat.Flip(i, q)
		}
	}
}

// ApplyZ conjugates every row by Z on qubit q.
func (t *Tableau) ApplyZ(q int) {
	for i := 0; i < t.nRows; i++ {
		if t.xmat.Get(i, q) {
			t.phase[i] = !t.phase[i]
		}
	}
}

// ApplyX conjugates every row by X on qubit q.
func (t *Tableau) ApplyX(q int) {
	for i := 0; i < t.nRows; i++ {
		if t.zmat.Get(i, q) {
			t.phase[i] = !t.phase[i]
		}
	}
}

// ApplyV conjugates every row by V = e^{-iπX/4} on qubit q.
func (t *Tableau) ApplyV(q int) {
	for i := 0; i < t.nRows; i++ {
		x, z := t.xmat.Get(i, q), t.zmat.Get(i, q)
		if z && !x {
			t.phase[i] = !t.phase[i]
		}
		if z {
			t.xmat.Flip(i, q)
		}
	}
}

// ApplyH conjugates every row by H on qubit q: the X and Z bits swap and
// a Y factor changes sign.
func (t *Tableau) ApplyH(q int) {
	for i := 0; i < t.nRows; i++ {
		x, z := t.xmat.Get(i, q), t.zmat.Get(i, q)
		if x && z {
			t.phase[i] = !t.phase[i]
		}
		t.xmat.Set(i, q, z)
		t.zmat.Set(i, q, x)
	}
}

// ApplyCX conjugates every row by CX with control c and target tq.
func (t *Tableau) ApplyCX(c, tq int) {
	for i := 0; i < t.nRows; i++ {
		xc, zc := t.xmat.Get(i, c), t.zmat.Get(i, c)
		xt, zt := t.xmat.Get(i, tq), t.zmat.Get(i, tq)
		if xc && zt && (xt == zc) {
			t.phase[i] = !t.phase[i]
		}
		if xc {
			t.xmat.Flip(i, tq)
		}
		if zt {
			t.zmat.Flip(i, c)
		}
	}
}

// ApplyPauliGadget conjugates every row by e^{-iπ k P/4}, i.e. k quarter
// turns about p. Rows commuting with p are unchanged. For anticommuting
// rows, k=1 gives i·R·P and k=3 gives -i·R·P. Even k are accepted: k=2 is
// conjugation by P itself and negates R, and k=0 is the identity.
// [Frame.ApplyPauliAtFront] relies on the even case for half turns. p must
// act only on qubits 0..n-1.
func (t *Tableau) ApplyPauliGadget(p pauli.Tensor, k uint) error {
	if !p.Coeff().IsReal() {
		return fmt.Errorf("%w: gadget %v", ErrImaginaryPhase, p)
	}
	for _, q := range p.Qubits() {
		if int(q) < 0 || int(q) >= t.nQubits {
			return fmt.Errorf("%w: %d", ErrUnknownQubit, q)
		}
	}
	k %= 4
	if k == 0 {
		return nil
	}
	pt, _ := FromPaulis(t.nQubits, p)
	for i := 0; i < t.nRows; i++ {
		if !t.anticommutesWith(i, pt) {
			continue
		}
		switch k {
		case 2:
			t.phase[i] = !t.phase[i]
		case 1:
			t.mulTensor(i, p, pauli.PlusI)
		case 3:
			t.mulTensor(i, p, pauli.MinusI)
		}
	}
	return nil
}

func (t *Tableau) anticommutesWith(i int, p *Tableau) bool {
	n := t.xmat.AndPopCount(i, p.zmat, 0) + t.zmat.AndPopCount(i, p.xmat, 0)
	return n%2 == 1
}

// ApplyGate conjugates every row by a Clifford gate on the given qubit
// columns. Composite gates are expanded into the S, Z, X, V, H and CX
// generators. Op types outside the Clifford set return ErrUnsupportedOp.
func (t *Tableau) ApplyGate(op circuit.OpType, qubits ...int) error {
	for _, q := range qubits {
		if q < 0 || q >= t.nQubits {
			return fmt.Errorf("%w: %d", ErrUnknownQubit, q)
		}
	}
	prims, err := decompose(op, qubits)
	if err != nil {
		return err
	}
	for _, g := range prims {
		switch g.op {
		case primS:
			t.ApplyS(g.a)
		case primZ:
			t.ApplyZ(g.a)
		case primX:
			t.ApplyX(g.a)
		case primV:
			t.ApplyV(g.a)
		case primH:
			t.ApplyH(g.a)
		case primCX:
			t.ApplyCX(g.a, g.b)
		case primZZMax:
			zz := pauli.FromTerms(pauli.One,
				pauli.Term{Qubit: circuit.Qubit(g.a), Pauli: pauli.Z},
				pauli.Term{Qubit: circuit.Qubit(g.b), Pauli: pauli.Z})
			if err := t.ApplyPauliGadget(zz, 1); err != nil {
				return err
			}
		}
	}
	return nil
}

type primOp uint8

const (
	primS primOp = iota
	primZ
	primX
	primV
	primH
	primCX
	primZZMax
)

type prim struct {
	op   primOp
	a, b int
}

// decompose expands a Clifford op type into generators in time order.
func decompose(op circuit.OpType, q []int) ([]prim, error) {
	if !op.Valid() || !op.IsClifford() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedOp, op)
	}
	if len(q) != op.NumQubits() {
		return nil, fmt.Errorf("%w: %s on %d qubits", ErrDimensionMismatch, op, len(q))
	}
	switch op {
	case circuit.Noop, circuit.Phase:
		return nil, nil
	case circuit.X:
		return []prim{{op: primX, a: q[0]}}, nil
	case circuit.Y:
		return []prim{{op: primZ, a: q[0]}, {op: primX, a: q[0]}}, nil
	case circuit.Z:
		return []prim{{op: primZ, a: q[0]}}, nil
	case circuit.S:
		return []prim{{op: primS, a: q[0]}}, nil
	case circuit.Sdg:
		return []prim{{op: primS, a: q[0]}, {op: primZ, a: q[0]}}, nil
	case circuit.V, circuit.SX:
		return []prim{{op: primV, a: q[0]}}, nil
	case circuit.Vdg, circuit.SXdg:
		return []prim{{op: primV, a: q[0]}, {op: primX, a: q[0]}}, nil
	case circuit.H:
		return []prim{{op: primH, a: q[0]}}, nil
	case circuit.CX:
		return []prim{{op: primCX, a: q[0], b: q[1]}}, nil
	case circuit.CY:
		return []prim{
			{op: primS, a: q[1]}, {op: primZ, a: q[1]},
			{op: primCX, a: q[0], b: q[1]},
			{op: primS, a: q[1]},
		}, nil
	case circuit.CZ:
		return []prim{
			{op: primH, a: q[1]},
			{op: primCX, a: q[0], b: q[1]},
			{op: primH, a: q[1]},
		}, nil
	case circuit.SWAP:
		return []prim{
			{op: primCX, a: q[0], b: q[1]},
			{op: primCX, a: q[1], b: q[0]},
			{op: primCX, a: q[0], b: q[1]},
		}, nil
	case circuit.ZZMax:
		return []prim{{op: primZZMax, a: q[0], b: q[1]}}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedOp, op)
	}
}
