package tableau

import (
	"fmt"
	"slices"
	"strings"

	"github.com/matzehuels/paulitower/pkg/circuit"
	"github.com/matzehuels/paulitower/pkg/pauli"
)

// Frame tracks a Clifford unitary C over a fixed set of named qubits.
//
// For every qubit q the frame stores two rows: ZRow(q) = C† Z_q C and
// XRow(q) = C† X_q C. These are the Paulis at the input of C that become
// Z_q and X_q at its output, so a Pauli P applied after C equals
// [Frame.RowProduct](P) applied before it.
//
// Unlike a plain [Tableau], a Frame always holds exactly one X row and one
// Z row per qubit and does not offer [Tableau.GaussianForm]: combining rows
// would change the unitary it represents.
type Frame struct {
	qubits []circuit.Qubit
	index  map[circuit.Qubit]int
	tab    *Tableau // rows 0..n-1 are X rows, n..2n-1 are Z rows
}

// NewFrame returns the identity frame over the given qubits.
func NewFrame(qubits []circuit.Qubit) *Frame {
	n := len(qubits)
	f := &Frame{
		qubits: slices.Clone(qubits),
		index:  make(map[circuit.Qubit]int, n),
		tab:    empty(2*n, n),
	}
	for i, q := range f.qubits {
		f.index[q] = i
		f.tab.xmat.Set(i, i, true)
		f.tab.zmat.Set(n+i, i, true)
	}
	return f
}

// Qubits returns the frame's qubits in column order.
func (f *Frame) Qubits() []circuit.Qubit { return slices.Clone(f.qubits) }

// NQubits returns the number of qubits.
func (f *Frame) NQubits() int { return len(f.qubits) }

// Clone returns a deep copy.
func (f *Frame) Clone() *Frame {
	return &Frame{qubits: slices.Clone(f.qubits), index: f.index, tab: f.tab.Clone()}
}

// Equal reports whether both frames cover the same qubits and represent the
// same unitary, signs included.
func (f *Frame) Equal(o *Frame) bool {
	return slices.Equal(f.qubits, o.qubits) && f.tab.Equal(o.tab)
}

// Tableau returns a copy of the frame as a plain tableau: the X rows of
// every qubit in column order, then the Z rows.
func (f *Frame) Tableau() *Tableau { return f.tab.Clone() }

// IsIdentity reports whether the frame is the identity Clifford.
func (f *Frame) IsIdentity() bool {
	return f.tab.Equal(NewFrame(f.qubits).tab)
}

func (f *Frame) col(q circuit.Qubit) (int, error) {
	i, ok := f.index[q]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownQubit, q)
	}
	return i, nil
}

func (f *Frame) xrow(i int) int { return i }
func (f *Frame) zrow(i int) int { return len(f.qubits) + i }

// ZRow returns C† Z_q C.
func (f *Frame) ZRow(q circuit.Qubit) (pauli.Tensor, error) {
	i, err := f.col(q)
	if err != nil {
		return pauli.Tensor{}, err
	}
	return f.named(f.tab.row(f.zrow(i))), nil
}

// XRow returns C† X_q C.
func (f *Frame) XRow(q circuit.Qubit) (pauli.Tensor, error) {
	i, err := f.col(q)
	if err != nil {
		return pauli.Tensor{}, err
	}
	return f.named(f.tab.row(f.xrow(i))), nil
}

// RowProduct returns C† P C for a tensor over the frame's qubits, by
// multiplying the rows of P's factors in qubit order with Y = iXZ.
func (f *Frame) RowProduct(p pauli.Tensor) (pauli.Tensor, error) {
	out := pauli.Identity(p.Coeff())
	for _, tm := range p.Terms() {
		x, err := f.XRow(tm.Qubit)
		if err != nil {
			return pauli.Tensor{}, err
		}
		z, _ := f.ZRow(tm.Qubit)
		switch tm.Pauli {
		case pauli.X:
			out = out.Mul(x)
		case pauli.Z:
			out = out.Mul(z)
		case pauli.Y:
			out = out.Mul(x.Mul(z)).Mul(pauli.Identity(pauli.PlusI))
		}
	}
	return out, nil
}

// named maps a tensor over column indices to the frame's qubit names.
func (f *Frame) named(t pauli.Tensor) pauli.Tensor {
	m := make(map[circuit.Qubit]pauli.Pauli, t.Len())
	for _, tm := range t.Terms() {
		m[f.qubits[tm.Qubit]] = tm.Pauli
	}
	return pauli.NewTensor(m, t.Coeff())
}

// columns maps a tensor over qubit names to column indices.
func (f *Frame) columns(t pauli.Tensor) (pauli.Tensor, error) {
	m := make(map[circuit.Qubit]pauli.Pauli, t.Len())
	for _, tm := range t.Terms() {
		i, err := f.col(tm.Qubit)
		if err != nil {
			return pauli.Tensor{}, err
		}
		m[circuit.Qubit(i)] = tm.Pauli
	}
	return pauli.NewTensor(m, t.Coeff()), nil
}

// =============================================================================
// Updates
// =============================================================================

// ApplyGateAtEnd replaces C with g·C for a Clifford gate g on the named
// qubits. Op types outside the Clifford set return ErrUnsupportedOp.
func (f *Frame) ApplyGateAtEnd(op circuit.OpType, qubits ...circuit.Qubit) error {
	cols := make([]int, len(qubits))
	for i, q := range qubits {
		c, err := f.col(q)
		if err != nil {
			return err
		}
		cols[i] = c
	}
	prims, err := decompose(op, cols)
	if err != nil {
		return err
	}
	for _, g := range prims {
		if err := f.applyPrimAtEnd(g); err != nil {
			return err
		}
	}
	return nil
}

func (f *Frame) applyPrimAtEnd(g prim) error {
	t := f.tab
	switch g.op {
	case primS:
		// S† X S = -Y = -i·X·Z
		return t.RowMult(f.zrow(g.a), f.xrow(g.a), pauli.PlusI)
	case primZ:
		t.phase[f.xrow(g.a)] = !t.phase[f.xrow(g.a)]
	case primX:
		t.phase[f.zrow(g.a)] = !t.phase[f.zrow(g.a)]
	case primV:
		// V† Z V = Y = i·X·Z
		return t.RowMult(f.xrow(g.a), f.zrow(g.a), pauli.PlusI)
	case primH:
		t.swapRows(f.xrow(g.a), f.zrow(g.a))
	case primCX:
		if err := t.RowMult(f.zrow(g.a), f.zrow(g.b), pauli.One); err != nil {
			return err
		}
		return t.RowMult(f.xrow(g.b), f.xrow(g.a), pauli.One)
	case primZZMax:
		zz := pauli.FromTerms(pauli.One,
			pauli.Term{Qubit: f.qubits[g.a], Pauli: pauli.Z},
			pauli.Term{Qubit: f.qubits[g.b], Pauli: pauli.Z})
		return f.ApplyPauliAtEnd(zz, 1)
	}
	return nil
}

// ApplyPauliAtFront replaces C with C·e^{-iπkP/4}: k quarter turns about P
// applied before C. P is a tensor over the frame's qubits with a real
// coefficient.
func (f *Frame) ApplyPauliAtFront(p pauli.Tensor, k uint) error {
	cp, err := f.columns(p)
	if err != nil {
		return err
	}
	return f.tab.ApplyPauliGadget(cp, (4-k%4)%4)
}

// ApplyPauliAtEnd replaces C with e^{-iπkP/4}·C. Since e^{-iπkP/4}·C equals
// C·e^{-iπk(C†PC)/4}, this is [Frame.ApplyPauliAtFront] on the row product.
func (f *Frame) ApplyPauliAtEnd(p pauli.Tensor, k uint) error {
	rp, err := f.RowProduct(p)
	if err != nil {
		return err
	}
	return f.ApplyPauliAtFront(rp, k)
}

func (t *Tableau) swapRows(i, j int) {
	t.xmat.SwapRows(i, j)
	t.zmat.SwapRows(i, j)
	t.phase[i], t.phase[j] = t.phase[j], t.phase[i]
}

// String prints each qubit's rows, e.g. "Z0: +X0 Z1".
func (f *Frame) String() string {
	var b strings.Builder
	for _, q := range f.qubits {
		x, _ := f.XRow(q)
		z, _ := f.ZRow(q)
		fmt.Fprintf(&b, "X%d: %v\nZ%d: %v\n", int(q), x, int(q), z)
	}
	return b.String()
}
