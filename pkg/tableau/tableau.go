package tableau

import (
	"errors"
	"fmt"
	"strings"

	"github.com/matzehuels/paulitower/pkg/circuit"
	"github.com/matzehuels/paulitower/pkg/pauli"
)

var (
	// ErrDimensionMismatch is returned when the X matrix, Z matrix and phase
	// vector of a tableau disagree in shape, or a gate is given the wrong
	// number of qubits.
	ErrDimensionMismatch = errors.New("tableau dimension mismatch")

	// ErrRowIndex is returned for a row index outside the tableau.
	ErrRowIndex = errors.New("row index out of range")

	// ErrImaginaryPhase is returned when a row product would carry a phase
	// of ±i. Rows of a tableau always have real signs.
	ErrImaginaryPhase = errors.New("row product has imaginary phase")

	// ErrUnsupportedOp is returned by [Tableau.ApplyGate] and
	// [Frame.ApplyGateAtEnd] for op types outside the Clifford generating set.
	ErrUnsupportedOp = errors.New("unsupported operation")

	// ErrNotCommuting is returned by [Tableau.GaussianForm] when the rows do
	// not pairwise commute and so cannot be combined with real phases.
	ErrNotCommuting = errors.New("tableau rows do not commute")

	// ErrUnknownQubit is returned for a qubit index or name the tableau
	// does not cover.
	ErrUnknownQubit = errors.New("unknown qubit")
)

// Tableau is a set of Pauli strings over n qubits stored as a binary
// symplectic matrix: row i is (X bits, Z bits, sign) with the boolean
// encoding of [pauli.FromBits]. A set phase bit means the row is negated.
//
// A Tableau is exclusively owned by its user; its methods are not safe for
// concurrent use.
type Tableau struct {
	nRows   int
	nQubits int
	xmat    *BitMatrix
	zmat    *BitMatrix
	phase   []bool
}

// New builds a tableau from explicit matrices. xmat and zmat must both be
// nRows × nQubits and phase must have nRows entries.
func New(xmat, zmat [][]bool, phase []bool) (*Tableau, error) {
	xm, ok := BitMatrixFrom(xmat)
	if !ok {
		return nil, fmt.Errorf("%w: ragged X matrix", ErrDimensionMismatch)
	}
	zm, ok := BitMatrixFrom(zmat)
	if !ok {
		return nil, fmt.Errorf("%w: ragged Z matrix", ErrDimensionMismatch)
	}
	if xm.Rows() != zm.Rows() || xm.Cols() != zm.Cols() {
		return nil, fmt.Errorf("%w: X is %dx%d, Z is %dx%d",
			ErrDimensionMismatch, xm.Rows(), xm.Cols(), zm.Rows(), zm.Cols())
	}
	if len(phase) != xm.Rows() {
		return nil, fmt.Errorf("%w: %d rows, %d phases", ErrDimensionMismatch, xm.Rows(), len(phase))
	}
	return &Tableau{
		nRows:   xm.Rows(),
		nQubits: xm.Cols(),
		xmat:    xm,
		zmat:    zm,
		phase:   append([]bool(nil), phase...),
	}, nil
}

// FromPaulis builds a tableau with one row per tensor over qubits
// 0..nQubits-1. Every tensor must have a real coefficient.
func FromPaulis(nQubits int, rows ...pauli.Tensor) (*Tableau, error) {
	t := empty(len(rows), nQubits)
	for i, r := range rows {
		if err := t.setRow(i, r); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}
	return t, nil
}

func empty(nRows, nQubits int) *Tableau {
	return &Tableau{
		nRows:   nRows,
		nQubits: nQubits,
		xmat:    NewBitMatrix(nRows, nQubits),
		zmat:    NewBitMatrix(nRows, nQubits),
		phase:   make([]bool, nRows),
	}
}

func (t *Tableau) setRow(i int, r pauli.Tensor) error {
	if !r.Coeff().IsReal() {
		return fmt.Errorf("%w: %v", ErrImaginaryPhase, r)
	}
	for j := 0; j < t.nQubits; j++ {
		t.xmat.Set(i, j, false)
		t.zmat.Set(i, j, false)
	}
	for _, tm := range r.Terms() {
		q := int(tm.Qubit)
		if q < 0 || q >= t.nQubits {
			return fmt.Errorf("%w: %d", ErrUnknownQubit, q)
		}
		x, z := tm.Pauli.Bits()
		t.xmat.Set(i, q, x)
		t.zmat.Set(i, q, z)
	}
	t.phase[i] = r.IsRealNegative()
	return nil
}

// NRows returns the number of rows.
func (t *Tableau) NRows() int { return t.nRows }

// NQubits returns the number of qubit columns.
func (t *Tableau) NQubits() int { return t.nQubits }

// Pauli reconstructs row i as a tensor over qubits 0..n-1 with its sign.
func (t *Tableau) Pauli(i int) (pauli.Tensor, error) {
	if i < 0 || i >= t.nRows {
		return pauli.Tensor{}, fmt.Errorf("%w: %d", ErrRowIndex, i)
	}
	return t.row(i), nil
}

func (t *Tableau) row(i int) pauli.Tensor {
	m := make(map[circuit.Qubit]pauli.Pauli)
	for j := 0; j < t.nQubits; j++ {
		if p := pauli.FromBits(t.xmat.Get(i, j), t.zmat.Get(i, j)); p != pauli.I {
			m[circuit.Qubit(j)] = p
		}
	}
	coeff := pauli.One
	if t.phase[i] {
		coeff = pauli.MinusOne
	}
	return pauli.NewTensor(m, coeff)
}

// Clone returns a deep copy.
func (t *Tableau) Clone() *Tableau {
	return &Tableau{
		nRows:   t.nRows,
		nQubits: t.nQubits,
		xmat:    t.xmat.Clone(),
		zmat:    t.zmat.Clone(),
		phase:   append([]bool(nil), t.phase...),
	}
}

// Equal reports whether both tableaus have identical X, Z and phase data.
func (t *Tableau) Equal(o *Tableau) bool {
	if t.nRows != o.nRows || t.nQubits != o.nQubits {
		return false
	}
	for i := range t.phase {
		if t.phase[i] != o.phase[i] {
			return false
		}
	}
	return t.xmat.Equal(o.xmat) && t.zmat.Equal(o.zmat)
}

// XMatrix returns a copy of the X bits.
func (t *Tableau) XMatrix() [][]bool { return t.xmat.Bools() }

// ZMatrix returns a copy of the Z bits.
func (t *Tableau) ZMatrix() [][]bool { return t.zmat.Bools() }

// Phases returns a copy of the phase bits.
func (t *Tableau) Phases() []bool { return append([]bool(nil), t.phase...) }

// String prints one row per line as "xbits zbits phase".
func (t *Tableau) String() string {
	var b strings.Builder
	for i := 0; i < t.nRows; i++ {
		b.WriteString(t.xmat.RowString(i))
		b.WriteByte(' ')
		b.WriteString(t.zmat.RowString(i))
		if t.phase[i] {
			b.WriteString(" 1\n")
		} else {
			b.WriteString(" 0\n")
		}
	}
	return b.String()
}

// =============================================================================
// Row algebra
// =============================================================================

// RowMult replaces row w with coeff · row a · row w. The combined phase,
// including coeff, must be ±1; otherwise the tableau is left unchanged and
// ErrImaginaryPhase is returned.
func (t *Tableau) RowMult(a, w int, coeff pauli.Phase) error {
	if a < 0 || a >= t.nRows || w < 0 || w >= t.nRows {
		return fmt.Errorf("%w: (%d, %d)", ErrRowIndex, a, w)
	}
	ph := t.productPhase(a, w, coeff)
	if !ph.IsReal() {
		return fmt.Errorf("%w: row %d times row %d", ErrImaginaryPhase, a, w)
	}
	t.xmat.XorRow(w, a)
	t.zmat.XorRow(w, a)
	t.phase[w] = ph.IsNegative()
	return nil
}

// productPhase returns the phase of coeff · row a · row w, including both
// rows' signs.
func (t *Tableau) productPhase(a, w int, coeff pauli.Phase) pauli.Phase {
	ph := coeff
	if t.phase[a] {
		ph = ph.Neg()
	}
	if t.phase[w] {
		ph = ph.Neg()
	}
	for j := 0; j < t.nQubits; j++ {
		_, _, p := pauli.MulBits(t.xmat.Get(a, j), t.zmat.Get(a, j), t.xmat.Get(w, j), t.zmat.Get(w, j))
		ph = ph.Mul(p)
	}
	return ph
}

// mulTensor replaces row w with coeff · row w · p, where p is a tensor over
// the tableau's qubit columns. It returns false without modifying the row
// when the result would be imaginary.
func (t *Tableau) mulTensor(w int, p pauli.Tensor, coeff pauli.Phase) bool {
	ph := coeff.Mul(p.Coeff())
	if t.phase[w] {
		ph = ph.Neg()
	}
	for _, tm := range p.Terms() {
		j := int(tm.Qubit)
		px, pz := tm.Pauli.Bits()
		_, _, f := pauli.MulBits(t.xmat.Get(w, j), t.zmat.Get(w, j), px, pz)
		ph = ph.Mul(f)
	}
	if !ph.IsReal() {
		return false
	}
	for _, tm := range p.Terms() {
		j := int(tm.Qubit)
		px, pz := tm.Pauli.Bits()
		if px {
			t.xmat.Flip(w, j)
		}
		if pz {
			t.zmat.Flip(w, j)
		}
	}
	t.phase[w] = ph.IsNegative()
	return true
}

// anticommutes reports whether rows i and j anticommute, from the
// symplectic inner product.
func (t *Tableau) anticommutes(i, j int) bool {
	n := t.xmat.AndPopCount(i, t.zmat, j) + t.zmat.AndPopCount(i, t.xmat, j)
	return n%2 == 1
}

// AnticommutingRows returns the symmetric nRows × nRows relation whose
// entry (i, j) is set iff rows i and j anticommute.
func (t *Tableau) AnticommutingRows() *BitMatrix {
	m := NewBitMatrix(t.nRows, t.nRows)
	for i := 0; i < t.nRows; i++ {
		for j := i + 1; j < t.nRows; j++ {
			if t.anticommutes(i, j) {
				m.Set(i, j, true)
				m.Set(j, i, true)
			}
		}
	}
	return m
}

// Rank returns the GF(2) rank of the combined [X|Z] matrix. The tableau is
// not modified.
func (t *Tableau) Rank() int {
	m := NewBitMatrix(t.nRows, 2*t.nQubits)
	for i := 0; i < t.nRows; i++ {
		for j := 0; j < t.nQubits; j++ {
			m.Set(i, j, t.xmat.Get(i, j))
			m.Set(i, t.nQubits+j, t.zmat.Get(i, j))
		}
	}
	rank := 0
	for col := 0; col < m.Cols() && rank < m.Rows(); col++ {
		pivot := -1
		for i := rank; i < m.Rows(); i++ {
			if m.Get(i, col) {
				pivot = i
				break
			}
		}
		if pivot < 0 {
			continue
		}
		m.SwapRows(rank, pivot)
		for i := 0; i < m.Rows(); i++ {
			if i != rank && m.Get(i, col) {
				m.XorRow(i, rank)
			}
		}
		rank++
	}
	return rank
}

// GaussianForm reduces the tableau in place to reduced row-echelon form
// over GF(2), pivoting on the X columns of every qubit and then the Z
// columns. The only row operation used is [Tableau.RowMult], so signs stay
// consistent with the represented group.
//
// Row multiplication preserves meaning only for a stabilizer group, whose
// rows pairwise commute. A tableau with anticommuting rows is rejected with
// ErrNotCommuting before anything is changed.
func (t *Tableau) GaussianForm() error {
	for i := 0; i < t.nRows; i++ {
		for j := i + 1; j < t.nRows; j++ {
			if t.anticommutes(i, j) {
				return fmt.Errorf("%w: rows %d and %d", ErrNotCommuting, i, j)
			}
		}
	}
	r := 0
	for col := 0; col < 2*t.nQubits && r < t.nRows; col++ {
		mat, c := t.xmat, col
		if col >= t.nQubits {
			mat, c = t.zmat, col-t.nQubits
		}
		pivot := -1
		for i := r; i < t.nRows; i++ {
			if mat.Get(i, c) {
				pivot = i
				break
			}
		}
		if pivot < 0 {
			continue
		}
		if pivot != r {
			t.mustRowMult(pivot, r)
		}
		for i := 0; i < t.nRows; i++ {
			if i != r && mat.Get(i, c) {
				t.mustRowMult(r, i)
			}
		}
		r++
	}
	return nil
}

func (t *Tableau) mustRowMult(a, w int) {
	if err := t.RowMult(a, w, pauli.One); err != nil {
		panic(err)
	}
}

// Conjugate returns the tableau of the complex-conjugated rows: each row's
// sign flips once per Y factor.
func (t *Tableau) Conjugate() *Tableau {
	out := t.Clone()
	for i := 0; i < t.nRows; i++ {
		if t.xmat.AndPopCount(i, t.zmat, i)%2 == 1 {
			out.phase[i] = !out.phase[i]
		}
	}
	return out
}
