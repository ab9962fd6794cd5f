package pauli

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/matzehuels/paulitower/pkg/circuit"
)

// Term is one non-identity factor of a [Tensor].
type Term struct {
	Qubit circuit.Qubit
	Pauli Pauli
}

// Tensor is a sparse Pauli string over named qubits with a phase
// coefficient. Absent qubits are implicitly I.
//
// Tensor is an immutable value: its terms are kept sorted by qubit with no
// identity entries, and every method returns a fresh Tensor. The zero value
// is the identity with coefficient +1.
type Tensor struct {
	terms []Term
	coeff Phase
}

// Identity returns the identity tensor with the given coefficient.
func Identity(coeff Phase) Tensor { return Tensor{coeff: coeff} }

// Single returns the tensor p acting on qubit q with coefficient +1.
func Single(q circuit.Qubit, p Pauli) Tensor {
	if p == I {
		return Tensor{}
	}
	return Tensor{terms: []Term{{q, p}}}
}

// NewTensor builds a tensor from a qubit→Pauli map. Identity entries are
// dropped.
func NewTensor(m map[circuit.Qubit]Pauli, coeff Phase) Tensor {
	t := Tensor{coeff: coeff & 3}
	for q, p := range m {
		if p != I {
			t.terms = append(t.terms, Term{q, p})
		}
	}
	slices.SortFunc(t.terms, func(a, b Term) int { return cmp.Compare(a.Qubit, b.Qubit) })
	return t
}

// FromTerms builds a tensor from terms. Later terms on the same qubit are
// multiplied onto earlier ones, so the result is the ordered product.
func FromTerms(coeff Phase, terms ...Term) Tensor {
	t := Identity(coeff)
	for _, tm := range terms {
		t = t.Mul(Single(tm.Qubit, tm.Pauli))
	}
	return t
}

// Dense builds a tensor from a string such as "XIZ" acting on qubits
// 0, 1, 2, with an optional leading sign ("-XZ", "+iY", "-iY").
func Dense(s string) (Tensor, error) {
	coeff := One
	switch {
	case strings.HasPrefix(s, "-i"):
		coeff, s = MinusI, s[2:]
	case strings.HasPrefix(s, "+i"):
		coeff, s = PlusI, s[2:]
	case strings.HasPrefix(s, "-"):
		coeff, s = MinusOne, s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	m := make(map[circuit.Qubit]Pauli, len(s))
	for i, r := range []rune(s) {
		p, ok := ParsePauli(r)
		if !ok {
			return Tensor{}, fmt.Errorf("invalid pauli %q at %d", r, i)
		}
		m[circuit.Qubit(i)] = p
	}
	return NewTensor(m, coeff), nil
}

// MustDense is like [Dense] but panics on error.
func MustDense(s string) Tensor {
	t, err := Dense(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Coeff returns the phase coefficient.
func (t Tensor) Coeff() Phase { return t.coeff }

// WithCoeff returns t with its coefficient replaced.
func (t Tensor) WithCoeff(c Phase) Tensor {
	return Tensor{terms: t.terms, coeff: c & 3}
}

// IsRealNegative reports whether the coefficient is exactly -1.
func (t Tensor) IsRealNegative() bool { return t.coeff == MinusOne }

// Len returns the number of non-identity factors.
func (t Tensor) Len() int { return len(t.terms) }

// IsIdentity reports whether every factor is I (any coefficient).
func (t Tensor) IsIdentity() bool { return len(t.terms) == 0 }

// Terms returns the non-identity factors sorted by qubit.
func (t Tensor) Terms() []Term { return slices.Clone(t.terms) }

// Qubits returns the qubits with a non-identity factor, ascending.
func (t Tensor) Qubits() []circuit.Qubit {
	out := make([]circuit.Qubit, len(t.terms))
	for i, tm := range t.terms {
		out[i] = tm.Qubit
	}
	return out
}

// Get returns the factor on qubit q.
func (t Tensor) Get(q circuit.Qubit) Pauli {
	i, ok := slices.BinarySearchFunc(t.terms, q, func(tm Term, q circuit.Qubit) int { return cmp.Compare(tm.Qubit, q) })
	if !ok {
		return I
	}
	return t.terms[i].Pauli
}

// Mul returns the operator product t·o, tracking the phase.
func (t Tensor) Mul(o Tensor) Tensor {
	out := Tensor{coeff: t.coeff.Mul(o.coeff)}
	i, j := 0, 0
	for i < len(t.terms) || j < len(o.terms) {
		switch {
		case j >= len(o.terms) || (i < len(t.terms) && t.terms[i].Qubit < o.terms[j].Qubit):
			out.terms = append(out.terms, t.terms[i])
			i++
		case i >= len(t.terms) || o.terms[j].Qubit < t.terms[i].Qubit:
			out.terms = append(out.terms, o.terms[j])
			j++
		default:
			p, ph := Mul(t.terms[i].Pauli, o.terms[j].Pauli)
			out.coeff = out.coeff.Mul(ph)
			if p != I {
				out.terms = append(out.terms, Term{t.terms[i].Qubit, p})
			}
			i++
			j++
		}
	}
	return out
}

// Commutes reports whether t and o commute: they anticommute on an even
// number of qubits.
func (t Tensor) Commutes(o Tensor) bool {
	n := 0
	i, j := 0, 0
	for i < len(t.terms) && j < len(o.terms) {
		switch {
		case t.terms[i].Qubit < o.terms[j].Qubit:
			i++
		case o.terms[j].Qubit < t.terms[i].Qubit:
			j++
		default:
			if Anticommute(t.terms[i].Pauli, o.terms[j].Pauli) {
				n++
			}
			i++
			j++
		}
	}
	return n%2 == 0
}

// StringEqual reports whether t and o have the same Pauli string,
// ignoring coefficients.
func (t Tensor) StringEqual(o Tensor) bool {
	return slices.Equal(t.terms, o.terms)
}

// Equal reports whether t and o are identical including coefficient.
func (t Tensor) Equal(o Tensor) bool {
	return t.coeff == o.coeff && t.StringEqual(o)
}

// Compare orders tensors lexicographically over ascending qubits by each
// factor's (x, z) encoding, then by coefficient. It returns -1, 0 or +1.
func (t Tensor) Compare(o Tensor) int {
	i, j := 0, 0
	for i < len(t.terms) || j < len(o.terms) {
		switch {
		case j >= len(o.terms) || (i < len(t.terms) && t.terms[i].Qubit < o.terms[j].Qubit):
			// o has I here, t does not.
			return 1
		case i >= len(t.terms) || o.terms[j].Qubit < t.terms[i].Qubit:
			return -1
		default:
			if c := cmp.Compare(t.terms[i].Pauli.code(), o.terms[j].Pauli.code()); c != 0 {
				return c
			}
			i++
			j++
		}
	}
	return cmp.Compare(t.coeff, o.coeff)
}

// String formats the tensor as coefficient then factors, e.g. "-X0 Z2",
// "+iY1" or "+I".
func (t Tensor) String() string {
	var b strings.Builder
	b.WriteString(t.coeff.String())
	if len(t.terms) == 0 {
		b.WriteString("I")
		return b.String()
	}
	for i, tm := range t.terms {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s%d", tm.Pauli, int(tm.Qubit))
	}
	return b.String()
}

// Label formats only the Pauli string, e.g. "X0 Z2" or "I".
func (t Tensor) Label() string {
	return strings.TrimLeft(t.WithCoeff(One).String(), "+")
}
