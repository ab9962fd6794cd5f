package pauli

import (
	"math"
	"math/cmplx"
)

// Phase is a power of i: the value is i^k for k = 0..3.
type Phase uint8

const (
	One      Phase = 0 // 1
	PlusI    Phase = 1 // i
	MinusOne Phase = 2 // -1
	MinusI   Phase = 3 // -i
)

// Mul returns p·q.
func (p Phase) Mul(q Phase) Phase { return (p + q) & 3 }

// Conj returns the complex conjugate of p.
func (p Phase) Conj() Phase { return (4 - p&3) & 3 }

// Neg returns -p.
func (p Phase) Neg() Phase { return p.Mul(MinusOne) }

// IsReal reports whether p is ±1.
func (p Phase) IsReal() bool { return p&1 == 0 }

// IsNegative reports whether p is -1.
func (p Phase) IsNegative() bool { return p&3 == MinusOne }

// Complex returns p as a complex number.
func (p Phase) Complex() complex128 {
	switch p & 3 {
	case PlusI:
		return 1i
	case MinusOne:
		return -1
	case MinusI:
		return -1i
	default:
		return 1
	}
}

// PhaseOf converts a complex unit in {1, i, -1, -i} to a Phase. It reports
// false for any other value.
func PhaseOf(c complex128) (Phase, bool) {
	const tol = 1e-9
	if math.Abs(cmplx.Abs(c)-1) > tol {
		return 0, false
	}
	for k := One; k <= MinusI; k++ {
		if cmplx.Abs(c-k.Complex()) < tol {
			return k, true
		}
	}
	return 0, false
}

func (p Phase) String() string {
	switch p & 3 {
	case PlusI:
		return "+i"
	case MinusOne:
		return "-"
	case MinusI:
		return "-i"
	default:
		return "+"
	}
}
