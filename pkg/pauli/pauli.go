package pauli

import "fmt"

// Pauli is a single-qubit Pauli operator.
type Pauli uint8

const (
	I Pauli = iota
	X
	Y
	Z
)

// FromBits returns the Pauli with boolean encoding (x, z):
// I=(0,0), Z=(0,1), X=(1,0), Y=(1,1).
func FromBits(x, z bool) Pauli {
	switch {
	case x && z:
		return Y
	case x:
		return X
	case z:
		return Z
	default:
		return I
	}
}

// Bits returns the boolean encoding of p.
func (p Pauli) Bits() (x, z bool) {
	switch p {
	case X:
		return true, false
	case Y:
		return true, true
	case Z:
		return false, true
	default:
		return false, false
	}
}

// XBit reports whether p has an X component (X or Y).
func (p Pauli) XBit() bool { return p == X || p == Y }

// ZBit reports whether p has a Z component (Z or Y).
func (p Pauli) ZBit() bool { return p == Z || p == Y }

// code orders Paulis by their (x, z) encoding: I < Z < X < Y.
func (p Pauli) code() int {
	x, z := p.Bits()
	c := 0
	if x {
		c |= 2
	}
	if z {
		c |= 1
	}
	return c
}

func (p Pauli) String() string {
	switch p {
	case I:
		return "I"
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	default:
		return fmt.Sprintf("Pauli(%d)", uint8(p))
	}
}

// ParsePauli reads one of "I", "X", "Y", "Z".
func ParsePauli(r rune) (Pauli, bool) {
	switch r {
	case 'I', 'i':
		return I, true
	case 'X', 'x':
		return X, true
	case 'Y', 'y':
		return Y, true
	case 'Z', 'z':
		return Z, true
	}
	return I, false
}

type product struct {
	p     Pauli
	phase Phase
}

// mulTable[a][b] is a·b as (Pauli, phase).
var mulTable = [4][4]product{
	I: {I: {I, One}, X: {X, One}, Y: {Y, One}, Z: {Z, One}},
	X: {I: {X, One}, X: {I, One}, Y: {Z, PlusI}, Z: {Y, MinusI}},
	Y: {I: {Y, One}, X: {Z, MinusI}, Y: {I, One}, Z: {X, PlusI}},
	Z: {I: {Z, One}, X: {Y, PlusI}, Y: {X, MinusI}, Z: {I, One}},
}

// Mul returns a·b as a Pauli and the phase factor it carries,
// e.g. Mul(X, Y) = (Z, i).
func Mul(a, b Pauli) (Pauli, Phase) {
	r := mulTable[a&3][b&3]
	return r.p, r.phase
}

// MulBits is [Mul] on boolean encodings.
func MulBits(xa, za, xb, zb bool) (x, z bool, phase Phase) {
	p, ph := Mul(FromBits(xa, za), FromBits(xb, zb))
	x, z = p.Bits()
	return x, z, ph
}

// Anticommute reports whether two single-qubit Paulis anticommute.
func Anticommute(a, b Pauli) bool {
	return a != I && b != I && a != b
}
