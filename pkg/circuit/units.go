package circuit

import "fmt"

// Qubit is an index into the circuit's quantum register.
type Qubit int

// Bit is an index into the circuit's classical register.
type Bit int

// String returns the OpenQASM reference, e.g. "q[3]".
func (q Qubit) String() string { return fmt.Sprintf("q[%d]", int(q)) }

// String returns the OpenQASM reference, e.g. "c[0]".
func (b Bit) String() string { return fmt.Sprintf("c[%d]", int(b)) }

// UnitKind tags a [Unit] as quantum or classical.
type UnitKind uint8

const (
	// QuantumUnit is a qubit wire.
	QuantumUnit UnitKind = iota
	// ClassicalUnit is a classical bit wire.
	ClassicalUnit
)

// Unit is a wire: either a qubit or a classical bit. Units are comparable
// and usable as map keys.
type Unit struct {
	Kind  UnitKind
	Index int
}

// Q returns the unit for qubit i.
func Q(i int) Unit { return Unit{Kind: QuantumUnit, Index: i} }

// B returns the unit for bit i.
func B(i int) Unit { return Unit{Kind: ClassicalUnit, Index: i} }

// IsQubit reports whether u is a qubit wire.
func (u Unit) IsQubit() bool { return u.Kind == QuantumUnit }

// Qubit returns u as a Qubit. The result is meaningless for classical units.
func (u Unit) Qubit() Qubit { return Qubit(u.Index) }

// Bit returns u as a Bit. The result is meaningless for quantum units.
func (u Unit) Bit() Bit { return Bit(u.Index) }

func (u Unit) String() string {
	if u.Kind == ClassicalUnit {
		return Bit(u.Index).String()
	}
	return Qubit(u.Index).String()
}

// Qubits is shorthand for building qubit units from indices.
func Qubits(idx ...int) []Unit {
	out := make([]Unit, len(idx))
	for i, q := range idx {
		out[i] = Q(q)
	}
	return out
}
