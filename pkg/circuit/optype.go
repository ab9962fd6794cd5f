package circuit

import (
	"fmt"
	"strings"
)

// OpType identifies an operation. The set is closed; code that dispatches
// on it should carry an explicit default arm for kinds it does not handle.
type OpType uint8

const (
	Noop OpType = iota
	Phase
	X
	Y
	Z
	S
	Sdg
	T
	Tdg
	V
	Vdg
	SX
	SXdg
	H
	Rx
	Ry
	Rz
	PhasedX
	CX
	CY
	CZ
	SWAP
	ZZMax
	ZZPhase
	XXPhase
	YYPhase
	PhaseGadget
	Measure
	Reset
	Barrier

	numOpTypes
)

// Variadic marks an op type that accepts any positive number of qubits.
const Variadic = -1

type opInfo struct {
	name     string
	qubits   int // Variadic for any count >= 1
	bits     int
	params   int
	clifford bool
}

var opTable = [numOpTypes]opInfo{
	Noop:        {"noop", 1, 0, 0, true},
	Phase:       {"Phase", 0, 0, 1, true},
	X:           {"X", 1, 0, 0, true},
	Y:           {"Y", 1, 0, 0, true},
	Z:           {"Z", 1, 0, 0, true},
	S:           {"S", 1, 0, 0, true},
	Sdg:         {"Sdg", 1, 0, 0, true},
	T:           {"T", 1, 0, 0, false},
	Tdg:         {"Tdg", 1, 0, 0, false},
	V:           {"V", 1, 0, 0, true},
	Vdg:         {"Vdg", 1, 0, 0, true},
	SX:          {"SX", 1, 0, 0, true},
	SXdg:        {"SXdg", 1, 0, 0, true},
	H:           {"H", 1, 0, 0, true},
	Rx:          {"Rx", 1, 0, 1, false},
	Ry:          {"Ry", 1, 0, 1, false},
	Rz:          {"Rz", 1, 0, 1, false},
	PhasedX:     {"PhasedX", 1, 0, 2, false},
	CX:          {"CX", 2, 0, 0, true},
	CY:          {"CY", 2, 0, 0, true},
	CZ:          {"CZ", 2, 0, 0, true},
	SWAP:        {"SWAP", 2, 0, 0, true},
	ZZMax:       {"ZZMax", 2, 0, 0, true},
	ZZPhase:     {"ZZPhase", 2, 0, 1, false},
	XXPhase:     {"XXPhase", 2, 0, 1, false},
	YYPhase:     {"YYPhase", 2, 0, 1, false},
	PhaseGadget: {"PhaseGadget", Variadic, 0, 1, false},
	Measure:     {"Measure", 1, 1, 0, false},
	Reset:       {"Reset", 1, 0, 0, false},
	Barrier:     {"Barrier", Variadic, 0, 0, false},
}

// String returns the canonical op name, e.g. "CX" or "PhasedX".
func (t OpType) String() string {
	if t >= numOpTypes {
		return fmt.Sprintf("OpType(%d)", uint8(t))
	}
	return opTable[t].name
}

// Valid reports whether t is a known op type.
func (t OpType) Valid() bool { return t < numOpTypes }

// NumQubits returns the qubit arity, or [Variadic].
func (t OpType) NumQubits() int { return opTable[t].qubits }

// NumBits returns the number of classical bit arguments.
func (t OpType) NumBits() int { return opTable[t].bits }

// NumParams returns the number of angle parameters.
func (t OpType) NumParams() int { return opTable[t].params }

// IsClifford reports whether the op is a Clifford gate for every value of
// its parameters. Rotations with Clifford angles are not included.
func (t OpType) IsClifford() bool { return opTable[t].clifford }

// IsGate reports whether the op is a unitary gate (not measure, reset or
// barrier).
func (t OpType) IsGate() bool {
	switch t {
	case Measure, Reset, Barrier:
		return false
	}
	return t.Valid()
}

// ParseOpType looks up an op type by its canonical name, case-insensitively.
func ParseOpType(name string) (OpType, error) {
	for t := range numOpTypes {
		if strings.EqualFold(opTable[t].name, name) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown op type %q", ErrUnknownOp, name)
}

// AllOpTypes returns every op type in declaration order.
func AllOpTypes() []OpType {
	out := make([]OpType, numOpTypes)
	for i := range out {
		out[i] = OpType(i)
	}
	return out
}
