package passes

import (
	"slices"

	"github.com/matzehuels/paulitower/pkg/angle"
	"github.com/matzehuels/paulitower/pkg/circuit"
)

// quarterTurns lists, per rotation type, the named gates equal (up to
// global phase) to one, two and three quarter turns. A nil entry means no
// single named gate fits.
var quarterTurns = map[circuit.OpType][4][]circuit.OpType{
	circuit.Rz:      {nil, {circuit.S}, {circuit.Z}, {circuit.Sdg}},
	circuit.Rx:      {nil, {circuit.V}, {circuit.X}, {circuit.Vdg}},
	circuit.Ry:      {nil, nil, {circuit.Y}, nil},
	circuit.ZZPhase: {nil, {circuit.ZZMax}, {circuit.Z, circuit.Z}, {circuit.ZZMax, circuit.Z, circuit.Z}},
	circuit.XXPhase: {nil, nil, {circuit.X, circuit.X}, nil},
	circuit.YYPhase: {nil, nil, {circuit.Y, circuit.Y}, nil},
}

// CliffordRotationsToGates rewrites rotations by a multiple of a quarter
// turn as named Clifford gates, and drops those by a multiple of a full
// turn.
func CliffordRotationsToGates(c *circuit.Circuit) bool {
	var out []circuit.Command
	changed := false
	for _, cmd := range c.Commands() {
		table, ok := quarterTurns[cmd.Gate.Type]
		if !ok {
			out = append(out, cmd)
			continue
		}
		k, ok := angle.EquivClifford(cmd.Gate.Param(0))
		if !ok || (k != 0 && table[k] == nil) {
			out = append(out, cmd)
			continue
		}
		changed = true
		out = append(out, expand(cmd, table[k])...)
	}
	if !changed {
		return false
	}
	commit(c, out)
	return true
}

// expand places named gates on the wires of a rotation. Two-qubit gates take
// both qubits; single-qubit gates in a two-qubit expansion alternate over
// the qubits.
func expand(cmd circuit.Command, ops []circuit.OpType) []circuit.Command {
	var out []circuit.Command
	single := 0
	for _, t := range ops {
		args := slices.Clone(cmd.Args)
		if t.NumQubits() == 1 {
			args = []circuit.Unit{cmd.Args[single%len(cmd.Args)]}
			single++
		}
		out = append(out, circuit.Command{Gate: circuit.NewGate(t), Args: args})
	}
	return out
}
