package passes

import (
	"slices"

	"github.com/matzehuels/paulitower/pkg/angle"
	"github.com/matzehuels/paulitower/pkg/circuit"
	"github.com/matzehuels/paulitower/pkg/transform"
)

// Pass is a transform over a circuit.
type Pass = transform.Transform[*circuit.Circuit]

// Metric scores a circuit.
type Metric = transform.Metric[*circuit.Circuit]

// symmetric op types act the same under any ordering of their qubits.
var symmetric = map[circuit.OpType]bool{
	circuit.CZ:          true,
	circuit.SWAP:        true,
	circuit.ZZMax:       true,
	circuit.ZZPhase:     true,
	circuit.XXPhase:     true,
	circuit.YYPhase:     true,
	circuit.PhaseGadget: true,
	circuit.Barrier:     true,
}

var selfInverse = map[circuit.OpType]bool{
	circuit.X: true, circuit.Y: true, circuit.Z: true, circuit.H: true,
	circuit.CX: true, circuit.CY: true, circuit.CZ: true, circuit.SWAP: true,
}

var inverse = map[circuit.OpType]circuit.OpType{
	circuit.S: circuit.Sdg, circuit.Sdg: circuit.S,
	circuit.T: circuit.Tdg, circuit.Tdg: circuit.T,
	circuit.V: circuit.Vdg, circuit.Vdg: circuit.V,
	circuit.SX: circuit.SXdg, circuit.SXdg: circuit.SX,
}

// rotations are single-parameter gates that add their angles when stacked.
var rotations = map[circuit.OpType]bool{
	circuit.Rz: true, circuit.Rx: true, circuit.Ry: true,
	circuit.ZZPhase: true, circuit.XXPhase: true, circuit.YYPhase: true,
	circuit.PhaseGadget: true,
}

// RemoveRedundancies makes one sweep over the circuit. It drops identity
// gates and rotations by a multiple of a full turn, cancels adjacent
// inverse pairs and merges adjacent rotations about the same axis.
// "Adjacent" means no command in between touches any of their wires.
func RemoveRedundancies(c *circuit.Circuit) bool {
	cmds := slices.Clone(c.Commands())
	alive := make([]bool, len(cmds))
	for i := range alive {
		alive[i] = true
	}

	changed := false
	for i := 0; i < len(cmds); i++ {
		if !alive[i] {
			continue
		}
		if trivial(cmds[i]) {
			alive[i] = false
			changed = true
			continue
		}
		for {
			j := nextOnWires(cmds, alive, i)
			if j < 0 {
				break
			}
			merged, ok := combine(cmds[i], cmds[j])
			if !ok {
				break
			}
			changed = true
			alive[j] = false
			if merged == nil {
				alive[i] = false
				break
			}
			cmds[i] = *merged
		}
	}
	if !changed {
		return false
	}
	commit(c, compact(cmds, alive))
	return true
}

// trivial reports whether cmd is the identity up to global phase.
func trivial(cmd circuit.Command) bool {
	switch t := cmd.Gate.Type; {
	case t == circuit.Noop || t == circuit.Phase:
		return true
	case rotations[t]:
		return angle.EquivZero(cmd.Gate.Param(0), 2)
	case t == circuit.PhasedX:
		return angle.EquivZero(cmd.Gate.Param(0), 2)
	}
	return false
}

// nextOnWires returns the first live command after i sharing a wire with
// cmds[i], or -1.
func nextOnWires(cmds []circuit.Command, alive []bool, i int) int {
	for j := i + 1; j < len(cmds); j++ {
		if !alive[j] {
			continue
		}
		for _, u := range cmds[i].Args {
			if cmds[j].Touches(u) {
				return j
			}
		}
	}
	return -1
}

// sameWires reports whether a and b act on the same wires, ignoring order
// for symmetric op types.
func sameWires(a, b circuit.Command) bool {
	if a.Gate.Type == b.Gate.Type && symmetric[a.Gate.Type] {
		if len(a.Args) != len(b.Args) {
			return false
		}
		for _, u := range a.Args {
			if !b.Touches(u) {
				return false
			}
		}
		return true
	}
	return slices.Equal(a.Args, b.Args)
}

// combine folds a followed by b into at most one command. A nil result with
// ok set means the pair cancels.
func combine(a, b circuit.Command) (*circuit.Command, bool) {
	if !sameWires(a, b) {
		return nil, false
	}
	ta, tb := a.Gate.Type, b.Gate.Type
	if inv, ok := inverse[ta]; ok && inv == tb {
		return nil, true
	}
	switch {
	case ta == tb && selfInverse[ta]:
		return nil, true
	case ta == tb && rotations[ta]:
		sum := a.Gate.Param(0).Add(b.Gate.Param(0))
		if angle.EquivZero(sum, 2) {
			return nil, true
		}
		return &circuit.Command{Gate: circuit.NewGate(ta, sum), Args: a.Args}, true
	}
	return nil, false
}

func compact(cmds []circuit.Command, alive []bool) []circuit.Command {
	out := make([]circuit.Command, 0, len(cmds))
	for i, cmd := range cmds {
		if alive[i] {
			out = append(out, cmd)
		}
	}
	return out
}

// commit replaces c's commands. Passes only rearrange or drop validated
// commands, so a failure is a bug.
func commit(c *circuit.Circuit, cmds []circuit.Command) {
	if err := c.SetCommands(cmds); err != nil {
		panic(err)
	}
}
