package passes

import (
	"slices"

	"github.com/matzehuels/paulitower/pkg/circuit"
)

type axis uint8

const (
	noAxis axis = iota
	zAxis
	xAxis
)

func axisOf(t circuit.OpType) axis {
	switch t {
	case circuit.Rz, circuit.T, circuit.Tdg, circuit.S, circuit.Sdg, circuit.Z:
		return zAxis
	case circuit.Rx, circuit.V, circuit.Vdg, circuit.SX, circuit.SXdg, circuit.X:
		return xAxis
	}
	return noAxis
}

// passable reports whether a single-qubit rotation about ax on q commutes
// with the multi-qubit gate cmd.
func passable(cmd circuit.Command, q circuit.Unit, ax axis) bool {
	switch cmd.Gate.Type {
	case circuit.CX:
		if ax == zAxis {
			return cmd.Args[0] == q
		}
		return cmd.Args[1] == q
	case circuit.CZ, circuit.ZZMax, circuit.ZZPhase:
		return ax == zAxis
	case circuit.XXPhase:
		return ax == xAxis
	case circuit.PhaseGadget:
		return ax == zAxis
	}
	return false
}

// CommuteRotations moves single-qubit Z-axis rotations backwards through
// CX controls and diagonal two-qubit gates, and X-axis rotations through CX
// targets and XX rotations, whenever that brings them next to a rotation
// they can merge or cancel with. Nothing moves otherwise.
func CommuteRotations(c *circuit.Circuit) bool {
	cmds := slices.Clone(c.Commands())
	changed := false
	for j := 1; j < len(cmds); j++ {
		cmd := cmds[j]
		ax := axisOf(cmd.Gate.Type)
		if ax == noAxis {
			continue
		}
		q := cmd.Args[0]
		target, passed := -1, false
		for i := j - 1; i >= 0; i-- {
			prev := cmds[i]
			if !prev.Touches(q) {
				continue
			}
			if len(prev.Args) == 1 {
				if _, ok := combine(prev, cmd); ok {
					target = i
				}
				break
			}
			if !passable(prev, q, ax) {
				break
			}
			passed = true
		}
		if target < 0 || !passed {
			continue
		}
		// Move cmd to target+1; everything in between shifts right.
		copy(cmds[target+2:j+1], cmds[target+1:j])
		cmds[target+1] = cmd
		changed = true
	}
	if !changed {
		return false
	}
	commit(c, cmds)
	return true
}
