package pauligraph

import (
	"fmt"
	"slices"

	"github.com/matzehuels/paulitower/pkg/circuit"
	"github.com/matzehuels/paulitower/pkg/pauli"
)

// ToCircuit re-lowers the graph: every gadget in topological order, then a
// synthesis of the frame, then the recorded measurements. The result equals
// the appended circuit up to global phase.
//
// A gadget on P becomes a basis change to Z on every qubit of P (H for X,
// V for Y), a CX ladder onto the last qubit, an Rz, and the inverse of the
// ladder and basis change.
func (pg *Graph) ToCircuit() (*circuit.Circuit, error) {
	out := circuit.New(pg.nQubits, pg.nBits)
	order, err := pg.g.TopologicalOrder()
	if err != nil {
		return nil, err
	}
	for _, v := range order {
		gd, _ := pg.g.Node(v)
		if err := appendGadget(out, gd); err != nil {
			return nil, fmt.Errorf("gadget %d: %w", v, err)
		}
	}
	for _, cmd := range pg.frame.Synthesise() {
		if err := out.Add(cmd.Gate, cmd.Args...); err != nil {
			return nil, err
		}
	}
	for _, m := range pg.measures.Pairs() {
		if err := out.AddMeasure(int(m.Qubit), int(m.Bit)); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func appendGadget(c *circuit.Circuit, gd Gadget) error {
	terms := gd.Tensor.Terms()
	a := gd.Angle
	if gd.Tensor.IsRealNegative() {
		a = a.Neg()
	}

	var prefix, ladder []circuit.Command
	for _, tm := range terms {
		switch tm.Pauli {
		case pauli.X:
			prefix = append(prefix, op(circuit.H, tm.Qubit))
		case pauli.Y:
			prefix = append(prefix, op(circuit.V, tm.Qubit))
		}
	}
	for i := 1; i < len(terms); i++ {
		ladder = append(ladder, op(circuit.CX, terms[i-1].Qubit, terms[i].Qubit))
	}

	cmds := slices.Concat(prefix, ladder)
	last := terms[len(terms)-1].Qubit
	cmds = append(cmds, circuit.Command{
		Gate: circuit.NewGate(circuit.Rz, a),
		Args: []circuit.Unit{circuit.Q(int(last))},
	})
	for i := len(ladder) - 1; i >= 0; i-- {
		cmds = append(cmds, ladder[i])
	}
	for _, p := range prefix {
		undo := circuit.H
		if p.Gate.Type == circuit.V {
			undo = circuit.Vdg
		}
		cmds = append(cmds, circuit.Command{Gate: circuit.NewGate(undo), Args: p.Args})
	}

	for _, cmd := range cmds {
		if err := c.Add(cmd.Gate, cmd.Args...); err != nil {
			return err
		}
	}
	return nil
}

func op(t circuit.OpType, qs ...circuit.Qubit) circuit.Command {
	args := make([]circuit.Unit, len(qs))
	for i, q := range qs {
		args[i] = circuit.Q(int(q))
	}
	return circuit.Command{Gate: circuit.NewGate(t), Args: args}
}

// Stats summarises a graph.
type Stats struct {
	Vertices     int
	Edges        int
	Depth        int
	Measurements int
	// Weights[w] counts gadgets acting on w qubits.
	Weights map[int]int
	// Symbolic counts gadgets whose angle has free symbols.
	Symbolic int
}

// Stats computes summary counts. Depth is the number of rotation layers.
func (pg *Graph) Stats() (Stats, error) {
	layers, err := pg.g.Layers()
	if err != nil {
		return Stats{}, err
	}
	s := Stats{
		Vertices:     pg.g.NodeCount(),
		Edges:        pg.g.EdgeCount(),
		Depth:        len(layers),
		Measurements: pg.measures.Len(),
		Weights:      make(map[int]int),
	}
	for _, v := range pg.g.Nodes() {
		gd, _ := pg.g.Node(v)
		s.Weights[gd.Tensor.Len()]++
		if gd.Angle.IsSymbolic() {
			s.Symbolic++
		}
	}
	return s, nil
}

// Gadgets returns the gadgets in topological order.
func (pg *Graph) Gadgets() ([]Gadget, error) {
	order, err := pg.g.TopologicalOrder()
	if err != nil {
		return nil, err
	}
	out := make([]Gadget, len(order))
	for i, v := range order {
		out[i], _ = pg.g.Node(v)
	}
	return out, nil
}
