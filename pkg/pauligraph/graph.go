package pauligraph

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/matzehuels/paulitower/pkg/angle"
	"github.com/matzehuels/paulitower/pkg/circuit"
	"github.com/matzehuels/paulitower/pkg/dag"
	"github.com/matzehuels/paulitower/pkg/pauli"
	"github.com/matzehuels/paulitower/pkg/tableau"
)

var (
	// ErrMidCircuitMeasurement is returned when a gate touches a qubit or bit
	// that has already been measured. The error names the wire.
	ErrMidCircuitMeasurement = errors.New("gate after measurement")

	// ErrUnsupportedOp is returned for op types the graph cannot represent.
	// The error names the op type.
	ErrUnsupportedOp = errors.New("unsupported op type")

	// ErrBadArguments is returned when a command's arguments do not match its
	// op type (wrong count, or a bit where a qubit is expected).
	ErrBadArguments = errors.New("bad arguments")

	// ErrUnknownUnit is returned for a qubit or bit outside the graph's
	// registers.
	ErrUnknownUnit = errors.New("unknown unit")

	// ErrCliffordAngle is returned by [Graph.ApplyPauliGadgetAtEnd] when the
	// angle is a multiple of a quarter turn. Such rotations belong in the
	// frame and must be folded in by the caller.
	ErrCliffordAngle = errors.New("clifford angle in gadget")

	// ErrAlreadyMeasured is returned by [Measures.Insert] when either side of
	// the pair already has an association.
	ErrAlreadyMeasured = errors.New("already measured")
)

// Gadget is a Pauli rotation e^{-iπαP/2} stored on a graph vertex. Tensor is
// expressed at the input of the graph's Clifford frame and always has a
// real coefficient.
type Gadget struct {
	Tensor pauli.Tensor
	Angle  angle.Expr
}

func (g Gadget) String() string {
	return fmt.Sprintf("%v, %v", g.Tensor, g.Angle)
}

// Vertex is a handle to a gadget in a [Graph].
type Vertex = dag.NodeID

// Graph is a Pauli graph: non-Clifford rotations ordered only by
// non-commutation, followed by a Clifford frame that absorbs every Clifford
// gate, followed by terminal measurements.
//
// Edges always run from an older vertex to a newer one. The start line holds
// the vertices without predecessors and the end line those without
// successors.
type Graph struct {
	nQubits  int
	nBits    int
	g        *dag.DAG[Gadget]
	frame    *tableau.Frame
	start    map[Vertex]struct{}
	end      map[Vertex]struct{}
	measures *Measures
}

// New returns an empty graph over qubits 0..nQubits-1 and bits
// 0..nBits-1, with an identity frame.
func New(nQubits, nBits int) *Graph {
	qubits := make([]circuit.Qubit, nQubits)
	for i := range qubits {
		qubits[i] = circuit.Qubit(i)
	}
	return &Graph{
		nQubits:  nQubits,
		nBits:    nBits,
		g:        dag.New[Gadget](),
		frame:    tableau.NewFrame(qubits),
		start:    make(map[Vertex]struct{}),
		end:      make(map[Vertex]struct{}),
		measures: NewMeasures(),
	}
}

// FromCircuit builds a graph by appending every command of c in order.
func FromCircuit(c *circuit.Circuit) (*Graph, error) {
	pg := New(c.NumQubits(), c.NumBits())
	for i, cmd := range c.Commands() {
		if err := pg.ApplyGateAtEnd(cmd); err != nil {
			return nil, fmt.Errorf("command %d (%v): %w", i, cmd, err)
		}
	}
	return pg, nil
}

// NumQubits returns the number of qubits.
func (pg *Graph) NumQubits() int { return pg.nQubits }

// NumBits returns the number of bits.
func (pg *Graph) NumBits() int { return pg.nBits }

// NumVertices returns the number of gadgets.
func (pg *Graph) NumVertices() int { return pg.g.NodeCount() }

// NumEdges returns the number of dependency edges.
func (pg *Graph) NumEdges() int { return pg.g.EdgeCount() }

// Frame returns a copy of the trailing Clifford frame.
func (pg *Graph) Frame() *tableau.Frame { return pg.frame.Clone() }

// Measurements returns the recorded measurements ordered by qubit.
func (pg *Graph) Measurements() []Measurement { return pg.measures.Pairs() }

// Gadget returns the rotation stored at v.
func (pg *Graph) Gadget(v Vertex) (Gadget, bool) { return pg.g.Node(v) }

// Vertices returns all vertices in ascending handle order.
func (pg *Graph) Vertices() []Vertex { return pg.g.Nodes() }

// Successors returns the vertices that must come after v.
func (pg *Graph) Successors(v Vertex) []Vertex { return pg.g.Children(v) }

// Predecessors returns the vertices that must come before v.
func (pg *Graph) Predecessors(v Vertex) []Vertex { return pg.g.Parents(v) }

// InEdges returns the edges entering v.
func (pg *Graph) InEdges(v Vertex) []dag.EdgeID { return pg.g.InEdges(v) }

// OutEdges returns the edges leaving v.
func (pg *Graph) OutEdges(v Vertex) []dag.EdgeID { return pg.g.OutEdges(v) }

// Source returns the vertex an edge starts at.
func (pg *Graph) Source(e dag.EdgeID) (Vertex, error) { return pg.g.Source(e) }

// Target returns the vertex an edge ends at.
func (pg *Graph) Target(e dag.EdgeID) (Vertex, error) { return pg.g.Target(e) }

// StartLine returns the vertices with no predecessors, ascending.
func (pg *Graph) StartLine() []Vertex { return slices.Sorted(maps.Keys(pg.start)) }

// EndLine returns the vertices with no successors, ascending.
func (pg *Graph) EndLine() []Vertex { return slices.Sorted(maps.Keys(pg.end)) }

// TopologicalOrder returns the vertices earliest first.
func (pg *Graph) TopologicalOrder() ([]Vertex, error) { return pg.g.TopologicalOrder() }

// Layers groups vertices by rotation depth.
func (pg *Graph) Layers() ([][]Vertex, error) { return pg.g.Layers() }

// Clone returns a deep copy.
func (pg *Graph) Clone() *Graph {
	return &Graph{
		nQubits:  pg.nQubits,
		nBits:    pg.nBits,
		g:        pg.g.Clone(),
		frame:    pg.frame.Clone(),
		start:    maps.Clone(pg.start),
		end:      maps.Clone(pg.end),
		measures: pg.measures.clone(),
	}
}

// Validate checks the underlying DAG (adjacency, duplicates, acyclicity)
// and that the start and end lines match its sources and sinks.
func (pg *Graph) Validate() error {
	if err := pg.g.Validate(); err != nil {
		return err
	}
	if got, want := pg.StartLine(), pg.g.Sources(); !slices.Equal(got, want) {
		return fmt.Errorf("%w: start line %v, sources %v", dag.ErrInvalidEdgeEndpoint, got, want)
	}
	if got, want := pg.EndLine(), pg.g.Sinks(); !slices.Equal(got, want) {
		return fmt.Errorf("%w: end line %v, sinks %v", dag.ErrInvalidEdgeEndpoint, got, want)
	}
	return nil
}

// ApplyPauliGadgetAtEnd appends the rotation e^{-iπαP/2}, where P is
// already expressed at the input of the frame.
//
// The new gadget is compared against the end line and then backwards
// through every vertex it commutes with. It gains an edge from each vertex
// it does not commute with. If it meets a vertex with the same Pauli string
// the angles are merged instead; a merged angle that becomes Clifford is
// folded into the frame and the vertex disappears.
func (pg *Graph) ApplyPauliGadgetAtEnd(p pauli.Tensor, a angle.Expr) error {
	if !p.Coeff().IsReal() {
		return fmt.Errorf("%w: imaginary coefficient on %v", ErrBadArguments, p)
	}
	if p.IsIdentity() {
		return fmt.Errorf("%w: identity gadget", ErrBadArguments)
	}
	if _, ok := angle.EquivClifford(a); ok {
		return fmt.Errorf("%w: %v", ErrCliffordAngle, a)
	}

	newV := pg.g.AddNode(Gadget{Tensor: p, Angle: a})

	// Handles grow with insertion time and edges run old → new, so popping
	// the largest handle first meets children before parents.
	toSearch := maps.Clone(pg.end)
	commuted := make(map[Vertex]bool)
	done := make(map[Vertex]bool)
	for len(toSearch) > 0 {
		curr := slices.Max(slices.Collect(maps.Keys(toSearch)))
		delete(toSearch, curr)
		if done[curr] {
			continue
		}

		ready := true
		for _, child := range pg.g.Children(curr) {
			if child != newV && !commuted[child] {
				ready = false
				break
			}
		}
		if !ready {
			continue
		}
		done[curr] = true

		cand, _ := pg.g.Node(curr)
		if !p.Commutes(cand.Tensor) {
			if _, err := pg.g.AddEdge(curr, newV); err != nil {
				panic(err)
			}
			delete(pg.end, curr)
			continue
		}
		if p.StringEqual(cand.Tensor) {
			if err := pg.g.RemoveNode(newV); err != nil {
				panic(err)
			}
			return pg.merge(curr, cand, p, a)
		}
		commuted[curr] = true
		for _, parent := range pg.g.Parents(curr) {
			toSearch[parent] = struct{}{}
		}
	}

	pg.end[newV] = struct{}{}
	if pg.g.InDegree(newV) == 0 {
		pg.start[newV] = struct{}{}
	}
	return nil
}

// merge folds (p, a) into the vertex v holding cand, whose tensor has the
// same string as p.
func (pg *Graph) merge(v Vertex, cand Gadget, p pauli.Tensor, a angle.Expr) error {
	if cand.Tensor.Coeff() == p.Coeff() {
		cand.Angle = cand.Angle.Add(a)
	} else {
		cand.Angle = cand.Angle.Sub(a)
	}
	k, ok := angle.EquivClifford(cand.Angle)
	if !ok {
		return pg.g.SetNode(v, cand)
	}

	// v commutes with everything the new gadget passed, so it is a sink and
	// can be moved to the front of the frame.
	if err := pg.frame.ApplyPauliAtFront(cand.Tensor, k); err != nil {
		return err
	}
	parents := pg.g.Parents(v)
	delete(pg.start, v)
	delete(pg.end, v)
	if err := pg.g.RemoveNode(v); err != nil {
		return err
	}
	for _, parent := range parents {
		if pg.g.OutDegree(parent) == 0 {
			pg.end[parent] = struct{}{}
		}
	}
	return nil
}

// rotate appends e^{-iπαP/2} for a Pauli P on the frame's output. Clifford
// angles go to the frame; anything else becomes a gadget conjugated back
// through the frame.
func (pg *Graph) rotate(p pauli.Tensor, a angle.Expr) error {
	if k, ok := angle.EquivClifford(a); ok {
		return pg.frame.ApplyPauliAtEnd(p, k)
	}
	rp, err := pg.frame.RowProduct(p)
	if err != nil {
		return err
	}
	return pg.ApplyPauliGadgetAtEnd(rp, a)
}
