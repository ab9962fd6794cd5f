package dag

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrUnknownNode is returned when a [NodeID] does not refer to a live
	// node, either because it was never allocated or because it was removed.
	ErrUnknownNode = errors.New("unknown node")

	// ErrUnknownEdge is returned when an [EdgeID] does not refer to a live
	// edge.
	ErrUnknownEdge = errors.New("unknown edge")

	// ErrDuplicateEdge is returned by [DAG.AddEdge] when an edge between the
	// same ordered pair of nodes already exists, and by [DAG.Validate] when an
	// adjacency list holds the same handle twice.
	ErrDuplicateEdge = errors.New("duplicate edge")

	// ErrSelfLoop is returned by [DAG.AddEdge] for an edge from a node to
	// itself.
	ErrSelfLoop = errors.New("self loop")

	// ErrInvalidEdgeEndpoint is returned by [DAG.Validate] when an edge
	// references a removed node or the adjacency lists disagree with the edge
	// table. This indicates graph corruption.
	ErrInvalidEdgeEndpoint = errors.New("invalid edge endpoint")

	// ErrGraphHasCycle is returned by [DAG.Validate] and
	// [DAG.TopologicalOrder] when a directed cycle exists. Cycles are detected
	// using depth-first search with white/gray/black coloring.
	ErrGraphHasCycle = errors.New("graph contains a cycle")
)

// NodeID is a stable handle to a node. Handles are allocated in increasing
// order and never reused, so a handle stays valid (or reports
// ErrUnknownNode) across any sequence of mutations.
type NodeID int

// EdgeID is a stable handle to an edge, allocated like [NodeID].
type EdgeID int

type nodeSlot[T any] struct {
	value T
	alive bool
	in    []EdgeID // ascending
	out   []EdgeID // ascending
}

type edgeSlot struct {
	from, to NodeID
	alive    bool
}

// DAG is a directed graph stored as an index-based arena. Nodes carry a
// value of type T; edges carry nothing but their endpoints. Adjacency is
// kept per node as ordered handle sets, which makes removal and relinking
// cheap and keeps every traversal deterministic.
//
// AddEdge does not check for cycles; [DAG.Validate] does. DAG is not safe
// for concurrent use without external synchronization.
type DAG[T any] struct {
	nodes  []nodeSlot[T]
	edges  []edgeSlot
	nNodes int
	nEdges int
}

// New creates an empty DAG.
func New[T any]() *DAG[T] {
	return &DAG[T]{}
}

// AddNode allocates a new node holding v and returns its handle.
func (d *DAG[T]) AddNode(v T) NodeID {
	d.nodes = append(d.nodes, nodeSlot[T]{value: v, alive: true})
	d.nNodes++
	return NodeID(len(d.nodes) - 1)
}

// RemoveNode deletes a node together with all its incident edges.
func (d *DAG[T]) RemoveNode(id NodeID) error {
	n, err := d.slot(id)
	if err != nil {
		return err
	}
	for _, e := range slices.Concat(n.in, n.out) {
		d.unlink(e)
	}
	var zero T
	n.value = zero
	n.alive = false
	n.in, n.out = nil, nil
	d.nNodes--
	return nil
}

// AddEdge adds a directed edge from → to and returns its handle. Returns
// ErrUnknownNode if either endpoint is missing, ErrSelfLoop if from == to,
// or ErrDuplicateEdge if the pair is already connected.
func (d *DAG[T]) AddEdge(from, to NodeID) (EdgeID, error) {
	src, err := d.slot(from)
	if err != nil {
		return 0, fmt.Errorf("source: %w", err)
	}
	dst, err := d.slot(to)
	if err != nil {
		return 0, fmt.Errorf("target: %w", err)
	}
	if from == to {
		return 0, fmt.Errorf("%w: %d", ErrSelfLoop, from)
	}
	if _, ok := d.EdgeBetween(from, to); ok {
		return 0, fmt.Errorf("%w: %d -> %d", ErrDuplicateEdge, from, to)
	}
	d.edges = append(d.edges, edgeSlot{from: from, to: to, alive: true})
	e := EdgeID(len(d.edges) - 1)
	src.out = append(src.out, e)
	dst.in = append(dst.in, e)
	d.nEdges++
	return e, nil
}

// RemoveEdge deletes an edge.
func (d *DAG[T]) RemoveEdge(e EdgeID) error {
	if !d.HasEdge(e) {
		return fmt.Errorf("%w: %d", ErrUnknownEdge, e)
	}
	d.unlink(e)
	return nil
}

func (d *DAG[T]) unlink(e EdgeID) {
	es := &d.edges[e]
	if !es.alive {
		return
	}
	src, dst := &d.nodes[es.from], &d.nodes[es.to]
	src.out = deleteSorted(src.out, e)
	dst.in = deleteSorted(dst.in, e)
	es.alive = false
	d.nEdges--
}

func deleteSorted(s []EdgeID, e EdgeID) []EdgeID {
	if i, ok := slices.BinarySearch(s, e); ok {
		return slices.Delete(s, i, i+1)
	}
	return s
}

func (d *DAG[T]) slot(id NodeID) (*nodeSlot[T], error) {
	if id < 0 || int(id) >= len(d.nodes) || !d.nodes[id].alive {
		return nil, fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}
	return &d.nodes[id], nil
}

// Has reports whether id refers to a live node.
func (d *DAG[T]) Has(id NodeID) bool {
	_, err := d.slot(id)
	return err == nil
}

// HasEdge reports whether e refers to a live edge.
func (d *DAG[T]) HasEdge(e EdgeID) bool {
	return e >= 0 && int(e) < len(d.edges) && d.edges[e].alive
}

// Node returns the value stored at id and true, or the zero value and
// false if the node does not exist.
func (d *DAG[T]) Node(id NodeID) (T, bool) {
	n, err := d.slot(id)
	if err != nil {
		var zero T
		return zero, false
	}
	return n.value, true
}

// SetNode replaces the value stored at id.
func (d *DAG[T]) SetNode(id NodeID, v T) error {
	n, err := d.slot(id)
	if err != nil {
		return err
	}
	n.value = v
	return nil
}

// NodeCount returns the number of live nodes.
func (d *DAG[T]) NodeCount() int { return d.nNodes }

// EdgeCount returns the number of live edges.
func (d *DAG[T]) EdgeCount() int { return d.nEdges }

// Nodes returns all live node handles in ascending (creation) order.
func (d *DAG[T]) Nodes() []NodeID {
	out := make([]NodeID, 0, d.nNodes)
	for i := range d.nodes {
		if d.nodes[i].alive {
			out = append(out, NodeID(i))
		}
	}
	return out
}

// Edges returns all live edge handles in ascending (creation) order.
func (d *DAG[T]) Edges() []EdgeID {
	out := make([]EdgeID, 0, d.nEdges)
	for i := range d.edges {
		if d.edges[i].alive {
			out = append(out, EdgeID(i))
		}
	}
	return out
}

// Source returns the node an edge starts at.
func (d *DAG[T]) Source(e EdgeID) (NodeID, error) {
	if !d.HasEdge(e) {
		return 0, fmt.Errorf("%w: %d", ErrUnknownEdge, e)
	}
	return d.edges[e].from, nil
}

// Target returns the node an edge ends at.
func (d *DAG[T]) Target(e EdgeID) (NodeID, error) {
	if !d.HasEdge(e) {
		return 0, fmt.Errorf("%w: %d", ErrUnknownEdge, e)
	}
	return d.edges[e].to, nil
}

// EdgeBetween returns the edge from → to, if one exists.
func (d *DAG[T]) EdgeBetween(from, to NodeID) (EdgeID, bool) {
	src, err := d.slot(from)
	if err != nil {
		return 0, false
	}
	for _, e := range src.out {
		if d.edges[e].to == to {
			return e, true
		}
	}
	return 0, false
}

// OutEdges returns the handles of edges leaving id, oldest first. Returns
// nil if the node doesn't exist.
func (d *DAG[T]) OutEdges(id NodeID) []EdgeID {
	if n, err := d.slot(id); err == nil {
		return slices.Clone(n.out)
	}
	return nil
}

// InEdges returns the handles of edges entering id, oldest first. Returns
// nil if the node doesn't exist.
func (d *DAG[T]) InEdges(id NodeID) []EdgeID {
	if n, err := d.slot(id); err == nil {
		return slices.Clone(n.in)
	}
	return nil
}

// Children returns the targets of edges leaving id in edge order.
func (d *DAG[T]) Children(id NodeID) []NodeID {
	n, err := d.slot(id)
	if err != nil {
		return nil
	}
	out := make([]NodeID, len(n.out))
	for i, e := range n.out {
		out[i] = d.edges[e].to
	}
	return out
}

// Parents returns the sources of edges entering id in edge order.
func (d *DAG[T]) Parents(id NodeID) []NodeID {
	n, err := d.slot(id)
	if err != nil {
		return nil
	}
	out := make([]NodeID, len(n.in))
	for i, e := range n.in {
		out[i] = d.edges[e].from
	}
	return out
}

// OutDegree returns the number of outgoing edges, or 0 if the node doesn't
// exist.
func (d *DAG[T]) OutDegree(id NodeID) int {
	if n, err := d.slot(id); err == nil {
		return len(n.out)
	}
	return 0
}

// InDegree returns the number of incoming edges, or 0 if the node doesn't
// exist.
func (d *DAG[T]) InDegree(id NodeID) int {
	if n, err := d.slot(id); err == nil {
		return len(n.in)
	}
	return 0
}

// Sources returns nodes with no incoming edges, ascending.
func (d *DAG[T]) Sources() []NodeID {
	var out []NodeID
	for _, id := range d.Nodes() {
		if len(d.nodes[id].in) == 0 {
			out = append(out, id)
		}
	}
	return out
}

// Sinks returns nodes with no outgoing edges, ascending.
func (d *DAG[T]) Sinks() []NodeID {
	var out []NodeID
	for _, id := range d.Nodes() {
		if len(d.nodes[id].out) == 0 {
			out = append(out, id)
		}
	}
	return out
}

// Clone returns a copy of the graph with identical handles. Node values are
// copied by assignment.
func (d *DAG[T]) Clone() *DAG[T] {
	out := &DAG[T]{
		nodes:  make([]nodeSlot[T], len(d.nodes)),
		edges:  slices.Clone(d.edges),
		nNodes: d.nNodes,
		nEdges: d.nEdges,
	}
	for i, n := range d.nodes {
		out.nodes[i] = nodeSlot[T]{value: n.value, alive: n.alive, in: slices.Clone(n.in), out: slices.Clone(n.out)}
	}
	return out
}

// Validate checks graph integrity and returns nil if valid.
// It verifies three constraints:
//
//  1. Every live edge joins two live nodes and appears exactly once in its
//     source's out-list and its target's in-list
//  2. No adjacency list holds a handle twice, and no node pair is joined by
//     two edges
//  3. The graph is acyclic
//
// Returns ErrInvalidEdgeEndpoint, ErrDuplicateEdge or ErrGraphHasCycle.
// Validation is O(N+E) and is never run implicitly by mutations.
func (d *DAG[T]) Validate() error {
	if err := d.validateAdjacency(); err != nil {
		return err
	}
	return d.detectCycles()
}

func (d *DAG[T]) validateAdjacency() error {
	for i := range d.edges {
		e := d.edges[i]
		if !e.alive {
			continue
		}
		if !d.Has(e.from) || !d.Has(e.to) {
			return fmt.Errorf("%w: edge %d", ErrInvalidEdgeEndpoint, i)
		}
		if !slices.Contains(d.nodes[e.from].out, EdgeID(i)) || !slices.Contains(d.nodes[e.to].in, EdgeID(i)) {
			return fmt.Errorf("%w: edge %d missing from adjacency", ErrInvalidEdgeEndpoint, i)
		}
	}
	for _, id := range d.Nodes() {
		n := d.nodes[id]
		seen := make(map[NodeID]bool, len(n.out))
		for k, e := range n.out {
			if k > 0 && n.out[k-1] >= e {
				return fmt.Errorf("%w: out-list of node %d", ErrDuplicateEdge, id)
			}
			if !d.HasEdge(e) || d.edges[e].from != id {
				return fmt.Errorf("%w: node %d lists edge %d", ErrInvalidEdgeEndpoint, id, e)
			}
			to := d.edges[e].to
			if seen[to] {
				return fmt.Errorf("%w: %d -> %d", ErrDuplicateEdge, id, to)
			}
			seen[to] = true
		}
		for k, e := range n.in {
			if k > 0 && n.in[k-1] >= e {
				return fmt.Errorf("%w: in-list of node %d", ErrDuplicateEdge, id)
			}
			if !d.HasEdge(e) || d.edges[e].to != id {
				return fmt.Errorf("%w: node %d lists edge %d", ErrInvalidEdgeEndpoint, id, e)
			}
		}
	}
	return nil
}

func (d *DAG[T]) detectCycles() error {
	const (
		white = iota
		gray
		black
	)

	color := make([]int, len(d.nodes))
	var hasCycle bool

	var dfs func(id NodeID)
	dfs = func(id NodeID) {
		color[id] = gray
		for _, e := range d.nodes[id].out {
			child := d.edges[e].to
			switch color[child] {
			case white:
				dfs(child)
			case gray:
				hasCycle = true
			}
			if hasCycle {
				return
			}
		}
		color[id] = black
	}

	for _, id := range d.Nodes() {
		if color[id] == white {
			dfs(id)
			if hasCycle {
				return ErrGraphHasCycle
			}
		}
	}
	return nil
}
