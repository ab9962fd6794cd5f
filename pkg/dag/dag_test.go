package dag

import (
	"errors"
	"slices"
	"testing"
)

func chain(n int) (*DAG[int], []NodeID) {
	g := New[int]()
	ids := make([]NodeID, n)
	for i := range ids {
		ids[i] = g.AddNode(i)
		if i > 0 {
			if _, err := g.AddEdge(ids[i-1], ids[i]); err != nil {
				panic(err)
			}
		}
	}
	return g, ids
}

func TestAddEdge_Errors(t *testing.T) {
	g := New[int]()
	a := g.AddNode(0)
	b := g.AddNode(1)
	if _, err := g.AddEdge(a, b); err != nil {
		t.Fatalf("AddEdge() error: %v", err)
	}

	tests := []struct {
		name     string
		from, to NodeID
		want     error
	}{
		{"duplicate", a, b, ErrDuplicateEdge},
		{"self loop", a, a, ErrSelfLoop},
		{"unknown source", 9, b, ErrUnknownNode},
		{"unknown target", a, -1, ErrUnknownNode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := g.AddEdge(tt.from, tt.to); !errors.Is(err, tt.want) {
				t.Errorf("AddEdge(%d, %d) error = %v, want %v", tt.from, tt.to, err, tt.want)
			}
		})
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
}

func TestRemoveNode(t *testing.T) {
	g, ids := chain(3)
	if err := g.RemoveNode(ids[1]); err != nil {
		t.Fatalf("RemoveNode() error: %v", err)
	}
	if g.NodeCount() != 2 || g.EdgeCount() != 0 {
		t.Errorf("counts = (%d, %d), want (2, 0)", g.NodeCount(), g.EdgeCount())
	}
	if g.Has(ids[1]) {
		t.Error("Has(removed) = true")
	}
	if err := g.RemoveNode(ids[1]); !errors.Is(err, ErrUnknownNode) {
		t.Errorf("RemoveNode(removed) error = %v, want ErrUnknownNode", err)
	}
	// Handles are never reused.
	if id := g.AddNode(7); id != 3 {
		t.Errorf("AddNode() = %d, want 3", id)
	}
	if got := g.Nodes(); !slices.Equal(got, []NodeID{0, 2, 3}) {
		t.Errorf("Nodes() = %v, want [0 2 3]", got)
	}
	if err := g.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}

func TestRemoveEdge(t *testing.T) {
	g, ids := chain(3)
	e, ok := g.EdgeBetween(ids[0], ids[1])
	if !ok {
		t.Fatal("EdgeBetween() not found")
	}
	if err := g.RemoveEdge(e); err != nil {
		t.Fatalf("RemoveEdge() error: %v", err)
	}
	if err := g.RemoveEdge(e); !errors.Is(err, ErrUnknownEdge) {
		t.Errorf("RemoveEdge(removed) error = %v, want ErrUnknownEdge", err)
	}
	if got := g.Sources(); !slices.Equal(got, []NodeID{0, 1}) {
		t.Errorf("Sources() = %v, want [0 1]", got)
	}
	if got := g.Sinks(); !slices.Equal(got, []NodeID{0, 2}) {
		t.Errorf("Sinks() = %v, want [0 2]", got)
	}
	// The pair may be reconnected after removal.
	if _, err := g.AddEdge(ids[0], ids[1]); err != nil {
		t.Errorf("AddEdge() after removal error: %v", err)
	}
}

func TestAdjacency(t *testing.T) {
	g := New[string]()
	a := g.AddNode("a")
	b := g.AddNode("b")
	c := g.AddNode("c")
	e1, _ := g.AddEdge(a, c)
	e2, _ := g.AddEdge(b, c)
	e3, _ := g.AddEdge(a, b)

	if got := g.Children(a); !slices.Equal(got, []NodeID{c, b}) {
		t.Errorf("Children(a) = %v, want [%d %d]", got, c, b)
	}
	if got := g.Parents(c); !slices.Equal(got, []NodeID{a, b}) {
		t.Errorf("Parents(c) = %v, want [%d %d]", got, a, b)
	}
	if got := g.InEdges(c); !slices.Equal(got, []EdgeID{e1, e2}) {
		t.Errorf("InEdges(c) = %v, want [%d %d]", got, e1, e2)
	}
	if got := g.OutEdges(a); !slices.Equal(got, []EdgeID{e1, e3}) {
		t.Errorf("OutEdges(a) = %v, want [%d %d]", got, e1, e3)
	}
	if g.InDegree(c) != 2 || g.OutDegree(c) != 0 {
		t.Errorf("degree(c) = (%d, %d), want (2, 0)", g.InDegree(c), g.OutDegree(c))
	}
	if src, _ := g.Source(e2); src != b {
		t.Errorf("Source(e2) = %d, want %d", src, b)
	}
	if dst, _ := g.Target(e2); dst != c {
		t.Errorf("Target(e2) = %d, want %d", dst, c)
	}
	if v, ok := g.Node(b); !ok || v != "b" {
		t.Errorf("Node(b) = %q, %v", v, ok)
	}
	if g.Children(99) != nil {
		t.Error("Children(unknown) should be nil")
	}
}

func TestTopologicalOrder(t *testing.T) {
	g := New[int]()
	for i := range 5 {
		g.AddNode(i)
	}
	// 3 → 1 → 0, 4 → 0, 2 isolated
	_, _ = g.AddEdge(3, 1)
	_, _ = g.AddEdge(1, 0)
	_, _ = g.AddEdge(4, 0)

	got, err := g.TopologicalOrder()
	if err != nil {
		t.Fatalf("TopologicalOrder() error: %v", err)
	}
	want := []NodeID{2, 3, 1, 4, 0}
	if !slices.Equal(got, want) {
		t.Errorf("TopologicalOrder() = %v, want %v", got, want)
	}

	_, _ = g.AddEdge(0, 3)
	if _, err := g.TopologicalOrder(); !errors.Is(err, ErrGraphHasCycle) {
		t.Errorf("TopologicalOrder() on cycle error = %v, want ErrGraphHasCycle", err)
	}
}

func TestLayers(t *testing.T) {
	g, ids := chain(3)
	x := g.AddNode(9)
	_, _ = g.AddEdge(x, ids[2])

	layers, err := g.Layers()
	if err != nil {
		t.Fatalf("Layers() error: %v", err)
	}
	want := [][]NodeID{{ids[0], x}, {ids[1]}, {ids[2]}}
	if len(layers) != len(want) {
		t.Fatalf("Layers() = %v, want %v", layers, want)
	}
	for i := range want {
		if !slices.Equal(layers[i], want[i]) {
			t.Errorf("layer %d = %v, want %v", i, layers[i], want[i])
		}
	}

	empty, _ := New[int]().Layers()
	if len(empty) != 0 {
		t.Errorf("Layers(empty) = %v, want none", empty)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(g *DAG[int])
		want    error
	}{
		{"valid", func(*DAG[int]) {}, nil},
		{"cycle", func(g *DAG[int]) { _, _ = g.AddEdge(2, 0) }, ErrGraphHasCycle},
		{"dead endpoint", func(g *DAG[int]) { g.nodes[1].alive = false }, ErrInvalidEdgeEndpoint},
		{"missing adjacency", func(g *DAG[int]) { g.nodes[0].out = nil }, ErrInvalidEdgeEndpoint},
		{"repeated handle", func(g *DAG[int]) {
			g.nodes[1].in = append(g.nodes[1].in, g.nodes[1].in[0])
		}, ErrDuplicateEdge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := chain(3)
			tt.corrupt(g)
			if err := g.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestClone(t *testing.T) {
	g, ids := chain(3)
	c := g.Clone()
	_ = c.RemoveNode(ids[1])
	_ = c.SetNode(ids[0], 42)

	if g.NodeCount() != 3 || g.EdgeCount() != 2 {
		t.Errorf("original counts = (%d, %d), want (3, 2)", g.NodeCount(), g.EdgeCount())
	}
	if v, _ := g.Node(ids[0]); v != 0 {
		t.Errorf("original Node(0) = %d, want 0", v)
	}
	if err := g.Validate(); err != nil {
		t.Errorf("original Validate() error: %v", err)
	}
}
