package dag_test

import (
	"fmt"

	"github.com/matzehuels/paulitower/pkg/dag"
)

func ExampleDAG_basic() {
	// A small chain: start → gadget → end
	g := dag.New[string]()
	start := g.AddNode("start")
	gadget := g.AddNode("gadget")
	end := g.AddNode("end")
	_, _ = g.AddEdge(start, gadget)
	_, _ = g.AddEdge(gadget, end)

	fmt.Println("Nodes:", g.NodeCount())
	fmt.Println("Edges:", g.EdgeCount())
	fmt.Println("Children of start:", g.Children(start))
	// Output:
	// Nodes: 3
	// Edges: 2
	// Children of start: [1]
}

func ExampleDAG_Layers() {
	g := dag.New[string]()
	a := g.AddNode("a")
	b := g.AddNode("b")
	c := g.AddNode("c")
	d := g.AddNode("d")
	_, _ = g.AddEdge(a, b)
	_, _ = g.AddEdge(b, d)
	_, _ = g.AddEdge(c, d)

	layers, _ := g.Layers()
	for i, layer := range layers {
		fmt.Println(i, layer)
	}
	// Output:
	// 0 [0 2]
	// 1 [1]
	// 2 [3]
}

func ExampleDAG_Validate() {
	g := dag.New[int]()
	a := g.AddNode(1)
	b := g.AddNode(2)
	_, _ = g.AddEdge(a, b)
	_, _ = g.AddEdge(b, a)

	fmt.Println(g.Validate())
	// Output:
	// graph contains a cycle
}
