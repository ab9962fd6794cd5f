package dag

import (
	"container/heap"
)

// TopologicalOrder returns every live node such that each edge's source
// precedes its target. Ties are broken by handle, so the order is
// deterministic: among the nodes whose parents have all been emitted, the
// smallest handle goes first.
//
// Returns ErrGraphHasCycle if the graph is not acyclic.
func (d *DAG[T]) TopologicalOrder() ([]NodeID, error) {
	inDegree := make([]int, len(d.nodes))
	ready := &idHeap{}
	for _, id := range d.Nodes() {
		inDegree[id] = len(d.nodes[id].in)
		if inDegree[id] == 0 {
			heap.Push(ready, id)
		}
	}

	order := make([]NodeID, 0, d.nNodes)
	for ready.Len() > 0 {
		curr := heap.Pop(ready).(NodeID)
		order = append(order, curr)
		for _, e := range d.nodes[curr].out {
			child := d.edges[e].to
			inDegree[child]--
			if inDegree[child] == 0 {
				heap.Push(ready, child)
			}
		}
	}
	if len(order) != d.nNodes {
		return nil, ErrGraphHasCycle
	}
	return order, nil
}

// Layers groups nodes by longest-path depth: sources are in layer 0, and
// each other node sits one layer below its deepest parent. Nodes within a
// layer are ascending by handle.
//
// Layers uses Kahn's algorithm and runs in O(V + E). Returns
// ErrGraphHasCycle if the graph is not acyclic.
func (d *DAG[T]) Layers() ([][]NodeID, error) {
	order, err := d.TopologicalOrder()
	if err != nil {
		return nil, err
	}
	rows := make([]int, len(d.nodes))
	depth := 0
	for _, curr := range order {
		for _, e := range d.nodes[curr].out {
			child := d.edges[e].to
			if row := rows[curr] + 1; row > rows[child] {
				rows[child] = row
			}
		}
		depth = max(depth, rows[curr]+1)
	}

	layers := make([][]NodeID, depth)
	for _, id := range d.Nodes() {
		layers[rows[id]] = append(layers[rows[id]], id)
	}
	return layers, nil
}

type idHeap []NodeID

func (h idHeap) Len() int           { return len(h) }
func (h idHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h idHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *idHeap) Push(x any)        { *h = append(*h, x.(NodeID)) }
func (h *idHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
