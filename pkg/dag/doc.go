// Package dag provides a generic directed acyclic graph stored as an
// index-based arena.
//
// # Overview
//
// The Pauli graph relinks edges constantly while gadgets are inserted and
// merged. This package gives it a graph whose nodes and edges are addressed by
// stable integer handles ([NodeID], [EdgeID]) that survive any sequence of
// removals, and whose adjacency is kept per node as ordered handle sets so
// every traversal is deterministic.
//
// # Basic Usage
//
// Create a graph with [New], add nodes with [DAG.AddNode] and edges with
// [DAG.AddEdge]:
//
//	g := dag.New[string]()
//	a := g.AddNode("a")
//	b := g.AddNode("b")
//	g.AddEdge(a, b)
//
// Query the structure with [DAG.Children], [DAG.Parents], [DAG.InEdges],
// [DAG.OutEdges], [DAG.Sources] and [DAG.Sinks]. A node pair is joined by at
// most one edge and self loops are rejected.
//
// # Ordering
//
// [DAG.TopologicalOrder] returns a Kahn order with ties broken by handle.
// [DAG.Layers] assigns every node to its longest-path depth.
//
// # Validation
//
// Mutations do not search for cycles. Use [DAG.Validate] to check endpoint
// consistency, duplicate edges and acyclicity in one O(V+E) pass.
//
// # Concurrency
//
// DAG instances are not safe for concurrent use. Callers must synchronize
// access if multiple goroutines read or modify the same graph.
package dag
