// Package pauligraph represents a circuit as a Pauli graph: a DAG of Pauli
// rotations ("gadgets") ordered only by non-commutation, followed by a
// Clifford frame and terminal measurements.
//
// # Overview
//
// Appending a gate with [Graph.ApplyGateAtEnd] does one of three things:
//
//   - Clifford gates update the trailing [tableau.Frame] and never create a
//     vertex.
//   - Rotations are conjugated back through the frame into a gadget e^{-iπαP/2}
//     and inserted with [Graph.ApplyPauliGadgetAtEnd]. A rotation whose angle
//     is a multiple of a quarter turn is Clifford and goes to the frame.
//   - Measurements are recorded in a one-to-one qubit/bit association. A
//     measured wire accepts no further gates.
//
// # Insertion
//
// A new gadget is compared with the end line and then backwards through
// every vertex it commutes with. Each vertex it does not commute with gains
// an edge to it. Reaching a vertex with the same Pauli string merges the two
// angles instead, and a merged angle that becomes Clifford moves into the
// frame and removes the vertex. Rotations followed by their inverse
// therefore cancel, and rotations on disjoint qubits never depend on each
// other.
//
// # Output
//
// [Graph.ToCircuit] re-lowers the graph into CX ladders and Rz rotations
// followed by a frame synthesis. [Graph.WriteDOT] emits a Graphviz
// description for diagnostics.
//
// Graph instances are not safe for concurrent use.
package pauligraph
