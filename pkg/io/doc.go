// Package io provides JSON export of Pauli graphs and Clifford tableaux, and
// JSON import of tableaux.
//
// # Graph Format
//
//	{
//	  "qubits": 2,
//	  "bits": 0,
//	  "vertices": [
//	    {"id": 0, "tensor": "+Z0 Z1", "angle": "theta", "layer": 0}
//	  ],
//	  "edges": [],
//	  "start": [0],
//	  "end": [0],
//	  "frame": [
//	    {"qubit": 0, "x": "+X0", "z": "+Z0"},
//	    {"qubit": 1, "x": "+X1", "z": "+Z1"}
//	  ],
//	  "measurements": []
//	}
//
// Vertex ids are the graph's own handles, so they may have gaps where
// vertices were merged away. Tensors are written at the input of the frame,
// coefficient first. Angles are in half-turns.
//
// # Tableau Format
//
//	{
//	  "qubits": 2,
//	  "rows": [
//	    {"x": [true, false], "z": [false, false], "phase": false, "pauli": "+X0"}
//	  ]
//	}
//
// The "pauli" field is informational; [ReadTableauJSON] rebuilds the tableau
// from the bit vectors and phases alone.
//
// # Concurrency
//
// All functions in this package read their argument without modifying it.
// They are safe to call concurrently with other readers of the same value,
// but not with concurrent modifications.
package io
