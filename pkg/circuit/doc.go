// Package circuit is the gate-level circuit representation consumed and
// produced by the optimiser.
//
// A [Circuit] is a flat list of [Command] values over a single quantum
// register and a single classical register. Each command pairs a [Gate]
// (an [OpType] plus angle parameters in half-turns) with its wire
// arguments, qubits first.
//
// # Op types
//
// [OpType] is a closed enumeration covering the Clifford generators, the
// standard parameterised rotations, multi-qubit Pauli phase gates, and the
// non-unitary Measure, Reset and Barrier. Each op type carries a fixed
// qubit, bit and parameter arity that [Circuit.Add] enforces.
//
// # OpenQASM
//
// [ParseQASM] and [WriteQASM] read and write the OpenQASM 2.0 subset the
// optimiser needs: one qreg, one creg, qelib1 gates and measurement.
// Parameters are radians on the wire and half-turns in memory.
//
//	c, err := circuit.ParseQASMString(`
//	    OPENQASM 2.0;
//	    qreg q[2];
//	    cx q[0],q[1];
//	    rz(pi/4) q[1];
//	`)
package circuit
