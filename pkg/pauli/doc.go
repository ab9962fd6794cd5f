// Package pauli implements single-qubit Pauli operators, their boolean
// encoding, and sparse Pauli strings over named qubits.
//
// # Encoding
//
// Each Pauli is a pair of bits (x, z): I=(0,0), Z=(0,1), X=(1,0), Y=(1,1).
// Multiplying two encoded Paulis XORs the bits and contributes a phase
// i^k, which [Mul] reads from a fixed table. This table is the basis of
// every row operation in the tableau package.
//
// # Tensors
//
// A [Tensor] is a Pauli string with a [Phase] coefficient in {1, i, -1, -i}.
// Tensors multiply with [Tensor.Mul], test commutation with
// [Tensor.Commutes], and order with [Tensor.Compare]. Strings equal up to
// coefficient are detected with [Tensor.StringEqual]; this is how the Pauli
// graph decides that two rotations can merge.
package pauli
