// Package passes provides circuit optimisation passes for use with the
// combinators in package transform.
//
// Every pass has the signature func(*circuit.Circuit) bool: it rewrites the
// circuit in place and reports whether anything changed. A single call makes
// one sweep, so passes are usually wrapped in [transform.Repeat]:
//
//	opt := transform.Repeat(transform.Sequence(
//		passes.CommuteRotations,
//		passes.RemoveRedundancies,
//	))
//
// The passes:
//
//   - [RemoveRedundancies] drops identities and cancels or merges adjacent
//     gates on the same wires.
//   - [CommuteRotations] moves single-qubit rotations through two-qubit
//     gates they commute with, next to a rotation they merge with.
//   - [CliffordRotationsToGates] replaces quarter-turn rotations with named
//     Clifford gates.
//   - [PauliSimp] resynthesises the circuit through a Pauli graph and keeps
//     the result only if it is smaller.
//
// [GateCount], [TwoQubitCount] and [Depth] are metrics for
// [transform.RepeatWithMetric]. A [Registry] names passes and metrics for
// configuration files.
package passes
