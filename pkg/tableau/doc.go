// Package tableau implements binary symplectic tableaus: sets of signed
// Pauli strings stored as GF(2) matrices, updated in closed form under
// Clifford conjugation.
//
// # Tableau
//
// A [Tableau] holds n_rows Pauli strings over n qubits as an X matrix, a Z
// matrix and a phase vector. Supported operations:
//
//   - [Tableau.RowMult] multiplies one row into another, tracking the sign
//     through the Pauli multiplication table.
//   - [Tableau.ApplyS], [Tableau.ApplyV], [Tableau.ApplyH], [Tableau.ApplyCX]
//     and friends conjugate every row by a generator with a direct bit rule.
//     [Tableau.ApplyGate] dispatches on a [circuit.OpType].
//   - [Tableau.ApplyPauliGadget] conjugates by a quarter-turn Pauli rotation.
//   - [Tableau.Rank], [Tableau.AnticommutingRows] and [Tableau.GaussianForm]
//     expose the GF(2) linear algebra.
//
// Equality is exact; there are no tolerances anywhere in this package.
//
// # Frame
//
// A [Frame] is a unitary tableau: it records a Clifford circuit C by the
// images C† X_q C and C† Z_q C of every qubit's generators. Gates can be
// appended after C ([Frame.ApplyGateAtEnd]) and quarter-turn Pauli
// rotations can be inserted on either side ([Frame.ApplyPauliAtEnd],
// [Frame.ApplyPauliAtFront]). [Frame.Synthesise] turns the frame back into
// a gate sequence.
//
// A Frame deliberately does not offer GaussianForm: row multiplication is a
// free action on a stabilizer group but changes the unitary a frame
// represents, so the type system keeps the two uses apart.
package tableau
