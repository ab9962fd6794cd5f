// Package angle provides the rotation-angle values carried by parameterised
// gates and Pauli gadgets.
//
// # Units
//
// Angles are measured in half-turns: a value of 1 is a rotation by π
// radians, so Rz(0.5) is the S gate up to global phase and Rz(0.25) is T.
// This keeps every Clifford-equivalent angle a short exact decimal
// (0, 0.5, 1, 1.5) rather than an irrational float.
//
// # Expressions
//
// An [Expr] is a constant plus a linear combination of named symbols:
//
//	a := angle.Symbol("theta")        // theta
//	b := a.Add(angle.Const(0.25))     // theta + 0.25
//	c := b.Sub(a)                     // 0.25
//
// Constants use arbitrary-precision decimals, so merging rotations whose
// angles cancel produces an exact zero instead of a float residue. An
// expression with a free symbol is never classified as Clifford.
//
// # Clifford classification
//
// [EquivClifford] reports whether an angle is an integer multiple of a
// quarter turn (0.5 half-turns) and, if so, how many quarter turns modulo 4.
// Gadgets whose angles classify as Clifford are folded into a Clifford frame
// instead of being kept as rotations.
//
// # Parsing
//
// [Parse] reads the textual forms accepted in OpenQASM parameters: plain
// numbers, pi expressions such as "pi/4" or "-3*pi/2", identifiers, and
// sums of those terms.
package angle
