// Package transform composes in-place transformations.
//
// # Overview
//
// A [Transform] mutates a value and reports whether it changed it. The
// combinators build bigger transforms from smaller ones:
//
//   - [Sequence] (or [Transform.Then]) runs each transform once, in order.
//   - [Repeat] runs a transform until it stops making changes.
//   - [RepeatWithMetric] runs a transform while a [Metric] keeps strictly
//     decreasing, and rolls back the application that does not lower it.
//     The value must be a [Snapshotter].
//   - [RepeatWhile] runs a transform while a [Predicate] holds.
//
// The "changed" flag of a composite is an OR over every inner application,
// never a diff of the before and after states. Fixed-point loops built on
// top of it rely on that.
//
// # Termination
//
// Nothing here caps iterations or watches the clock. A transform passed to
// [Repeat] that always reports a change never returns.
//
// Concrete circuit passes live in the [passes] subpackage.
//
// [passes]: github.com/matzehuels/paulitower/pkg/transform/passes
package transform
