package transform

// Transform mutates a value in place and reports whether it changed it.
// A Transform keeps no state between calls.
type Transform[C any] func(C) bool

// Metric scores a value; lower is better.
type Metric[C any] func(C) int

// Predicate tests a value without changing it.
type Predicate[C any] func(C) bool

// Identity never changes anything.
func Identity[C any]() Transform[C] {
	return func(C) bool { return false }
}

// Sequence applies each transform once, in order, to the same value. It
// reports true if any of them reported a change, even when a later one
// undoes it.
func Sequence[C any](ts ...Transform[C]) Transform[C] {
	return func(c C) bool {
		changed := false
		for _, t := range ts {
			if t(c) {
				changed = true
			}
		}
		return changed
	}
}

// Then is Sequence(t, next).
func (t Transform[C]) Then(next Transform[C]) Transform[C] {
	return Sequence(t, next)
}

// Repeat applies t until one application reports no change. It reports
// whether any application changed the value. There is no iteration cap: t
// must converge.
func Repeat[C any](t Transform[C]) Transform[C] {
	return func(c C) bool {
		changed := false
		for t(c) {
			changed = true
		}
		return changed
	}
}

// Snapshotter is a value that can copy itself and later be reset to such a
// copy. [RepeatWithMetric] needs it to roll back a rejected application.
type Snapshotter[C any] interface {
	Clone() C
	Restore(C)
}

// RepeatWithMetric applies t while each application strictly lowers m.
// The first application that fails to lower m is rolled back, so the value
// never ends up scoring worse than it started. It reports whether any kept
// application changed the value.
func RepeatWithMetric[C Snapshotter[C]](t Transform[C], m Metric[C]) Transform[C] {
	return func(c C) bool {
		changed := false
		curr := m(c)
		for {
			snap := c.Clone()
			applied := t(c)
			next := m(c)
			if next >= curr {
				c.Restore(snap)
				return changed
			}
			if applied {
				changed = true
			}
			curr = next
		}
	}
}

// RepeatWhile applies body for as long as cond holds, checking cond before
// every application. It reports whether body ever changed the value.
func RepeatWhile[C any](cond Predicate[C], body Transform[C]) Transform[C] {
	return func(c C) bool {
		changed := false
		for cond(c) {
			if body(c) {
				changed = true
			}
		}
		return changed
	}
}
