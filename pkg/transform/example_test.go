package transform_test

import (
	"fmt"

	"github.com/matzehuels/paulitower/pkg/transform"
)

func ExampleRepeat() {
	halve := func(n *int) bool {
		if *n%2 != 0 {
			return false
		}
		*n /= 2
		return true
	}
	n := 48
	changed := transform.Repeat[*int](halve)(&n)
	fmt.Println(n, changed)
	// Output:
	// 3 true
}

// offset is a signed distance that can be saved and restored.
type offset struct{ n int }

func (o *offset) Clone() *offset    { return &offset{n: o.n} }
func (o *offset) Restore(s *offset) { o.n = s.n }

func ExampleRepeatWithMetric() {
	dec := func(o *offset) bool { o.n -= 3; return true }
	abs := func(o *offset) int { return max(o.n, -o.n) }
	o := &offset{n: 7}
	changed := transform.RepeatWithMetric[*offset](dec, abs)(o)
	// 7 → 4 → 1 → -2: the last step raised |n|, so it was rolled back.
	fmt.Println(o.n, changed)
	// Output:
	// 1 true
}
