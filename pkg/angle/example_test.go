package angle_test

import (
	"fmt"

	"github.com/matzehuels/paulitower/pkg/angle"
)

func ExampleEquivClifford() {
	for _, s := range []string{"pi/2", "pi/4", "-pi/2", "theta"} {
		e := angle.MustParse(s, angle.Radians)
		k, ok := angle.EquivClifford(e)
		fmt.Printf("%-6s -> %s half-turns, clifford=%v k=%d\n", s, e, ok, k)
	}
	// Output:
	// pi/2   -> 0.5 half-turns, clifford=true k=1
	// pi/4   -> 0.25 half-turns, clifford=false k=0
	// -pi/2  -> -0.5 half-turns, clifford=true k=3
	// theta  -> theta half-turns, clifford=false k=0
}

func ExampleExpr_Add() {
	a := angle.Symbol("a").Add(angle.Const(0.25))
	b := a.Add(angle.Symbol("a").Neg())
	fmt.Println(a)
	fmt.Println(b)
	// Output:
	// a + 0.25
	// 0.25
}
