package tableau_test

import (
	"fmt"

	"github.com/matzehuels/paulitower/pkg/circuit"
	"github.com/matzehuels/paulitower/pkg/pauli"
	"github.com/matzehuels/paulitower/pkg/tableau"
)

func ExampleTableau_ApplyGate() {
	// Stabilizers of |00>, then a Bell-pair preparation.
	tab, _ := tableau.FromPaulis(2, pauli.MustDense("ZI"), pauli.MustDense("IZ"))
	_ = tab.ApplyGate(circuit.H, 0)
	_ = tab.ApplyGate(circuit.CX, 0, 1)
	for i := 0; i < tab.NRows(); i++ {
		p, _ := tab.Pauli(i)
		fmt.Println(p)
	}
	// Output:
	// +X0 X1
	// +Z0 Z1
}

func ExampleFrame_Synthesise() {
	f := tableau.NewFrame([]circuit.Qubit{0, 1})
	_ = f.ApplyGateAtEnd(circuit.CZ, 0, 1)
	for _, cmd := range f.Synthesise() {
		fmt.Println(cmd)
	}
	// Output:
	// CZ q[0], q[1]
}
