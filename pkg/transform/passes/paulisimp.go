package passes

import (
	"github.com/matzehuels/paulitower/pkg/circuit"
	"github.com/matzehuels/paulitower/pkg/pauligraph"
	"github.com/matzehuels/paulitower/pkg/transform"
)

// cleanup runs after re-lowering, where neighbouring gadget ladders leave
// cancelling CX pairs behind.
var cleanup = transform.Repeat[*circuit.Circuit](transform.Sequence[*circuit.Circuit](
	CliffordRotationsToGates,
	RemoveRedundancies,
))

// PauliSimp lowers the circuit into a Pauli graph, where commuting
// rotations merge, then re-lowers and cleans up the result. The rewrite is
// kept only if it strictly lowers the gate count. Circuits the graph cannot
// represent (resets, gates after measurement) are left alone.
func PauliSimp(c *circuit.Circuit) bool {
	pg, err := pauligraph.FromCircuit(c)
	if err != nil {
		return false
	}
	out, err := pg.ToCircuit()
	if err != nil {
		return false
	}
	cleanup(out)
	if out.GateCount() >= c.GateCount() {
		return false
	}
	commit(c, out.Commands())
	return true
}
