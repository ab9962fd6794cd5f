package pipeline

import (
	"errors"

	"github.com/matzehuels/paulitower/pkg/circuit"
	perrors "github.com/matzehuels/paulitower/pkg/errors"
	"github.com/matzehuels/paulitower/pkg/pauligraph"
)

// Lower builds the Pauli graph of c. Circuits the graph cannot represent
// fail with [perrors.ErrCodeUnsupported].
func Lower(c *circuit.Circuit) (*pauligraph.Graph, error) {
	pg, err := pauligraph.FromCircuit(c)
	switch {
	case err == nil:
		return pg, nil
	case errors.Is(err, pauligraph.ErrMidCircuitMeasurement),
		errors.Is(err, pauligraph.ErrUnsupportedOp):
		return nil, perrors.Wrap(perrors.ErrCodeUnsupported, err, "circuit has no Pauli graph")
	default:
		return nil, perrors.Wrap(perrors.ErrCodeInternal, err, "lower circuit")
	}
}
