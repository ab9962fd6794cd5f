package passes

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/matzehuels/paulitower/pkg/circuit"
	"github.com/matzehuels/paulitower/pkg/transform"
)

var (
	// ErrUnknownPass is returned when a pass name is not registered.
	ErrUnknownPass = errors.New("unknown pass")

	// ErrUnknownMetric is returned when a metric name is not registered.
	ErrUnknownMetric = errors.New("unknown metric")
)

// GateCount counts every command except barriers.
func GateCount(c *circuit.Circuit) int { return c.GateCount() }

// TwoQubitCount counts commands on two or more qubits.
func TwoQubitCount(c *circuit.Circuit) int { return c.TwoQubitCount() }

// Depth is the circuit depth.
func Depth(c *circuit.Circuit) int { return c.Depth() }

// WouldChange is a predicate that reports whether p would change the
// circuit, by running it on a copy.
func WouldChange(p Pass) transform.Predicate[*circuit.Circuit] {
	return func(c *circuit.Circuit) bool {
		return p(c.Clone())
	}
}

// Registry maps names to passes and metrics, for building pipelines from
// configuration.
type Registry struct {
	passes  map[string]Pass
	metrics map[string]Metric
}

// NewRegistry returns a registry holding the built-in passes and metrics.
func NewRegistry() *Registry {
	return &Registry{
		passes: map[string]Pass{
			"remove_redundancies":         RemoveRedundancies,
			"commute_rotations":           CommuteRotations,
			"clifford_rotations_to_gates": CliffordRotationsToGates,
			"pauli_simp":                  PauliSimp,
		},
		metrics: map[string]Metric{
			"gate_count":      GateCount,
			"two_qubit_count": TwoQubitCount,
			"depth":           Depth,
		},
	}
}

// RegisterPass adds or replaces a named pass.
func (r *Registry) RegisterPass(name string, p Pass) { r.passes[name] = p }

// RegisterMetric adds or replaces a named metric.
func (r *Registry) RegisterMetric(name string, m Metric) { r.metrics[name] = m }

// Pass looks up a pass by name.
func (r *Registry) Pass(name string) (Pass, error) {
	p, ok := r.passes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPass, name)
	}
	return p, nil
}

// Metric looks up a metric by name.
func (r *Registry) Metric(name string) (Metric, error) {
	m, ok := r.metrics[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
	}
	return m, nil
}

// PassNames returns the registered pass names, sorted.
func (r *Registry) PassNames() []string { return slices.Sorted(maps.Keys(r.passes)) }

// MetricNames returns the registered metric names, sorted.
func (r *Registry) MetricNames() []string { return slices.Sorted(maps.Keys(r.metrics)) }
