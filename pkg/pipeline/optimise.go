package pipeline

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/paulitower/pkg/circuit"
	"github.com/matzehuels/paulitower/pkg/config"
	"github.com/matzehuels/paulitower/pkg/observability"
	"github.com/matzehuels/paulitower/pkg/transform/passes"
)

// Optimise builds p against reg and runs it over c in place. It reports
// whether any pass changed the circuit. A nil reg selects the built-in
// passes; a nil logger discards pass logs.
func Optimise(ctx context.Context, c *circuit.Circuit, p config.Pipeline, reg *passes.Registry, logger *log.Logger) (bool, error) {
	if reg == nil {
		reg = passes.NewRegistry()
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	opt, err := config.Build(p, reg, observePass(ctx, logger))
	if err != nil {
		return false, err
	}

	hooks := observability.Pipeline()
	before := c.GateCount()
	hooks.OnOptimiseStart(ctx, p.Name, before)
	start := time.Now()
	changed := opt(c)
	hooks.OnOptimiseComplete(ctx, p.Name, before, c.GateCount(), time.Since(start))
	return changed, nil
}

// observePass times every pass application and reports it to the pass
// hooks and the debug log.
func observePass(ctx context.Context, logger *log.Logger) config.WrapFunc {
	hooks := observability.Pass()
	return func(name string, p passes.Pass) passes.Pass {
		return func(c *circuit.Circuit) bool {
			start := time.Now()
			changed := p(c)
			d := time.Since(start)
			hooks.OnPassComplete(ctx, name, changed, d)
			logger.Debug("pass", "name", name, "changed", changed, "gates", c.GateCount(), "duration", d)
			return changed
		}
	}
}
