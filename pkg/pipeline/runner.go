package pipeline

import (
	"bytes"
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/paulitower/pkg/cache"
	"github.com/matzehuels/paulitower/pkg/circuit"
	perrors "github.com/matzehuels/paulitower/pkg/errors"
	"github.com/matzehuels/paulitower/pkg/observability"
)

// Cache key types reported to the cache hooks.
const (
	keyTypeCompile = "compile"
	keyTypeGraph   = "graph"
)

// DefaultTTL is how long results stay cached when the runner has no TTL.
const DefaultTTL = 24 * time.Hour

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger; it does not
// store results. Multiple goroutines can use the same Runner with different
// options, since every run owns the circuit it parses.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	TTL    time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		TTL:    DefaultTTL,
	}
}

// Execute runs the complete parse → optimise → emit pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts.Logger)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{RunID: uuid.New()}
	logger := opts.Logger.With("run", shortID(result.RunID), "source", opts.SourceName)

	// Stage 1: Parse
	start := time.Now()
	c, err := Parse(ctx, opts.Source, opts.SourceName)
	if err != nil {
		return nil, err
	}
	result.Stats.ParseTime = time.Since(start)
	result.Stats.Qubits = c.NumQubits()
	result.Stats.GatesBefore = c.GateCount()
	result.Stats.TwoQubitBefore = c.TwoQubitCount()
	result.Stats.DepthBefore = c.Depth()
	logger.Debug("parsed circuit",
		"qubits", c.NumQubits(),
		"gates", result.Stats.GatesBefore,
		"duration", result.Stats.ParseTime)

	if err := checkContext(ctx, "parse"); err != nil {
		return nil, err
	}

	key := r.Keyer.CompileKey(opts.Source, cache.CompileKeyOpts{Pipeline: opts.Pipeline.Fingerprint()})
	if !opts.Refresh {
		if data, ok := r.lookup(ctx, key, keyTypeCompile, logger); ok {
			if cached, err := circuit.ParseQASM(bytes.NewReader(data)); err == nil {
				result.Circuit = cached
				result.QASM = data
				result.CacheInfo.CompileHit = true
				result.fillAfter()
				logger.Info("compiled (cached)", "gates", result.Stats.GatesAfter)
				return result, nil
			}
			logger.Warn("discarding unreadable cache entry", "key", key)
		}
	}

	// Stage 2: Optimise
	start = time.Now()
	changed, err := Optimise(ctx, c, opts.Pipeline, opts.Registry, logger)
	if err != nil {
		return nil, err
	}
	result.Changed = changed
	result.Stats.OptimiseTime = time.Since(start)
	logger.Debug("optimised circuit",
		"pipeline", opts.Pipeline.Name,
		"changed", changed,
		"duration", result.Stats.OptimiseTime)

	if err := checkContext(ctx, "optimise"); err != nil {
		return nil, err
	}

	// Stage 3: Emit
	start = time.Now()
	result.Circuit = c
	result.QASM = []byte(circuit.QASM(c))
	result.Stats.EmitTime = time.Since(start)
	observability.Pipeline().OnEmitComplete(ctx, "qasm", len(result.QASM), result.Stats.EmitTime, nil)
	result.fillAfter()

	r.store(ctx, key, keyTypeCompile, result.QASM, logger)

	logger.Info("compiled",
		"gates", result.Stats.GatesBefore,
		"after", result.Stats.GatesAfter,
		"duration", result.Stats.Duration())
	return result, nil
}

// Graph parses a circuit, lowers it into a Pauli graph and renders it. The
// rendered bytes are cached; lowering always runs, since the graph itself
// is part of the result.
func (r *Runner) Graph(ctx context.Context, opts GraphOptions) (*GraphResult, error) {
	r.applyLogger(&opts.Logger)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &GraphResult{RunID: uuid.New()}
	logger := opts.Logger.With("run", shortID(result.RunID), "source", opts.SourceName)

	c, err := Parse(ctx, opts.Source, opts.SourceName)
	if err != nil {
		return nil, err
	}
	pg, err := Lower(c)
	if err != nil {
		return nil, err
	}
	result.Graph = pg
	if result.Stats, err = pg.Stats(); err != nil {
		return nil, perrors.Wrap(perrors.ErrCodeInternal, err, "graph stats")
	}
	logger.Debug("lowered circuit",
		"vertices", result.Stats.Vertices,
		"edges", result.Stats.Edges,
		"depth", result.Stats.Depth)

	if err := checkContext(ctx, "lower"); err != nil {
		return nil, err
	}

	key := r.Keyer.GraphKey(opts.Source, cache.GraphKeyOpts{Format: opts.Format, Frame: opts.Frame})
	if !opts.Refresh {
		if data, ok := r.lookup(ctx, key, keyTypeGraph, logger); ok {
			result.Data = data
			result.CacheInfo.RenderHit = true
			return result, nil
		}
	}

	start := time.Now()
	data, err := Render(ctx, pg, opts.Format, opts.Frame)
	observability.Pipeline().OnEmitComplete(ctx, opts.Format, len(data), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	result.Data = data
	r.store(ctx, key, keyTypeGraph, data, logger)
	return result, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// lookup reads key from the cache. Cache failures are logged and treated as
// misses.
func (r *Runner) lookup(ctx context.Context, key, keyType string, logger *log.Logger) ([]byte, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		logger.Warn("cache read failed", "err", err)
		return nil, false
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, keyType)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, keyType)
	return data, true
}

func (r *Runner) store(ctx context.Context, key, keyType string, data []byte, logger *log.Logger) {
	if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
		logger.Warn("cache write failed", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(l **log.Logger) {
	if *l == nil {
		*l = r.Logger
	}
}

func (res *Result) fillAfter() {
	res.Stats.GatesAfter = res.Circuit.GateCount()
	res.Stats.TwoQubitAfter = res.Circuit.TwoQubitCount()
	res.Stats.DepthAfter = res.Circuit.Depth()
}

func checkContext(ctx context.Context, stage string) error {
	if err := ctx.Err(); err != nil {
		return perrors.Wrap(perrors.ErrCodeTimeout, err, "cancelled after %s", stage)
	}
	return nil
}

func shortID(id uuid.UUID) string { return id.String()[:8] }
