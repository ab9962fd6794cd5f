// Package pipeline provides the compile driver for paulitower.
//
// This package implements the parse → optimise → emit pipeline behind every
// CLI command, so each entry point reads QASM, applies passes, caches results
// and reports statistics the same way.
//
// # Architecture
//
// A compile run has three stages:
//
//  1. Parse: read OpenQASM 2.0 into a [circuit.Circuit]
//  2. Optimise: run the configured pass pipeline over the circuit in place
//  3. Emit: write the optimised circuit back out as QASM
//
// Graph runs replace the last two stages with lowering into a Pauli graph
// and rendering it as DOT, JSON or SVG.
//
// The context is checked between stages. Passes themselves run to completion
// once started.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Source:     src,
//	    SourceName: "bell.qasm",
//	    Pipeline:   cfg.Pipeline,
//	})
//	if err != nil {
//	    return err
//	}
//	os.Stdout.Write(result.QASM)
//
// Run individual stages:
//
//	c, err := pipeline.Parse(ctx, src, "bell.qasm")
//	changed, err := pipeline.Optimise(ctx, c, cfg.Pipeline, nil, logger)
//	pg, err := pipeline.Lower(c)
//	svg, err := pipeline.Render(ctx, pg, pipeline.FormatSVG, true)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/paulitower/pkg/circuit"
	"github.com/matzehuels/paulitower/pkg/config"
	perrors "github.com/matzehuels/paulitower/pkg/errors"
	"github.com/matzehuels/paulitower/pkg/pauligraph"
	"github.com/matzehuels/paulitower/pkg/transform/passes"
)

// DefaultSourceName labels sources that were not read from a file.
const DefaultSourceName = "<stdin>"

// Format constants for graph output.
const (
	FormatDOT  = "dot"
	FormatJSON = "json"
	FormatSVG  = "svg"
)

// GraphFormats lists the supported graph formats.
var GraphFormats = []string{FormatDOT, FormatJSON, FormatSVG}

// =============================================================================
// Options
// =============================================================================

// Options configures a compile run.
type Options struct {
	// Source is the OpenQASM 2.0 text to compile.
	Source []byte

	// SourceName labels the source in logs and errors.
	SourceName string

	// Pipeline is the pass pipeline. An empty pipeline selects
	// [config.DefaultPipeline].
	Pipeline config.Pipeline

	// Registry resolves pass and metric names. Nil selects the built-ins.
	Registry *passes.Registry

	// Refresh skips the cache lookup. The fresh result is still stored.
	Refresh bool

	Logger *log.Logger

	validated bool
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// Calling it more than once has no further effect.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if len(o.Source) == 0 {
		return perrors.New(perrors.ErrCodeInvalidInput, "empty QASM source")
	}
	if o.SourceName == "" {
		o.SourceName = DefaultSourceName
	}
	if len(o.Pipeline.Steps) == 0 {
		o.Pipeline = config.DefaultPipeline()
	}
	if o.Registry == nil {
		o.Registry = passes.NewRegistry()
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// GraphOptions configures a graph run.
type GraphOptions struct {
	Source     []byte
	SourceName string

	// Format is one of [GraphFormats]. Empty selects [FormatDOT].
	Format string

	// Frame includes the Clifford frame in the rendered output.
	Frame bool

	Refresh bool
	Logger  *log.Logger

	validated bool
}

// ValidateAndSetDefaults checks required fields and applies defaults.
func (o *GraphOptions) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if len(o.Source) == 0 {
		return perrors.New(perrors.ErrCodeInvalidInput, "empty QASM source")
	}
	if o.SourceName == "" {
		o.SourceName = DefaultSourceName
	}
	if o.Format == "" {
		o.Format = FormatDOT
	}
	if err := perrors.ValidateFormat(o.Format, GraphFormats...); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// =============================================================================
// Results
// =============================================================================

// Result contains the outputs of a compile run.
type Result struct {
	// RunID identifies the run in logs.
	RunID uuid.UUID

	// Circuit is the optimised circuit.
	Circuit *circuit.Circuit

	// QASM is Circuit written as OpenQASM 2.0.
	QASM []byte

	// Changed reports whether any pass rewrote the circuit. It is false on
	// a cache hit.
	Changed bool

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains compile statistics.
type Stats struct {
	Qubits         int
	GatesBefore    int
	GatesAfter     int
	TwoQubitBefore int
	TwoQubitAfter  int
	DepthBefore    int
	DepthAfter     int
	ParseTime      time.Duration
	OptimiseTime   time.Duration
	EmitTime       time.Duration
}

// GatesRemoved is GatesBefore minus GatesAfter.
func (s Stats) GatesRemoved() int { return s.GatesBefore - s.GatesAfter }

// Duration is the total time spent in all stages.
func (s Stats) Duration() time.Duration { return s.ParseTime + s.OptimiseTime + s.EmitTime }

// CacheInfo tracks which stages hit the cache.
type CacheInfo struct {
	CompileHit bool
	RenderHit  bool
}

// GraphResult contains the outputs of a graph run.
type GraphResult struct {
	RunID uuid.UUID

	// Graph is the lowered circuit.
	Graph *pauligraph.Graph

	// Data is the rendered graph in the requested format.
	Data []byte

	Stats     pauligraph.Stats
	CacheInfo CacheInfo
}
