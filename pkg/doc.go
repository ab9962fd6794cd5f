// Package pkg provides the core libraries of paulitower, a quantum circuit
// optimiser built around Pauli gadgets.
//
// # Overview
//
// Paulitower reads OpenQASM 2.0 circuits, rewrites them with optimisation
// passes, and writes the smaller circuit back out. Its central structure is
// the Pauli graph: every non-Clifford rotation becomes a gadget exp(-i·θ/2·P)
// for a Pauli tensor P, the Clifford gates are folded into a tableau frame,
// and an edge joins two gadgets whose tensors do not commute. Commuting
// gadgets with equal tensors merge, which is where most savings come from.
//
// # Architecture
//
// The typical data flow:
//
//	OpenQASM source
//	      ↓
//	 [circuit] package (parse into a gate list)
//	      ↓
//	 [transform/passes] package (gate-level rewrites, combined by [transform])
//	      ↓
//	 [pauligraph] package (lower to gadgets + [tableau] frame, resynthesise)
//	      ↓
//	 OpenQASM, DOT, SVG or JSON output
//
// [pipeline] ties these stages together behind a cache and observability
// hooks; it is what the paulitower CLI calls.
//
// # Quick Start
//
// Optimise a circuit with the default pipeline:
//
//	import (
//	    "context"
//
//	    "github.com/matzehuels/paulitower/pkg/cache"
//	    "github.com/matzehuels/paulitower/pkg/pipeline"
//	)
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, nil)
//	res, err := runner.Execute(context.Background(), pipeline.Options{
//	    Source: src,
//	})
//	if err != nil {
//	    return err
//	}
//	os.Stdout.Write(res.QASM)
//
// # Main Packages
//
// ## Algebra
//
// [pauli] - Single-qubit Paulis, phases, and sparse Pauli tensors.
//
// [tableau] - Stabiliser tableaux over GF(2), and the Clifford frame that
// conjugates Pauli tensors through a prefix of Clifford gates.
//
// [angle] - Rotation angles in half-turns, exact for rationals and symbolic
// for named parameters.
//
// ## Circuits and graphs
//
// [circuit] - The gate-list circuit model with an OpenQASM 2.0 reader and
// writer.
//
// [dag] - A generic directed acyclic graph with stable handles.
//
// [pauligraph] - The Pauli graph: lowering from circuits, rotation merging,
// resynthesis back to gates, and DOT output.
//
// ## Optimisation
//
// [transform] - Combinators over in-place rewrites: Sequence, Repeat,
// RepeatWithMetric, RepeatWhile.
//
// [transform/passes] - The built-in passes and metrics, with a name
// registry for configuration files.
//
// [config] - TOML settings and the pipeline description they build.
//
// ## Infrastructure
//
// [pipeline] - Parse, optimise, lower and render with caching.
//
// [cache] - File, memory and Redis caches with TTLs.
//
// [observability] - Hooks for pipeline, pass and cache events, with a
// Prometheus implementation.
//
// [errors] - Coded errors that map to user messages and exit codes.
//
// [io] - JSON export of Pauli graphs, frames and tableaux.
//
// [render/nodelink] - DOT to SVG rendering.
//
// [buildinfo] - Version information stamped at build time.
//
// [pauli]: https://pkg.go.dev/github.com/matzehuels/paulitower/pkg/pauli
// [tableau]: https://pkg.go.dev/github.com/matzehuels/paulitower/pkg/tableau
// [angle]: https://pkg.go.dev/github.com/matzehuels/paulitower/pkg/angle
// [circuit]: https://pkg.go.dev/github.com/matzehuels/paulitower/pkg/circuit
// [dag]: https://pkg.go.dev/github.com/matzehuels/paulitower/pkg/dag
// [pauligraph]: https://pkg.go.dev/github.com/matzehuels/paulitower/pkg/pauligraph
// [transform]: https://pkg.go.dev/github.com/matzehuels/paulitower/pkg/transform
// [transform/passes]: https://pkg.go.dev/github.com/matzehuels/paulitower/pkg/transform/passes
// [config]: https://pkg.go.dev/github.com/matzehuels/paulitower/pkg/config
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/paulitower/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/paulitower/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/paulitower/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/paulitower/pkg/errors
// [io]: https://pkg.go.dev/github.com/matzehuels/paulitower/pkg/io
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/paulitower/pkg/render/nodelink
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/paulitower/pkg/buildinfo
package pkg
