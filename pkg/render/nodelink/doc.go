// Package nodelink renders Graphviz DOT as SVG.
//
// Pauli graphs describe themselves in DOT (see the pauligraph package's
// Graph.DOT). This package turns that text into an SVG image in process,
// without a graphviz binary on PATH:
//
//	dot := pg.DOT(pauligraph.DOTOptions{Frame: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// The returned SVG has its viewBox rebased to the origin and explicit width
// and height attributes, so it embeds cleanly in HTML.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz], which runs Graphviz
// compiled to WebAssembly.
package nodelink
