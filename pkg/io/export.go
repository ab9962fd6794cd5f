package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/paulitower/pkg/pauligraph"
	"github.com/matzehuels/paulitower/pkg/tableau"
)

type graph struct {
	Qubits       int           `json:"qubits"`
	Bits         int           `json:"bits"`
	Vertices     []vertex      `json:"vertices"`
	Edges        []edge        `json:"edges"`
	Start        []int         `json:"start"`
	End          []int         `json:"end"`
	Frame        []frameRow    `json:"frame"`
	Measurements []measurement `json:"measurements"`
}

type vertex struct {
	ID     int    `json:"id"`
	Tensor string `json:"tensor"`
	Angle  string `json:"angle"`
	Layer  int    `json:"layer"`
}

type edge struct {
	From int `json:"from"`
	To   int `json:"to"`
}

type frameRow struct {
	Qubit int    `json:"qubit"`
	X     string `json:"x"`
	Z     string `json:"z"`
}

type measurement struct {
	Qubit int `json:"qubit"`
	Bit   int `json:"bit"`
}

// WriteGraphJSON encodes a Pauli graph as JSON and writes it to w.
// Vertices are listed by handle, each with its rotation layer.
func WriteGraphJSON(pg *pauligraph.Graph, w io.Writer) error {
	layers, err := pg.Layers()
	if err != nil {
		return fmt.Errorf("layer graph: %w", err)
	}
	layerOf := make(map[pauligraph.Vertex]int, pg.NumVertices())
	for i, layer := range layers {
		for _, v := range layer {
			layerOf[v] = i
		}
	}

	out := graph{
		Qubits:       pg.NumQubits(),
		Bits:         pg.NumBits(),
		Vertices:     make([]vertex, 0, pg.NumVertices()),
		Edges:        make([]edge, 0, pg.NumEdges()),
		Start:        ids(pg.StartLine()),
		End:          ids(pg.EndLine()),
		Frame:        frameRows(pg.Frame()),
		Measurements: []measurement{},
	}
	for _, v := range pg.Vertices() {
		gd, _ := pg.Gadget(v)
		out.Vertices = append(out.Vertices, vertex{
			ID:     int(v),
			Tensor: gd.Tensor.String(),
			Angle:  gd.Angle.String(),
			Layer:  layerOf[v],
		})
		for _, s := range pg.Successors(v) {
			out.Edges = append(out.Edges, edge{From: int(v), To: int(s)})
		}
	}
	for _, m := range pg.Measurements() {
		out.Measurements = append(out.Measurements, measurement{Qubit: int(m.Qubit), Bit: int(m.Bit)})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// ExportGraphJSON writes a Pauli graph to a JSON file at path.
// The file is created with mode 0644, or truncated if it already exists.
func ExportGraphJSON(pg *pauligraph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteGraphJSON(pg, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteFrameJSON encodes a Clifford frame as its per-qubit X and Z rows.
func WriteFrameJSON(f *tableau.Frame, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(frameRows(f))
}

func frameRows(f *tableau.Frame) []frameRow {
	rows := make([]frameRow, 0, f.NQubits())
	for _, q := range f.Qubits() {
		x, _ := f.XRow(q)
		z, _ := f.ZRow(q)
		rows = append(rows, frameRow{Qubit: int(q), X: x.String(), Z: z.String()})
	}
	return rows
}

func ids(vs []pauligraph.Vertex) []int {
	out := make([]int, len(vs))
	for i, v := range vs {
		out[i] = int(v)
	}
	return out
}
