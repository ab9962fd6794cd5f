package io

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/paulitower/pkg/circuit"
	"github.com/matzehuels/paulitower/pkg/pauli"
	"github.com/matzehuels/paulitower/pkg/pauligraph"
	"github.com/matzehuels/paulitower/pkg/tableau"
)

func buildGraph(t *testing.T) *pauligraph.Graph {
	t.Helper()
	c, err := circuit.ParseQASMString(`OPENQASM 2.0;
qreg q[2];
creg c[1];
rz(0.25*pi) q[0];
h q[0];
rz(0.25*pi) q[0];
cx q[0], q[1];
measure q[1] -> c[0];
`)
	if err != nil {
		t.Fatalf("ParseQASM() error: %v", err)
	}
	pg, err := pauligraph.FromCircuit(c)
	if err != nil {
		t.Fatalf("FromCircuit() error: %v", err)
	}
	return pg
}

func TestWriteGraphJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteGraphJSON(buildGraph(t), &buf); err != nil {
		t.Fatalf("WriteGraphJSON() error: %v", err)
	}

	var got graph
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if got.Qubits != 2 || got.Bits != 1 {
		t.Errorf("registers = %d/%d, want 2/1", got.Qubits, got.Bits)
	}
	want := []vertex{
		{ID: 0, Tensor: "+Z0", Angle: "0.25", Layer: 0},
		{ID: 1, Tensor: "+X0", Angle: "0.25", Layer: 1},
	}
	if len(got.Vertices) != len(want) {
		t.Fatalf("vertices = %+v, want %+v", got.Vertices, want)
	}
	for i := range want {
		if got.Vertices[i] != want[i] {
			t.Errorf("vertex %d = %+v, want %+v", i, got.Vertices[i], want[i])
		}
	}
	if len(got.Edges) != 1 || got.Edges[0] != (edge{From: 0, To: 1}) {
		t.Errorf("edges = %+v, want [0->1]", got.Edges)
	}
	if len(got.Start) != 1 || got.Start[0] != 0 || len(got.End) != 1 || got.End[0] != 1 {
		t.Errorf("start/end = %v/%v, want [0]/[1]", got.Start, got.End)
	}
	if len(got.Measurements) != 1 || got.Measurements[0] != (measurement{Qubit: 1, Bit: 0}) {
		t.Errorf("measurements = %+v, want q1->c0", got.Measurements)
	}
	if len(got.Frame) != 2 || got.Frame[0].X != "+Z0 X1" {
		t.Errorf("frame = %+v, want X0 row +Z0 X1 after H and CX", got.Frame)
	}
}

func TestWriteGraphJSON_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteGraphJSON(pauligraph.New(1, 0), &buf); err != nil {
		t.Fatalf("WriteGraphJSON() error: %v", err)
	}
	for _, key := range []string{`"vertices": []`, `"edges": []`, `"measurements": []`} {
		if !strings.Contains(buf.String(), key) {
			t.Errorf("output missing %s:\n%s", key, buf.String())
		}
	}
}

func TestExportGraphJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.json")
	if err := ExportGraphJSON(buildGraph(t), path); err != nil {
		t.Fatalf("ExportGraphJSON() error: %v", err)
	}
	if err := ExportGraphJSON(buildGraph(t), filepath.Join(t.TempDir(), "missing", "g.json")); err == nil {
		t.Error("ExportGraphJSON() into a missing directory should fail")
	}
}

func TestWriteFrameJSON(t *testing.T) {
	f := tableau.NewFrame([]circuit.Qubit{0, 1})
	if err := f.ApplyGateAtEnd(circuit.CX, 0, 1); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WriteFrameJSON(f, &buf); err != nil {
		t.Fatalf("WriteFrameJSON() error: %v", err)
	}
	var rows []frameRow
	if err := json.Unmarshal(buf.Bytes(), &rows); err != nil {
		t.Fatal(err)
	}
	want := []frameRow{{Qubit: 0, X: "+X0 X1", Z: "+Z0"}, {Qubit: 1, X: "+X1", Z: "+Z0 Z1"}}
	if len(rows) != 2 || rows[0] != want[0] || rows[1] != want[1] {
		t.Errorf("rows = %+v, want %+v", rows, want)
	}
}

func TestTableauRoundTrip(t *testing.T) {
	orig, err := tableau.FromPaulis(3,
		pauli.MustDense("XZI"),
		pauli.MustDense("-YIZ"),
		pauli.MustDense("IIX"),
	)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WriteTableauJSON(orig, &buf); err != nil {
		t.Fatalf("WriteTableauJSON() error: %v", err)
	}
	if !strings.Contains(buf.String(), `"pauli": "-Y0 Z2"`) {
		t.Errorf("output missing readable row:\n%s", buf.String())
	}
	got, err := ReadTableauJSON(&buf)
	if err != nil {
		t.Fatalf("ReadTableauJSON() error: %v", err)
	}
	if !got.Equal(orig) {
		t.Errorf("round trip = \n%v, want\n%v", got, orig)
	}
}

func TestImportTableauJSON(t *testing.T) {
	if _, err := ImportTableauJSON(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("ImportTableauJSON() of a missing file should fail")
	}
}

func TestReadTableauJSON_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", `{`},
		{"negative qubits", `{"qubits": -1, "rows": []}`},
		{"short row", `{"qubits": 2, "rows": [{"x": [true], "z": [false, false], "phase": false}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadTableauJSON(strings.NewReader(tt.input)); err == nil {
				t.Error("ReadTableauJSON() error = nil, want error")
			}
		})
	}
}
