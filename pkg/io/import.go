package io

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/paulitower/pkg/tableau"
)

type tableauJSON struct {
	Qubits int       `json:"qubits"`
	Rows   []rowJSON `json:"rows"`
}

type rowJSON struct {
	X     []bool `json:"x"`
	Z     []bool `json:"z"`
	Phase bool   `json:"phase"`
	Pauli string `json:"pauli,omitempty"`
}

// WriteTableauJSON encodes a tableau as JSON and writes it to w.
// The output can be re-imported with [ReadTableauJSON].
func WriteTableauJSON(t *tableau.Tableau, w io.Writer) error {
	xs, zs, ph := t.XMatrix(), t.ZMatrix(), t.Phases()
	out := tableauJSON{Qubits: t.NQubits(), Rows: make([]rowJSON, t.NRows())}
	for i := range out.Rows {
		p, err := t.Pauli(i)
		if err != nil {
			return err
		}
		out.Rows[i] = rowJSON{X: xs[i], Z: zs[i], Phase: ph[i], Pauli: p.String()}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// ReadTableauJSON decodes a tableau from r. Every row must have exactly
// "qubits" entries in both bit vectors.
func ReadTableauJSON(r io.Reader) (*tableau.Tableau, error) {
	var in tableauJSON
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	if in.Qubits < 0 {
		return nil, errors.New("negative qubit count")
	}
	xs := make([][]bool, len(in.Rows))
	zs := make([][]bool, len(in.Rows))
	ph := make([]bool, len(in.Rows))
	for i, row := range in.Rows {
		if len(row.X) != in.Qubits || len(row.Z) != in.Qubits {
			return nil, fmt.Errorf("row %d: want %d columns, got x=%d z=%d", i, in.Qubits, len(row.X), len(row.Z))
		}
		xs[i], zs[i], ph[i] = row.X, row.Z, row.Phase
	}
	if len(in.Rows) == 0 {
		return tableau.FromPaulis(in.Qubits)
	}
	return tableau.New(xs, zs, ph)
}

// ImportTableauJSON reads a tableau from a JSON file at path.
func ImportTableauJSON(path string) (*tableau.Tableau, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadTableauJSON(f)
}
