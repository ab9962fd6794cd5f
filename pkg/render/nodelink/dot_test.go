package nodelink

import (
	"bytes"
	"context"
	"errors"
	"testing"
)

func TestNormalizeViewBox(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"rebased",
			`<svg width="62pt" height="116pt" viewBox="0.00 0.00 62.00 116.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`,
			`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 62.00 116.00" width="62" height="116"><g/></svg>`,
		},
		{"no viewBox", `<svg><g/></svg>`, `<svg><g/></svg>`},
		{"zero size", `<svg viewBox="0 0 0 10"></svg>`, `<svg viewBox="0 0 0 10"></svg>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(normalizeViewBox([]byte(tt.in))); got != tt.want {
				t.Errorf("normalizeViewBox() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderSVG_Empty(t *testing.T) {
	if _, err := RenderSVG(context.Background(), "  \n"); !errors.Is(err, ErrEmptyGraph) {
		t.Errorf("RenderSVG(empty) error = %v, want ErrEmptyGraph", err)
	}
}

func TestRenderSVG(t *testing.T) {
	if testing.Short() {
		t.Skip("graphviz start-up is slow")
	}
	dot := "digraph G {\n  0 [label=\"+Z0, 0.25\"];\n  1 [label=\"+X0, 0.25\"];\n  0 -> 1;\n}\n"
	svg, err := RenderSVG(context.Background(), dot)
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	if !bytes.Contains(svg, []byte("<svg")) {
		t.Errorf("RenderSVG() output has no svg element:\n%s", svg)
	}
	if !bytes.Contains(svg, []byte("+Z0, 0.25")) {
		t.Errorf("RenderSVG() output missing vertex label")
	}
}
