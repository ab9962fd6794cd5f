package tableau

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/matzehuels/paulitower/pkg/circuit"
	"github.com/matzehuels/paulitower/pkg/pauli"
)

func qs(idx ...int) []circuit.Qubit {
	out := make([]circuit.Qubit, len(idx))
	for i, q := range idx {
		out[i] = circuit.Qubit(q)
	}
	return out
}

func expectFrameRow(t *testing.T, f *Frame, q int, wantX, wantZ string) {
	t.Helper()
	x, err := f.XRow(circuit.Qubit(q))
	if err != nil {
		t.Fatalf("XRow(%d) error: %v", q, err)
	}
	z, _ := f.ZRow(circuit.Qubit(q))
	if w := pauli.MustDense(wantX); !x.Equal(w) {
		t.Errorf("XRow(%d) = %v, want %v", q, x, w)
	}
	if w := pauli.MustDense(wantZ); !z.Equal(w) {
		t.Errorf("ZRow(%d) = %v, want %v", q, z, w)
	}
}

func TestFrame_ApplyGateAtEnd(t *testing.T) {
	tests := []struct {
		name  string
		gates []struct {
			op circuit.OpType
			q  []int
		}
		// wantX[q], wantZ[q] over qubits 0 and 1
		wantX, wantZ [2]string
	}{
		{
			name: "H",
			gates: []struct {
				op circuit.OpType
				q  []int
			}{{circuit.H, []int{0}}},
			wantX: [2]string{"ZI", "IX"}, wantZ: [2]string{"XI", "IZ"},
		},
		{
			name: "S",
			gates: []struct {
				op circuit.OpType
				q  []int
			}{{circuit.S, []int{0}}},
			wantX: [2]string{"-YI", "IX"}, wantZ: [2]string{"ZI", "IZ"},
		},
		{
			name: "V",
			gates: []struct {
				op circuit.OpType
				q  []int
			}{{circuit.V, []int{1}}},
			wantX: [2]string{"XI", "IX"}, wantZ: [2]string{"ZI", "IY"},
		},
		{
			name: "CX",
			gates: []struct {
				op circuit.OpType
				q  []int
			}{{circuit.CX, []int{0, 1}}},
			wantX: [2]string{"XX", "IX"}, wantZ: [2]string{"ZI", "ZZ"},
		},
		{
			name: "H then S",
			gates: []struct {
				op circuit.OpType
				q  []int
			}{{circuit.H, []int{0}}, {circuit.S, []int{0}}},
			wantX: [2]string{"YI", "IX"}, wantZ: [2]string{"XI", "IZ"},
		},
		{
			name: "X and Z signs",
			gates: []struct {
				op circuit.OpType
				q  []int
			}{{circuit.X, []int{0}}, {circuit.Z, []int{1}}},
			wantX: [2]string{"XI", "-IX"}, wantZ: [2]string{"-ZI", "IZ"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFrame(qs(0, 1))
			for _, g := range tt.gates {
				if err := f.ApplyGateAtEnd(g.op, qs(g.q...)...); err != nil {
					t.Fatalf("ApplyGateAtEnd(%v) error: %v", g.op, err)
				}
			}
			for q := 0; q < 2; q++ {
				expectFrameRow(t, f, q, tt.wantX[q], tt.wantZ[q])
			}
		})
	}
}

func TestFrame_PauliAtEndMatchesGates(t *testing.T) {
	tests := []struct {
		name   string
		gadget string
		k      uint
		op     circuit.OpType
		q      []int
	}{
		{"Z quarter is S", "ZI", 1, circuit.S, []int{0}},
		{"Z three quarters is Sdg", "IZ", 3, circuit.Sdg, []int{1}},
		{"X quarter is V", "XI", 1, circuit.V, []int{0}},
		{"Z half is Z", "ZI", 2, circuit.Z, []int{0}},
		{"ZZ quarter is ZZMax", "ZZ", 1, circuit.ZZMax, []int{0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Start from a non-trivial frame so row products matter.
			a := NewFrame(qs(0, 1))
			_ = a.ApplyGateAtEnd(circuit.H, 0)
			_ = a.ApplyGateAtEnd(circuit.CX, 0, 1)
			b := a.Clone()

			if err := a.ApplyPauliAtEnd(pauli.MustDense(tt.gadget), tt.k); err != nil {
				t.Fatalf("ApplyPauliAtEnd() error: %v", err)
			}
			if err := b.ApplyGateAtEnd(tt.op, qs(tt.q...)...); err != nil {
				t.Fatalf("ApplyGateAtEnd() error: %v", err)
			}
			if !a.Equal(b) {
				t.Errorf("gadget frame\n%v\nwant\n%v", a, b)
			}
		})
	}
}

func TestFrame_ZZMaxDecomposition(t *testing.T) {
	a := NewFrame(qs(0, 1))
	_ = a.ApplyGateAtEnd(circuit.ZZMax, 0, 1)
	b := NewFrame(qs(0, 1))
	_ = b.ApplyGateAtEnd(circuit.CX, 0, 1)
	_ = b.ApplyGateAtEnd(circuit.S, 1)
	_ = b.ApplyGateAtEnd(circuit.CX, 0, 1)
	if !a.Equal(b) {
		t.Errorf("ZZMax frame\n%v\nwant CX·S·CX\n%v", a, b)
	}
}

func TestFrame_ApplyPauliAtFront(t *testing.T) {
	// C = H; C·S has C† X C = S† Z S = Z and C† Z C = S† X S = -Y.
	f := NewFrame(qs(0))
	_ = f.ApplyGateAtEnd(circuit.H, 0)
	if err := f.ApplyPauliAtFront(pauli.MustDense("Z"), 1); err != nil {
		t.Fatalf("ApplyPauliAtFront() error: %v", err)
	}
	expectFrameRow(t, f, 0, "Z", "-Y")
}

func TestFrame_RowProduct(t *testing.T) {
	f := NewFrame(qs(0, 1))
	_ = f.ApplyGateAtEnd(circuit.CX, 0, 1)
	tests := []struct {
		in, want string
	}{
		{"IZ", "ZZ"},
		{"XI", "XX"},
		{"YI", "YX"},
		{"-ZZ", "-IZ"},
		{"YY", "-XZ"},
	}
	for _, tt := range tests {
		got, err := f.RowProduct(pauli.MustDense(tt.in))
		if err != nil {
			t.Fatalf("RowProduct(%s) error: %v", tt.in, err)
		}
		if w := pauli.MustDense(tt.want); !got.Equal(w) {
			t.Errorf("RowProduct(%s) = %v, want %v", tt.in, got, w)
		}
	}
}

func TestFrame_NamedQubits(t *testing.T) {
	f := NewFrame(qs(3, 7))
	if err := f.ApplyGateAtEnd(circuit.CX, 3, 7); err != nil {
		t.Fatalf("ApplyGateAtEnd() error: %v", err)
	}
	z, _ := f.ZRow(7)
	want := pauli.FromTerms(pauli.One, pauli.Term{Qubit: 3, Pauli: pauli.Z}, pauli.Term{Qubit: 7, Pauli: pauli.Z})
	if !z.Equal(want) {
		t.Errorf("ZRow(7) = %v, want %v", z, want)
	}
	if _, err := f.ZRow(0); !errors.Is(err, ErrUnknownQubit) {
		t.Errorf("ZRow(0) error = %v, want ErrUnknownQubit", err)
	}
	if err := f.ApplyGateAtEnd(circuit.H, 1); !errors.Is(err, ErrUnknownQubit) {
		t.Errorf("ApplyGateAtEnd(H, 1) error = %v, want ErrUnknownQubit", err)
	}
	if err := f.ApplyGateAtEnd(circuit.T, 3); !errors.Is(err, ErrUnsupportedOp) {
		t.Errorf("ApplyGateAtEnd(T) error = %v, want ErrUnsupportedOp", err)
	}
}

var cliffordOps = []struct {
	op    circuit.OpType
	arity int
}{
	{circuit.H, 1}, {circuit.S, 1}, {circuit.Sdg, 1}, {circuit.V, 1}, {circuit.Vdg, 1},
	{circuit.X, 1}, {circuit.Y, 1}, {circuit.Z, 1}, {circuit.SX, 1},
	{circuit.CX, 2}, {circuit.CY, 2}, {circuit.CZ, 2}, {circuit.SWAP, 2}, {circuit.ZZMax, 2},
}

func randomFrame(r *rand.Rand, qubits []circuit.Qubit, depth int) *Frame {
	f := NewFrame(qubits)
	for range depth {
		g := cliffordOps[r.IntN(len(cliffordOps))]
		a := r.IntN(len(qubits))
		args := []circuit.Qubit{qubits[a]}
		if g.arity == 2 {
			b := (a + 1 + r.IntN(len(qubits)-1)) % len(qubits)
			args = append(args, qubits[b])
		}
		if err := f.ApplyGateAtEnd(g.op, args...); err != nil {
			panic(err)
		}
	}
	return f
}

func TestFrame_SynthesiseRoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	for trial := range 50 {
		n := 2 + trial%4
		qubits := make([]circuit.Qubit, n)
		for i := range qubits {
			qubits[i] = circuit.Qubit(2 * i)
		}
		want := randomFrame(r, qubits, 30)

		got := NewFrame(qubits)
		for _, cmd := range want.Synthesise() {
			if err := got.ApplyGateAtEnd(cmd.Gate.Type, cmd.Qubits()...); err != nil {
				t.Fatalf("trial %d: replay %v: %v", trial, cmd, err)
			}
		}
		if !got.Equal(want) {
			t.Fatalf("trial %d: synthesised frame\n%v\nwant\n%v", trial, got, want)
		}
	}
}

func TestFrame_SynthesiseIdentity(t *testing.T) {
	f := NewFrame(qs(0, 1, 2))
	if cmds := f.Synthesise(); len(cmds) != 0 {
		t.Errorf("Synthesise(identity) = %v, want no commands", cmds)
	}
	if !f.IsIdentity() {
		t.Error("IsIdentity() = false for new frame")
	}
}

func TestFrame_Tableau(t *testing.T) {
	f := NewFrame([]circuit.Qubit{0, 1})
	if err := f.ApplyGateAtEnd(circuit.H, 0); err != nil {
		t.Fatal(err)
	}
	tab := f.Tableau()
	if tab.NRows() != 4 || tab.NQubits() != 2 {
		t.Fatalf("Tableau() is %dx%d, want 4x2", tab.NRows(), tab.NQubits())
	}
	row, _ := tab.Pauli(0)
	if got := row.String(); got != "+Z0" {
		t.Errorf("row 0 = %v, want +Z0", got)
	}
	if err := tab.GaussianForm(); err != nil {
		t.Fatal(err)
	}
	x, _ := f.XRow(0)
	if got := x.String(); got != "+Z0" {
		t.Errorf("frame changed through its tableau copy: XRow(0) = %v", got)
	}
}
