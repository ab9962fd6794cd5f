package circuit

import (
	"errors"
	"strings"
	"testing"

	"github.com/matzehuels/paulitower/pkg/angle"
)

const bellQASM = `OPENQASM 2.0;
include "qelib1.inc";
// bell pair with a twist
qreg q[2];
creg c[2];
h q[0];
cx q[0],q[1];
rz(pi/4) q[1]; t q[0];
barrier q;
measure q[0] -> c[0];
measure q[1] -> c[1];
`

func TestParseQASM(t *testing.T) {
	c, err := ParseQASMString(bellQASM)
	if err != nil {
		t.Fatalf("ParseQASM() error: %v", err)
	}
	if c.NumQubits() != 2 || c.NumBits() != 2 {
		t.Fatalf("registers = (%d, %d), want (2, 2)", c.NumQubits(), c.NumBits())
	}
	want := []OpType{H, CX, Rz, T, Barrier, Measure, Measure}
	cmds := c.Commands()
	if len(cmds) != len(want) {
		t.Fatalf("len(Commands()) = %d, want %d", len(cmds), len(want))
	}
	for i, op := range want {
		if cmds[i].Gate.Type != op {
			t.Errorf("command %d = %v, want %v", i, cmds[i].Gate.Type, op)
		}
	}
	if !cmds[2].Gate.Param(0).Equal(angle.Const(0.25)) {
		t.Errorf("rz param = %s, want 0.25", cmds[2].Gate.Param(0))
	}
	if got := len(cmds[4].Args); got != 2 {
		t.Errorf("barrier args = %d, want 2", got)
	}
}

func TestParseQASM_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unknown gate", "qreg q[1];\nccx q[0];"},
		{"undeclared register", "qreg q[1];\nh r[0];"},
		{"out of range", "qreg q[1];\nh q[1];"},
		{"bad angle", "qreg q[1];\nrz(pi/) q[0];"},
		{"second qreg", "qreg q[1];\nqreg r[1];"},
		{"gate definition", "qreg q[1];\ngate foo a { h a; }"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseQASMString(tt.src)
			if !errors.Is(err, ErrParse) {
				t.Fatalf("ParseQASM() error = %v, want ErrParse", err)
			}
			if !strings.Contains(err.Error(), "line 2") {
				t.Errorf("error %q does not name line 2", err)
			}
		})
	}
}

func TestQASM_RoundTrip(t *testing.T) {
	c := New(3, 1)
	_ = c.AddOp(H, 0)
	_ = c.AddOp(CX, 0, 1)
	_ = c.AddRotation(Rz, angle.Symbol("theta"), 1)
	_ = c.AddRotation(ZZPhase, angle.Const(0.125), 1, 2)
	_ = c.AddRotation(Rx, angle.Const(-1.5), 2)
	_ = c.AddOp(Sdg, 2)
	_ = c.AddMeasure(2, 0)

	got, err := ParseQASMString(QASM(c))
	if err != nil {
		t.Fatalf("ParseQASM(QASM()) error: %v\n%s", err, QASM(c))
	}
	if !got.Equal(c) {
		t.Errorf("round trip mismatch:\n got %v\nwant %v", got, c)
	}
}

func TestQASM_Decompositions(t *testing.T) {
	c := New(3, 0)
	_ = c.Add(NewGate(PhasedX, angle.Const(0.5), angle.Const(0.25)), Q(0))
	_ = c.Add(NewGate(PhaseGadget, angle.Const(0.3)), Qubits(0, 1, 2)...)
	_ = c.AddOp(ZZMax, 0, 1)
	_ = c.AddRotation(Phase, angle.Const(1))

	got, err := ParseQASMString(QASM(c))
	if err != nil {
		t.Fatalf("ParseQASM(QASM()) error: %v", err)
	}
	want := []OpType{Rz, Rx, Rz, CX, CX, Rz, CX, CX, ZZPhase}
	cmds := got.Commands()
	if len(cmds) != len(want) {
		t.Fatalf("len(Commands()) = %d, want %d\n%s", len(cmds), len(want), QASM(c))
	}
	for i, op := range want {
		if cmds[i].Gate.Type != op {
			t.Errorf("command %d = %v, want %v", i, cmds[i].Gate.Type, op)
		}
	}
	if !cmds[0].Gate.Param(0).Equal(angle.Const(-0.25)) {
		t.Errorf("leading rz = %s, want -0.25", cmds[0].Gate.Param(0))
	}
}
