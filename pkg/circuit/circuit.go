package circuit

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/matzehuels/paulitower/pkg/angle"
)

var (
	// ErrUnknownOp is returned when an op type name is not recognised.
	ErrUnknownOp = errors.New("unknown op type")

	// ErrArity is returned by [Circuit.Add] when the number of qubit, bit or
	// parameter arguments does not match the op type.
	ErrArity = errors.New("wrong number of arguments")

	// ErrUnknownUnit is returned by [Circuit.Add] when an argument refers to
	// a qubit or bit outside the circuit's registers.
	ErrUnknownUnit = errors.New("unknown unit")

	// ErrRepeatedUnit is returned by [Circuit.Add] when the same wire appears
	// twice in one command.
	ErrRepeatedUnit = errors.New("repeated unit in command")

	// ErrParse is returned by [ParseQASM] for malformed input. The wrapping
	// error names the offending line.
	ErrParse = errors.New("invalid qasm")
)

// Gate is an op type together with its angle parameters.
type Gate struct {
	Type   OpType
	Params []angle.Expr
}

// NewGate returns a gate of type t with the given parameters.
func NewGate(t OpType, params ...angle.Expr) Gate {
	return Gate{Type: t, Params: params}
}

// Param returns parameter i, or zero when absent.
func (g Gate) Param(i int) angle.Expr {
	if i < len(g.Params) {
		return g.Params[i]
	}
	return angle.Zero
}

func (g Gate) String() string {
	if len(g.Params) == 0 {
		return g.Type.String()
	}
	ps := make([]string, len(g.Params))
	for i, p := range g.Params {
		ps[i] = p.String()
	}
	return g.Type.String() + "(" + strings.Join(ps, ", ") + ")"
}

// Command is one gate applied to an ordered list of wires. Quantum
// arguments come first, followed by classical ones.
type Command struct {
	Gate Gate
	Args []Unit
}

// Qubits returns the quantum arguments in order.
func (c Command) Qubits() []Qubit {
	var out []Qubit
	for _, u := range c.Args {
		if u.IsQubit() {
			out = append(out, u.Qubit())
		}
	}
	return out
}

// Bits returns the classical arguments in order.
func (c Command) Bits() []Bit {
	var out []Bit
	for _, u := range c.Args {
		if !u.IsQubit() {
			out = append(out, u.Bit())
		}
	}
	return out
}

// Touches reports whether the command acts on wire u.
func (c Command) Touches(u Unit) bool {
	return slices.Contains(c.Args, u)
}

func (c Command) String() string {
	args := make([]string, len(c.Args))
	for i, u := range c.Args {
		args[i] = u.String()
	}
	return c.Gate.String() + " " + strings.Join(args, ", ")
}

// Circuit is an ordered list of commands over a fixed number of qubits and
// classical bits. The zero value is an empty circuit with no wires.
type Circuit struct {
	nQubits  int
	nBits    int
	commands []Command
}

// New returns an empty circuit with the given register sizes.
func New(qubits, bits int) *Circuit {
	return &Circuit{nQubits: qubits, nBits: bits}
}

// NumQubits returns the size of the quantum register.
func (c *Circuit) NumQubits() int { return c.nQubits }

// NumBits returns the size of the classical register.
func (c *Circuit) NumBits() int { return c.nBits }

// Len returns the number of commands.
func (c *Circuit) Len() int { return len(c.commands) }

// Commands returns the commands in order. The slice is owned by the circuit
// and must not be modified; use [Circuit.SetCommands] to replace it.
func (c *Circuit) Commands() []Command { return c.commands }

// SetCommands replaces the circuit's command list after validating every
// command against the registers.
func (c *Circuit) SetCommands(cmds []Command) error {
	for i, cmd := range cmds {
		if err := c.check(cmd); err != nil {
			return fmt.Errorf("command %d: %w", i, err)
		}
	}
	c.commands = cmds
	return nil
}

// Add appends a command after validating its arguments.
func (c *Circuit) Add(g Gate, args ...Unit) error {
	cmd := Command{Gate: g, Args: args}
	if err := c.check(cmd); err != nil {
		return err
	}
	c.commands = append(c.commands, cmd)
	return nil
}

// AddOp appends a parameterless gate on the given qubits.
func (c *Circuit) AddOp(t OpType, qubits ...int) error {
	return c.Add(NewGate(t), Qubits(qubits...)...)
}

// AddRotation appends a gate with one angle parameter on the given qubits.
func (c *Circuit) AddRotation(t OpType, a angle.Expr, qubits ...int) error {
	return c.Add(NewGate(t, a), Qubits(qubits...)...)
}

// AddMeasure appends a measurement of qubit q into bit b.
func (c *Circuit) AddMeasure(q, b int) error {
	return c.Add(NewGate(Measure), Q(q), B(b))
}

// Clone returns a deep copy.
func (c *Circuit) Clone() *Circuit {
	out := &Circuit{nQubits: c.nQubits, nBits: c.nBits, commands: make([]Command, len(c.commands))}
	for i, cmd := range c.commands {
		out.commands[i] = Command{
			Gate: Gate{Type: cmd.Gate.Type, Params: slices.Clone(cmd.Gate.Params)},
			Args: slices.Clone(cmd.Args),
		}
	}
	return out
}

// Restore resets c to a copy of from.
func (c *Circuit) Restore(from *Circuit) {
	snap := from.Clone()
	c.nQubits, c.nBits, c.commands = snap.nQubits, snap.nBits, snap.commands
}

// GateCount returns the number of commands, excluding barriers.
func (c *Circuit) GateCount() int {
	n := 0
	for _, cmd := range c.commands {
		if cmd.Gate.Type != Barrier {
			n++
		}
	}
	return n
}

// TwoQubitCount returns the number of gates acting on two or more qubits,
// excluding barriers.
func (c *Circuit) TwoQubitCount() int {
	n := 0
	for _, cmd := range c.commands {
		if cmd.Gate.Type != Barrier && len(cmd.Qubits()) >= 2 {
			n++
		}
	}
	return n
}

// Depth returns the length of the longest wire-ordered chain of commands.
// Barriers synchronise their wires without adding depth; global phase
// commands have no wires and add nothing.
func (c *Circuit) Depth() int {
	level := make(map[Unit]int)
	depth := 0
	for _, cmd := range c.commands {
		d := 0
		for _, u := range cmd.Args {
			d = max(d, level[u])
		}
		if cmd.Gate.Type != Barrier && len(cmd.Args) > 0 {
			d++
		}
		for _, u := range cmd.Args {
			level[u] = d
		}
		depth = max(depth, d)
	}
	return depth
}

// Equal reports whether two circuits have the same registers and the same
// command sequence, comparing angles exactly.
func (c *Circuit) Equal(o *Circuit) bool {
	if c.nQubits != o.nQubits || c.nBits != o.nBits || len(c.commands) != len(o.commands) {
		return false
	}
	for i, a := range c.commands {
		b := o.commands[i]
		if a.Gate.Type != b.Gate.Type || !slices.Equal(a.Args, b.Args) {
			return false
		}
		if !slices.EqualFunc(a.Gate.Params, b.Gate.Params, angle.Expr.Equal) {
			return false
		}
	}
	return true
}

func (c *Circuit) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "circuit(%d qubits, %d bits)\n", c.nQubits, c.nBits)
	for _, cmd := range c.commands {
		b.WriteString("  ")
		b.WriteString(cmd.String())
		b.WriteByte('\n')
	}
	return b.String()
}

func (c *Circuit) check(cmd Command) error {
	t := cmd.Gate.Type
	if !t.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownOp, t)
	}
	if len(cmd.Gate.Params) != t.NumParams() {
		return fmt.Errorf("%w: %s takes %d parameters, got %d", ErrArity, t, t.NumParams(), len(cmd.Gate.Params))
	}
	var nq, nb int
	seen := make(map[Unit]bool, len(cmd.Args))
	for _, u := range cmd.Args {
		switch {
		case u.Kind == QuantumUnit:
			if nb > 0 {
				return fmt.Errorf("%w: %s has a qubit after a bit", ErrArity, t)
			}
			if u.Index < 0 || u.Index >= c.nQubits {
				return fmt.Errorf("%w: %s", ErrUnknownUnit, u)
			}
			nq++
		default:
			if u.Index < 0 || u.Index >= c.nBits {
				return fmt.Errorf("%w: %s", ErrUnknownUnit, u)
			}
			nb++
		}
		if seen[u] {
			return fmt.Errorf("%w: %s in %s", ErrRepeatedUnit, u, t)
		}
		seen[u] = true
	}
	want := t.NumQubits()
	if (want == Variadic && nq == 0) || (want != Variadic && nq != want) || nb != t.NumBits() {
		return fmt.Errorf("%w: %s on %d qubits and %d bits", ErrArity, t, nq, nb)
	}
	return nil
}
