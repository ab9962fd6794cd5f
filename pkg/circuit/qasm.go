package circuit

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/matzehuels/paulitower/pkg/angle"
)

// Pre-compiled regexps for OpenQASM 2.0 statements. Each statement has had
// its trailing ';' and surrounding whitespace removed.
var (
	headerRegex  = regexp.MustCompile(`^OPENQASM\s+2(?:\.0)?$`)
	includeRegex = regexp.MustCompile(`^include\s+"[^"]*"$`)
	qregRegex    = regexp.MustCompile(`^qreg\s+(\w+)\s*\[\s*(\d+)\s*\]$`)
	cregRegex    = regexp.MustCompile(`^creg\s+(\w+)\s*\[\s*(\d+)\s*\]$`)
	measureRegex = regexp.MustCompile(`^measure\s+(\w+)\s*\[\s*(\d+)\s*\]\s*->\s*(\w+)\s*\[\s*(\d+)\s*\]$`)
	gateRegex    = regexp.MustCompile(`^(\w+)\s*(?:\(([^)]*)\))?\s+(.+)$`)
	argRegex     = regexp.MustCompile(`^(\w+)\s*\[\s*(\d+)\s*\]$`)
)

// qasmNames maps OpenQASM gate names onto op types. p and u1 differ from rz
// only by a global phase.
var qasmNames = map[string]OpType{
	"id":      Noop,
	"x":       X,
	"y":       Y,
	"z":       Z,
	"s":       S,
	"sdg":     Sdg,
	"t":       T,
	"tdg":     Tdg,
	"v":       V,
	"vdg":     Vdg,
	"sx":      SX,
	"sxdg":    SXdg,
	"h":       H,
	"rx":      Rx,
	"ry":      Ry,
	"rz":      Rz,
	"p":       Rz,
	"u1":      Rz,
	"phasedx": PhasedX,
	"cx":      CX,
	"cy":      CY,
	"cz":      CZ,
	"swap":    SWAP,
	"rzz":     ZZPhase,
	"rxx":     XXPhase,
	"ryy":     YYPhase,
	"reset":   Reset,
	"barrier": Barrier,
}

type qasmParser struct {
	c    *Circuit
	qreg string
	creg string
	line int
}

// ParseQASM reads an OpenQASM 2.0 program with at most one quantum and one
// classical register. Gate definitions, conditionals and opaque gates are
// rejected. Angle parameters are read in radians.
func ParseQASM(r io.Reader) (*Circuit, error) {
	p := &qasmParser{c: &Circuit{}}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		p.line++
		text := sc.Text()
		if i := strings.Index(text, "//"); i >= 0 {
			text = text[:i]
		}
		for _, stmt := range strings.Split(text, ";") {
			stmt = strings.TrimSpace(stmt)
			if stmt == "" {
				continue
			}
			if err := p.statement(stmt); err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrParse, p.line, err)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return p.c, nil
}

// ParseQASMString is [ParseQASM] over a string.
func ParseQASMString(s string) (*Circuit, error) {
	return ParseQASM(strings.NewReader(s))
}

func (p *qasmParser) statement(stmt string) error {
	if headerRegex.MatchString(stmt) || includeRegex.MatchString(stmt) {
		return nil
	}
	if m := qregRegex.FindStringSubmatch(stmt); m != nil {
		if p.qreg != "" {
			return fmt.Errorf("second quantum register %q", m[1])
		}
		p.qreg = m[1]
		p.c.nQubits, _ = strconv.Atoi(m[2])
		return nil
	}
	if m := cregRegex.FindStringSubmatch(stmt); m != nil {
		if p.creg != "" {
			return fmt.Errorf("second classical register %q", m[1])
		}
		p.creg = m[1]
		p.c.nBits, _ = strconv.Atoi(m[2])
		return nil
	}
	if m := measureRegex.FindStringSubmatch(stmt); m != nil {
		if m[1] != p.qreg || m[3] != p.creg {
			return fmt.Errorf("unknown register in %q", stmt)
		}
		q, _ := strconv.Atoi(m[2])
		b, _ := strconv.Atoi(m[4])
		return p.c.Add(NewGate(Measure), Q(q), B(b))
	}
	m := gateRegex.FindStringSubmatch(stmt)
	if m == nil {
		return fmt.Errorf("unrecognised statement %q", stmt)
	}
	name := strings.ToLower(m[1])
	t, ok := qasmNames[name]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownOp, m[1])
	}
	args, err := p.args(m[3], t == Barrier)
	if err != nil {
		return err
	}
	var params []angle.Expr
	if strings.TrimSpace(m[2]) != "" {
		for _, s := range strings.Split(m[2], ",") {
			a, err := angle.Parse(s, angle.Radians)
			if err != nil {
				return err
			}
			params = append(params, a)
		}
	}
	return p.c.Add(Gate{Type: t, Params: params}, args...)
}

func (p *qasmParser) args(s string, wholeRegister bool) ([]Unit, error) {
	var out []Unit
	for _, a := range strings.Split(s, ",") {
		a = strings.TrimSpace(a)
		if wholeRegister && a == p.qreg && a != "" {
			for i := range p.c.nQubits {
				out = append(out, Q(i))
			}
			continue
		}
		m := argRegex.FindStringSubmatch(a)
		if m == nil || m[1] != p.qreg {
			return nil, fmt.Errorf("%w: %q", ErrUnknownUnit, a)
		}
		i, _ := strconv.Atoi(m[2])
		out = append(out, Q(i))
	}
	return out, nil
}

// WriteQASM writes c as an OpenQASM 2.0 program over registers q and c.
//
// Op types without a qelib1 counterpart are written as equivalent gate
// sequences: PhasedX as rz/rx/rz, ZZMax as rzz(pi/2), PhaseGadget as a CX
// ladder around rz. V and Vdg are written as sx and sxdg, and global phase
// commands are omitted, since both differ only by a global phase.
func WriteQASM(w io.Writer, c *Circuit) error {
	_, err := io.WriteString(w, QASM(c))
	return err
}

// QASM returns the OpenQASM 2.0 text for c.
func QASM(c *Circuit) string {
	var b strings.Builder
	b.WriteString("OPENQASM 2.0;\ninclude \"qelib1.inc\";\n\n")
	if c.nQubits > 0 {
		fmt.Fprintf(&b, "qreg q[%d];\n", c.nQubits)
	}
	if c.nBits > 0 {
		fmt.Fprintf(&b, "creg c[%d];\n", c.nBits)
	}
	for _, cmd := range c.commands {
		writeCommand(&b, cmd)
	}
	return b.String()
}

func writeCommand(b *strings.Builder, cmd Command) {
	qs := cmd.Qubits()
	g := cmd.Gate
	switch g.Type {
	case Phase:
		return
	case Measure:
		fmt.Fprintf(b, "measure %s -> %s;\n", qs[0], cmd.Bits()[0])
	case V:
		line(b, "sx", nil, qs...)
	case Vdg:
		line(b, "sxdg", nil, qs...)
	case PhasedX:
		beta := g.Param(1)
		line(b, "rz", []angle.Expr{beta.Neg()}, qs[0])
		line(b, "rx", []angle.Expr{g.Param(0)}, qs[0])
		line(b, "rz", []angle.Expr{beta}, qs[0])
	case ZZMax:
		line(b, "rzz", []angle.Expr{angle.Const(0.5)}, qs...)
	case PhaseGadget:
		for i := 0; i+1 < len(qs); i++ {
			line(b, "cx", nil, qs[i], qs[i+1])
		}
		line(b, "rz", g.Params, qs[len(qs)-1])
		for i := len(qs) - 2; i >= 0; i-- {
			line(b, "cx", nil, qs[i], qs[i+1])
		}
	default:
		line(b, qasmName(g.Type), g.Params, qs...)
	}
}

func line(b *strings.Builder, name string, params []angle.Expr, qs ...Qubit) {
	b.WriteString(name)
	if len(params) > 0 {
		b.WriteByte('(')
		for i, p := range params {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(angle.FormatRadians(p))
		}
		b.WriteByte(')')
	}
	for i, q := range qs {
		if i == 0 {
			b.WriteByte(' ')
		} else {
			b.WriteByte(',')
		}
		b.WriteString(q.String())
	}
	b.WriteString(";\n")
}

var opNames = func() map[OpType]string {
	m := make(map[OpType]string, len(qasmNames))
	for name, t := range qasmNames {
		if t == Rz && name != "rz" {
			continue
		}
		m[t] = name
	}
	return m
}()

func qasmName(t OpType) string {
	if n, ok := opNames[t]; ok {
		return n
	}
	return strings.ToLower(t.String())
}
