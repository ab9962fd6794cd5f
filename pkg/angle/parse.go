package angle

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrSyntax is returned when an angle expression cannot be parsed.
var ErrSyntax = errors.New("angle: invalid expression")

// Unit selects how plain numbers in a parsed expression are interpreted.
type Unit int

const (
	// HalfTurns reads plain numbers as half-turns (1 = π radians).
	HalfTurns Unit = iota
	// Radians reads plain numbers as radians, as OpenQASM does.
	Radians
)

// termRegex matches one summand: an optional coefficient, an optional atom
// (pi or an identifier) and an optional divisor. Examples: "0.25", "pi/4",
// "3*pi/2", "2pi", "theta", "0.5*theta", "a/2", "1e-3".
var termRegex = regexp.MustCompile(
	`^((?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)?\s*\*?\s*(pi|π|[A-Za-z_][A-Za-z0-9_]*)?(?:\s*/\s*(\d+\.?\d*))?$`)

// Parse reads an angle expression. "pi" always denotes one half-turn; plain
// numbers are interpreted according to u. Symbol coefficients are taken
// as given in half-turns regardless of u.
func Parse(s string, u Unit) (Expr, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero, fmt.Errorf("%w: empty", ErrSyntax)
	}
	out := Zero
	for _, t := range splitTerms(s) {
		e, err := parseTerm(t.body, u)
		if err != nil {
			return Zero, fmt.Errorf("%w: %q", err, s)
		}
		if t.negative {
			e = e.Neg()
		}
		out = out.Add(e)
	}
	return out, nil
}

// MustParse is like [Parse] but panics on error. It is intended for tests
// and package-level literals.
func MustParse(s string, u Unit) Expr {
	e, err := Parse(s, u)
	if err != nil {
		panic(err)
	}
	return e
}

type signedTerm struct {
	negative bool
	body     string
}

// splitTerms splits s at top-level '+' and '-' signs. Signs that belong to a
// float exponent ("1e-3") are not split points.
func splitTerms(s string) []signedTerm {
	var (
		terms []signedTerm
		cur   strings.Builder
		neg   bool
	)
	flush := func() {
		terms = append(terms, signedTerm{negative: neg, body: strings.TrimSpace(cur.String())})
		cur.Reset()
	}
	for i, r := range s {
		if (r == '+' || r == '-') && !isExponentSign(s, i) {
			if strings.TrimSpace(cur.String()) != "" {
				flush()
				neg = false
			}
			if r == '-' {
				neg = !neg
			}
			continue
		}
		cur.WriteRune(r)
	}
	flush()
	return terms
}

func isExponentSign(s string, i int) bool {
	if i < 2 || (s[i-1] != 'e' && s[i-1] != 'E') {
		return false
	}
	c := s[i-2]
	return (c >= '0' && c <= '9') || c == '.'
}

func parseTerm(body string, u Unit) (Expr, error) {
	m := termRegex.FindStringSubmatch(body)
	if m == nil || (m[1] == "" && m[2] == "") {
		return Zero, ErrSyntax
	}
	coeffStr, atom, denomStr := m[1], m[2], m[3]

	coeff := decimal.NewFromInt(1)
	if coeffStr != "" {
		c, err := decimal.NewFromString(coeffStr)
		if err != nil {
			return Zero, ErrSyntax
		}
		coeff = c
	}
	if denomStr != "" {
		d, err := decimal.NewFromString(denomStr)
		if err != nil || d.IsZero() {
			return Zero, ErrSyntax
		}
		coeff = coeff.Div(d)
	}

	switch {
	case atom == "pi" || atom == "π":
		return FromDecimal(coeff), nil
	case atom != "":
		return Symbol(atom).Scale(coeff), nil
	case u == Radians:
		return FromDecimal(decimal.NewFromFloat(coeff.InexactFloat64() / math.Pi)), nil
	default:
		return FromDecimal(coeff), nil
	}
}

// FormatRadians renders e in the radian form OpenQASM expects: the constant
// as a multiple of pi, symbols unscaled, e.g. "0.25*pi" or "theta + 0.5*pi".
// Parse with [Radians] reads the result back to an equal expression.
func FormatRadians(e Expr) string {
	var parts []string
	for _, s := range e.Symbols() {
		parts = append(parts, formatTerm(e.terms[s], s))
	}
	switch {
	case !e.constant.IsZero():
		parts = append(parts, e.constant.String()+"*pi")
	case len(parts) == 0:
		parts = append(parts, "0")
	}
	return joinSigned(parts)
}
