package angle

import (
	"maps"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Epsilon is the tolerance used when classifying constants that arrived as
// floats (for example radians that were divided by π).
const Epsilon = 1e-11

var (
	two  = decimal.NewFromInt(2)
	four = decimal.NewFromInt(4)
	eps  = decimal.NewFromFloat(Epsilon)
)

// Expr is a rotation angle in half-turns: a constant plus a linear
// combination of symbols. The zero value is the angle 0 and is ready to use.
//
// Expr is an immutable value. All arithmetic returns a new Expr and never
// modifies the receiver or its arguments.
type Expr struct {
	constant decimal.Decimal
	terms    map[string]decimal.Decimal // never holds zero coefficients
}

// Zero is the zero angle.
var Zero = Expr{}

// Const returns a constant angle of f half-turns.
func Const(f float64) Expr {
	return Expr{constant: decimal.NewFromFloat(f)}
}

// FromDecimal returns a constant angle of d half-turns.
func FromDecimal(d decimal.Decimal) Expr {
	return Expr{constant: d}
}

// Ratio returns the exact constant angle num/den half-turns.
// It panics if den is zero.
func Ratio(num, den int64) Expr {
	if den == 0 {
		panic("angle: zero denominator")
	}
	return Expr{constant: decimal.NewFromInt(num).Div(decimal.NewFromInt(den))}
}

// Symbol returns the angle consisting of a single free symbol with
// coefficient one. An empty name yields the zero angle.
func Symbol(name string) Expr {
	if name == "" {
		return Zero
	}
	return Expr{terms: map[string]decimal.Decimal{name: decimal.NewFromInt(1)}}
}

// Constant returns the constant part of the expression.
func (e Expr) Constant() decimal.Decimal { return e.constant }

// IsSymbolic reports whether the expression has any free symbol.
func (e Expr) IsSymbolic() bool { return len(e.terms) > 0 }

// Symbols returns the free symbols in sorted order.
func (e Expr) Symbols() []string {
	return slices.Sorted(maps.Keys(e.terms))
}

// Coefficient returns the coefficient of the named symbol (zero if absent).
func (e Expr) Coefficient(symbol string) decimal.Decimal {
	return e.terms[symbol]
}

// Float returns the constant value as a float64. The second result is false
// when the expression is symbolic, in which case the float is meaningless.
func (e Expr) Float() (float64, bool) {
	if e.IsSymbolic() {
		return 0, false
	}
	return e.constant.InexactFloat64(), true
}

// Add returns e + o.
func (e Expr) Add(o Expr) Expr {
	out := Expr{constant: e.constant.Add(o.constant)}
	out.terms = combine(e.terms, o.terms, false)
	return out
}

// Sub returns e - o.
func (e Expr) Sub(o Expr) Expr {
	out := Expr{constant: e.constant.Sub(o.constant)}
	out.terms = combine(e.terms, o.terms, true)
	return out
}

// Neg returns -e.
func (e Expr) Neg() Expr {
	return Zero.Sub(e)
}

// Scale returns k·e.
func (e Expr) Scale(k decimal.Decimal) Expr {
	if k.IsZero() {
		return Zero
	}
	out := Expr{constant: e.constant.Mul(k)}
	if len(e.terms) > 0 {
		out.terms = make(map[string]decimal.Decimal, len(e.terms))
		for s, c := range e.terms {
			out.terms[s] = c.Mul(k)
		}
	}
	return out
}

// Equal reports whether two expressions are identical term by term.
func (e Expr) Equal(o Expr) bool {
	if !e.constant.Equal(o.constant) || len(e.terms) != len(o.terms) {
		return false
	}
	for s, c := range e.terms {
		oc, ok := o.terms[s]
		if !ok || !c.Equal(oc) {
			return false
		}
	}
	return true
}

// String formats the expression as a sum, symbols first in sorted order and
// the constant last, e.g. "theta + 0.25", "-a - 0.5" or "0".
func (e Expr) String() string {
	var parts []string
	for _, s := range e.Symbols() {
		parts = append(parts, formatTerm(e.terms[s], s))
	}
	if !e.constant.IsZero() || len(parts) == 0 {
		parts = append(parts, e.constant.String())
	}
	return joinSigned(parts)
}

// EquivClifford reports whether e is a constant within [Epsilon] of an
// integer multiple of a quarter turn (0.5 half-turns). On success it returns
// the number of quarter turns modulo 4.
func EquivClifford(e Expr) (uint, bool) {
	if e.IsSymbolic() {
		return 0, false
	}
	q := e.constant.Mul(two)
	r := q.Round(0)
	if q.Sub(r).Abs().GreaterThan(eps) {
		return 0, false
	}
	k := r.Mod(four).IntPart()
	if k < 0 {
		k += 4
	}
	return uint(k), true
}

// EquivZero reports whether e is a constant within [Epsilon] of an integer
// multiple of modulus half-turns. A modulus of 2 identifies rotations that
// are the identity up to global phase; 4 identifies exact identities.
func EquivZero(e Expr, modulus int64) bool {
	if e.IsSymbolic() {
		return false
	}
	if modulus <= 0 {
		return e.constant.Abs().LessThanOrEqual(eps)
	}
	m := decimal.NewFromInt(modulus)
	r := e.constant.Mod(m).Abs()
	return r.LessThanOrEqual(eps) || m.Sub(r).LessThanOrEqual(eps)
}

func combine(a, b map[string]decimal.Decimal, subtract bool) map[string]decimal.Decimal {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]decimal.Decimal, len(a)+len(b))
	maps.Copy(out, a)
	for s, c := range b {
		if subtract {
			c = c.Neg()
		}
		sum := out[s].Add(c)
		if sum.IsZero() {
			delete(out, s)
			continue
		}
		out[s] = sum
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func formatTerm(coeff decimal.Decimal, symbol string) string {
	switch {
	case coeff.Equal(decimal.NewFromInt(1)):
		return symbol
	case coeff.Equal(decimal.NewFromInt(-1)):
		return "-" + symbol
	default:
		return coeff.String() + "*" + symbol
	}
}

func joinSigned(parts []string) string {
	var b strings.Builder
	for i, p := range parts {
		switch {
		case i == 0:
			b.WriteString(p)
		case strings.HasPrefix(p, "-"):
			b.WriteString(" - ")
			b.WriteString(p[1:])
		default:
			b.WriteString(" + ")
			b.WriteString(p)
		}
	}
	return b.String()
}
