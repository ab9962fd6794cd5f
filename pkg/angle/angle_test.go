package angle

import (
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func TestExpr_ArithmeticIsExact(t *testing.T) {
	e := Const(0.1).Add(Const(0.2)).Sub(Const(0.3))
	if !e.Constant().IsZero() {
		t.Errorf("0.1+0.2-0.3 = %s, want 0", e)
	}
	if !EquivZero(e, 2) {
		t.Error("EquivZero(0.1+0.2-0.3) = false, want true")
	}
}

func TestExpr_SymbolsCancel(t *testing.T) {
	a := Symbol("a").Add(Const(0.25))
	b := a.Sub(Symbol("a"))
	if b.IsSymbolic() {
		t.Errorf("(a+0.25)-a is symbolic: %s", b)
	}
	if got := b.String(); got != "0.25" {
		t.Errorf("String() = %q, want %q", got, "0.25")
	}
}

func TestExpr_String(t *testing.T) {
	tests := []struct {
		name string
		e    Expr
		want string
	}{
		{"zero", Zero, "0"},
		{"constant", Const(0.25), "0.25"},
		{"negative constant", Const(-1.5), "-1.5"},
		{"symbol", Symbol("theta"), "theta"},
		{"negated symbol", Symbol("b").Neg(), "-b"},
		{"symbol plus constant", Symbol("a").Add(Const(0.5)), "a + 0.5"},
		{"symbol minus constant", Symbol("a").Sub(Const(0.5)), "a - 0.5"},
		{"scaled", Symbol("a").Scale(decimal.NewFromFloat(0.5)), "0.5*a"},
		{"two symbols sorted", Symbol("z").Sub(Symbol("a")), "-a + z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.e.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExpr_Equal(t *testing.T) {
	a := Symbol("a").Add(Const(0.5))
	b := Const(0.5).Add(Symbol("a"))
	if !a.Equal(b) {
		t.Errorf("%s != %s", a, b)
	}
	if a.Equal(Symbol("a")) {
		t.Errorf("%s == a", a)
	}
	if Zero.Equal(Symbol("a")) {
		t.Error("0 == a")
	}
}

func TestExpr_ScaleByZero(t *testing.T) {
	e := Symbol("a").Scale(decimal.Zero)
	if !e.Equal(Zero) {
		t.Errorf("0*a = %s, want 0", e)
	}
}

func TestEquivClifford(t *testing.T) {
	tests := []struct {
		name   string
		e      Expr
		wantK  uint
		wantOK bool
	}{
		{"zero", Zero, 0, true},
		{"quarter turn", Const(0.5), 1, true},
		{"half turn", Const(1), 2, true},
		{"three quarters", Const(1.5), 3, true},
		{"full turn", Const(2), 0, true},
		{"negative quarter", Const(-0.5), 3, true},
		{"negative half", Const(-1), 2, true},
		{"large multiple", Const(7.5), 3, true},
		{"near quarter", Const(0.5 + 1e-13), 1, true},
		{"T angle", Const(0.25), 0, false},
		{"off by epsilon", Const(0.5 + 1e-6), 0, false},
		{"symbolic", Symbol("a"), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, ok := EquivClifford(tt.e)
			if ok != tt.wantOK || (ok && k != tt.wantK) {
				t.Errorf("EquivClifford(%s) = (%d, %v), want (%d, %v)", tt.e, k, ok, tt.wantK, tt.wantOK)
			}
		})
	}
}

func TestEquivZero(t *testing.T) {
	tests := []struct {
		e       Expr
		modulus int64
		want    bool
	}{
		{Zero, 2, true},
		{Const(2), 2, true},
		{Const(-2), 2, true},
		{Const(2), 4, false},
		{Const(4), 4, true},
		{Const(1.9999999999999), 2, true},
		{Const(1), 2, false},
		{Symbol("a"), 2, false},
		{Const(1e-13), 0, true},
	}
	for _, tt := range tests {
		if got := EquivZero(tt.e, tt.modulus); got != tt.want {
			t.Errorf("EquivZero(%s, %d) = %v, want %v", tt.e, tt.modulus, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		unit Unit
		want Expr
	}{
		{"0.25", HalfTurns, Const(0.25)},
		{"pi", Radians, Const(1)},
		{"pi/4", Radians, Const(0.25)},
		{"-pi/2", Radians, Const(-0.5)},
		{"3*pi/2", Radians, Const(1.5)},
		{"2pi", Radians, Const(2)},
		{"0.25*pi", Radians, Const(0.25)},
		{"theta", Radians, Symbol("theta")},
		{"0.5*theta", HalfTurns, Symbol("theta").Scale(decimal.NewFromFloat(0.5))},
		{"a/2", HalfTurns, Symbol("a").Scale(decimal.NewFromFloat(0.5))},
		{"a + pi/4", Radians, Symbol("a").Add(Const(0.25))},
		{"a - b", HalfTurns, Symbol("a").Sub(Symbol("b"))},
		{"--pi", Radians, Const(1)},
		{"1e-3", HalfTurns, Const(0.001)},
		{"pix", HalfTurns, Symbol("pix")},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in, tt.unit)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.in, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Radians(t *testing.T) {
	got, err := Parse("1.5707963267948966", Radians)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if k, ok := EquivClifford(got); !ok || k != 1 {
		t.Errorf("EquivClifford(Parse(pi/2 radians)) = (%d, %v), want (1, true)", k, ok)
	}
	f, _ := got.Float()
	if math.Abs(f-0.5) > 1e-12 {
		t.Errorf("Float() = %v, want 0.5", f)
	}
}

func TestParse_Errors(t *testing.T) {
	for _, in := range []string{"", "  ", "pi/0", "1.2.3", "*", "a b", "pi/"} {
		if _, err := Parse(in, Radians); !errors.Is(err, ErrSyntax) {
			t.Errorf("Parse(%q) error = %v, want ErrSyntax", in, err)
		}
	}
}

func TestFormatRadians_RoundTrip(t *testing.T) {
	for _, e := range []Expr{
		Zero,
		Const(0.25),
		Const(-1.5),
		Symbol("theta"),
		Symbol("a").Add(Const(0.5)),
		Symbol("a").Scale(decimal.NewFromFloat(-0.5)).Sub(Const(0.125)),
	} {
		s := FormatRadians(e)
		got, err := Parse(s, Radians)
		if err != nil {
			t.Fatalf("Parse(FormatRadians(%s) = %q) error: %v", e, s, err)
		}
		if !got.Equal(e) {
			t.Errorf("Parse(%q) = %s, want %s", s, got, e)
		}
	}
}
