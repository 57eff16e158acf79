package expr

import (
	"math/cmplx"
	"testing"
)

func TestParseAndEval(t *testing.T) {
	cases := []struct {
		src  string
		x    complex128
		want complex128
	}{
		{"x^3-1", 2, cmplx.Pow(2, 3) - 1},
		{"x^2-1", complex(0, 1), cmplx.Pow(complex(0, 1), 2) - 1},
		{"2^3^2", 0, 512},
		{"-x", 3, -3},
		{"--x", 3, 3},
		{"sin(x)", 1, cmplx.Sin(1)},
		{"sqrt(x)", 4, cmplx.Sqrt(4)},
		{"(1+2)*3", 0, 9},
		{"1/2*x", 4, 2},
		{"pi", 0, complex(3.14159265358979323846, 0)},
		{"e", 0, complex(2.71828182845904523536, 0)},
		{"i*i", 0, -1},
		{"x^0.5", 9, 3},
	}
	for _, c := range cases {
		tree, err := Parse(c.src)
		if err != nil {
			t.Fatalf("Parse(%q): %v", c.src, err)
		}
		got := Eval(tree, c.x)
		if cmplx.Abs(got-c.want) > 1e-9 {
			t.Errorf("Parse(%q) at x=%v = %v, want %v", c.src, c.x, got, c.want)
		}
	}
}

func TestParseRejectsNonLiteralExponent(t *testing.T) {
	if _, err := Parse("x^x"); err == nil {
		t.Fatal("expected error for non-literal exponent")
	}
}

func TestParseRejectsUnknownIdentifier(t *testing.T) {
	if _, err := Parse("sq(x)"); err == nil {
		t.Fatal("expected error for abbreviated/unknown identifier")
	}
}

func TestParseRejectsUnbalancedParens(t *testing.T) {
	if _, err := Parse("(x+1"); err == nil {
		t.Fatal("expected error for unbalanced parens")
	}
	if _, err := Parse("x+1)"); err == nil {
		t.Fatal("expected error for trailing ')'")
	}
}

func TestParseRejectsTrailingGarbage(t *testing.T) {
	if _, err := Parse("x 1"); err == nil {
		t.Fatal("expected error for trailing garbage")
	}
}
