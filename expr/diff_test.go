package expr

import (
	"math/cmplx"
	"math/rand"
	"testing"
)

// centralDiff approximates f'(z) using a central-difference stencil.
func centralDiff(f func(complex128) complex128, z complex128) complex128 {
	const h = 1e-6
	return (f(z+h) - f(z-h)) / (2 * h)
}

// TestDiffMatchesCentralDifference is the §8 invariant #1: for smooth
// expressions, Diff composed with Eval agrees with a central-difference
// approximation at random points within |z|<2 to 1e-6 relative.
func TestDiffMatchesCentralDifference(t *testing.T) {
	sources := []string{
		"x^3-1",
		"x^2+2*x+1",
		"sin(x)*cos(x)",
		"exp(x)-x",
		"1/(x^2+1)",
		"sqrt(x^2+4)",
		"ln(x^2+2)",
	}

	rng := rand.New(rand.NewSource(1))
	for _, src := range sources {
		fn, err := Parse(src)
		if err != nil {
			t.Fatalf("Parse(%q): %v", src, err)
		}
		deriv := Diff(cloneTree(fn))
		f := func(z complex128) complex128 { return Eval(fn, z) }

		for i := 0; i < 10; i++ {
			r := rng.Float64() * 2
			theta := rng.Float64() * 2 * 3.141592653589793
			z := complex(r*cosApprox(theta), r*sinApprox(theta))

			got := Eval(deriv, z)
			want := centralDiff(f, z)
			if cmplx.Abs(want) < 1e-6 {
				continue // avoid dividing by ~0 below
			}
			relErr := cmplx.Abs(got-want) / cmplx.Abs(want)
			if relErr > 1e-6 {
				t.Errorf("%s: Diff at %v = %v, central-diff = %v, relErr=%v", src, z, got, want, relErr)
			}
		}
	}
}

func cosApprox(theta float64) float64 { return real(cmplx.Exp(complex(0, theta))) }
func sinApprox(theta float64) float64 { return imag(cmplx.Exp(complex(0, theta))) }

func TestDiffBasicRules(t *testing.T) {
	cases := []struct {
		src  string
		x    complex128
		want complex128
	}{
		{"x", 5, 1},
		{"3", 5, 0},
		{"x^3", 2, 12},   // 3x^2
		{"2*x", 9, 2},    // constant multiple
		{"x+x", 1, 2},    // sum rule
		{"1/x", 2, -0.25}, // -1/x^2
	}
	for _, c := range cases {
		tree, err := Parse(c.src)
		if err != nil {
			t.Fatalf("Parse(%q): %v", c.src, err)
		}
		d := Diff(tree)
		got := Eval(d, c.x)
		if cmplx.Abs(got-c.want) > 1e-9 {
			t.Errorf("Diff(%q) at %v = %v, want %v", c.src, c.x, got, c.want)
		}
	}
}
