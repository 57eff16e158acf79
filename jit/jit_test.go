package jit

import (
	"math/cmplx"
	"os/exec"
	"testing"

	"github.com/nfractal/newtongen/expr"
)

func requireCC(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("cc"); err != nil {
		t.Skip("cc not available")
	}
}

func TestCompileAndEvaluate(t *testing.T) {
	requireCC(t)

	e, err := expr.Parse("x^3-1")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	d := expr.Diff(e)

	m, err := Compile(expr.EmitC(e, d))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	defer m.Close()

	z := complex(1.5, -0.5)
	got := m.Func(z)
	want := expr.Eval(e, z)
	if cmplx.Abs(got-want) > 1e-9 {
		t.Errorf("Func(%v) = %v, want %v", z, got, want)
	}

	gotD := m.Deriv(z)
	wantD := expr.Eval(d, z)
	if cmplx.Abs(gotD-wantD) > 1e-9 {
		t.Errorf("Deriv(%v) = %v, want %v", z, gotD, wantD)
	}
}

func TestCompileRejectsBadSource(t *testing.T) {
	requireCC(t)

	_, err := Compile("this is not valid C")
	if err == nil {
		t.Fatal("expected a compile error")
	}
}
