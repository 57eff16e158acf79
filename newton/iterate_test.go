package newton

import (
	"math/cmplx"
	"testing"
)

func TestIterateConvergesOnCubicRoot(t *testing.T) {
	f := func(z complex128) complex128 { return z*z*z - 1 }
	fp := func(z complex128) complex128 { return 3 * z * z }

	z, n, ok := Iterate(f, fp, complex(1.2, 0.6))
	if !ok {
		t.Fatalf("expected convergence within %d iterations", RootIter)
	}
	if n >= RootIter {
		t.Errorf("n = %d, want < %d", n, RootIter)
	}
	if cmplx.Abs(f(z)) >= Precision {
		t.Errorf("|f(z)| = %v, want < %v", cmplx.Abs(f(z)), Precision)
	}
}

func TestIterateFailsAtCriticalPoint(t *testing.T) {
	f := func(z complex128) complex128 { return z*z*z - 1 }
	fp := func(z complex128) complex128 { return 3 * z * z }

	_, n, ok := Iterate(f, fp, 0)
	if ok {
		t.Fatal("expected non-convergence from the critical point z=0")
	}
	if n != 0 {
		t.Errorf("n = %d, want 0 (derivative vanishes immediately)", n)
	}
}
