package rootreg

import (
	"math/cmplx"
	"testing"

	"github.com/nfractal/newtongen/newton"
)

func cubicFns() (newton.Fn, newton.Fn) {
	f := func(z complex128) complex128 { return z*z*z - 1 }
	fp := func(z complex128) complex128 { return 3 * z * z }
	return f, fp
}

func TestDiscoverFindsThreeCubicRoots(t *testing.T) {
	f, fp := cubicFns()
	vp := newton.DefaultViewport()
	reg := Discover(f, fp, vp, 80, 80)

	if reg.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", reg.Len())
	}

	want := []complex128{1, complex(-0.5, 0.8660254037844387), complex(-0.5, -0.8660254037844387)}
	for _, w := range want {
		if _, ok := reg.Index(w); !ok {
			t.Errorf("no registered root within RootPrecision of %v", w)
		}
	}
}

func TestDiscoverOrderIsPrimaryKeySorted(t *testing.T) {
	f, fp := cubicFns()
	vp := newton.DefaultViewport()
	reg := Discover(f, fp, vp, 80, 80)

	for i := 1; i < reg.Len(); i++ {
		a, b := reg.At(i-1), reg.At(i)
		if real(a) > real(b) || (real(a) == real(b) && imag(a) > imag(b)) {
			t.Errorf("roots not sorted by primary key at index %d: %v then %v", i, a, b)
		}
	}
}

func TestRegistryIndexRejectsFarPoint(t *testing.T) {
	f, fp := cubicFns()
	vp := newton.DefaultViewport()
	reg := Discover(f, fp, vp, 40, 40)

	if _, ok := reg.Index(complex(100, 100)); ok {
		t.Error("expected no match for a point far from every root")
	}
}

func TestDedupFoldsNearbyPoints(t *testing.T) {
	pts := []complex128{
		complex(1, 0),
		complex(1+1e-7, 1e-7),
		complex(-1, -1),
	}
	out := dedup(pts, primaryOrder)
	if len(out) != 2 {
		t.Fatalf("dedup produced %d points, want 2: %v", len(out), out)
	}
	if cmplx.Abs(out[0]-complex(-1, -1)) > 1e-9 {
		t.Errorf("out[0] = %v, want (-1,-1)", out[0])
	}
}
