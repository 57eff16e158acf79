// Package rootreg discovers the distinct attractors of a function
// within a viewport and assigns each one a stable palette index
// (spec.md §4.5).
package rootreg

import (
	"math/cmplx"
	"runtime"
	"sort"
	"sync"

	"github.com/golang/glog"
	"github.com/nfractal/newtongen/newton"
)

// Registry is an ordered, deduplicated list of discovered roots.
// Insertion order is the palette index of each root.
type Registry struct {
	roots []complex128
}

// Len returns the number of distinct roots.
func (r *Registry) Len() int { return len(r.roots) }

// At returns the root at the given palette index.
func (r *Registry) At(i int) complex128 { return r.roots[i] }

// Index returns the palette index of the root within RootPrecision of
// z, and true, or (0, false) if no root matches.
func (r *Registry) Index(z complex128) (int, bool) {
	best := -1
	bestDist := newton.RootPrecision
	for i, root := range r.roots {
		d := cmplx.Abs(z - root)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

// Discover runs Newton's method from every pixel center in an H×W
// grid, in parallel over rows, and folds the resulting endpoints into
// a deduplicated Registry (spec.md §4.5, steps 1-4).
func Discover(f, fPrime newton.Fn, vp newton.Viewport, width, height int) *Registry {
	rows := make([][]complex128, height)

	var wg sync.WaitGroup
	sem := make(chan struct{}, runtime.GOMAXPROCS(0))
	for i := 0; i < height; i++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			rows[i] = discoverRow(f, fPrime, vp, width, height, i)
		}(i)
	}
	wg.Wait()

	var all []complex128
	for _, row := range rows {
		all = append(all, row...)
	}

	all = dedup(all, primaryOrder)
	all = dedup(all, secondaryOrder)
	sort.Slice(all, func(i, j int) bool { return primaryOrder(all[i], all[j]) })

	glog.V(1).Infof("rootreg: discovered %d distinct roots", len(all))
	return &Registry{roots: all}
}

// discoverRow seeds Newton's method at every pixel center of row i and
// returns the row-local deduplicated set of convergence endpoints.
func discoverRow(f, fPrime newton.Fn, vp newton.Viewport, width, height, i int) []complex128 {
	var endpoints []complex128
	for j := 0; j < width; j++ {
		z0 := vp.Point(i, j, width, height)
		z, _, ok := newton.Iterate(f, fPrime, z0)
		if !ok || cmplx.IsNaN(z) {
			continue
		}
		endpoints = append(endpoints, z)
	}
	return dedup(endpoints, primaryOrder)
}

// primaryOrder sorts by real part, then imaginary part.
func primaryOrder(a, b complex128) bool {
	if real(a) != real(b) {
		return real(a) < real(b)
	}
	return imag(a) < imag(b)
}

// secondaryOrder sorts by imaginary part, then real part — the
// inverse-axis pass that catches clusters a single lexicographic sort
// would project apart (spec.md §4.5, step 3).
func secondaryOrder(a, b complex128) bool {
	if imag(a) != imag(b) {
		return imag(a) < imag(b)
	}
	return real(a) < real(b)
}

// dedup sorts points by less and folds neighbors within RootPrecision
// into the representative visited first in sort order.
func dedup(points []complex128, less func(a, b complex128) bool) []complex128 {
	if len(points) == 0 {
		return nil
	}
	pts := make([]complex128, len(points))
	copy(pts, points)
	sort.Slice(pts, func(i, j int) bool { return less(pts[i], pts[j]) })

	out := pts[:0:0]
	out = append(out, pts[0])
	for _, p := range pts[1:] {
		if cmplx.Abs(p-out[len(out)-1]) < newton.RootPrecision {
			continue
		}
		out = append(out, p)
	}
	return out
}
