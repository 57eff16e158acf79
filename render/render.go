// Package render implements the per-pixel Newton iteration kernel and
// assembles its output into a row-major RGB8 byte buffer (spec.md
// §4.7).
package render

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/golang/glog"
	"github.com/nfractal/newtongen/newton"
	"github.com/nfractal/newtongen/palette"
	"github.com/nfractal/newtongen/rootreg"
	"github.com/nfractal/newtongen/shadow"
)

// Mode selects the coloring strategy: Grayscale with an optional
// negated intensity, or Palette with registry-indexed colors blended
// toward a default under the shadow field. The two are mutually
// exclusive, and Negate is rejected together with Palette mode
// (spec.md §4.7).
type Mode struct {
	Palette bool
	Negate  bool

	Colors  []palette.RGB
	Default palette.RGB
	Alpha   float64 // shadow intensity; zero disables shadow blending
}

// Validate rejects the combinations spec.md §4.7 forbids.
func (m Mode) Validate() error {
	if m.Palette && m.Negate {
		return fmt.Errorf("render: negate is incompatible with a palette")
	}
	return nil
}

// Result is the assembled output of a render: the row-major RGB8
// pixel buffer plus the non-convergence accounting the kernel tracks
// alongside it.
type Result struct {
	Pixels []byte // width*height*3 bytes, row-major (R,G,B)

	NonConverged int
	TotalPixels  int
}

// Ratio returns the fraction of pixels whose Newton iteration failed
// to converge within newton.RootIter steps.
func (r Result) Ratio() float64 {
	if r.TotalPixels == 0 {
		return 0
	}
	return float64(r.NonConverged) / float64(r.TotalPixels)
}

// Render runs the Newton kernel over every pixel of a width×height
// image under vp, using f/fPrime as the compiled function and
// derivative. reg and field may be nil when mode is grayscale and
// shadow is disabled respectively. Rows are distributed across a
// worker pool; within a row, columns are processed sequentially and
// no mutable state is shared between workers (spec.md §4.7, §5).
func Render(f, fPrime newton.Fn, vp newton.Viewport, width, height int, mode Mode, reg *rootreg.Registry, field *shadow.Field) (Result, error) {
	if err := mode.Validate(); err != nil {
		return Result{}, err
	}

	pixels := make([]byte, width*height*3)
	nonConverged := make([]int, height)

	var wg sync.WaitGroup
	sem := make(chan struct{}, runtime.GOMAXPROCS(0))
	for i := 0; i < height; i++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			nonConverged[i] = renderRow(f, fPrime, vp, width, height, i, mode, reg, field, pixels)
		}(i)
	}
	wg.Wait()

	total := 0
	for _, n := range nonConverged {
		total += n
	}
	glog.V(1).Infof("render: %d/%d pixels failed to converge", total, width*height)

	return Result{Pixels: pixels, NonConverged: total, TotalPixels: width * height}, nil
}

func renderRow(f, fPrime newton.Fn, vp newton.Viewport, width, height, i int, mode Mode, reg *rootreg.Registry, field *shadow.Field, pixels []byte) int {
	failed := 0
	for j := 0; j < width; j++ {
		z0 := vp.Point(i, j, width, height)
		z, n, ok := newton.Iterate(f, fPrime, z0)

		var c palette.RGB
		switch {
		case !ok:
			failed++
			c = colorFailure(mode)
		case mode.Palette:
			c = colorRoot(z, n, i, j, mode, reg, field, height)
		default:
			c = colorGrayscale(n, mode.Negate)
		}

		k := (i*width + j) * 3
		pixels[k+0] = c.R
		pixels[k+1] = c.G
		pixels[k+2] = c.B
	}
	return failed
}

func colorFailure(mode Mode) palette.RGB {
	if mode.Palette {
		return mode.Default
	}
	return palette.Black
}

func colorGrayscale(n int, negate bool) palette.RGB {
	frac := float64(n) / float64(newton.RootIter) * newton.Contrast
	if frac > 1 {
		frac = 1
	}
	v := uint8(255 * (1 - frac))
	if negate {
		v = 255 - v
	}
	return palette.RGB{R: v, G: v, B: v}
}

func colorRoot(z complex128, n, i, j int, mode Mode, reg *rootreg.Registry, field *shadow.Field, height int) palette.RGB {
	idx, found := reg.Index(z)
	if !found {
		return mode.Default
	}

	base := mode.Colors[idx%len(mode.Colors)]

	w := 0.0
	if field != nil && mode.Alpha != 0 {
		if d, reached := field.Distance(i, j); reached {
			w = shadow.Weight(d, height, mode.Alpha)
		}
	}
	return base.Blend(mode.Default, w)
}
