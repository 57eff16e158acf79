package newton

import (
	"fmt"
	"strconv"
	"strings"
)

// Viewport is an axis-aligned rectangle in the complex plane mapped
// onto an output image. X1,Y1 is the lower-left corner and X2,Y2 the
// upper-right; X1 must be less than X2, and Y1 less than Y2.
type Viewport struct {
	X1, Y1 float64
	X2, Y2 float64
}

// NewViewport validates the corner coordinates and returns a
// Viewport, or a ViewportInvalid error if x1 >= x2 or y1 >= y2.
func NewViewport(x1, y1, x2, y2 float64) (Viewport, error) {
	if !(x1 < x2) {
		return Viewport{}, Wrap(ViewportInvalid, fmt.Errorf("x1 (%g) must be less than x2 (%g)", x1, x2))
	}
	if !(y1 < y2) {
		return Viewport{}, Wrap(ViewportInvalid, fmt.Errorf("y1 (%g) must be less than y2 (%g)", y1, y2))
	}
	return Viewport{X1: x1, Y1: y1, X2: x2, Y2: y2}, nil
}

// DefaultViewport is the -1,-1;1,1 default coordinate window used
// when the CLI supplies no coord flag (spec.md §6).
func DefaultViewport() Viewport {
	v, _ := NewViewport(-1, -1, 1, 1)
	return v
}

// Width returns the output image width for a requested image height,
// derived from the viewport's aspect ratio: max(floor((x2-x1)/(y2-y1)*h), 1).
func (v Viewport) Width(height int) int {
	w := int((v.X2 - v.X1) / (v.Y2 - v.Y1) * float64(height))
	if w < 1 {
		return 1
	}
	return w
}

// ParseCoord parses the CLI `coord` flag format "x1,y1;x2,y2"
// (spec.md §6) into a Viewport.
func ParseCoord(s string) (Viewport, error) {
	corners := strings.Split(s, ";")
	if len(corners) != 2 {
		return Viewport{}, Wrap(ViewportInvalid, fmt.Errorf("coord %q: expected \"x1,y1;x2,y2\"", s))
	}

	x1, y1, err := parsePair(corners[0])
	if err != nil {
		return Viewport{}, Wrap(ViewportInvalid, fmt.Errorf("coord %q: %w", s, err))
	}
	x2, y2, err := parsePair(corners[1])
	if err != nil {
		return Viewport{}, Wrap(ViewportInvalid, fmt.Errorf("coord %q: %w", s, err))
	}

	return NewViewport(x1, y1, x2, y2)
}

func parsePair(s string) (float64, float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected \"re,im\", got %q", s)
	}
	re, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid real part %q: %w", parts[0], err)
	}
	im, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid imaginary part %q: %w", parts[1], err)
	}
	return re, im, nil
}

// Point maps pixel (i, j) — row i, column j — in an image of the
// given height to its seed point in the complex plane, per spec.md
// §3: re = x1 + (x2-x1)*j/W, im = y1 + (y2-y1)*i/H.
func (v Viewport) Point(i, j, width, height int) complex128 {
	re := v.X1 + (v.X2-v.X1)*float64(j)/float64(width)
	im := v.Y1 + (v.Y2-v.Y1)*float64(i)/float64(height)
	return complex(re, im)
}
