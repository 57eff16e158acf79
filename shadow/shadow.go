// Package shadow builds the per-pixel divergence-distance field used
// to soften colors near regions where Newton's method fails to
// converge (spec.md §4.6).
package shadow

import "math"

// Field maps pixel coordinates to their Manhattan distance, in pixel
// steps, to the nearest diverging pixel. Pixels unreachable from any
// diverging pixel (a fully-converging image) are absent and
// contribute zero shadow weight.
type Field struct {
	width, height int
	dist          []int32 // row-major; -1 means unvisited
}

const unvisited = -1

// Build runs a multi-source BFS from every pixel for which diverged
// reports true, expanding to the four orthogonal neighbors with the
// image boundary as a wall (spec.md §4.6). It runs single-threaded:
// the BFS is bandwidth-bound and dwarfed by the render kernel.
func Build(width, height int, diverged func(i, j int) bool) *Field {
	fd := &Field{width: width, height: height, dist: make([]int32, width*height)}
	for i := range fd.dist {
		fd.dist[i] = unvisited
	}

	queue := make([]int32, 0, width*height/4)
	idx := func(i, j int) int32 { return int32(i*width + j) }

	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			if diverged(i, j) {
				k := idx(i, j)
				fd.dist[k] = 0
				queue = append(queue, k)
			}
		}
	}

	for head := 0; head < len(queue); head++ {
		k := queue[head]
		i, j := int(k)/width, int(k)%width
		d := fd.dist[k]
		for _, n := range [4][2]int{{i - 1, j}, {i + 1, j}, {i, j - 1}, {i, j + 1}} {
			ni, nj := n[0], n[1]
			if ni < 0 || ni >= height || nj < 0 || nj >= width {
				continue
			}
			nk := idx(ni, nj)
			if fd.dist[nk] != unvisited {
				continue
			}
			fd.dist[nk] = d + 1
			queue = append(queue, nk)
		}
	}

	return fd
}

// Distance returns the BFS distance at (i, j) and whether the pixel
// was reached at all.
func (fd *Field) Distance(i, j int) (int, bool) {
	d := fd.dist[i*fd.width+j]
	if d == unvisited {
		return 0, false
	}
	return int(d), true
}

// Weight computes the shadow weight w = exp(-alpha*d/H) for a pixel
// at distance d in an image of the given height (spec.md §4.6). A
// pixel never reached by the BFS has weight 0 — it contributes no
// shadow.
func Weight(d, height int, alpha float64) float64 {
	return math.Exp(-alpha * float64(d) / float64(height))
}
