// Package newton holds the constants, error kinds and viewport
// geometry shared by every stage of the Newton-fractal render
// pipeline: expression parsing and differentiation (package expr),
// JIT compilation (package jit), root discovery (package rootreg),
// shadow-field construction (package shadow), the render kernel
// (package render) and palette resolution (package palette).
package newton

const (
	// RootPrecision is the Euclidean distance below which two complex
	// points are considered the same attractor.
	RootPrecision = 1e-5

	// Precision is the |f(z)| threshold at which Newton's method is
	// considered to have converged.
	Precision = 1e-10

	// RootIter is the maximum number of Newton iterations attempted
	// per pixel before declaring non-convergence.
	RootIter = 256

	// Contrast scales grayscale intensity by iteration count when no
	// palette is supplied.
	Contrast = 4
)
