package newton

import "math/cmplx"

// Fn is a compiled function or derivative: complex in, complex out.
type Fn func(complex128) complex128

// Iterate runs Newton's method z_{n+1} = z_n - f(z_n)/f'(z_n) from z0,
// stopping when |f(z_n)| < Precision (success) or n reaches RootIter
// (failure). It reports the endpoint, the iteration count actually
// performed, and whether the sequence converged. A non-finite f(z_n)
// or f'(z_n) — from overflow — is treated as immediate failure with
// the last finite endpoint.
func Iterate(f, fPrime Fn, z0 complex128) (z complex128, n int, converged bool) {
	z = z0
	for n = 0; n < RootIter; n++ {
		fz := f(z)
		if cmplx.Abs(fz) < Precision {
			return z, n, true
		}
		d := fPrime(z)
		if cmplx.IsNaN(d) || cmplx.IsInf(d) || d == 0 {
			return z, n, false
		}
		next := z - fz/d
		if cmplx.IsNaN(next) || cmplx.IsInf(next) {
			return z, n, false
		}
		z = next
	}
	return z, n, false
}
