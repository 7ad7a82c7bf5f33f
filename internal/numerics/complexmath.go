package numerics

import "math/cmplx"

// Magnitude returns |z|, the absolute value of z.
func Magnitude(z complex128) float64 {
	return cmplx.Abs(z)
}

// Phase returns the argument of z in radians, in (-π, π].
func Phase(z complex128) float64 {
	return cmplx.Phase(z)
}

// Conjugate returns the complex conjugate of z.
func Conjugate(z complex128) complex128 {
	return cmplx.Conj(z)
}
