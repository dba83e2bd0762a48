package escape

import "github.com/willbeason/quantum-fractal/pkg/transforms"

const (
	// EscapeBound is the modulus past which a point is considered escaped.
	EscapeBound = 4.0

	escapeBound2 = EscapeBound * EscapeBound
)

// Iterate applies t to z0 until |z| exceeds EscapeBound or maxIter updates
// have been applied, and returns the number of updates applied.
func Iterate(z0 complex128, t transforms.Transform, maxIter int) int {
	z := z0
	iterations := 0
	for iterations < maxIter && inBounds(z) {
		z = t.Next(z)
		iterations++
	}
	return iterations
}

// inBounds reports whether |z| <= EscapeBound. NaN and overflowed components
// count as escaped.
func inBounds(z complex128) bool {
	return real(z)*real(z)+imag(z)*imag(z) <= escapeBound2
}
