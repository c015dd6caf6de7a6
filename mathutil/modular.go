// Package mathutil provides the modular arithmetic and 2x2 matrix
// operations shared by the cipher implementations.
package mathutil

// Mod returns n mod m as a value in [0, m), including for negative n.
// Go's % operator returns negative results for negative n.
func Mod(n, m int) int {
	return ((n % m) + m) % m
}

// GCD returns the greatest common divisor of a and b using the
// Euclidean algorithm. GCD(0, 0) is 0.
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// ExtendedGCD returns g = gcd(a, b) together with Bezout coefficients
// x, y such that a*x + b*y = g. Implemented iteratively.
func ExtendedGCD(a, b int) (g, x, y int) {
	r0, r1 := a, b
	x0, x1 := 1, 0
	y0, y1 := 0, 1

	for r1 != 0 {
		q := r0 / r1
		r0, r1 = r1, r0-q*r1
		x0, x1 = x1, x0-q*x1
		y0, y1 = y1, y0-q*y1
	}

	return r0, x0, y0
}

// ModInverse returns the multiplicative inverse of a modulo m, the
// unique v in [0, m) with a*v = 1 (mod m). The second return value is
// false when gcd(a mod m, m) != 1 and no inverse exists.
func ModInverse(a, m int) (int, bool) {
	g, x, _ := ExtendedGCD(Mod(a, m), m)
	if g != 1 {
		return 0, false
	}
	return Mod(x, m), true
}
