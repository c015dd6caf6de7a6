package mathutil

// AlphabetSize is the modulus used by every matrix operation here.
const AlphabetSize = 26

// Matrix is a 2x2 integer matrix. It serializes as two row arrays.
type Matrix [2][2]int

// Vector is a 2-element column vector of alphabet positions.
type Vector [2]int

// Determinant returns the unreduced integer determinant, which may be
// negative.
func (m Matrix) Determinant() int {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}

// IsInvertible reports whether m has an inverse modulo 26, i.e. whether
// its determinant mod 26 is coprime with 26.
func (m Matrix) IsInvertible() bool {
	return GCD(Mod(m.Determinant(), AlphabetSize), AlphabetSize) == 1
}

// Inverse returns the inverse of m modulo 26, computed as the adjugate
// scaled by the determinant's modular inverse. The second return value
// is false when the determinant shares a factor with 26.
func (m Matrix) Inverse() (Matrix, bool) {
	detInv, ok := ModInverse(m.Determinant(), AlphabetSize)
	if !ok {
		return Matrix{}, false
	}

	// Adjugate: swap the diagonal, negate the off-diagonal.
	adj := Matrix{
		{m[1][1], -m[0][1]},
		{-m[1][0], m[0][0]},
	}

	var inv Matrix
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			inv[i][j] = Mod(detInv*adj[i][j], AlphabetSize)
		}
	}
	return inv, true
}

// Multiply returns a*b with every entry reduced modulo 26.
func (a Matrix) Multiply(b Matrix) Matrix {
	var out Matrix
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			out[i][j] = Mod(a[i][0]*b[0][j]+a[i][1]*b[1][j], AlphabetSize)
		}
	}
	return out
}

// Apply returns m*v with both entries reduced modulo 26.
func (m Matrix) Apply(v Vector) Vector {
	return Vector{
		Mod(m[0][0]*v[0]+m[0][1]*v[1], AlphabetSize),
		Mod(m[1][0]*v[0]+m[1][1]*v[1], AlphabetSize),
	}
}
