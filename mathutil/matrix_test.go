package mathutil

import "testing"

func TestDeterminant(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want int
	}{
		{"identity", Matrix{{1, 0}, {0, 1}}, 1},
		{"hill key", Matrix{{3, 3}, {2, 5}}, 9},
		{"negative", Matrix{{0, 1}, {1, 0}}, -1},
		{"singular", Matrix{{2, 4}, {1, 2}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Determinant(); got != tt.want {
				t.Errorf("Determinant() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIsInvertible(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want bool
	}{
		{"identity", Matrix{{1, 0}, {0, 1}}, true},
		{"hill key det 9", Matrix{{3, 3}, {2, 5}}, true},
		{"det shares factor 2", Matrix{{1, 0}, {0, 2}}, false},
		{"det shares factor 13", Matrix{{13, 0}, {0, 1}}, false},
		{"singular", Matrix{{2, 4}, {1, 2}}, false},
		{"negative det coprime", Matrix{{0, 1}, {1, 0}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.IsInvertible(); got != tt.want {
				t.Errorf("IsInvertible() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInverse(t *testing.T) {
	key := Matrix{{3, 3}, {2, 5}}
	inv, ok := key.Inverse()
	if !ok {
		t.Fatal("Inverse() failed for an invertible matrix")
	}

	want := Matrix{{15, 17}, {20, 9}}
	if inv != want {
		t.Errorf("Inverse() = %v, want %v", inv, want)
	}

	identity := Matrix{{1, 0}, {0, 1}}
	if got := key.Multiply(inv); got != identity {
		t.Errorf("key * inverse = %v, want identity", got)
	}
	if got := inv.Multiply(key); got != identity {
		t.Errorf("inverse * key = %v, want identity", got)
	}
}

func TestInverseSingular(t *testing.T) {
	singular := Matrix{{1, 0}, {0, 2}}
	if _, ok := singular.Inverse(); ok {
		t.Error("Inverse() should fail when det shares a factor with 26")
	}
}

func TestInverseRoundTrip(t *testing.T) {
	matrices := []Matrix{
		{{3, 3}, {2, 5}},
		{{5, 8}, {17, 3}},
		{{1, 2}, {3, 5}},
		{{7, 8}, {11, 11}},
	}

	identity := Matrix{{1, 0}, {0, 1}}
	for _, m := range matrices {
		inv, ok := m.Inverse()
		if !ok {
			t.Errorf("matrix %v should be invertible", m)
			continue
		}
		if got := m.Multiply(inv); got != identity {
			t.Errorf("%v * %v = %v, want identity", m, inv, got)
		}
	}
}

func TestApply(t *testing.T) {
	key := Matrix{{3, 3}, {2, 5}}

	// "HE" = (7, 4): 3*7+3*4 = 33 = 7 mod 26, 2*7+5*4 = 34 = 8 mod 26.
	got := key.Apply(Vector{7, 4})
	want := Vector{7, 8}
	if got != want {
		t.Errorf("Apply({7, 4}) = %v, want %v", got, want)
	}
}
