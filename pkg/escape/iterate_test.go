package escape

import (
	"math"
	"testing"

	"github.com/willbeason/quantum-fractal/pkg/transforms"
)

func TestIterate_OriginNeverEscapes(t *testing.T) {
	quadratic := transforms.Effect{Kind: transforms.Quadratic}.Bind(0, 1)
	for _, maxIter := range []int{1, 10, 1000} {
		if got := Iterate(0, quadratic, maxIter); got != maxIter {
			t.Errorf("Iterate(0, maxIter=%d) = %d, want %d", maxIter, got, maxIter)
		}
	}
}

func TestIterate_ZeroIterations(t *testing.T) {
	quadratic := transforms.Julia2{C: 0}
	if got := Iterate(complex(100, 100), quadratic, 0); got != 0 {
		t.Errorf("Iterate() = %d, want 0", got)
	}
}

func TestIterate_StartsOutside(t *testing.T) {
	// |z0| > EscapeBound, so no update is applied.
	if got := Iterate(complex(5, 0), transforms.Julia2{}, 50); got != 0 {
		t.Errorf("Iterate() = %d, want 0", got)
	}
}

func TestIterate_OnBoundIsInside(t *testing.T) {
	// PauliX keeps |z| fixed at exactly EscapeBound.
	if got := Iterate(complex(0, EscapeBound), transforms.PauliX{}, 7); got != 7 {
		t.Errorf("Iterate() = %d, want 7", got)
	}
}

func TestIterate_Escapes(t *testing.T) {
	// 1 -> 2 -> 5: escapes after two updates.
	if got := Iterate(1, transforms.Julia2{C: 1}, 100); got != 2 {
		t.Errorf("Iterate() = %d, want 2", got)
	}
}

func TestIterate_NaNEscapes(t *testing.T) {
	if got := Iterate(complex(math.NaN(), 0), transforms.Julia2{}, 100); got != 0 {
		t.Errorf("Iterate(NaN) = %d, want 0", got)
	}

	// Superposition with hbar = 0 divides by zero, which must not hang or panic.
	step := transforms.Effect{Kind: transforms.Superposition}.Bind(complex(1, 1), 0)
	if got := Iterate(0, step, 100); got != 1 {
		t.Errorf("Iterate(hbar=0) = %d, want 1", got)
	}
}

func TestInBounds_Overflow(t *testing.T) {
	if inBounds(complex(1e200, 0)) {
		t.Error("inBounds(1e200) = true, want false")
	}
	if inBounds(complex(math.Inf(-1), 0)) {
		t.Error("inBounds(-Inf) = true, want false")
	}
}

func BenchmarkIterate_Quadratic(b *testing.B) {
	step := transforms.Julia2{C: complex(-0.8, 0.156)}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Iterate(complex(0.1, 0.1), step, 1000)
	}
}
