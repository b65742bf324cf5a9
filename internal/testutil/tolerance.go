package testutil

import (
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireSliceClose fails t unless got and want have equal length and every
// element pair satisfies |got-want| <= absEps + relEps*|want|. The combined
// bound keeps the relative criterion meaningful while tolerating values near
// zero.
func RequireSliceClose(t *testing.T, got, want []float64, absEps, relEps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		bound := absEps + relEps*math.Abs(want[i])
		if diff > bound {
			t.Fatalf("index %d: got %v, want %v (diff %v > bound %v)", i, got[i], want[i], diff, bound)
		}
	}
}
