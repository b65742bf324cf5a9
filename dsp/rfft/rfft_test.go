package rfft

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/miguelangelcasanova/edgedsp/dsp/memory"
	"github.com/miguelangelcasanova/edgedsp/internal/testutil"
)

// naiveDFT computes the forward DFT bins 0..n/2 by direct summation.
func naiveDFT(src []float64) []complex128 {
	n := len(src)
	bins := n/2 + 1
	out := make([]complex128, bins)
	for k := 0; k < bins; k++ {
		var sum complex128
		for m, v := range src {
			angle := -2 * math.Pi * float64(m) * float64(k) / float64(n)
			sum += complex(v, 0) * cmplx.Exp(complex(0, angle))
		}
		out[k] = sum
	}
	return out
}

func TestRealMatchesNaiveDFT(t *testing.T) {
	lengths := []int{1, 2, 3, 4, 5, 8, 12, 16, 17, 64}

	for _, n := range lengths {
		src := testutil.DeterministicNoise(42, 1.0, n)
		dst := make([]complex128, n/2+1)
		arena := memory.New()

		if err := Real(dst, src, arena); err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if got := arena.InUse(); got != 0 {
			t.Fatalf("n=%d: InUse = %d, want 0", n, got)
		}

		want := naiveDFT(src)
		for k := range want {
			if d := cmplx.Abs(dst[k] - want[k]); d > 1e-9*float64(n) {
				t.Fatalf("n=%d bin %d: got %v, want %v (diff %v)", n, k, dst[k], want[k], d)
			}
		}
	}
}

func TestRealEmptyInput(t *testing.T) {
	err := Real(make([]complex128, 1), nil, memory.New())
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("got %v, want ErrEmptyInput", err)
	}
}

func TestRealShortSpectrum(t *testing.T) {
	src := []float64{1, 2, 3, 4}
	err := Real(make([]complex128, 2), src, memory.New())
	if !errors.Is(err, ErrShortSpectrum) {
		t.Fatalf("got %v, want ErrShortSpectrum", err)
	}
}

func TestRealAllocationFailure(t *testing.T) {
	src := testutil.DeterministicNoise(7, 1.0, 16)
	dst := make([]complex128, 9)

	// Site 0 is the packing buffer, site 1 the plan registration.
	for site := 0; site < 2; site++ {
		arena := memory.New(memory.WithFailAfter(site))
		err := Real(dst, src, arena)
		if !errors.Is(err, memory.ErrOutOfMemory) {
			t.Fatalf("site %d: got %v, want ErrOutOfMemory", site, err)
		}
		if got := arena.InUse(); got != 0 {
			t.Fatalf("site %d: InUse = %d, want 0", site, got)
		}
	}

	arena := memory.New(memory.WithFailAfter(2))
	if err := Real(dst, src, arena); err != nil {
		t.Fatalf("all sites allowed: %v", err)
	}
}

func TestPlanBytes(t *testing.T) {
	if got := PlanBytes(-1); got != 0 {
		t.Fatalf("PlanBytes(-1) = %d, want 0", got)
	}
	if got := PlanBytes(8); got <= 0 {
		t.Fatalf("PlanBytes(8) = %d, want > 0", got)
	}
}
