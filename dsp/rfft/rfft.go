// Package rfft adapts the complex FFT backend to real-valued input, producing
// the non-redundant half spectrum.
//
// The package intentionally does not implement FFT itself. It packs real
// samples into the complex domain and delegates to algo-fft, keeping the FFT
// backend an external collaborator.
package rfft

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/miguelangelcasanova/edgedsp/dsp/memory"
)

// Errors returned by the real FFT adapter.
var (
	ErrEmptyInput    = errors.New("rfft: empty input")
	ErrShortSpectrum = errors.New("rfft: spectrum buffer too short")
)

// PlanBytes estimates the working-memory footprint of an FFT plan of size n:
// twiddle factors plus scratch storage, one complex128 each.
func PlanBytes(n int) int {
	if n < 0 {
		return 0
	}
	return 2 * n * 16
}

// Real computes the forward FFT of the real-valued signal src, writing the
// len(src)/2+1 non-redundant bins to dst. The remaining bins of the full
// spectrum are the complex conjugates of the mirrored lower half.
//
// The packing buffer and the plan footprint are charged to arena and released
// before return on every path.
func Real(dst []complex128, src []float64, arena *memory.Arena) error {
	n := len(src)
	if n == 0 {
		return ErrEmptyInput
	}
	bins := n/2 + 1
	if len(dst) < bins {
		return ErrShortSpectrum
	}

	packed, err := arena.Complexes(n)
	if err != nil {
		return err
	}
	defer arena.FreeComplexes(packed)

	if err := arena.Register(PlanBytes(n)); err != nil {
		return err
	}
	defer arena.Unregister(PlanBytes(n))

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return fmt.Errorf("rfft: failed to create FFT plan: %w", err)
	}

	for i, v := range src {
		packed[i] = complex(v, 0)
	}

	if err := plan.Forward(packed, packed); err != nil {
		return fmt.Errorf("rfft: forward FFT failed: %w", err)
	}

	copy(dst[:bins], packed[:bins])
	return nil
}
