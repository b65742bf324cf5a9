package dct

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/miguelangelcasanova/edgedsp/dsp/memory"
	"github.com/miguelangelcasanova/edgedsp/dsp/rfft"
)

// sharedArena backs the one-shot entry points. It is unlimited, so
// acquisition there only fails if the FFT collaborator does.
var sharedArena = memory.New()

// Transform replaces vector with its unscaled DCT-II coefficients in place.
// The vector length is preserved; a zero-length vector is returned unchanged.
// On error the vector contents are unspecified.
func Transform(vector []float64) error {
	return TransformArena(vector, sharedArena)
}

// TransformArena is Transform with working buffers charged to arena.
// Every buffer acquired during the call is released before return, on success
// and on every failure path.
func TransformArena(vector []float64, arena *memory.Arena) error {
	n := len(vector)
	if n == 0 {
		return nil
	}

	spectrum, err := arena.Complexes(n/2 + 1)
	if err != nil {
		return err
	}
	defer arena.FreeComplexes(spectrum)

	fftIn, err := arena.Floats(n)
	if err != nil {
		return err
	}
	defer arena.FreeFloats(fftIn)

	// Even samples ascend from the front, odd samples descend from the back.
	// This permutation turns the DCT-II into a single real FFT.
	halfLen := n / 2
	for i := 0; i < halfLen; i++ {
		fftIn[i] = vector[2*i]
		fftIn[n-1-i] = vector[2*i+1]
	}
	if n%2 == 1 {
		fftIn[halfLen] = vector[n-1]
	}

	if err := rfft.Real(spectrum, fftIn, arena); err != nil {
		return fmt.Errorf("dct: forward FFT failed: %w", err)
	}

	// Rotate each bin by its phase factor. Bins above n/2 follow from the
	// conjugate symmetry of the real-input spectrum.
	for k := 0; k <= halfLen; k++ {
		theta := float64(k) * math.Pi / float64(2*n)
		bin := spectrum[k]
		vector[k] = real(bin)*math.Cos(theta) + imag(bin)*math.Sin(theta)
	}
	for k := halfLen + 1; k < n; k++ {
		theta := float64(k) * math.Pi / float64(2*n)
		bin := spectrum[n-k]
		vector[k] = real(bin)*math.Cos(theta) - imag(bin)*math.Sin(theta)
	}

	return nil
}

// InverseTransform replaces vector, holding unscaled DCT-II coefficients,
// with the corresponding spatial-domain samples (unscaled DCT-III) in place.
// The vector length is preserved; a zero-length vector is returned unchanged.
// On error the vector contents are unspecified.
func InverseTransform(vector []float64) error {
	return InverseTransformArena(vector, sharedArena)
}

// InverseTransformArena is InverseTransform with working buffers charged to
// arena. The FFT plan footprint is registered with the arena for the duration
// of the call; every resource is released before return on every path.
func InverseTransformArena(vector []float64, arena *memory.Arena) error {
	n := len(vector)
	if n == 0 {
		return nil
	}

	fftOut, err := arena.Complexes(n)
	if err != nil {
		return err
	}
	defer arena.FreeComplexes(fftOut)

	fftIn, err := arena.Complexes(n)
	if err != nil {
		return err
	}
	defer arena.FreeComplexes(fftIn)

	phase, err := arena.Floats(2 * n)
	if err != nil {
		return err
	}
	defer arena.FreeFloats(phase)

	if err := arena.Register(rfft.PlanBytes(n)); err != nil {
		return err
	}
	defer arena.Unregister(rfft.PlanBytes(n))

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return fmt.Errorf("dct: failed to create FFT plan: %w", err)
	}

	cosTab, sinTab := phase[:n], phase[n:]
	for i := 0; i < n; i++ {
		theta := float64(i) * math.Pi / float64(2*n)
		cosTab[i] = math.Cos(theta)
		sinTab[i] = -math.Sin(theta)
	}

	// DC boundary correction for the DCT-II/DCT-III pairing.
	vector[0] /= 2

	// Rotate each coefficient by its phase factor before the FFT.
	vecmath.MulBlockInPlace(cosTab, vector)
	vecmath.MulBlockInPlace(sinTab, vector)
	for i := 0; i < n; i++ {
		fftIn[i] = complex(cosTab[i], sinTab[i])
	}

	if err := plan.Forward(fftOut, fftIn); err != nil {
		return fmt.Errorf("dct: FFT failed: %w", err)
	}

	// De-interleave the real parts back into spatial order, inverting the
	// forward permutation.
	halfLen := n / 2
	for i := 0; i < halfLen; i++ {
		vector[2*i] = real(fftOut[i])
		vector[2*i+1] = real(fftOut[n-1-i])
	}
	if n%2 == 1 {
		vector[n-1] = real(fftOut[halfLen])
	}

	return nil
}

// Normalize scales vector by 2/len, the compensation that makes Transform
// followed by InverseTransform reproduce the original signal.
func Normalize(vector []float64) {
	if len(vector) == 0 {
		return
	}
	scale := 2 / float64(len(vector))
	for i := range vector {
		vector[i] *= scale
	}
}
