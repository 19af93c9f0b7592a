// Package dsp provides the per-sample DSP primitives used by the render path.
package dsp

import "math"

// SVF implements a second-order state variable filter (no heap allocations
// in Process). It produces lowpass, bandpass, highpass and notch responses
// simultaneously from one input stream; Peak is the damping-normalized
// resonant output with unity gain at the center frequency, which is what the
// tone-boost path taps.
type SVF struct {
	g float32 // frequency coefficient (pre-warped)
	k float32 // damping coefficient (1/Q)

	// Integrator state
	ic1eq float32
	ic2eq float32

	// Outputs of the most recent Process call
	low  float32
	band float32
	high float32
}

// NewSVF creates a filter tuned to the given center frequency and Q.
func NewSVF(sampleRate, frequency, q float64) *SVF {
	s := &SVF{}
	s.SetFrequency(sampleRate, frequency)
	s.SetQ(q)
	return s
}

// SetFrequency sets the filter center frequency.
func (s *SVF) SetFrequency(sampleRate, frequency float64) {
	// Pre-warp for the bilinear transform
	s.g = float32(math.Tan(math.Pi * frequency / sampleRate))
}

// SetQ sets the filter resonance (Q factor).
func (s *SVF) SetQ(q float64) {
	s.k = float32(1.0 / q)
}

// Process advances the filter by one sample and returns the lowpass output.
// The other responses of the same sample are available through Low, Band,
// High, Notch and Peak until the next call.
func (s *SVF) Process(input float32) float32 {
	g := s.g
	k := s.k
	a1 := 1.0 / (1.0 + g*(g+k))
	a2 := g * a1
	a3 := g * a2

	v3 := input - s.ic2eq
	v1 := a1*s.ic1eq + a2*v3
	v2 := s.ic2eq + a2*s.ic1eq + a3*v3

	s.ic1eq = FlushDenormals(2.0*v1 - s.ic1eq)
	s.ic2eq = FlushDenormals(2.0*v2 - s.ic2eq)

	s.low = v2
	s.band = v1
	s.high = input - k*v1 - v2

	return v2
}

// Low returns the lowpass output of the last processed sample.
func (s *SVF) Low() float32 { return s.low }

// Band returns the raw bandpass output of the last processed sample.
func (s *SVF) Band() float32 { return s.band }

// High returns the highpass output of the last processed sample.
func (s *SVF) High() float32 { return s.high }

// Notch returns the notch output of the last processed sample.
func (s *SVF) Notch() float32 { return s.low + s.high }

// Peak returns the damping-normalized bandpass output of the last processed
// sample. Its magnitude response is unity at the center frequency, so a
// blend of input + Peak*gain boosts the center band by 20*log10(1+gain) dB.
func (s *SVF) Peak() float32 { return s.k * s.band }

// Reset clears the filter state.
func (s *SVF) Reset() {
	s.ic1eq, s.ic2eq = 0, 0
	s.low, s.band, s.high = 0, 0, 0
}

// FlushDenormals converts denormal numbers to zero to avoid performance issues.
func FlushDenormals(x float32) float32 {
	const epsilon = 1e-30
	if x > -epsilon && x < epsilon {
		return 0.0
	}
	return x
}
