package dsp

import (
	"math"
	"testing"
)

const testSampleRate = 48000

// steadyRMS feeds a sine of the given frequency through fn and returns the
// RMS of the output over the second half of the run, after transients decay.
func steadyRMS(freq float64, fn func(float32) float32) float64 {
	n := testSampleRate
	var sum float64
	count := 0
	for i := 0; i < n; i++ {
		in := float32(math.Sin(2 * math.Pi * freq * float64(i) / testSampleRate))
		out := fn(in)
		if i >= n/2 {
			sum += float64(out) * float64(out)
			count++
		}
	}
	return math.Sqrt(sum / float64(count))
}

func TestSVFPeakUnityGainAtCenter(t *testing.T) {
	s := NewSVF(testSampleRate, 110.0, 0.7)
	rms := steadyRMS(110.0, func(in float32) float32 {
		s.Process(in)
		return s.Peak()
	})
	want := 1.0 / math.Sqrt2
	if math.Abs(rms-want) > 0.02*want {
		t.Fatalf("peak output RMS at center = %g, want ~%g", rms, want)
	}
}

func TestSVFPeakRejectsFarBand(t *testing.T) {
	s := NewSVF(testSampleRate, 110.0, 0.7)
	rms := steadyRMS(4000.0, func(in float32) float32 {
		s.Process(in)
		return s.Peak()
	})
	inRMS := 1.0 / math.Sqrt2
	if rms > 0.1*inRMS {
		t.Fatalf("peak output RMS far from center = %g, want < %g", rms, 0.1*inRMS)
	}
}

func TestSVFOutputsAreConsistent(t *testing.T) {
	s := NewSVF(testSampleRate, 110.0, 0.7)
	for i := 0; i < 256; i++ {
		in := float32(math.Sin(float64(i) * 0.05))
		low := s.Process(in)
		if low != s.Low() {
			t.Fatalf("Process return and Low disagree at sample %d", i)
		}
		// Notch is the input minus the damped band contribution.
		wantNotch := s.Low() + s.High()
		if d := math.Abs(float64(s.Notch() - wantNotch)); d > 1e-6 {
			t.Fatalf("notch identity violated at sample %d: diff=%g", i, d)
		}
	}
}

func TestSVFResetClearsState(t *testing.T) {
	s := NewSVF(testSampleRate, 110.0, 0.7)
	for i := 0; i < 64; i++ {
		s.Process(1.0)
	}
	s.Reset()
	if s.Low() != 0 || s.Band() != 0 || s.High() != 0 {
		t.Fatal("outputs not cleared by Reset")
	}
	s.Process(0)
	if s.Low() != 0 {
		t.Fatal("state not cleared by Reset")
	}
}

func TestFlushDenormals(t *testing.T) {
	if FlushDenormals(1e-35) != 0 {
		t.Fatal("denormal not flushed")
	}
	if FlushDenormals(0.5) != 0.5 {
		t.Fatal("normal value altered")
	}
}
