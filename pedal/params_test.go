package pedal

import (
	"math"
	"testing"
)

func TestParamMapClampsRaw(t *testing.T) {
	p := GainParam()
	if got := p.Map(-0.5); got != 0.0 {
		t.Fatalf("Map(-0.5) = %g, want 0", got)
	}
	if got := p.Map(1.5); got != 3.0 {
		t.Fatalf("Map(1.5) = %g, want 3", got)
	}
}

func TestGainParamEndpoints(t *testing.T) {
	p := GainParam()
	if got := p.Map(0); got != 0.0 {
		t.Fatalf("gain at minimum = %g, want 0.0", got)
	}
	if got := p.Map(1); got != 3.0 {
		t.Fatalf("gain at maximum = %g, want 3.0", got)
	}
}

func TestGainParamAudioTaper(t *testing.T) {
	p := GainParam()
	mid := p.Map(0.5)
	linMid := float32(1.5)
	if mid >= linMid {
		t.Fatalf("audio taper midpoint = %g, want below linear midpoint %g", mid, linMid)
	}
	// Monotonic over the sweep.
	prev := p.Map(0)
	for i := 1; i <= 100; i++ {
		v := p.Map(float32(i) / 100)
		if v < prev {
			t.Fatalf("taper not monotonic at step %d: %g < %g", i, v, prev)
		}
		prev = v
	}
}

func TestSelectorParamIsLinear(t *testing.T) {
	p := SelectorParam()
	for i := 0; i <= 10; i++ {
		raw := float32(i) / 10
		want := raw * float32(MaxPositions-1)
		if got := p.Map(raw); math.Abs(float64(got-want)) > 1e-5 {
			t.Fatalf("Map(%g) = %g, want %g", raw, got, want)
		}
	}
}

func TestQuantizePositionStaysInRange(t *testing.T) {
	// Property from the contract: every raw input lands in [0, MaxPositions-1].
	p := SelectorParam()
	for i := -50; i <= 150; i++ {
		raw := float32(i) / 100
		pos := QuantizePosition(p.Map(raw))
		if pos < 0 || pos > MaxPositions-1 {
			t.Fatalf("quantize(%g) = %d, outside [0, %d]", raw, pos, MaxPositions-1)
		}
	}
}

func TestQuantizePositionRoundsHalfUp(t *testing.T) {
	cases := []struct {
		v    float32
		want int
	}{
		{0.0, 0},
		{0.49, 0},
		{0.5, 1},
		{1.49, 1},
		{5.5, 6},
		{10.5, 11},
		{11.0, 11},
		{14.0, 11}, // clamped to the panel
		{-2.0, 0},
	}
	for _, c := range cases {
		if got := QuantizePosition(c.v); got != c.want {
			t.Fatalf("QuantizePosition(%g) = %d, want %d", c.v, got, c.want)
		}
	}
}
