package pedal

import "math"

// Curve selects the response shape a raw control value is mapped through.
type Curve int

const (
	// CurveLinear maps the raw value proportionally across the range.
	CurveLinear Curve = iota

	// CurveLog approximates an audio-taper response with a square law,
	// spending more knob travel on the low end of the range.
	CurveLog
)

// Param maps a raw control value in [0, 1] into an engineering-unit range
// through a response curve. Out-of-range raw values are clamped, so mapped
// values never leave [Min, Max].
type Param struct {
	Min   float32
	Max   float32
	Curve Curve
}

// Map converts a raw control reading into the parameter's unit range.
func (p Param) Map(raw float32) float32 {
	if raw < 0 {
		raw = 0
	} else if raw > 1 {
		raw = 1
	}
	switch p.Curve {
	case CurveLog:
		return p.Min + (p.Max-p.Min)*raw*raw
	default:
		return p.Min + (p.Max-p.Min)*raw
	}
}

// GainParam is the boost-gain knob: 0.0 to 3.0 with an audio taper.
func GainParam() Param {
	return Param{Min: 0.0, Max: 3.0, Curve: CurveLog}
}

// SelectorParam is the kernel selector knob: linear over the physical
// positions, quantized afterwards by QuantizePosition.
func SelectorParam() Param {
	return Param{Min: 0, Max: MaxPositions - 1, Curve: CurveLinear}
}

// QuantizePosition rounds a mapped selector value half-up to the nearest
// integer position and clamps it to [0, MaxPositions-1]. The hardware may
// expose more physical positions than the catalog has kernels; clamping is
// against the panel, not the catalog.
func QuantizePosition(v float32) int {
	pos := int(math.Floor(float64(v) + 0.5))
	if pos < 0 {
		pos = 0
	}
	if pos > MaxPositions-1 {
		pos = MaxPositions - 1
	}
	return pos
}
