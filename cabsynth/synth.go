// Package cabsynth generates synthetic guitar-cabinet impulse responses:
// a direct path, a set of decaying cone/box modes, short box reflections,
// and a diffuse tail shaped by the cabinet's high-frequency rolloff. The
// output is a mono IR suitable for embedding in the pedal's catalog.
package cabsynth

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-approx"
)

// Config controls synthetic cabinet IR generation.
type Config struct {
	SampleRate int
	DurationS  float64 // Typically 0.02-0.17s
	Modes      int
	Seed       int64

	// ConeHz is the speaker's fundamental resonance; the lowest mode sits
	// here and the remaining modes spread upward from it.
	ConeHz     float64
	Brightness float64
	Density    float64 // >1 biases modes low, <1 biases high

	// RolloffHz is the cabinet's treble ceiling; a one-pole lowpass at this
	// corner shapes everything after the direct impulse.
	RolloffHz float64

	DirectLevel float64
	EarlyCount  int     // box/baffle reflections in the first few ms
	LateLevel   float64 // diffuse tail level
	LowDecayS   float64
	HighDecayS  float64
	FadeOutS    float64 // cosine fade at the end; 0 = no fade

	NormalizePeak float64
}

// DefaultConfig returns a neutral single-speaker open-back cabinet.
func DefaultConfig() Config {
	return Config{
		SampleRate:    48000,
		DurationS:     0.06,
		Modes:         48,
		Seed:          1,
		ConeHz:        95.0,
		Brightness:    1.0,
		Density:       1.6,
		RolloffHz:     4800.0,
		DirectLevel:   0.5,
		EarlyCount:    10,
		LateLevel:     0.03,
		LowDecayS:     0.045,
		HighDecayS:    0.006,
		FadeOutS:      0.004,
		NormalizePeak: 0.9,
	}
}

func (c *Config) Validate() error {
	if c.SampleRate < 8000 {
		return fmt.Errorf("sample rate too low: %d", c.SampleRate)
	}
	if c.DurationS <= 0 {
		return fmt.Errorf("duration must be > 0")
	}
	if c.Modes < 1 {
		return fmt.Errorf("modes must be >= 1")
	}
	if c.ConeHz <= 0 {
		return fmt.Errorf("cone Hz must be > 0")
	}
	if c.Brightness <= 0 {
		return fmt.Errorf("brightness must be > 0")
	}
	if c.Density <= 0 {
		return fmt.Errorf("density must be > 0")
	}
	if c.RolloffHz <= 0 {
		return fmt.Errorf("rolloff Hz must be > 0")
	}
	if c.DirectLevel < 0 {
		return fmt.Errorf("direct level must be >= 0")
	}
	if c.EarlyCount < 0 {
		return fmt.Errorf("early count must be >= 0")
	}
	if c.LateLevel < 0 {
		return fmt.Errorf("late level must be >= 0")
	}
	if c.LowDecayS <= 0 || c.HighDecayS <= 0 {
		return fmt.Errorf("decay seconds must be > 0")
	}
	if c.NormalizePeak <= 0 {
		return fmt.Errorf("normalize peak must be > 0")
	}
	return nil
}

// Generate synthesizes a mono cabinet IR according to cfg. Output is
// deterministic for a given config.
func Generate(cfg Config) ([]float32, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	n := int(math.Round(cfg.DurationS * float64(cfg.SampleRate)))
	if n < 1 {
		n = 1
	}
	buf := make([]float64, n)

	rng := rand.New(rand.NewSource(cfg.Seed))

	// Direct path impulse.
	buf[0] += cfg.DirectLevel

	maxF := 0.47 * float64(cfg.SampleRate)
	if maxF > 4.0*cfg.RolloffHz {
		maxF = 4.0 * cfg.RolloffHz
	}
	minF := cfg.ConeHz

	// Cone and box modes, log-spaced from the cone resonance upward with
	// density-controlled clustering. RNG covers only amplitude jitter and
	// phase; frequency placement is deterministic.
	brightnessExp := 0.7 + 0.9*cfg.Brightness
	for m := 0; m < cfg.Modes; m++ {
		fNorm := math.Pow((float64(m)+0.5)/float64(cfg.Modes), cfg.Density)
		f := minF * math.Pow(maxF/minF, fNorm)

		amp := 0.9 / math.Pow(1.0+f/cfg.RolloffHz, brightnessExp)
		amp *= 0.7 + 0.6*rng.Float64()

		tau := lerp(cfg.LowDecayS, cfg.HighDecayS, math.Sqrt(f/maxF))
		decay := math.Exp(-1.0 / (tau * float64(cfg.SampleRate)))

		phi := rng.Float64() * 2.0 * math.Pi
		addModeRec(buf, amp, f, phi, decay, cfg.SampleRate)
	}

	// Box/baffle reflections in the first 6 ms.
	for i := 0; i < cfg.EarlyCount; i++ {
		t := 0.0003 + 0.006*rng.Float64()
		idx := int(t * float64(cfg.SampleRate))
		if idx <= 0 || idx >= n {
			continue
		}
		amp := (0.08 + 0.30*rng.Float64()) * math.Exp(-t*220.0)
		if rng.Float64() < 0.5 {
			amp = -amp // comb character from inverted bounces
		}
		buf[idx] += amp
	}

	// Diffuse tail: filtered noise under a fast exponential envelope.
	if cfg.LateLevel > 0 {
		invTau := float32(1.0 / (0.75 * cfg.LowDecayS))
		lp := 0.0
		for i := 0; i < n; i++ {
			t := float32(i) / float32(cfg.SampleRate)
			env := float64(approx.FastExp(-t * invTau))
			lp = 0.96*lp + 0.04*rng.NormFloat64()
			buf[i] += cfg.LateLevel * env * lp
		}
	}

	// Cabinet treble ceiling. The direct impulse keeps its leading edge;
	// the lowpass starts from the first sample like the speaker it models.
	onePoleLowpass(buf, cfg.RolloffHz, cfg.SampleRate)

	highpassDC(buf, 0.995)
	applyFadeOut(buf, cfg.FadeOutS, cfg.SampleRate)

	peak := maxAbs(buf)
	if peak < 1e-12 {
		peak = 1e-12
	}
	s := cfg.NormalizePeak / peak
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		out[i] = float32(buf[i] * s)
	}
	return out, nil
}

func addModeRec(out []float64, amp float64, freq float64, phase float64, decay float64, sampleRate int) {
	if len(out) == 0 {
		return
	}
	w := 2.0 * math.Pi * freq / float64(sampleRate)
	cw := math.Cos(w)
	x0 := math.Cos(phase)
	x1 := math.Cos(phase + w)
	env := 1.0

	out[0] += amp * env * x0
	env *= decay
	if len(out) == 1 {
		return
	}
	out[1] += amp * env * x1
	env *= decay
	for i := 2; i < len(out); i++ {
		x2 := 2.0*cw*x1 - x0
		x0 = x1
		x1 = x2
		out[i] += amp * env * x2
		env *= decay
	}
}

func onePoleLowpass(x []float64, cornerHz float64, sampleRate int) {
	a := 1.0 - math.Exp(-2.0*math.Pi*cornerHz/float64(sampleRate))
	y := 0.0
	for i := range x {
		y += a * (x[i] - y)
		x[i] = y
	}
}

func highpassDC(x []float64, r float64) {
	if len(x) == 0 {
		return
	}
	prevIn := 0.0
	prevOut := 0.0
	for i := range x {
		y := x[i] - prevIn + r*prevOut
		prevIn = x[i]
		prevOut = y
		x[i] = y
	}
}

func maxAbs(x []float64) float64 {
	m := 0.0
	for _, v := range x {
		a := math.Abs(v)
		if a > m {
			m = a
		}
	}
	return m
}

// applyFadeOut applies a cosine fade-out to the last fadeS seconds of buf.
func applyFadeOut(buf []float64, fadeS float64, sampleRate int) {
	if fadeS <= 0 || len(buf) == 0 {
		return
	}
	fadeSamples := int(math.Round(fadeS * float64(sampleRate)))
	if fadeSamples > len(buf) {
		fadeSamples = len(buf)
	}
	start := len(buf) - fadeSamples
	for i := 0; i < fadeSamples; i++ {
		t := float64(i) / float64(fadeSamples) // 0..1
		gain := 0.5 * (1.0 + math.Cos(t*math.Pi))
		buf[start+i] *= gain
	}
}

func lerp(a, b, t float64) float64 {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return a + (b-a)*t
}
