// cab-synth synthesizes a cabinet impulse response WAV, either from one of
// the built-in presets or from explicit parameters.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/cwbudde/mulebox/cabsynth"
	"github.com/cwbudde/mulebox/internal/wavutil"
)

func main() {
	cfg := cabsynth.DefaultConfig()

	output := flag.String("output", "cab.wav", "Output WAV path")
	presetName := flag.String("preset", "", "Start from a built-in preset (empty = defaults; 'list' prints them)")
	flag.IntVar(&cfg.SampleRate, "sample-rate", cfg.SampleRate, "Output sample rate")
	flag.Float64Var(&cfg.DurationS, "duration", cfg.DurationS, "IR length in seconds")
	flag.IntVar(&cfg.Modes, "modes", cfg.Modes, "Number of damped modes")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed")
	flag.Float64Var(&cfg.ConeHz, "cone", cfg.ConeHz, "Speaker cone resonance (Hz)")
	flag.Float64Var(&cfg.Brightness, "brightness", cfg.Brightness, "Spectral brightness control (>0)")
	flag.Float64Var(&cfg.Density, "density", cfg.Density, "Mode clustering (>1 biases low)")
	flag.Float64Var(&cfg.RolloffHz, "rolloff", cfg.RolloffHz, "Cabinet treble ceiling (Hz)")
	flag.Float64Var(&cfg.DirectLevel, "direct", cfg.DirectLevel, "Direct impulse level")
	flag.IntVar(&cfg.EarlyCount, "early", cfg.EarlyCount, "Number of box reflections")
	flag.Float64Var(&cfg.LateLevel, "late", cfg.LateLevel, "Diffuse tail level")
	flag.Float64Var(&cfg.LowDecayS, "low-decay", cfg.LowDecayS, "Low-frequency decay time (s)")
	flag.Float64Var(&cfg.HighDecayS, "high-decay", cfg.HighDecayS, "High-frequency decay time (s)")
	flag.Float64Var(&cfg.NormalizePeak, "normalize", cfg.NormalizePeak, "Peak normalization target")
	flag.Parse()

	if *presetName == "list" {
		for _, p := range cabsynth.Presets() {
			fmt.Printf("%-12s cone=%3.0fHz rolloff=%4.0fHz %.0fms\n",
				p.Name, p.Config.ConeHz, p.Config.RolloffHz, p.Config.DurationS*1000)
		}
		return
	}
	if *presetName != "" {
		base, ok := findPreset(*presetName)
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown preset %q (try -preset list)\n", *presetName)
			os.Exit(1)
		}
		// Explicitly set flags override the preset's values.
		cfg = base
		applyFlagOverrides(&cfg)
	}

	ir, err := cabsynth.Generate(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cab-synth error: %v\n", err)
		os.Exit(1)
	}

	if err := wavutil.WriteMono(*output, ir, cfg.SampleRate); err != nil {
		fmt.Fprintf(os.Stderr, "wav write error: %v\n", err)
		os.Exit(1)
	}

	peak := 0.0
	for _, v := range ir {
		if a := math.Abs(float64(v)); a > peak {
			peak = a
		}
	}
	fmt.Printf("Wrote %s\n", *output)
	fmt.Printf("SampleRate: %d Hz, Duration: %.3f s, Samples: %d\n", cfg.SampleRate, cfg.DurationS, len(ir))
	fmt.Printf("Peak: %.6f, RMS: %.6f\n", peak, wavutil.RMS(ir))
}

func findPreset(name string) (cabsynth.Config, bool) {
	for _, p := range cabsynth.Presets() {
		if p.Name == name {
			return p.Config, true
		}
	}
	return cabsynth.Config{}, false
}

// applyFlagOverrides re-applies any flag the user set explicitly on top of
// a preset-derived config.
func applyFlagOverrides(cfg *cabsynth.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "sample-rate":
			fmt.Sscanf(f.Value.String(), "%d", &cfg.SampleRate)
		case "duration":
			fmt.Sscanf(f.Value.String(), "%g", &cfg.DurationS)
		case "modes":
			fmt.Sscanf(f.Value.String(), "%d", &cfg.Modes)
		case "seed":
			fmt.Sscanf(f.Value.String(), "%d", &cfg.Seed)
		case "cone":
			fmt.Sscanf(f.Value.String(), "%g", &cfg.ConeHz)
		case "brightness":
			fmt.Sscanf(f.Value.String(), "%g", &cfg.Brightness)
		case "density":
			fmt.Sscanf(f.Value.String(), "%g", &cfg.Density)
		case "rolloff":
			fmt.Sscanf(f.Value.String(), "%g", &cfg.RolloffHz)
		case "direct":
			fmt.Sscanf(f.Value.String(), "%g", &cfg.DirectLevel)
		case "early":
			fmt.Sscanf(f.Value.String(), "%d", &cfg.EarlyCount)
		case "late":
			fmt.Sscanf(f.Value.String(), "%g", &cfg.LateLevel)
		case "low-decay":
			fmt.Sscanf(f.Value.String(), "%g", &cfg.LowDecayS)
		case "high-decay":
			fmt.Sscanf(f.Value.String(), "%g", &cfg.HighDecayS)
		case "normalize":
			fmt.Sscanf(f.Value.String(), "%g", &cfg.NormalizePeak)
		}
	})
}
