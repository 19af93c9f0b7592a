package cabsynth

import (
	"math"
	"testing"
)

func TestGenerateBasic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 42
	cfg.NormalizePeak = 0.8

	ir, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if want := int(math.Round(cfg.DurationS * float64(cfg.SampleRate))); len(ir) != want {
		t.Fatalf("unexpected length: got %d, want %d", len(ir), want)
	}

	maxAbs := 0.0
	energy := 0.0
	for i, v := range ir {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			t.Fatalf("non-finite sample at %d", i)
		}
		a := math.Abs(float64(v))
		if a > maxAbs {
			maxAbs = a
		}
		energy += float64(v * v)
	}
	if energy <= 1e-8 {
		t.Fatalf("expected non-zero energy")
	}
	if maxAbs > 0.81 {
		t.Fatalf("unexpected normalization peak: %.6f", maxAbs)
	}
}

func TestGenerateDeterministicForSeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 99

	a, err := Generate(cfg)
	if err != nil {
		t.Fatalf("first Generate: %v", err)
	}
	b, err := Generate(cfg)
	if err != nil {
		t.Fatalf("second Generate: %v", err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("outputs differ at %d for identical config", i)
		}
	}
}

func TestGenerateSeedChangesOutput(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 1
	a, err := Generate(cfg)
	if err != nil {
		t.Fatal(err)
	}
	cfg.Seed = 2
	b, err := Generate(cfg)
	if err != nil {
		t.Fatal(err)
	}
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical IRs")
	}
}

func TestGenerateEnergyDecays(t *testing.T) {
	cfg := DefaultConfig()
	ir, err := Generate(cfg)
	if err != nil {
		t.Fatal(err)
	}
	half := len(ir) / 2
	head, tail := 0.0, 0.0
	for i, v := range ir {
		e := float64(v * v)
		if i < half {
			head += e
		} else {
			tail += e
		}
	}
	if tail >= head {
		t.Fatalf("IR energy does not decay: head=%g tail=%g", head, tail)
	}
}

func TestGenerateRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DurationS = 0
	if _, err := Generate(cfg); err == nil {
		t.Fatal("zero duration should fail validation")
	}
	cfg = DefaultConfig()
	cfg.ConeHz = -10
	if _, err := Generate(cfg); err == nil {
		t.Fatal("negative cone frequency should fail validation")
	}
}

func TestPresetsFitThePedal(t *testing.T) {
	presets := Presets()
	if len(presets) == 0 {
		t.Fatal("no presets")
	}
	seen := map[string]bool{}
	for _, p := range presets {
		if seen[p.Name] {
			t.Fatalf("duplicate preset name %q", p.Name)
		}
		seen[p.Name] = true
		if p.Config.SampleRate != 48000 {
			t.Fatalf("%s: sample rate %d, want 48000", p.Name, p.Config.SampleRate)
		}
		if p.Config.DurationS > 0.170 {
			t.Fatalf("%s: duration %.3fs exceeds the convolver budget", p.Name, p.Config.DurationS)
		}
		ir, err := Generate(p.Config)
		if err != nil {
			t.Fatalf("%s: %v", p.Name, err)
		}
		if len(ir) == 0 {
			t.Fatalf("%s: empty IR", p.Name)
		}
	}
}
