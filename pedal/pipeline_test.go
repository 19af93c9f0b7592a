package pedal

import (
	"math"
	"testing"

	dspcore "github.com/cwbudde/algo-dsp/dsp/core"
	dspsignal "github.com/cwbudde/algo-dsp/dsp/signal"
	dspspectrum "github.com/cwbudde/algo-dsp/dsp/spectrum"
)

// renderMono pushes a mono signal through the pipeline in fixed blocks and
// returns the left output channel.
func renderMono(t *testing.T, p *Pipeline, input []float64) []float64 {
	t.Helper()
	in := make([]float32, 2*BlockSize)
	out := make([]float32, 2*BlockSize)
	rendered := make([]float64, 0, len(input))

	for pos := 0; pos+BlockSize <= len(input); pos += BlockSize {
		for i := 0; i < BlockSize; i++ {
			in[2*i] = float32(input[pos+i])
			in[2*i+1] = float32(input[pos+i])
		}
		p.ProcessBlock(in, out)
		for i := 0; i < BlockSize; i++ {
			rendered = append(rendered, float64(out[2*i]))
		}
	}
	return rendered
}

// magnitudeAt measures the frequency component over the second half of the
// signal, after filter transients have decayed.
func magnitudeAt(t *testing.T, freq float64, samples []float64) float64 {
	t.Helper()
	g, err := dspspectrum.NewGoertzel(freq, SampleRate)
	if err != nil {
		t.Fatalf("goertzel: %v", err)
	}
	g.ProcessBlock(samples[len(samples)/2:])
	return g.Magnitude()
}

func sine(t *testing.T, freq float64, samples int) []float64 {
	t.Helper()
	gen := dspsignal.NewGenerator(dspcore.WithSampleRate(SampleRate))
	s, err := gen.Sine(freq, 0.5, samples)
	if err != nil {
		t.Fatalf("sine: %v", err)
	}
	return s
}

func newBypassedPipeline() *Pipeline {
	bank := NewBank(Catalog{}, BlockSize)
	return NewPipeline(bank, SampleRate, BlockSize)
}

func TestPipelineOutputIsDualMono(t *testing.T) {
	bank := NewBank(testCatalog(2), BlockSize)
	bank.RequestLoad(0)
	p := NewPipeline(bank, SampleRate, BlockSize)
	p.SetGain(1.5)

	in := make([]float32, 2*BlockSize)
	out := make([]float32, 2*BlockSize)
	for i := 0; i < BlockSize; i++ {
		in[2*i] = float32(math.Sin(float64(i) * 0.3))
	}
	p.ProcessBlock(in, out)
	for i := 0; i < BlockSize; i++ {
		if out[2*i] != out[2*i+1] {
			t.Fatalf("channels differ at frame %d: %g vs %g", i, out[2*i], out[2*i+1])
		}
	}
}

func TestPipelineZeroGainBypassIsPassthrough(t *testing.T) {
	p := newBypassedPipeline()
	p.SetGain(0)

	input := sine(t, 440, 4*BlockSize)
	output := renderMono(t, p, input)
	for i := range output {
		if d := math.Abs(output[i] - float64(float32(input[i]))); d > 1e-7 {
			t.Fatalf("passthrough altered sample %d by %g", i, d)
		}
	}
}

func TestPipelineBoostsCenterBandByTwelveDB(t *testing.T) {
	// Max gain (3.0) at the 110 Hz center: output ≈ (1 + 3)·input = +12 dB.
	input := sine(t, BoostCenterHz, SampleRate)

	flat := newBypassedPipeline()
	flat.SetGain(0)
	ref := magnitudeAt(t, BoostCenterHz, renderMono(t, flat, input))

	boosted := newBypassedPipeline()
	boosted.SetGain(GainParam().Map(1))
	got := magnitudeAt(t, BoostCenterHz, renderMono(t, boosted, input))

	gainDB := 20 * math.Log10(got/ref)
	if math.Abs(gainDB-12.0) > 0.5 {
		t.Fatalf("center-band boost = %.2f dB, want ~12 dB", gainDB)
	}
}

func TestPipelineLeavesFarBandNearlyFlat(t *testing.T) {
	input := sine(t, 2000, SampleRate)

	flat := newBypassedPipeline()
	flat.SetGain(0)
	ref := magnitudeAt(t, 2000, renderMono(t, flat, input))

	boosted := newBypassedPipeline()
	boosted.SetGain(3.0)
	got := magnitudeAt(t, 2000, renderMono(t, boosted, input))

	gainDB := 20 * math.Log10(got/ref)
	if math.Abs(gainDB) > 1.0 {
		t.Fatalf("far-band gain = %.2f dB, want within ±1 dB", gainDB)
	}
}

func TestPipelineIdentityKernelMatchesBypass(t *testing.T) {
	input := sine(t, 220, 8*BlockSize)

	bypassed := newBypassedPipeline()
	bypassed.SetGain(1.0)
	want := renderMono(t, bypassed, input)

	bank := NewBank(Catalog{{Name: "unity", Samples: []float32{1}}}, BlockSize)
	bank.RequestLoad(0)
	convolved := NewPipeline(bank, SampleRate, BlockSize)
	convolved.SetGain(1.0)
	got := renderMono(t, convolved, input)

	for i := range want {
		if d := math.Abs(got[i] - want[i]); d > 1e-4 {
			t.Fatalf("identity kernel differs from bypass at %d: %g", i, d)
		}
	}
}

func TestPipelineAppliesKernelGain(t *testing.T) {
	input := sine(t, 220, 8*BlockSize)

	bypassed := newBypassedPipeline()
	bypassed.SetGain(0)
	dry := renderMono(t, bypassed, input)

	bank := NewBank(Catalog{{Name: "half", Samples: []float32{0.5}}, {Name: "other", Samples: []float32{1}}}, BlockSize)
	bank.RequestLoad(0)
	p := NewPipeline(bank, SampleRate, BlockSize)
	p.SetGain(0)
	wet := renderMono(t, p, input)

	for i := range dry {
		if d := math.Abs(wet[i] - 0.5*dry[i]); d > 1e-4 {
			t.Fatalf("scaling kernel mismatch at %d: got %g want %g", i, wet[i], 0.5*dry[i])
		}
	}
}

func TestPipelineProcessBlockDoesNotAllocate(t *testing.T) {
	bank := NewBank(testCatalog(3), BlockSize)
	bank.RequestLoad(1)
	p := NewPipeline(bank, SampleRate, BlockSize)
	p.SetGain(2.0)

	in := make([]float32, 2*BlockSize)
	out := make([]float32, 2*BlockSize)
	for i := 0; i < BlockSize; i++ {
		in[2*i] = float32(i%7) * 0.1
	}

	allocs := testing.AllocsPerRun(200, func() {
		p.ProcessBlock(in, out)
	})
	if allocs != 0 {
		t.Fatalf("render path allocated %.1f times per block, want 0", allocs)
	}
}

func TestPipelineOversizedInputIsTruncated(t *testing.T) {
	p := newBypassedPipeline()
	p.SetGain(0)

	const extra = 8
	in := make([]float32, 2*(BlockSize+extra))
	out := make([]float32, 2*(BlockSize+extra))
	for i := range in {
		in[i] = 0.25
	}
	const sentinel = float32(-42)
	for i := range out {
		out[i] = sentinel
	}

	p.ProcessBlock(in, out)

	for i := 0; i < BlockSize; i++ {
		if out[2*i] != 0.25 || out[2*i+1] != 0.25 {
			t.Fatalf("frame %d not rendered: %g / %g", i, out[2*i], out[2*i+1])
		}
	}
	for i := BlockSize; i < BlockSize+extra; i++ {
		if out[2*i] != sentinel || out[2*i+1] != sentinel {
			t.Fatalf("frame %d past the block size was written: %g / %g", i, out[2*i], out[2*i+1])
		}
	}
}

func TestPipelineGainPublishIsVisible(t *testing.T) {
	p := newBypassedPipeline()
	p.SetGain(2.25)
	if got := p.Gain(); got != 2.25 {
		t.Fatalf("Gain = %g, want 2.25", got)
	}
}
