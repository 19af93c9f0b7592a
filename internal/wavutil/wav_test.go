package wavutil

import (
	"math"
	"path/filepath"
	"testing"
)

func TestMonoWAVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")
	in := make([]float32, 480)
	for i := range in {
		in[i] = 0.5 * float32(math.Sin(2*math.Pi*440*float64(i)/48000))
	}
	if err := WriteMono(path, in, 48000); err != nil {
		t.Fatalf("WriteMono: %v", err)
	}

	out, rate, err := ReadMono(path)
	if err != nil {
		t.Fatalf("ReadMono: %v", err)
	}
	if rate != 48000 {
		t.Fatalf("rate = %d, want 48000", rate)
	}
	if len(out) != len(in) {
		t.Fatalf("length = %d, want %d", len(out), len(in))
	}
	// 16-bit quantization bounds the round-trip error.
	for i := range in {
		if d := math.Abs(out[i] - float64(in[i])); d > 1.0/32768*2 {
			t.Fatalf("sample %d differs by %g", i, d)
		}
	}
}

func TestStereoInterleavedFoldsToMono(t *testing.T) {
	path := filepath.Join(t.TempDir(), "st.wav")
	frames := 200
	inter := make([]float32, 2*frames)
	for i := 0; i < frames; i++ {
		inter[2*i] = 0.25
		inter[2*i+1] = 0.25
	}
	if err := WriteStereoInterleaved(path, inter, 48000); err != nil {
		t.Fatalf("WriteStereoInterleaved: %v", err)
	}
	mono, _, err := ReadMono(path)
	if err != nil {
		t.Fatalf("ReadMono: %v", err)
	}
	if len(mono) != frames {
		t.Fatalf("frames = %d, want %d", len(mono), frames)
	}
	if d := math.Abs(mono[10] - 0.25); d > 1.0/32768*2 {
		t.Fatalf("folded value off by %g", d)
	}
}

func TestResamplePassthrough(t *testing.T) {
	in := []float64{0, 0.1, 0.2, 0.3}
	out, err := Resample(in, 48000, 48000)
	if err != nil {
		t.Fatal(err)
	}
	if &out[0] != &in[0] {
		t.Fatal("same-rate resample should pass through")
	}
}

func TestResampleChangesLength(t *testing.T) {
	in := make([]float64, 9600)
	for i := range in {
		in[i] = math.Sin(2 * math.Pi * 440 * float64(i) / 96000)
	}
	out, err := Resample(in, 96000, 48000)
	if err != nil {
		t.Fatal(err)
	}
	want := len(in) / 2
	if got := len(out); got < want-64 || got > want+64 {
		t.Fatalf("resampled length = %d, want about %d", got, want)
	}
}

func TestNormalizePeak(t *testing.T) {
	x := []float32{0.1, -0.4, 0.2}
	NormalizePeak(x, 0.9)
	if d := math.Abs(float64(x[1]) + 0.9); d > 1e-6 {
		t.Fatalf("peak sample = %g, want -0.9", x[1])
	}

	silent := []float32{0, 0, 0}
	NormalizePeak(silent, 0.9)
	for _, v := range silent {
		if v != 0 {
			t.Fatal("silence must stay silent")
		}
	}
}

func TestRMS(t *testing.T) {
	x := []float32{1, -1, 1, -1}
	if got := RMS(x); math.Abs(got-1) > 1e-9 {
		t.Fatalf("RMS = %g, want 1", got)
	}
	if got := RMS(nil); got != 0 {
		t.Fatalf("RMS(nil) = %g, want 0", got)
	}
}
