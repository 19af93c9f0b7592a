package analysis

import (
	"math"
	"math/rand"
	"testing"
)

func TestCompareIdenticalIRsHasLowDistance(t *testing.T) {
	sr := 48000
	x := makeIR(sr, 0.06, []float64{95, 420, 1800}, 0.04)
	m := Compare(x, x, sr)
	if m.Score > 0.05 {
		t.Fatalf("expected very low score for identical IRs, got %f", m.Score)
	}
	if m.Similarity < 0.85 {
		t.Fatalf("expected high similarity for identical IRs, got %f", m.Similarity)
	}
}

func TestCompareDifferentCabinetsHasHigherDistance(t *testing.T) {
	sr := 48000
	bright := makeIR(sr, 0.05, []float64{120, 900, 3400, 5200}, 0.012)
	dark := makeIR(sr, 0.12, []float64{70, 210, 640}, 0.08)
	m := Compare(bright, dark, sr)
	if m.Score < 0.15 {
		t.Fatalf("expected higher score for different cabinets, got %f", m.Score)
	}
	if identical := Compare(bright, bright, sr); identical.Score >= m.Score {
		t.Fatalf("identical score %f not below cross score %f", identical.Score, m.Score)
	}
}

func TestCompareRanksCloserCandidateLower(t *testing.T) {
	sr := 48000
	ref := makeIR(sr, 0.06, []float64{95, 420, 1800}, 0.04)
	near := makeIR(sr, 0.06, []float64{100, 440, 1750}, 0.038)
	far := makeIR(sr, 0.06, []float64{60, 2400, 5100}, 0.01)

	mNear := Compare(ref, near, sr)
	mFar := Compare(ref, far, sr)
	if mNear.Score >= mFar.Score {
		t.Fatalf("near candidate scored %f, far %f; want near < far", mNear.Score, mFar.Score)
	}
}

func TestEstimateLagFindsPositiveShift(t *testing.T) {
	const (
		n      = 8192
		shift  = 137
		maxLag = 400
	)
	ref := randomSignal(n, 7)
	cand := make([]float64, n)
	copy(cand, ref[shift:])

	got := estimateLag(ref, cand, maxLag)
	if got != shift {
		t.Fatalf("estimateLag() = %d, want %d", got, shift)
	}
}

func TestEstimateLagFindsNegativeShift(t *testing.T) {
	const (
		n      = 8192
		shift  = -91
		maxLag = 400
	)
	ref := randomSignal(n, 11)
	cand := make([]float64, n)
	copy(cand[-shift:], ref)

	got := estimateLag(ref, cand, maxLag)
	if got != shift {
		t.Fatalf("estimateLag() = %d, want %d", got, shift)
	}
}

func TestCompareEmptyInputsScoreWorst(t *testing.T) {
	if m := Compare(nil, []float64{1}, 48000); m.Score != 1.0 {
		t.Fatalf("empty reference: score = %f, want 1", m.Score)
	}
	if m := Compare([]float64{1}, nil, 48000); m.Score != 1.0 {
		t.Fatalf("empty candidate: score = %f, want 1", m.Score)
	}
	if m := Compare([]float64{1}, []float64{1}, 0); m.Score != 1.0 {
		t.Fatalf("bad rate: score = %f, want 1", m.Score)
	}
}

func TestLogSpectralDistanceGrowsWithMismatch(t *testing.T) {
	sr := 48000
	ref := makeIR(sr, 0.05, []float64{95, 420}, 0.03)
	same := logSpectralRMSEDB(ref, ref)
	if same > 1e-9 {
		t.Fatalf("identical spectra distance = %g, want 0", same)
	}
	other := makeIR(sr, 0.05, []float64{300, 2800}, 0.01)
	if d := logSpectralRMSEDB(ref, other); d <= 1.0 {
		t.Fatalf("mismatched spectra distance = %g, want clearly above 0", d)
	}
}

// makeIR builds a plausible mono IR: an impulse plus decaying modes.
func makeIR(sr int, durationSec float64, modesHz []float64, decaySec float64) []float64 {
	n := int(float64(sr) * durationSec)
	if n < 1 {
		n = 1
	}
	out := make([]float64, n)
	out[0] = 0.5
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sr)
		env := math.Exp(-t / decaySec)
		for _, f := range modesHz {
			out[i] += 0.3 * env * math.Sin(2*math.Pi*f*t)
		}
	}
	return out
}

func randomSignal(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()*2 - 1
	}
	return out
}
