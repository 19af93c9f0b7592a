package analysis

import (
	"math"
	"testing"
)

func BenchmarkLogSpectralRMSEDB(b *testing.B) {
	const n = 4096
	a, c := benchmarkIRs(n)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = logSpectralRMSEDB(a, c)
	}
}

func BenchmarkCompare(b *testing.B) {
	const n = 8160
	ref, cand := benchmarkIRs(n)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Compare(ref, cand, 48000)
	}
}

func benchmarkIRs(n int) ([]float64, []float64) {
	a := make([]float64, n)
	c := make([]float64, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		env := math.Exp(-6 * t)
		a[i] = env * (0.7*math.Sin(2*math.Pi*57*t) + 0.25*math.Sin(2*math.Pi*311*t))
		c[i] = env * (0.68*math.Sin(2*math.Pi*57*t+0.05) + 0.27*math.Sin(2*math.Pi*320*t))
	}
	a[0] += 0.5
	c[0] += 0.5
	return a, c
}
