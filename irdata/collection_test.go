package irdata

import (
	"math"
	"testing"

	"github.com/cwbudde/mulebox/pedal"
)

func TestCollectionIsValidCatalog(t *testing.T) {
	cat := Collection()
	if err := cat.Validate(); err != nil {
		t.Fatalf("factory catalog invalid: %v", err)
	}
	if cat.Size() == 0 || cat.Size() > pedal.MaxPositions {
		t.Fatalf("catalog size %d outside the selector range", cat.Size())
	}
}

func TestCollectionKernelsAreSane(t *testing.T) {
	seen := map[string]bool{}
	for _, k := range Collection() {
		if k.Name == "" {
			t.Fatal("unnamed kernel")
		}
		if seen[k.Name] {
			t.Fatalf("duplicate kernel name %q", k.Name)
		}
		seen[k.Name] = true

		peak := 0.0
		energy := 0.0
		for i, v := range k.Samples {
			f := float64(v)
			if math.IsNaN(f) || math.IsInf(f, 0) {
				t.Fatalf("%s: non-finite sample at %d", k.Name, i)
			}
			if a := math.Abs(f); a > peak {
				peak = a
			}
			energy += f * f
		}
		if peak > 1.0 {
			t.Fatalf("%s: peak %g exceeds full scale", k.Name, peak)
		}
		if energy < 1e-6 {
			t.Fatalf("%s: near-silent kernel", k.Name)
		}
	}
}

func TestCollectionLoadsIntoBank(t *testing.T) {
	cat := Collection()
	b := pedal.NewBank(cat, pedal.BlockSize)
	for i := 0; i < cat.Size(); i++ {
		b.RequestLoad(i)
		a := b.Active()
		if a == nil || a.Index != i {
			t.Fatalf("kernel %d failed to load", i)
		}
		if a.Len() != len(cat[i].Samples) {
			t.Fatalf("kernel %d: loaded %d samples, want %d", i, a.Len(), len(cat[i].Samples))
		}
	}
}
