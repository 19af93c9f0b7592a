package pedal

import "testing"

// testCatalog builds n short distinct kernels.
func testCatalog(n int) Catalog {
	c := make(Catalog, n)
	for i := range c {
		samples := make([]float32, 16+i)
		samples[0] = 1.0
		samples[1] = float32(i) * 0.01
		c[i] = Kernel{Name: "cab", Samples: samples}
	}
	return c
}

func TestBankStartsBypassed(t *testing.T) {
	b := NewBank(testCatalog(4), BlockSize)
	if !b.Bypassed() {
		t.Fatal("new bank should be bypassed")
	}
	if b.Active() != nil {
		t.Fatal("new bank should publish no kernel")
	}
	if b.ActiveIndex() != -1 {
		t.Fatalf("ActiveIndex = %d, want -1", b.ActiveIndex())
	}
}

func TestBankLoadPublishesKernelAtomically(t *testing.T) {
	cat := testCatalog(4)
	b := NewBank(cat, BlockSize)
	b.RequestLoad(2)

	a := b.Active()
	if a == nil {
		t.Fatal("no kernel published after load")
	}
	if a.Index != 2 {
		t.Fatalf("published index = %d, want 2", a.Index)
	}
	if a.Len() != len(cat[2].Samples) {
		t.Fatalf("published length = %d, want %d", a.Len(), len(cat[2].Samples))
	}
	for i, v := range cat[2].Samples {
		if a.Samples[i] != v {
			t.Fatalf("RAM copy differs from catalog at %d", i)
		}
	}
	if b.Bypassed() || b.ActiveIndex() != 2 {
		t.Fatalf("state machine not in Idle(2): bypassed=%v index=%d", b.Bypassed(), b.ActiveIndex())
	}
}

func TestBankOutOfBoundsBypasses(t *testing.T) {
	b := NewBank(testCatalog(8), BlockSize)
	b.RequestLoad(3)
	b.RequestLoad(11)

	if !b.Bypassed() {
		t.Fatal("out-of-bounds load should bypass")
	}
	if b.Active() != nil {
		t.Fatal("bypass should publish nil")
	}
	if b.ActiveIndex() != 3 {
		t.Fatalf("bypass must not change the active index: got %d, want 3", b.ActiveIndex())
	}
}

func TestBankEmptyCatalogAlwaysBypasses(t *testing.T) {
	b := NewBank(Catalog{}, BlockSize)
	for _, idx := range []int{0, 1, 5, -1} {
		b.RequestLoad(idx)
		if !b.Bypassed() || b.Active() != nil {
			t.Fatalf("empty catalog must bypass for index %d", idx)
		}
	}
}

func TestBankIdempotentReload(t *testing.T) {
	b := NewBank(testCatalog(4), BlockSize)
	b.RequestLoad(1)
	first := b.Active()
	b.RequestLoad(1)
	if b.Active() != first {
		t.Fatal("reloading the active index must not republish")
	}
}

func TestBankRecoversFromBypass(t *testing.T) {
	b := NewBank(testCatalog(4), BlockSize)
	b.RequestLoad(1)
	b.RequestLoad(9) // bypass
	b.RequestLoad(1) // same index, but bypassed: must reload

	a := b.Active()
	if a == nil || a.Index != 1 {
		t.Fatal("in-bounds load after bypass must republish the kernel")
	}
	if b.Bypassed() {
		t.Fatal("bank still bypassed after recovery load")
	}
}

func TestBankAlternatesRAMBuffers(t *testing.T) {
	b := NewBank(testCatalog(4), BlockSize)
	b.RequestLoad(0)
	first := b.Active()
	b.RequestLoad(1)
	second := b.Active()
	if &first.Samples[0] == &second.Samples[0] {
		t.Fatal("consecutive loads reused the same RAM buffer")
	}
}

func TestBankHeldSnapshotSurvivesOneLoad(t *testing.T) {
	cat := testCatalog(4)
	b := NewBank(cat, BlockSize)
	b.RequestLoad(0)
	held := b.Active()

	// The next load lands in the other RAM buffer, so a snapshot the render
	// context still holds keeps its samples. One generation only: a second
	// load would reuse held's buffer.
	b.RequestLoad(1)
	for i, v := range cat[0].Samples {
		if held.Samples[i] != v {
			t.Fatalf("held snapshot rewritten at %d: got %g want %g", i, held.Samples[i], v)
		}
	}
}

func TestBankKernelCopyIsBounded(t *testing.T) {
	long := make([]float32, MaxKernelLen+500)
	for i := range long {
		long[i] = 1
	}
	cat := Catalog{{Name: "oversized", Samples: long}}
	b := NewBank(cat, BlockSize)
	b.RequestLoad(0)

	a := b.Active()
	if a == nil {
		t.Fatal("load failed")
	}
	if a.Len() != MaxKernelLen {
		t.Fatalf("copy length = %d, want bounded at %d", a.Len(), MaxKernelLen)
	}
}

func TestBankConvolveIdentityKernel(t *testing.T) {
	cat := Catalog{{Name: "unity", Samples: []float32{1}}}
	b := NewBank(cat, 8)
	b.RequestLoad(0)
	a := b.Active()

	in := []float32{1, 0, -0.5, 0.25, 0, 0, 0.75, -1}
	out := make([]float32, 8)
	if err := a.Convolve(out, in); err != nil {
		t.Fatalf("Convolve: %v", err)
	}
	for i := range in {
		if d := out[i] - in[i]; d > 1e-5 || d < -1e-5 {
			t.Fatalf("identity kernel altered sample %d: got %g want %g", i, out[i], in[i])
		}
	}
}
