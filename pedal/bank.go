package pedal

import (
	"sync/atomic"

	dspconv "github.com/cwbudde/algo-dsp/dsp/conv"
)

// ActiveKernel is the published snapshot of the kernel the render path
// convolves with. Index, samples and the block convolver travel as one
// immutable unit, so a reader can never pair the samples of one kernel with
// the metadata of another.
type ActiveKernel struct {
	Index   int
	Samples []float32

	conv *dspconv.StreamingOverlapAddT[float32, complex64]
}

// Len returns the kernel length in samples.
func (a *ActiveKernel) Len() int { return len(a.Samples) }

// Convolve processes one fixed-size block through the kernel. dst and src
// must both be the block size the Bank was built with. Zero-alloc.
func (a *ActiveKernel) Convolve(dst, src []float32) error {
	return a.conv.ProcessBlockTo(dst, src)
}

// Bank owns the RAM-resident copy of the active kernel and the load/bypass
// state machine. All transitions happen in the control context; the render
// context only calls Active. Two RAM buffers alternate between loads so a
// copy in progress never touches samples the render context may still be
// reading through a previously published snapshot. The guarantee spans one
// generation only: a second RequestLoad reuses the buffer the snapshot
// before last still references, so the control context must not issue two
// loads inside one render block. The control loop's one-load-per-tick
// cadence satisfies this.
type Bank struct {
	catalog   Catalog
	blockSize int

	bufs [2][]float32
	next int

	// Control-context view of the state machine.
	activeIndex int // last successfully loaded index, -1 before first load
	bypassed    bool

	// The single point of sharing with the render context. nil means bypass.
	active atomic.Pointer[ActiveKernel]
}

// NewBank creates a bank over the given catalog for a fixed audio block
// size. The bank starts bypassed until the first successful RequestLoad.
func NewBank(catalog Catalog, blockSize int) *Bank {
	b := &Bank{
		catalog:     catalog,
		blockSize:   blockSize,
		activeIndex: -1,
		bypassed:    true,
	}
	b.bufs[0] = make([]float32, MaxKernelLen)
	b.bufs[1] = make([]float32, MaxKernelLen)
	return b
}

// CatalogSize returns the number of kernels available to load.
func (b *Bank) CatalogSize() int { return b.catalog.Size() }

// ActiveIndex returns the last successfully loaded kernel index, or -1 if
// nothing has been loaded yet. It is retained across bypass transitions.
// Control context only.
func (b *Bank) ActiveIndex() int { return b.activeIndex }

// Bypassed reports whether the convolution stage is currently bypassed.
// Control context only.
func (b *Bank) Bypassed() bool { return b.bypassed }

// Active returns the currently published kernel, or nil when bypassed.
// This is the render context's only entry point into the bank; the returned
// snapshot stays valid for the whole block.
func (b *Bank) Active() *ActiveKernel {
	return b.active.Load()
}

// RequestLoad drives the state machine from the control context.
//
// An in-bounds index different from the active one copies that kernel into
// the inactive RAM buffer (bounded by MaxKernelLen), builds its block
// convolver and publishes the new snapshot. An out-of-bounds index, or any
// index against an empty catalog, publishes bypass without copying.
// Requesting the already-active index while not bypassed is a no-op.
func (b *Bank) RequestLoad(index int) {
	if index < 0 || index >= b.catalog.Size() {
		b.bypass()
		return
	}
	if index == b.activeIndex && !b.bypassed {
		return
	}

	k := b.catalog.At(index)
	n := len(k.Samples)
	if n > MaxKernelLen {
		n = MaxKernelLen
	}
	if n == 0 {
		// An empty kernel cannot drive the convolver; treat like out of bounds.
		b.bypass()
		return
	}

	buf := b.bufs[b.next][:n]
	copy(buf, k.Samples[:n])

	conv, err := dspconv.NewStreamingOverlapAdd32(buf, b.blockSize)
	if err != nil {
		b.bypass()
		return
	}

	b.active.Store(&ActiveKernel{Index: index, Samples: buf, conv: conv})
	b.next ^= 1
	b.activeIndex = index
	b.bypassed = false
}

func (b *Bank) bypass() {
	if b.bypassed {
		return
	}
	b.bypassed = true
	b.active.Store(nil)
}
