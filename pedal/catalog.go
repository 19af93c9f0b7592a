// Package pedal implements the control-and-render core of the MuleBox
// guitar processor: a resonant tone boost feeding an optional cabinet
// convolution stage, with the active impulse response selected from a
// front-panel knob and persisted across power cycles.
//
// The package separates two execution contexts. The render context calls
// Pipeline.ProcessBlock once per fixed-size audio block and never blocks,
// allocates, or initiates state transitions. The control context drives
// ControlLoop.Tick, which owns every mutation: kernel loads, bypass
// transitions and settings persistence. Shared state crosses over only
// through single-writer atomics.
package pedal

import "fmt"

// Engine constants inherited from the target hardware: 48 kHz audio with
// 48-sample blocks, impulse responses capped at 170 ms, and a 12-position
// selector knob.
const (
	SampleRate   = 48000
	BlockSize    = 48
	MaxKernelLen = 8160
	MaxPositions = 12
)

// Resonant boost voicing: a low-mid band centered at 110 Hz with a broad Q.
const (
	BoostCenterHz = 110.0
	BoostQ        = 0.7
)

// Kernel is one compiled-in impulse response: a name and its samples.
// Catalog entries are read-only; the Bank copies the samples it plays from.
type Kernel struct {
	Name    string
	Samples []float32
}

// Catalog is the ordered, fixed collection of kernels compiled into the
// firmware. Zero entries is a valid configuration and forces permanent
// bypass.
type Catalog []Kernel

// Size returns the number of kernels in the catalog.
func (c Catalog) Size() int { return len(c) }

// At returns the kernel at index i. The index must be in [0, Size).
func (c Catalog) At(i int) Kernel { return c[i] }

// Validate checks the catalog against the hardware limits.
func (c Catalog) Validate() error {
	if len(c) > MaxPositions {
		return fmt.Errorf("pedal: catalog has %d kernels, selector exposes %d positions", len(c), MaxPositions)
	}
	for i, k := range c {
		if len(k.Samples) == 0 {
			return fmt.Errorf("pedal: kernel %d (%q) is empty", i, k.Name)
		}
		if len(k.Samples) > MaxKernelLen {
			return fmt.Errorf("pedal: kernel %d (%q) has %d samples, max %d", i, k.Name, len(k.Samples), MaxKernelLen)
		}
	}
	return nil
}
