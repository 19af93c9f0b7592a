package pedal

import (
	"math"
	"sync/atomic"

	"github.com/cwbudde/mulebox/dsp"
)

// Pipeline is the render-path component. It reads the gain and the active
// kernel published by the control context and turns input blocks into
// dual-mono output blocks in bounded time: no allocation, no locks, no
// blocking call, for any kernel length up to MaxKernelLen.
type Pipeline struct {
	filter    *dsp.SVF
	bank      *Bank
	blockSize int

	// Boost gain, written by the control context via SetGain and read here.
	// Staleness of up to one control period is acceptable.
	gainBits atomic.Uint32

	// Scratch blocks, allocated once at construction.
	mono []float32
	wet  []float32
}

// NewPipeline creates the render path over the given bank. blockSize must
// match the block size the bank builds its convolvers for.
func NewPipeline(bank *Bank, sampleRate, blockSize int) *Pipeline {
	return &Pipeline{
		filter:    dsp.NewSVF(float64(sampleRate), BoostCenterHz, BoostQ),
		bank:      bank,
		blockSize: blockSize,
		mono:      make([]float32, blockSize),
		wet:       make([]float32, blockSize),
	}
}

// SetGain publishes a new boost gain. Control context only; the value is
// expected to be pre-clamped by GainParam.
func (p *Pipeline) SetGain(gain float32) {
	p.gainBits.Store(math.Float32bits(gain))
}

// Gain returns the most recently published boost gain.
func (p *Pipeline) Gain() float32 {
	return math.Float32frombits(p.gainBits.Load())
}

// ProcessBlock renders one audio block. in and out are stereo interleaved;
// the left channel is the mono source and both output channels receive the
// same value. The host delivers fixed-size blocks matching the configured
// block size; short blocks are processed sample-accurately but skip the
// convolution stage, which needs exact block framing. Oversized input is
// truncated to the block size and the tail of out is left unwritten.
func (p *Pipeline) ProcessBlock(in, out []float32) {
	frames := len(in) / 2
	if o := len(out) / 2; o < frames {
		frames = o
	}
	if frames > p.blockSize {
		frames = p.blockSize
	}

	gain := p.Gain()
	for i := 0; i < frames; i++ {
		x := in[2*i]
		p.filter.Process(x)
		p.mono[i] = x + p.filter.Peak()*gain
	}

	wet := p.mono[:frames]
	if active := p.bank.Active(); active != nil && frames == p.blockSize {
		if err := active.Convolve(p.wet, p.mono); err == nil {
			wet = p.wet
		}
	}

	for i := 0; i < frames; i++ {
		v := wet[i]
		out[2*i] = v
		out[2*i+1] = v
	}
}
