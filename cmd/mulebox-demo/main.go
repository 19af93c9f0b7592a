// mulebox-demo plays the pedal live through the system audio device. The
// source is a WAV file (looped) or a built-in test tone; the control loop
// runs at its hardware cadence in the background while the audio callback
// pulls rendered blocks.
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/cwbudde/mulebox/internal/wavutil"
	"github.com/cwbudde/mulebox/irdata"
	"github.com/cwbudde/mulebox/pedal"
	"github.com/cwbudde/mulebox/settings"
)

type knobControls struct {
	gain     float32
	selector float32
}

func (c knobControls) Gain() float32        { return c.gain }
func (c knobControls) Selector() float32    { return c.selector }
func (c knobControls) ResetRequested() bool { return false }

// streamer feeds the audio device: it pulls mono source samples, renders
// them through the pipeline block by block, and serializes the stereo
// result as float32 LE.
type streamer struct {
	pipeline *pedal.Pipeline
	source   []float32
	pos      int

	in      []float32
	out     []float32
	buf     []byte
	pending []byte
}

func newStreamer(p *pedal.Pipeline, source []float32) *streamer {
	return &streamer{
		pipeline: p,
		source:   source,
		in:       make([]float32, 2*pedal.BlockSize),
		out:      make([]float32, 2*pedal.BlockSize),
		buf:      make([]byte, 8*pedal.BlockSize),
	}
}

func (s *streamer) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if len(s.pending) == 0 {
			s.renderBlock()
		}
		c := copy(p[n:], s.pending)
		s.pending = s.pending[c:]
		n += c
	}
	return n, nil
}

func (s *streamer) renderBlock() {
	for i := 0; i < pedal.BlockSize; i++ {
		v := s.source[s.pos]
		s.pos++
		if s.pos >= len(s.source) {
			s.pos = 0
		}
		s.in[2*i] = v
		s.in[2*i+1] = v
	}
	s.pipeline.ProcessBlock(s.in, s.out)

	for i, v := range s.out {
		binary.LittleEndian.PutUint32(s.buf[4*i:], math.Float32bits(v))
	}
	s.pending = s.buf
}

func main() {
	input := flag.String("input", "", "Input WAV path (looped); empty plays a test tone")
	gain := flag.Float64("gain", 0.5, "Boost knob position in [0,1]")
	cab := flag.Int("cab", 0, "Cabinet index; out-of-range bypasses")
	duration := flag.Float64("duration", 10.0, "Playback duration in seconds")
	settingsPath := flag.String("settings", "mulebox-settings.bin", "Settings record path")
	flag.Parse()

	var source []float32
	if *input != "" {
		mono, err := wavutil.ReadMonoAtRate(*input, pedal.SampleRate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "input: %v\n", err)
			os.Exit(1)
		}
		source = wavutil.MonoToFloat32(mono)
	} else {
		source = testTone()
	}
	if len(source) == 0 {
		fmt.Fprintln(os.Stderr, "empty source")
		os.Exit(1)
	}

	controls := knobControls{
		gain:     float32(*gain),
		selector: float32(*cab) / float32(pedal.MaxPositions-1),
	}
	p, err := pedal.New(pedal.Config{
		Catalog:  irdata.Collection(),
		Storage:  settings.FileStorage{Path: *settingsPath},
		Controls: controls,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "pedal: %v\n", err)
		os.Exit(1)
	}

	stop := make(chan struct{})
	go p.Loop.Run(pedal.DefaultTickPeriod, stop)

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   pedal.SampleRate,
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
		BufferSize:   20 * time.Millisecond,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "audio: %v\n", err)
		os.Exit(1)
	}
	<-ready

	player := ctx.NewPlayer(newStreamer(p.Pipeline, source))
	player.Play()
	fmt.Printf("Playing %.1fs: gain=%.2f cab=%d\n", *duration, *gain, *cab)
	time.Sleep(time.Duration(*duration * float64(time.Second)))

	if err := player.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "close: %v\n", err)
	}
	close(stop)
}

// testTone is a low E chug: a 82.4 Hz fundamental with a couple of
// harmonics under a repeating pluck envelope.
func testTone() []float32 {
	const pluckSec = 0.5
	n := int(pluckSec * pedal.SampleRate)
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		t := float64(i) / pedal.SampleRate
		env := math.Exp(-t * 6.0)
		v := 0.5*math.Sin(2*math.Pi*82.4*t) +
			0.25*math.Sin(2*math.Pi*164.8*t) +
			0.12*math.Sin(2*math.Pi*247.2*t)
		out[i] = float32(0.6 * env * v)
	}
	return out
}
