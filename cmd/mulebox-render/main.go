// mulebox-render runs a WAV file through the pedal core offline: boost
// filter, optional cabinet convolution, and the persisted selection, all at
// the hardware's 48 kHz / 48-frame framing. The control loop is ticked
// inline at its 10 ms cadence so knob mappings behave exactly as on the
// unit.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cwbudde/mulebox/internal/wavutil"
	"github.com/cwbudde/mulebox/irdata"
	"github.com/cwbudde/mulebox/pedal"
	"github.com/cwbudde/mulebox/settings"
)

// staticControls reports fixed knob positions for offline rendering.
type staticControls struct {
	gain     float32
	selector float32
}

func (c *staticControls) Gain() float32        { return c.gain }
func (c *staticControls) Selector() float32    { return c.selector }
func (c *staticControls) ResetRequested() bool { return false }

func main() {
	input := flag.String("input", "input.wav", "Input WAV path (folded to mono)")
	output := flag.String("output", "output.wav", "Output WAV path (stereo)")
	gain := flag.Float64("gain", 0.5, "Boost knob position in [0,1]")
	cab := flag.Int("cab", -1, "Cabinet index; -1 restores the persisted selection, out-of-range bypasses")
	settingsPath := flag.String("settings", "mulebox-settings.bin", "Settings record path")
	list := flag.Bool("list", false, "List the factory cabinets and exit")
	flag.Parse()

	catalog := irdata.Collection()
	if *list {
		for i, k := range catalog {
			fmt.Printf("%2d  %-12s %5d samples (%.1f ms)\n",
				i, k.Name, len(k.Samples), float64(len(k.Samples))/float64(pedal.SampleRate)*1000)
		}
		return
	}

	mono, err := wavutil.ReadMonoAtRate(*input, pedal.SampleRate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "input: %v\n", err)
		os.Exit(1)
	}

	controls := &staticControls{gain: float32(*gain)}

	p, err := pedal.New(pedal.Config{
		Catalog:  catalog,
		Storage:  settings.FileStorage{Path: *settingsPath},
		Controls: controls,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "pedal: %v\n", err)
		os.Exit(1)
	}

	// Point the simulated selector knob at either the requested cabinet or
	// the selection restored from the settings record, so the inline control
	// ticks hold it there.
	position := *cab
	if position < 0 {
		position = p.Bank().ActiveIndex()
		if position < 0 {
			position = 0
		}
	}
	controls.selector = float32(position) / float32(pedal.MaxPositions-1)
	if *cab >= 0 {
		p.Loop.Tick() // apply the command-line selection before rendering
	}

	in := make([]float32, 2*pedal.BlockSize)
	out := make([]float32, 2*pedal.BlockSize)
	rendered := make([]float32, 0, 2*len(mono))

	// One control tick per 10 ms of audio.
	blocksPerTick := pedal.SampleRate / 100 / pedal.BlockSize
	blocks := 0
	for pos := 0; pos < len(mono); pos += pedal.BlockSize {
		n := len(mono) - pos
		if n > pedal.BlockSize {
			n = pedal.BlockSize
		}
		for i := 0; i < pedal.BlockSize; i++ {
			v := float32(0)
			if i < n {
				v = float32(mono[pos+i])
			}
			in[2*i] = v
			in[2*i+1] = v
		}
		p.Pipeline.ProcessBlock(in, out)
		rendered = append(rendered, out[:2*n]...)

		blocks++
		if blocks%blocksPerTick == 0 {
			p.Loop.Tick()
		}
	}
	p.Loop.Tick() // final flush opportunity

	if err := wavutil.WriteStereoInterleaved(*output, rendered, pedal.SampleRate); err != nil {
		fmt.Fprintf(os.Stderr, "output: %v\n", err)
		os.Exit(1)
	}

	active := "bypass"
	if a := p.Bank().Active(); a != nil {
		active = catalog[a.Index].Name
	}
	fmt.Printf("Rendered %d frames: gain=%.2f cab=%s -> %s (RMS %.4f)\n",
		len(rendered)/2, p.Pipeline.Gain(), active, *output, wavutil.RMS(rendered))
}
