package pedal

import (
	"time"

	"github.com/cwbudde/mulebox/settings"
)

// DefaultTickPeriod matches the firmware's 10 ms control-poll delay.
const DefaultTickPeriod = 10 * time.Millisecond

// Config assembles a pedal from its external collaborators. Zero values
// for SampleRate and BlockSize fall back to the hardware defaults.
type Config struct {
	SampleRate int
	BlockSize  int
	Catalog    Catalog
	Storage    settings.Storage
	Controls   Controls

	// OnReset fires when the reset-to-bootloader switch is polled active.
	// Optional.
	OnReset func()
}

// Pedal wires the render context object (Pipeline) and the control context
// object (ControlLoop) around their shared state. There is no global state;
// every handle is passed explicitly.
type Pedal struct {
	Pipeline *Pipeline
	Loop     *ControlLoop

	bank      *Bank
	store     *settings.Store
	selection *SelectionController
}

// New boots a pedal: validates the catalog, restores the persisted
// selection (with one-shot schema recovery and defensive clamping), loads
// the restored kernel, and assembles both contexts.
func New(cfg Config) (*Pedal, error) {
	if cfg.SampleRate == 0 {
		cfg.SampleRate = SampleRate
	}
	if cfg.BlockSize == 0 {
		cfg.BlockSize = BlockSize
	}
	if err := cfg.Catalog.Validate(); err != nil {
		return nil, err
	}

	store := settings.NewStore(cfg.Storage)
	idx := store.Load(cfg.Catalog.Size())

	bank := NewBank(cfg.Catalog, cfg.BlockSize)
	bank.RequestLoad(idx) // empty catalog stays bypassed

	selection := NewSelectionController(bank, store)
	selection.Prime(idx)

	pipeline := NewPipeline(bank, cfg.SampleRate, cfg.BlockSize)
	loop := NewControlLoop(cfg.Controls, store, selection, pipeline, cfg.OnReset)

	return &Pedal{
		Pipeline:  pipeline,
		Loop:      loop,
		bank:      bank,
		store:     store,
		selection: selection,
	}, nil
}

// Bank exposes the kernel bank, mainly for hosts and tests that inspect
// the active selection.
func (p *Pedal) Bank() *Bank { return p.bank }

// Store exposes the settings store for hosts that surface persistence
// state (e.g. an indicator).
func (p *Pedal) Store() *settings.Store { return p.store }
