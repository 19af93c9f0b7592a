package pedal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cwbudde/mulebox/settings"
)

// fakeControls is a front panel with fixed readings.
type fakeControls struct {
	gain     float32
	selector float32
	reset    bool
}

func (f *fakeControls) Gain() float32        { return f.gain }
func (f *fakeControls) Selector() float32    { return f.selector }
func (f *fakeControls) ResetRequested() bool { return f.reset }

func newLoopFixture(t *testing.T, catalogSize int, controls Controls, onReset func()) (*ControlLoop, *Bank, *settings.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.bin")
	store := settings.NewStore(settings.FileStorage{Path: path})
	store.Load(catalogSize)
	bank := NewBank(testCatalog(catalogSize), BlockSize)
	selection := NewSelectionController(bank, store)
	pipeline := NewPipeline(bank, SampleRate, BlockSize)
	loop := NewControlLoop(controls, store, selection, pipeline, onReset)
	return loop, bank, store, path
}

func TestLoopTickPublishesMappedGain(t *testing.T) {
	controls := &fakeControls{gain: 1.0}
	loop, _, _, _ := newLoopFixture(t, 4, controls, nil)

	loop.Tick()
	if got := loop.pipeline.Gain(); got != 3.0 {
		t.Fatalf("published gain = %g, want 3.0", got)
	}

	controls.gain = 0
	loop.Tick()
	if got := loop.pipeline.Gain(); got != 0.0 {
		t.Fatalf("published gain = %g, want 0.0", got)
	}
}

func TestLoopTickAppliesSelection(t *testing.T) {
	controls := &fakeControls{selector: rawForPosition(3)}
	loop, bank, _, _ := newLoopFixture(t, 8, controls, nil)

	loop.Tick()
	if bank.ActiveIndex() != 3 || bank.Bypassed() {
		t.Fatalf("want Idle(3), got index=%d bypassed=%v", bank.ActiveIndex(), bank.Bypassed())
	}
}

func TestLoopFlushRunsBeforeSelection(t *testing.T) {
	// A change made in tick N is written out by tick N+1's flush, never
	// within the same tick.
	controls := &fakeControls{selector: rawForPosition(5)}
	loop, _, store, path := newLoopFixture(t, 8, controls, nil)

	loop.Tick()
	if !store.Dirty() {
		t.Fatal("selection change should leave the store dirty within its tick")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("settings must not hit storage in the tick that changed them")
	}

	loop.Tick()
	if store.Dirty() {
		t.Fatal("next tick's flush should clear the store")
	}
	rec, err := settings.FileStorage{Path: path}.Read()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if rec.SelectedIndex != 5 {
		t.Fatalf("persisted index = %d, want 5", rec.SelectedIndex)
	}
}

func TestLoopResetCallback(t *testing.T) {
	fired := 0
	controls := &fakeControls{}
	loop, _, _, _ := newLoopFixture(t, 4, controls, func() { fired++ })

	loop.Tick()
	if fired != 0 {
		t.Fatal("reset fired without the switch active")
	}
	controls.reset = true
	loop.Tick()
	loop.Tick()
	if fired != 2 {
		t.Fatalf("reset fired %d times over 2 active ticks, want 2", fired)
	}
}

func TestLoopNilResetIsSafe(t *testing.T) {
	controls := &fakeControls{reset: true}
	loop, _, _, _ := newLoopFixture(t, 4, controls, nil)
	loop.Tick() // must not panic
}

func TestLoopRunStopsOnClose(t *testing.T) {
	controls := &fakeControls{gain: 1.0}
	loop, _, _, _ := newLoopFixture(t, 4, controls, nil)

	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		loop.Run(time.Millisecond, stop)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for loop.pipeline.Gain() != 3.0 {
		select {
		case <-deadline:
			t.Fatal("loop never ticked")
		case <-time.After(time.Millisecond):
		}
	}

	close(stop)
	select {
	case <-done:
	case <-deadline:
		t.Fatal("loop did not stop")
	}
}
