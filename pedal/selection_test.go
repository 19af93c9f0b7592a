package pedal

import (
	"path/filepath"
	"testing"

	"github.com/cwbudde/mulebox/settings"
)

func newSelectionFixture(t *testing.T, catalogSize int) (*SelectionController, *Bank, *settings.Store, settings.FileStorage) {
	t.Helper()
	fs := settings.FileStorage{Path: filepath.Join(t.TempDir(), "settings.bin")}
	store := settings.NewStore(fs)
	store.Load(catalogSize)
	bank := NewBank(testCatalog(catalogSize), BlockSize)
	return NewSelectionController(bank, store), bank, store, fs
}

// rawForPosition returns a raw selector value that quantizes to pos.
func rawForPosition(pos int) float32 {
	return float32(pos) / float32(MaxPositions-1)
}

func TestSelectionLoadsAndPersistsInBoundsPosition(t *testing.T) {
	// Scenario: 12 kernels, knob at position 11.
	sel, bank, store, fs := newSelectionFixture(t, 12)

	sel.Tick(rawForPosition(11))
	if bank.ActiveIndex() != 11 || bank.Bypassed() {
		t.Fatalf("want Idle(11), got index=%d bypassed=%v", bank.ActiveIndex(), bank.Bypassed())
	}
	if !store.Dirty() {
		t.Fatal("selection change should mark settings dirty")
	}
	store.Flush()
	rec, err := fs.Read()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if rec.SelectedIndex != 11 {
		t.Fatalf("persisted index = %d, want 11", rec.SelectedIndex)
	}
}

func TestSelectionBypassesBeyondCatalog(t *testing.T) {
	// Scenario: 8 kernels, knob at position 11.
	sel, bank, store, _ := newSelectionFixture(t, 8)

	sel.Tick(rawForPosition(2))
	store.Flush()
	sel.Tick(rawForPosition(11))

	if !bank.Bypassed() {
		t.Fatal("position beyond catalog should bypass")
	}
	if bank.ActiveIndex() != 2 {
		t.Fatalf("bypass must leave active index at 2, got %d", bank.ActiveIndex())
	}
	if store.Dirty() {
		t.Fatal("bypass positions must not be persisted")
	}
}

func TestSelectionUnchangedPositionIsNoop(t *testing.T) {
	sel, bank, store, _ := newSelectionFixture(t, 8)

	sel.Tick(rawForPosition(3))
	store.Flush()
	published := bank.Active()

	for i := 0; i < 5; i++ {
		sel.Tick(rawForPosition(3))
	}
	if bank.Active() != published {
		t.Fatal("repeated ticks at the same position must not reload the kernel")
	}
	if store.Dirty() {
		t.Fatal("repeated ticks at the same position must not re-dirty settings")
	}
}

func TestSelectionPrimeSuppressesBootReapply(t *testing.T) {
	sel, bank, store, _ := newSelectionFixture(t, 8)
	bank.RequestLoad(5)
	sel.Prime(5)

	sel.Tick(rawForPosition(5))
	if store.Dirty() {
		t.Fatal("tick matching the primed selection must not mark dirty")
	}
}

func TestSelectionEmptyCatalogAlwaysBypasses(t *testing.T) {
	sel, bank, store, _ := newSelectionFixture(t, 0)
	for pos := 0; pos < MaxPositions; pos++ {
		sel.Tick(rawForPosition(pos))
		if !bank.Bypassed() {
			t.Fatalf("empty catalog must bypass at position %d", pos)
		}
	}
	if store.Dirty() {
		t.Fatal("empty catalog must never persist a selection")
	}
}
