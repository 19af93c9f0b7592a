package pedal

import (
	"path/filepath"
	"testing"

	"github.com/cwbudde/mulebox/settings"
)

func TestPedalSelectionSurvivesReboot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.bin")
	storage := settings.FileStorage{Path: path}
	controls := &fakeControls{selector: rawForPosition(6)}

	p, err := New(Config{Catalog: testCatalog(8), Storage: storage, Controls: controls})
	if err != nil {
		t.Fatal(err)
	}
	p.Loop.Tick() // applies position 6
	p.Loop.Tick() // flushes it

	// Power cycle: a fresh pedal over the same storage.
	p2, err := New(Config{Catalog: testCatalog(8), Storage: storage, Controls: controls})
	if err != nil {
		t.Fatal(err)
	}
	if p2.Bank().ActiveIndex() != 6 || p2.Bank().Bypassed() {
		t.Fatalf("reboot restored index=%d bypassed=%v, want Idle(6)",
			p2.Bank().ActiveIndex(), p2.Bank().Bypassed())
	}
	if p2.Store().Dirty() {
		t.Fatal("boot restore must not mark the store dirty")
	}
}

func TestPedalBootClampsShrunkenCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.bin")
	storage := settings.FileStorage{Path: path}
	if err := storage.Write(settings.Record{SchemaVersion: settings.CurrentVersion, SelectedIndex: 11}); err != nil {
		t.Fatal(err)
	}

	p, err := New(Config{Catalog: testCatalog(8), Storage: storage, Controls: &fakeControls{}})
	if err != nil {
		t.Fatal(err)
	}
	if p.Bank().ActiveIndex() != 7 || p.Bank().Bypassed() {
		t.Fatalf("boot with shrunken catalog: index=%d bypassed=%v, want Idle(7)",
			p.Bank().ActiveIndex(), p.Bank().Bypassed())
	}
}

func TestPedalBootFirstTickIsQuiet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.bin")
	storage := settings.FileStorage{Path: path}
	if err := storage.Write(settings.Record{SchemaVersion: settings.CurrentVersion, SelectedIndex: 4}); err != nil {
		t.Fatal(err)
	}

	controls := &fakeControls{selector: rawForPosition(4)}
	p, err := New(Config{Catalog: testCatalog(8), Storage: storage, Controls: controls})
	if err != nil {
		t.Fatal(err)
	}
	published := p.Bank().Active()
	p.Loop.Tick()
	if p.Bank().Active() != published {
		t.Fatal("first tick matching the restored selection must not reload")
	}
	if p.Store().Dirty() {
		t.Fatal("first tick matching the restored selection must not re-dirty")
	}
}

func TestPedalRejectsInvalidCatalog(t *testing.T) {
	long := make([]float32, MaxKernelLen+1)
	cat := Catalog{{Name: "too-long", Samples: long}}
	if _, err := New(Config{Catalog: cat, Storage: settings.FileStorage{Path: filepath.Join(t.TempDir(), "s.bin")}, Controls: &fakeControls{}}); err == nil {
		t.Fatal("oversized kernel should fail catalog validation")
	}
}

func TestPedalEmptyCatalogBootsBypassed(t *testing.T) {
	p, err := New(Config{
		Catalog:  Catalog{},
		Storage:  settings.FileStorage{Path: filepath.Join(t.TempDir(), "s.bin")},
		Controls: &fakeControls{},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !p.Bank().Bypassed() || p.Bank().Active() != nil {
		t.Fatal("empty catalog must boot bypassed")
	}
}
