package settings

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func newFileStore(t *testing.T) (*Store, FileStorage) {
	t.Helper()
	fs := FileStorage{Path: filepath.Join(t.TempDir(), "settings.bin")}
	return NewStore(fs), fs
}

func TestLoadMissingRecordFallsBackToDefaults(t *testing.T) {
	s, _ := newFileStore(t)
	if idx := s.Load(12); idx != 0 {
		t.Fatalf("Load on empty storage = %d, want 0", idx)
	}
	if s.Record() != DefaultRecord() {
		t.Fatalf("record = %+v, want defaults", s.Record())
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s, fs := newFileStore(t)
	s.Load(12)
	s.MarkDirty(7)
	s.Flush()

	s2 := NewStore(fs)
	if idx := s2.Load(12); idx != 7 {
		t.Fatalf("round-trip index = %d, want 7", idx)
	}
	if v := s2.Record().SchemaVersion; v != CurrentVersion {
		t.Fatalf("round-trip version = %d, want %d", v, CurrentVersion)
	}
}

func TestSchemaMismatchRestoresDefaultsInOnePass(t *testing.T) {
	s, fs := newFileStore(t)
	if err := fs.Write(Record{SchemaVersion: CurrentVersion + 5, SelectedIndex: 9}); err != nil {
		t.Fatalf("seed write: %v", err)
	}
	if idx := s.Load(12); idx != 0 {
		t.Fatalf("Load after mismatch = %d, want default 0", idx)
	}
	if s.Record().SchemaVersion != CurrentVersion {
		t.Fatalf("version not corrected: %+v", s.Record())
	}
}

func TestLoadClampsWhenCatalogShrank(t *testing.T) {
	s, fs := newFileStore(t)
	if err := fs.Write(Record{SchemaVersion: CurrentVersion, SelectedIndex: 11}); err != nil {
		t.Fatalf("seed write: %v", err)
	}
	if idx := s.Load(8); idx != 7 {
		t.Fatalf("Load with shrunk catalog = %d, want 7", idx)
	}
}

func TestLoadEmptyCatalogReturnsZero(t *testing.T) {
	s, fs := newFileStore(t)
	if err := fs.Write(Record{SchemaVersion: CurrentVersion, SelectedIndex: 3}); err != nil {
		t.Fatalf("seed write: %v", err)
	}
	if idx := s.Load(0); idx != 0 {
		t.Fatalf("Load with empty catalog = %d, want 0", idx)
	}
}

func TestLoadTruncatedRecordFallsBackToDefaults(t *testing.T) {
	fs := FileStorage{Path: filepath.Join(t.TempDir(), "settings.bin")}
	if err := os.WriteFile(fs.Path, []byte{1, 2, 3}, 0o644); err != nil {
		t.Fatalf("seed write: %v", err)
	}
	s := NewStore(fs)
	if idx := s.Load(12); idx != 0 {
		t.Fatalf("Load on truncated record = %d, want 0", idx)
	}
}

// countingStorage wraps another Storage and counts and optionally fails writes.
type countingStorage struct {
	inner    Storage
	writes   int
	failNext int
}

func (c *countingStorage) Read() (Record, error) { return c.inner.Read() }

func (c *countingStorage) Write(r Record) error {
	c.writes++
	if c.failNext > 0 {
		c.failNext--
		return errors.New("storage write failed")
	}
	return c.inner.Write(r)
}

func TestFlushIdempotentWhenClean(t *testing.T) {
	dir := t.TempDir()
	cs := &countingStorage{inner: FileStorage{Path: filepath.Join(dir, "settings.bin")}}
	s := NewStore(cs)
	s.Load(12)

	s.MarkDirty(4)
	s.Flush()
	s.Flush()
	s.Flush()
	if cs.writes != 1 {
		t.Fatalf("writes = %d, want exactly 1", cs.writes)
	}
}

func TestMarkDirtySameValueWhileCleanIsNoop(t *testing.T) {
	dir := t.TempDir()
	cs := &countingStorage{inner: FileStorage{Path: filepath.Join(dir, "settings.bin")}}
	s := NewStore(cs)
	s.Load(12)
	s.MarkDirty(4)
	s.Flush()

	s.MarkDirty(4)
	if s.Dirty() {
		t.Fatal("re-marking the stored value set the dirty flag")
	}
	s.Flush()
	if cs.writes != 1 {
		t.Fatalf("writes = %d, want 1", cs.writes)
	}
}

func TestFlushRetriesOnceThenDrops(t *testing.T) {
	dir := t.TempDir()
	cs := &countingStorage{inner: FileStorage{Path: filepath.Join(dir, "settings.bin")}, failNext: 2}
	s := NewStore(cs)
	s.Load(12)

	s.MarkDirty(4)
	s.Flush() // fails, stays dirty
	if !s.Dirty() {
		t.Fatal("first failed flush should leave the record dirty")
	}
	s.Flush() // fails again, dropped
	if s.Dirty() {
		t.Fatal("second failed flush should drop the write")
	}
	s.Flush()
	if cs.writes != 2 {
		t.Fatalf("writes = %d, want 2 (initial attempt + one retry)", cs.writes)
	}
}

func TestFlushRecoversAfterSingleFailure(t *testing.T) {
	dir := t.TempDir()
	fs := FileStorage{Path: filepath.Join(dir, "settings.bin")}
	cs := &countingStorage{inner: fs, failNext: 1}
	s := NewStore(cs)
	s.Load(12)

	s.MarkDirty(6)
	s.Flush() // fails
	s.Flush() // retry succeeds
	if s.Dirty() {
		t.Fatal("record still dirty after successful retry")
	}
	got, err := fs.Read()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if got.SelectedIndex != 6 {
		t.Fatalf("stored index = %d, want 6", got.SelectedIndex)
	}
}
