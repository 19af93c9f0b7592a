package settings

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
)

// recordSize is the fixed on-storage footprint: two little-endian int32s.
const recordSize = 8

// Storage is the non-volatile backing for exactly one Record. The low-level
// medium (flash sector, file, EEPROM emulation) stays outside this package;
// implementations only need whole-record reads and writes.
type Storage interface {
	Read() (Record, error)
	Write(Record) error
}

// FileStorage keeps the record in a single fixed-location file. Writes go
// through a temp file and rename so a power loss mid-write leaves either
// the old record or the new one, never a torn mix.
type FileStorage struct {
	Path string
}

// Read decodes the stored record.
func (f FileStorage) Read() (Record, error) {
	b, err := os.ReadFile(f.Path)
	if err != nil {
		return Record{}, err
	}
	if len(b) != recordSize {
		return Record{}, fmt.Errorf("settings: record has %d bytes, want %d", len(b), recordSize)
	}
	return Record{
		SchemaVersion: int32(binary.LittleEndian.Uint32(b[0:4])),
		SelectedIndex: int32(binary.LittleEndian.Uint32(b[4:8])),
	}, nil
}

// Write encodes and atomically replaces the stored record.
func (f FileStorage) Write(r Record) error {
	var b [recordSize]byte
	binary.LittleEndian.PutUint32(b[0:4], uint32(r.SchemaVersion))
	binary.LittleEndian.PutUint32(b[4:8], uint32(r.SelectedIndex))

	dir := filepath.Dir(f.Path)
	tmp, err := os.CreateTemp(dir, ".settings-*")
	if err != nil {
		return err
	}
	name := tmp.Name()
	if _, err := tmp.Write(b[:]); err != nil {
		tmp.Close()
		os.Remove(name)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return err
	}
	return os.Rename(name, f.Path)
}
