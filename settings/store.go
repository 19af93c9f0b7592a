// Package settings persists the last-applied kernel selection across power
// cycles. The stored record is a fixed 8-byte little-endian layout at a
// fixed storage location; writes are deferred to the control loop so the
// render path never waits on storage latency.
package settings

// CurrentVersion is the schema version this build reads and writes.
const CurrentVersion int32 = 1

// Record is the persisted configuration: a schema version and the selected
// kernel index. The layout mirrors the on-storage format one to one.
type Record struct {
	SchemaVersion int32
	SelectedIndex int32
}

// DefaultRecord returns the compiled-in defaults. By construction it carries
// CurrentVersion; a mismatch there would be a build defect, not a runtime
// condition.
func DefaultRecord() Record {
	return Record{SchemaVersion: CurrentVersion, SelectedIndex: 0}
}

// validateOrReset returns the record unchanged when its schema version is
// current, and the compiled defaults otherwise. Single corrective pass,
// no recursion.
func validateOrReset(r Record) Record {
	if r.SchemaVersion != CurrentVersion {
		return DefaultRecord()
	}
	return r
}

// Store holds the in-memory record and its dirty state. Load runs once at
// boot; MarkDirty and Flush run in the control context only.
type Store struct {
	storage Storage
	record  Record
	dirty   bool

	// Flush failure policy: a failed write stays dirty and is retried on
	// the next tick, at most once; a second consecutive failure drops the
	// write silently rather than hammering worn storage.
	failedWrites int
}

// NewStore creates a store over the given storage backend, initialized to
// the compiled defaults until Load is called.
func NewStore(storage Storage) *Store {
	return &Store{storage: storage, record: DefaultRecord()}
}

// Load reads the persisted record, restores defaults on a schema mismatch
// or read failure, and returns the selected index clamped defensively to
// [0, catalogSize-1] in case the catalog shrank since the record was
// written. For an empty catalog it returns 0; the caller bypasses anyway.
func (s *Store) Load(catalogSize int) int {
	r, err := s.storage.Read()
	if err != nil {
		r = DefaultRecord()
	}
	s.record = validateOrReset(r)

	idx := int(s.record.SelectedIndex)
	if idx < 0 {
		idx = 0
	}
	if catalogSize > 0 && idx > catalogSize-1 {
		idx = catalogSize - 1
	}
	if catalogSize <= 0 {
		idx = 0
	}
	s.record.SelectedIndex = int32(idx)
	return idx
}

// MarkDirty records a new selected index in memory and schedules a write.
// It does not touch storage; Flush does, on the next control tick. Marking
// the index already stored while clean is a no-op.
func (s *Store) MarkDirty(index int) {
	if !s.dirty && s.record.SelectedIndex == int32(index) {
		return
	}
	s.record.SelectedIndex = int32(index)
	s.dirty = true
	s.failedWrites = 0
}

// Flush writes the record to storage when dirty. Idempotent when clean: no
// write is issued at all.
func (s *Store) Flush() {
	if !s.dirty {
		return
	}
	if err := s.storage.Write(s.record); err != nil {
		s.failedWrites++
		if s.failedWrites >= 2 {
			s.dirty = false
			s.failedWrites = 0
		}
		return
	}
	s.dirty = false
	s.failedWrites = 0
}

// Dirty reports whether an unflushed change is pending.
func (s *Store) Dirty() bool { return s.dirty }

// Record returns the current in-memory record.
func (s *Store) Record() Record { return s.record }
