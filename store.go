// Copyright (c) 2026 Neomantra Corp
//
// Store is the metadata store: a registry of named designations plus every
// Record inserted against them, indexed for 4-D range query. Grounded on
// elucidator-db/src/database.rs's Database trait and
// elucidator-db/src/backends/rtree.rs's RTreeDatabase, the single Go
// backend standing in for the Rust workspace's rtree/sqlite backend split
// (a SQL-backed store is explicitly out of scope).

package elucidator

import (
	"fmt"
	"sync"

	"github.com/dhconnelly/rtreego"
)

// Record is one inserted buffer: its 4-D bounding box, the designation it is
// tagged with, and the raw bytes to decode against that designation.
type Record struct {
	XMin, XMax float64
	YMin, YMax float64
	ZMin, ZMax float64
	TMin, TMax float64
	Designation string
	Buffer      []byte
}

// Store is single-writer, reader/writer-lock-safe for concurrent reads: all
// mutation happens synchronously under a write lock, every query happens
// under a read lock, and there is no internal concurrency of its own.
type Store struct {
	mu          sync.RWMutex
	designations map[string]Designation
	records     []*Record
	index       *spatialIndex
}

// NewStore returns an empty Store ready for schema registration and inserts.
func NewStore() *Store {
	return &Store{
		designations: make(map[string]Designation),
		index:        newSpatialIndex(),
	}
}

// InsertSpecText parses and validates specText, then registers (or
// idempotently replaces) it in the registry under name.
func (s *Store) InsertSpecText(name, specText string) error {
	d, err := FromText(specText)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.designations[name] = d
	return nil
}

// InsertDesignation registers an already-built Designation under name,
// idempotently replacing any prior schema of the same name.
func (s *Store) InsertDesignation(name string, d Designation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.designations[name] = d
}

// Designation returns the schema registered under name.
func (s *Store) Designation(name string) (Designation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.designations[name]
	return d, ok
}

// Insert appends one Record, indexing it incrementally. The record's
// designation must already be registered.
func (s *Store) Insert(rec Record) error {
	return s.InsertN([]Record{rec})
}

// InsertN appends every record in recs, indexing each incrementally. This is
// the steady-state write path; Load uses BulkLoad instead for whole-snapshot
// construction.
func (s *Store) InsertN(recs []Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range recs {
		rec := recs[i]
		if _, ok := s.designations[rec.Designation]; !ok {
			return fmt.Errorf("unknown designation %q", rec.Designation)
		}
		stored := rec
		s.records = append(s.records, &stored)
		if err := s.index.insert(&stored); err != nil {
			return err
		}
	}
	return nil
}

// BulkLoad discards the current index and record set and rebuilds them from
// recs in one shot, for better tree quality than repeated incremental
// inserts. It is all-or-nothing: on error the Store is left unchanged.
func (s *Store) BulkLoad(recs []Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]*Record, len(recs))
	for i := range recs {
		rec := recs[i]
		if _, ok := s.designations[rec.Designation]; !ok {
			return fmt.Errorf("unknown designation %q", rec.Designation)
		}
		stored[i] = &rec
	}
	idx, err := bulkLoadIndex(stored)
	if err != nil {
		return err
	}
	s.records = stored
	s.index = idx
	return nil
}

// Box is a 4-D axis-aligned bounding box query argument.
type Box struct {
	XMin, XMax float64
	YMin, YMax float64
	ZMin, ZMax float64
	TMin, TMax float64
}

// minRectLength is the floor applied to every edge length, since
// rtreego.NewRect rejects a zero-length edge; a degenerate (point) box is
// bumped up to it rather than rejected, since point records and point
// queries are the common case for this store.
const minRectLength = 1e-9

func (b Box) inflate(eps float64) *rtreego.Rect {
	mins := []float64{b.XMin - eps, b.YMin - eps, b.ZMin - eps, b.TMin - eps}
	maxs := []float64{b.XMax + eps, b.YMax + eps, b.ZMax + eps, b.TMax + eps}
	lengths := make([]float64, len(mins))
	for i := range mins {
		lengths[i] = maxs[i] - mins[i]
		if lengths[i] < minRectLength {
			lengths[i] = minRectLength
		}
	}
	rect, _ := rtreego.NewRect(rtreego.Point(mins), lengths)
	return rect
}

// GetBlobsInBB returns the raw buffer of every record tagged with
// designation whose bounding box intersects bb, inflated symmetrically by
// epsilon on all four axes. No decoding or copying of the buffer occurs;
// callers that need typed fields should use GetInBB.
func (s *Store) GetBlobsInBB(bb Box, designation string, epsilon float64) [][]byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rect := bb.inflate(epsilon)
	hits := s.index.locateInEnvelope(rect)
	out := make([][]byte, 0, len(hits))
	for _, rec := range hits {
		if rec.Designation == designation {
			out = append(out, rec.Buffer)
		}
	}
	return out
}

// GetInBB is GetBlobsInBB composed with Designation.Interpret: every
// matching record's buffer is decoded against the registered schema for
// designation.
func (s *Store) GetInBB(bb Box, designation string, epsilon float64) ([]map[string]Value, error) {
	s.mu.RLock()
	d, ok := s.designations[designation]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown designation %q", designation)
	}
	blobs := s.GetBlobsInBB(bb, designation, epsilon)
	out := make([]map[string]Value, 0, len(blobs))
	for _, blob := range blobs {
		values, err := d.Interpret(blob)
		if err != nil {
			return nil, err
		}
		out = append(out, values)
	}
	return out, nil
}

// DesignationNames returns every registered designation name, unordered.
func (s *Store) DesignationNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.designations))
	for name := range s.designations {
		names = append(names, name)
	}
	return names
}

// Len returns the number of records currently stored.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
