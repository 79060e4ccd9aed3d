// Copyright (c) 2026 Neomantra Corp
//
// Persistence is a collaborator at the store's boundary, not a SQL backend:
// Save/Load round-trip a Store through a single gob-encoded snapshot,
// optionally zstd-compressed via MakeCompressedWriter/MakeCompressedReader
// (see compressed_io.go). Grounded on elucidator-db/src/backends/rtree.rs's
// save_as/from_path, which round-trips designation spec text and raw
// records through its SQL-backed collaborator; this snapshot keeps the same
// two-part shape (spec text per designation, plus every record) without a
// database engine in the loop.

package elucidator

import (
	"encoding/gob"
)

// snapshot is the gob-serializable shape of a Store: designation spec text
// keyed by name (re-parsed with FromText on Load, never trusted verbatim),
// and every inserted record.
type snapshot struct {
	Designations map[string]string
	Records      []Record
}

// Save writes the Store's full contents to filename. If filename ends in
// ".zst" or ".zstd" the snapshot is zstd-compressed.
func (s *Store) Save(filename string) error {
	s.mu.RLock()
	snap := snapshot{
		Designations: make(map[string]string, len(s.designations)),
		Records:      make([]Record, len(s.records)),
	}
	for name, d := range s.designations {
		snap.Designations[name] = d.String()
	}
	for i, rec := range s.records {
		snap.Records[i] = *rec
	}
	s.mu.RUnlock()

	writer, closer, err := MakeCompressedWriter(filename, false)
	if err != nil {
		return err
	}
	defer closer()
	return gob.NewEncoder(writer).Encode(snap)
}

// Load reads a snapshot written by Save and returns a fresh Store built via
// BulkLoad, never incremental insertion, matching the atomic bulk-load
// contract.
func Load(filename string) (*Store, error) {
	reader, closer, err := MakeCompressedReader(filename, false)
	if err != nil {
		return nil, err
	}
	if closer != nil {
		defer closer.Close()
	}

	var snap snapshot
	if err := gob.NewDecoder(reader).Decode(&snap); err != nil {
		return nil, err
	}

	store := NewStore()
	for name, text := range snap.Designations {
		d, err := FromText(text)
		if err != nil {
			return nil, err
		}
		store.InsertDesignation(name, d)
	}
	if err := store.BulkLoad(snap.Records); err != nil {
		return nil, err
	}
	return store, nil
}
