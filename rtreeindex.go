// Copyright (c) 2026 Neomantra Corp
//
// 4-D spatial index over Record envelopes [(xmin,ymin,zmin,tmin),
// (xmax,ymax,zmax,tmax)], grounded on elucidator-db/src/backends/rtree.rs's
// RTreeDatabase: incremental Insert for steady-state writes, a one-shot
// BulkLoad for loading an entire snapshot at once with better tree quality,
// and LocateInEnvelope for intersection queries. The underlying tree is
// github.com/dhconnelly/rtreego's Rtree, the closest available Go analogue
// to the Rust rstar crate rtree.rs wraps; no example repo in the corpus
// ships an R-tree, so this dependency is named rather than grounded.

package elucidator

import "github.com/dhconnelly/rtreego"

const spatialDims = 4

// indexedRecord adapts a *Record to rtreego.Spatial so it can live in the
// tree; it carries the original record alongside its bounding rectangle.
type indexedRecord struct {
	record *Record
	rect   *rtreego.Rect
}

func (r *indexedRecord) Bounds() *rtreego.Rect { return r.rect }

func boundsOf(rec *Record) (*rtreego.Rect, error) {
	point := rtreego.Point{rec.XMin, rec.YMin, rec.ZMin, rec.TMin}
	lengths := []float64{
		rec.XMax - rec.XMin,
		rec.YMax - rec.YMin,
		rec.ZMax - rec.ZMin,
		rec.TMax - rec.TMin,
	}
	for i, l := range lengths {
		if l < minRectLength {
			lengths[i] = minRectLength
		}
	}
	return rtreego.NewRect(point, lengths)
}

// spatialIndex wraps an rtreego.Rtree restricted to 4 dimensions.
type spatialIndex struct {
	tree *rtreego.Rtree
}

func newSpatialIndex() *spatialIndex {
	return &spatialIndex{tree: rtreego.NewTree(spatialDims, 25, 50)}
}

// bulkLoadIndex builds a fresh tree from every record at once; used by Load
// per the spec's atomic bulk-load contract, never incremental insertion.
func bulkLoadIndex(records []*Record) (*spatialIndex, error) {
	objs := make([]rtreego.Spatial, 0, len(records))
	for _, rec := range records {
		rect, err := boundsOf(rec)
		if err != nil {
			return nil, err
		}
		objs = append(objs, &indexedRecord{record: rec, rect: rect})
	}
	return &spatialIndex{tree: rtreego.NewTree(spatialDims, 25, 50, objs...)}, nil
}

func (idx *spatialIndex) insert(rec *Record) error {
	rect, err := boundsOf(rec)
	if err != nil {
		return err
	}
	idx.tree.Insert(&indexedRecord{record: rec, rect: rect})
	return nil
}

// locateInEnvelope returns every record whose bounding box intersects bb.
// The tree's own result is already a safe superset of the true intersection
// set; callers that also filter by designation do so downstream.
func (idx *spatialIndex) locateInEnvelope(bb *rtreego.Rect) []*Record {
	hits := idx.tree.SearchIntersect(bb)
	out := make([]*Record, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.(*indexedRecord).record)
	}
	return out
}

func (idx *spatialIndex) size() int { return idx.tree.Size() }
