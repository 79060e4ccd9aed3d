// Copyright (c) 2026 Neomantra Corp
//
// benchrun is the Go analogue of elucitools::sadbench: it generates N
// records of a fixed-size u32 array payload with random 4-D boxes, times
// incremental insertion against a fresh bulk-load, and times M random-box
// queries against the result. Grounded on
// original_source/elucitools/src/sadbench.rs.

package benchrun

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/neomantra/elucidator-go"
)

const designationName = "pdf"

// Report is the measured outcome of one Run.
type Report struct {
	Count             int
	Size              int
	Queries           int
	IncrementalInsert time.Duration
	BulkInsert        time.Duration
	QueryElapsed      time.Duration
}

func (r Report) String() string {
	return fmt.Sprintf(
		"count=%d size=%d queries=%d incremental_insert=%s bulk_insert=%s query=%s",
		r.Count, r.Size, r.Queries, r.IncrementalInsert, r.BulkInsert, r.QueryElapsed,
	)
}

func randPair(rng *rand.Rand) (float64, float64) {
	a, b := rng.Float64(), rng.Float64()
	if a > b {
		return b, a
	}
	return a, b
}

func randomBox(rng *rand.Rand) elucidator.Box {
	xmin, xmax := randPair(rng)
	ymin, ymax := randPair(rng)
	zmin, zmax := randPair(rng)
	tmin, tmax := randPair(rng)
	return elucidator.Box{
		XMin: xmin, XMax: xmax,
		YMin: ymin, YMax: ymax,
		ZMin: zmin, ZMax: zmax,
		TMin: tmin, TMax: tmax,
	}
}

func randomRecord(rng *rand.Rand, d elucidator.Designation, size int) (elucidator.Record, error) {
	payload := make([]uint32, size)
	for i := range payload {
		payload[i] = rng.Uint32()
	}
	buf, err := d.Encode(map[string]elucidator.Value{"pdf": elucidator.NewU32ArrayValue(payload)})
	if err != nil {
		return elucidator.Record{}, err
	}
	bb := randomBox(rng)
	return elucidator.Record{
		XMin: bb.XMin, XMax: bb.XMax,
		YMin: bb.YMin, YMax: bb.YMax,
		ZMin: bb.ZMin, ZMax: bb.ZMax,
		TMin: bb.TMin, TMax: bb.TMax,
		Designation: designationName,
		Buffer:      buf,
	}, nil
}

// Run generates count records of the given array size, times an incremental
// insert of all of them into one store and a bulk-load of the same records
// into another, then runs queries random boxed queries against the
// bulk-loaded store and times the total.
func Run(count, size, queries int, rng *rand.Rand) (Report, error) {
	const spec = "pdf: u32[]"
	d, err := elucidator.FromText(spec)
	if err != nil {
		return Report{}, err
	}

	records := make([]elucidator.Record, count)
	for i := range records {
		rec, err := randomRecord(rng, d, size)
		if err != nil {
			return Report{}, err
		}
		records[i] = rec
	}

	incrementalStore := elucidator.NewStore()
	if err := incrementalStore.InsertSpecText(designationName, spec); err != nil {
		return Report{}, err
	}
	start := time.Now()
	for _, rec := range records {
		if err := incrementalStore.Insert(rec); err != nil {
			return Report{}, err
		}
	}
	incrementalElapsed := time.Since(start)

	bulkStore := elucidator.NewStore()
	if err := bulkStore.InsertSpecText(designationName, spec); err != nil {
		return Report{}, err
	}
	start = time.Now()
	if err := bulkStore.BulkLoad(records); err != nil {
		return Report{}, err
	}
	bulkElapsed := time.Since(start)

	const eps = 1e-16
	start = time.Now()
	for i := 0; i < queries; i++ {
		if _, err := bulkStore.GetInBB(randomBox(rng), designationName, eps); err != nil {
			return Report{}, err
		}
	}
	queryElapsed := time.Since(start)

	return Report{
		Count:             count,
		Size:              size,
		Queries:           queries,
		IncrementalInsert: incrementalElapsed,
		BulkInsert:        bulkElapsed,
		QueryElapsed:      queryElapsed,
	}, nil
}
