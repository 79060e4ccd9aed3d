// Copyright (c) 2026 Neomantra Corp
//
// elucidator-bench is the Go analogue of elucitools::sadbench: generate N
// PDF-shaped records with random 4-D boxes, time incremental insertion
// against a bulk-load of the same records, then time M random-box queries.
// Grounded on original_source/elucitools/src/sadbench.rs.

package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	"github.com/neomantra/elucidator-go/internal/benchrun"
	"github.com/spf13/pflag"
)

func main() {
	var (
		count   = pflag.Int("count", 1000, "number of records to generate")
		size    = pflag.Int("size", 64, "u32 array length per record")
		queries = pflag.Int("queries", 100, "number of random-box queries to run")
		seed    = pflag.Int64("seed", 1, "random seed")
		csvPath = pflag.String("save", "", "append a CSV row (count,size,queries,incremental,bulk,query) here instead of logging")
	)
	pflag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	rng := rand.New(rand.NewSource(*seed))

	report, err := benchrun.Run(*count, *size, *queries, rng)
	if err != nil {
		logger.Error("benchmark failed", "error", err)
		os.Exit(1)
	}

	if *csvPath == "" {
		logger.Info("benchmark complete",
			"count", report.Count,
			"size", report.Size,
			"queries", report.Queries,
			"incremental_insert", report.IncrementalInsert,
			"bulk_insert", report.BulkInsert,
			"query", report.QueryElapsed,
		)
		return
	}

	if err := appendCSVRow(*csvPath, report); err != nil {
		logger.Error("writing csv row failed", "error", err)
		os.Exit(1)
	}
}

func appendCSVRow(path string, r benchrun.Report) error {
	_, err := os.Stat(path)
	needsHeader := os.IsNotExist(err)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	if needsHeader {
		if _, err := fmt.Fprintln(f, "count,size,queries,incremental,bulk,query"); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(f, "%d,%d,%d,%f,%f,%f\n",
		r.Count, r.Size, r.Queries,
		r.IncrementalInsert.Seconds(), r.BulkInsert.Seconds(), r.QueryElapsed.Seconds())
	return err
}
