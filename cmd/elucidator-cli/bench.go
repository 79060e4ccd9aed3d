// Copyright (c) 2026 Neomantra Corp
//
// bench is a thin wrapper invoking the elucidator-bench logic in-process,
// for convenience when already using elucidator-cli.

package main

import (
	"log/slog"
	"math/rand"
	"os"

	"github.com/neomantra/elucidator-go/internal/benchrun"
	"github.com/spf13/cobra"
)

var benchFlags struct {
	count   int
	size    int
	queries int
	seed    int64
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run the insertion/query stress benchmark in-process",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		rng := rand.New(rand.NewSource(benchFlags.seed))
		report, err := benchrun.Run(benchFlags.count, benchFlags.size, benchFlags.queries, rng)
		if err != nil {
			return err
		}
		logger.Info("benchmark complete",
			"count", report.Count,
			"size", report.Size,
			"queries", report.Queries,
			"incremental_insert", report.IncrementalInsert,
			"bulk_insert", report.BulkInsert,
			"query", report.QueryElapsed,
		)
		return nil
	},
}

func init() {
	f := benchCmd.Flags()
	f.IntVar(&benchFlags.count, "count", 1000, "number of records to generate")
	f.IntVar(&benchFlags.size, "size", 64, "u32 array length per record")
	f.IntVar(&benchFlags.queries, "queries", 100, "number of random-box queries to run")
	f.Int64Var(&benchFlags.seed, "seed", 1, "random seed")
}
