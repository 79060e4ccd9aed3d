// Copyright (c) 2026 Neomantra Corp
//
// query loads a persisted store snapshot and runs a 4-D bounding-box query
// against it, printing matches as JSON.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/neomantra/elucidator-go"
	"github.com/spf13/cobra"
)

var queryFlags struct {
	snapshot    string
	designation string
	epsilon     float64
	xmin, xmax  float64
	ymin, ymax  float64
	zmin, zmax  float64
	tmin, tmax  float64
	blobsOnly   bool
}

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query a store snapshot by 4-D bounding box",
	Long:  "Load a store snapshot and run GetInBB (or GetBlobsInBB with --blobs-only) against it, printing matches as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		if queryFlags.designation == "" {
			return fmt.Errorf("--designation is required")
		}
		snapshot := queryFlags.snapshot
		if !cmd.Flags().Changed("snapshot") {
			if v := os.Getenv("ELUCIDATOR_SNAPSHOT"); v != "" {
				snapshot = v
			}
		}
		store, err := elucidator.Load(snapshot)
		if err != nil {
			return fmt.Errorf("loading snapshot: %w", err)
		}

		bb := elucidator.Box{
			XMin: queryFlags.xmin, XMax: queryFlags.xmax,
			YMin: queryFlags.ymin, YMax: queryFlags.ymax,
			ZMin: queryFlags.zmin, ZMax: queryFlags.zmax,
			TMin: queryFlags.tmin, TMax: queryFlags.tmax,
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")

		if queryFlags.blobsOnly {
			blobs := store.GetBlobsInBB(bb, queryFlags.designation, queryFlags.epsilon)
			return enc.Encode(blobs)
		}

		records, err := store.GetInBB(bb, queryFlags.designation, queryFlags.epsilon)
		if err != nil {
			return err
		}
		rendered := make([]map[string]string, len(records))
		for i, rec := range records {
			row := make(map[string]string, len(rec))
			for field, v := range rec {
				row[field] = formatValue(v)
			}
			rendered[i] = row
		}
		return enc.Encode(rendered)
	},
}

func init() {
	f := queryCmd.Flags()
	f.StringVar(&queryFlags.snapshot, "snapshot", "store.gob", "path to a store snapshot written by a Store.Save call (or set ELUCIDATOR_SNAPSHOT)")
	f.StringVar(&queryFlags.designation, "designation", "", "designation name to filter matches by")
	f.Float64Var(&queryFlags.epsilon, "epsilon", 0, "symmetric inflation applied to the query box on all four axes")
	f.Float64Var(&queryFlags.xmin, "xmin", 0, "")
	f.Float64Var(&queryFlags.xmax, "xmax", 0, "")
	f.Float64Var(&queryFlags.ymin, "ymin", 0, "")
	f.Float64Var(&queryFlags.ymax, "ymax", 0, "")
	f.Float64Var(&queryFlags.zmin, "zmin", 0, "")
	f.Float64Var(&queryFlags.zmax, "zmax", 0, "")
	f.Float64Var(&queryFlags.tmin, "tmin", 0, "")
	f.Float64Var(&queryFlags.tmax, "tmax", 0, "")
	f.BoolVar(&queryFlags.blobsOnly, "blobs-only", false, "skip decoding, print raw buffers base64-encoded instead")
}
