// Copyright (c) 2026 Neomantra Corp

package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/neomantra/elucidator-go"
	"github.com/neomantra/elucidator-go/internal/queryserver"
	"github.com/spf13/cobra"
)

var serveFlags struct {
	snapshot string
	addr     string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Load a snapshot and serve GET /query and GET /designations",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

		snapshot := serveFlags.snapshot
		if !cmd.Flags().Changed("snapshot") {
			if v := os.Getenv("ELUCIDATOR_SNAPSHOT"); v != "" {
				snapshot = v
			}
		}
		addr := serveFlags.addr
		if !cmd.Flags().Changed("addr") {
			if v := os.Getenv("ELUCIDATOR_ADDR"); v != "" {
				addr = v
			}
		}

		store, err := elucidator.Load(snapshot)
		if err != nil {
			return fmt.Errorf("loading snapshot: %w", err)
		}
		logger.Info("snapshot loaded", "path", snapshot, "records", store.Len())

		srv := queryserver.New(store, logger)
		logger.Info("listening", "addr", addr)
		return http.ListenAndServe(addr, srv.Handler())
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveFlags.snapshot, "snapshot", "store.gob", "path to a store snapshot (or set ELUCIDATOR_SNAPSHOT)")
	serveCmd.Flags().StringVar(&serveFlags.addr, "addr", ":8080", "address to listen on (or set ELUCIDATOR_ADDR)")
}
