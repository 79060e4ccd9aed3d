// Copyright (c) 2026 Neomantra Corp

package main

import (
	"fmt"
	"os"

	"github.com/neomantra/elucidator-go"
	elucidator_tui "github.com/neomantra/elucidator-go/internal/tui"
	"github.com/spf13/pflag"
)

func main() {
	var snapshot string
	var showHelp bool

	pflag.BoolVarP(&showHelp, "help", "h", false, "Show help")
	pflag.StringVarP(&snapshot, "snapshot", "s", "", "path to a store snapshot written by Store.Save (the same file 'elucidator-cli query --snapshot' reads)")
	pflag.Parse()

	if showHelp {
		fmt.Fprintf(os.Stdout, "usage: %s [options]\n\n", os.Args[0])
		pflag.PrintDefaults()
		os.Exit(0)
	}

	var store *elucidator.Store
	var err error
	if snapshot == "" {
		store = elucidator.NewStore()
	} else {
		store, err = elucidator.Load(snapshot)
		if err != nil {
			fmt.Fprintf(os.Stderr, "loading snapshot: %s\n", err.Error())
			os.Exit(1)
		}
	}

	if err := elucidator_tui.Run(elucidator_tui.Config{Store: store}); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err.Error())
		os.Exit(1)
	}
}
