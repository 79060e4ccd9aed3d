// Copyright (c) 2026 Neomantra Corp
//
// Grounded on elucitools/src/validate.rs: parse+validate a designation
// specification and report "All good!" or the formatted diagnostic.

package main

import (
	"fmt"
	"os"

	"github.com/neomantra/elucidator-go"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <spec-text>",
	Short: "Validate a designation specification",
	Long:  "Validate a designation specification, printing 'All good!' or a formatted diagnostic",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := elucidator.FromText(args[0]); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
		fmt.Println("All good!")
	},
}
