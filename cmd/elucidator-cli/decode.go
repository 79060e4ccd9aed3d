// Copyright (c) 2026 Neomantra Corp
//
// decode is the inverse of encode: interprets a hex buffer against a
// registered designation and prints each decoded field.

package main

import (
	"encoding/hex"
	"fmt"
	"sort"

	"github.com/neomantra/elucidator-go"
	"github.com/spf13/cobra"
)

var decodeRegistryPath string

var decodeCmd = &cobra.Command{
	Use:   "decode <designation> <hex-buffer>",
	Short: "Decode a hex buffer against a designation",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := loadRegistry(decodeRegistryPath)
		if err != nil {
			return fmt.Errorf("loading registry: %w", err)
		}
		name := args[0]
		specText, ok := registry[name]
		if !ok {
			return fmt.Errorf("designation %q not found in registry", name)
		}
		d, err := elucidator.FromText(specText)
		if err != nil {
			return fmt.Errorf("designation %q: %w", name, err)
		}
		buf, err := hex.DecodeString(args[1])
		if err != nil {
			return fmt.Errorf("decoding hex buffer: %w", err)
		}
		values, err := d.Interpret(buf)
		if err != nil {
			return err
		}

		keys := make([]string, 0, len(values))
		for k := range values {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("%s = %s\n", k, formatValue(values[k]))
		}
		return nil
	},
}

func init() {
	decodeCmd.Flags().StringVar(&decodeRegistryPath, "registry", "registry.txt", "path to the designation registry file")
}
