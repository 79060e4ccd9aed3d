// Copyright (c) 2026 Neomantra Corp
//
// encode loads a designation from a registry file and packs field=value
// arguments into its binary layout, writing hex-encoded bytes to stdout.

package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/neomantra/elucidator-go"
	"github.com/spf13/cobra"
)

var encodeRegistryPath string

var encodeCmd = &cobra.Command{
	Use:   "encode <designation> <field=value>...",
	Short: "Encode field assignments into a binary record",
	Long:  "Load a designation from a registry file, encode field=value arguments against it, and print the resulting hex buffer",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := loadRegistry(encodeRegistryPath)
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

		values := make(map[string]elucidator.Value, len(d.Members))
		for _, assignment := range args[1:] {
			field, text, ok := strings.Cut(assignment, "=")
			if !ok {
				return fmt.Errorf("malformed assignment %q, want field=value", assignment)
			}
			member, ok := findMember(d, field)
			if !ok {
				return fmt.Errorf("designation %q has no member %q", name, field)
			}
			v, err := parseFieldValue(member, text)
			if err != nil {
				return fmt.Errorf("field %q: %w", field, err)
			}
			values[field] = v
		}

		buf, err := d.Encode(values)
		if err != nil {
			return err
		}
		fmt.Println(hex.EncodeToString(buf))
		return nil
	},
}

func findMember(d elucidator.Designation, identifier string) (elucidator.Member, bool) {
	for _, m := range d.Members {
		if m.Identifier == identifier {
			return m, true
		}
	}
	return elucidator.Member{}, false
}

func init() {
	encodeCmd.Flags().StringVar(&encodeRegistryPath, "registry", "registry.txt", "path to the designation registry file")
}
