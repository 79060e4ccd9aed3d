// Copyright (c) 2026 Neomantra Corp
//
// A registry file is a flat, line-oriented list of "name = spec text"
// entries, one designation per line; blank lines and lines starting with
// '#' are ignored. This is the CLI's on-disk counterpart to Store's
// in-memory registry, letting encode/decode/query subcommands share schemas
// without requiring a full store snapshot.

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

func loadRegistry(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	registry := make(map[string]string)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, spec, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("malformed registry line: %q", line)
		}
		registry[strings.TrimSpace(name)] = strings.TrimSpace(spec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return registry, nil
}
