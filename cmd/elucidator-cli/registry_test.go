// Copyright (c) 2026 Neomantra Corp

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRegistry(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		contents string
		want     map[string]string
		wantErr  bool
	}{
		"basic entries": {
			contents: "foo = foo: u8\nbar = bar: u16[], baz: string\n",
			want:     map[string]string{"foo": "foo: u8", "bar": "bar: u16[], baz: string"},
		},
		"blank lines and comments are skipped": {
			contents: "\n# a comment\nfoo = foo: u8\n\n",
			want:     map[string]string{"foo": "foo: u8"},
		},
		"whitespace around name and spec is trimmed": {
			contents: "  foo   =   foo: u8  \n",
			want:     map[string]string{"foo": "foo: u8"},
		},
		"malformed line without '=' errors": {
			contents: "foo bar\n",
			wantErr:  true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "registry.txt")
			require.NoError(t, os.WriteFile(path, []byte(tc.contents), 0o644))

			got, err := loadRegistry(path)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLoadRegistryMissingFile(t *testing.T) {
	t.Parallel()
	_, err := loadRegistry(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
