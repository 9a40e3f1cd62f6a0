// Package testutil provides shared helpers for building config fixtures.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// SetupTestConfig writes a minimal valid config file into tmpDir and returns
// its path.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	return WriteConfig(t, tmpDir, map[string]any{
		"dictionary": map[string]any{
			"base_url":        "https://api.dictionaryapi.dev/api/v2/entries/en",
			"request_timeout": "5s",
		},
		"history": map[string]any{
			"file":     filepath.Join(tmpDir, "history.json"),
			"capacity": 5,
		},
	})
}

// WriteConfig serializes cfg as YAML into tmpDir/config.yml.
func WriteConfig(t *testing.T, tmpDir string, cfg map[string]any) string {
	t.Helper()

	contents, err := yaml.Marshal(cfg)
	require.NoError(t, err)

	path := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(path, contents, 0o644))
	return path
}
