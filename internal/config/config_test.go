package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okanda/wordbook/internal/testutil"
	"github.com/okanda/wordbook/internal/view"
)

func TestLoad(t *testing.T) {
	t.Run("file with explicit values", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := testutil.WriteConfig(t, tmpDir, map[string]any{
			"dictionary": map[string]any{
				"base_url":        "https://dictionary.example.com/en",
				"request_timeout": "3s",
			},
			"history": map[string]any{
				"file":     filepath.Join(tmpDir, "history.json"),
				"capacity": 3,
			},
			"ui": map[string]any{
				"suggestions": []string{"petrichor", "sonder"},
			},
		})

		cfg, err := Load(configFile)
		require.NoError(t, err)
		assert.Equal(t, "https://dictionary.example.com/en", cfg.Dictionary.BaseURL)
		assert.Equal(t, 3*time.Second, cfg.Dictionary.RequestTimeout)
		assert.Equal(t, filepath.Join(tmpDir, "history.json"), cfg.History.File)
		assert.Equal(t, 3, cfg.History.Capacity)
		assert.Equal(t, []string{"petrichor", "sonder"}, cfg.UI.Suggestions)
	})

	t.Run("defaults fill missing sections", func(t *testing.T) {
		configFile := testutil.SetupTestConfig(t, t.TempDir())

		cfg, err := Load(configFile)
		require.NoError(t, err)
		assert.Equal(t, DefaultBaseURL, cfg.Dictionary.BaseURL)
		assert.Equal(t, 5*time.Second, cfg.Dictionary.RequestTimeout)
		assert.Equal(t, 5, cfg.History.Capacity)
		assert.Equal(t, view.DefaultSuggestions, cfg.UI.Suggestions)
		assert.Empty(t, cfg.Audio.PlayerCommand)
	})

	t.Run("player command from environment", func(t *testing.T) {
		t.Setenv("WORDBOOK_PLAYER", "mpv --no-video")
		configFile := testutil.SetupTestConfig(t, t.TempDir())

		cfg, err := Load(configFile)
		require.NoError(t, err)
		assert.Equal(t, "mpv --no-video", cfg.Audio.PlayerCommand)
	})

	t.Run("invalid base url", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := testutil.WriteConfig(t, tmpDir, map[string]any{
			"dictionary": map[string]any{
				"base_url": "not a url",
			},
			"history": map[string]any{
				"file":     filepath.Join(tmpDir, "history.json"),
				"capacity": 5,
			},
		})

		_, err := Load(configFile)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
		assert.Contains(t, err.Error(), "base_url")
	})

	t.Run("invalid history capacity", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := testutil.WriteConfig(t, tmpDir, map[string]any{
			"history": map[string]any{
				"file":     filepath.Join(tmpDir, "history.json"),
				"capacity": 0,
			},
		})

		_, err := Load(configFile)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
		assert.Contains(t, err.Error(), "capacity")
	})

	t.Run("too many suggestions", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := testutil.WriteConfig(t, tmpDir, map[string]any{
			"history": map[string]any{
				"file":     filepath.Join(tmpDir, "history.json"),
				"capacity": 5,
			},
			"ui": map[string]any{
				"suggestions": []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"},
			},
		})

		_, err := Load(configFile)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
	})

	t.Run("unreadable file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
		require.Error(t, err)
	})
}
