package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okanda/wordbook/internal/history"
	"github.com/okanda/wordbook/internal/testutil"
	"github.com/okanda/wordbook/internal/view"
)

// setupCommandConfig points the package-level config flag at a config file
// whose dictionary base URL is baseURL, and returns the history file path.
func setupCommandConfig(t *testing.T, baseURL string) string {
	t.Helper()

	tmpDir := t.TempDir()
	historyFile := filepath.Join(tmpDir, "history.json")
	path := testutil.WriteConfig(t, tmpDir, map[string]any{
		"dictionary": map[string]any{
			"base_url":        baseURL,
			"request_timeout": "5s",
		},
		"history": map[string]any{
			"file":     historyFile,
			"capacity": 5,
		},
	})

	previous := configFile
	configFile = path
	t.Cleanup(func() {
		configFile = previous
	})
	return historyFile
}

func disableColor(t *testing.T) {
	t.Helper()

	previous := color.NoColor
	color.NoColor = true
	t.Cleanup(func() {
		color.NoColor = previous
	})
}

func TestLookupCommand(t *testing.T) {
	disableColor(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/hello":
			_, _ = w.Write([]byte(`[{
				"word": "hello",
				"phonetic": "/həˈloʊ/",
				"phonetics": [{"text": "/həˈloʊ/", "audio": "https://example.com/hello.mp3"}],
				"meanings": [{
					"partOfSpeech": "exclamation",
					"definitions": [{"definition": "used as a greeting", "example": "hello there!"}]
				}]
			}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"title": "No Definitions Found"}`))
		}
	}))
	defer server.Close()

	t.Run("known word", func(t *testing.T) {
		historyFile := setupCommandConfig(t, server.URL)

		cmd := newLookupCommand()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs([]string{"Hello"})

		require.NoError(t, cmd.Execute())
		assert.Contains(t, out.String(), "hello  /həˈloʊ/")
		assert.Contains(t, out.String(), "¶ Exclamation")
		assert.Contains(t, out.String(), "Meaning: used as a greeting")
		assert.Contains(t, out.String(), "Example: hello there!")
		assert.Contains(t, out.String(), "Audio: https://example.com/hello.mp3")

		store := history.NewStore(history.NewFileKV(historyFile), history.DefaultCapacity)
		store.Load()
		assert.Equal(t, []string{"hello"}, store.Words())
	})

	t.Run("unknown word", func(t *testing.T) {
		historyFile := setupCommandConfig(t, server.URL)

		cmd := newLookupCommand()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"qwertyuiop"})

		err := cmd.Execute()
		require.Error(t, err)
		assert.Equal(t, view.NotFoundMessage("qwertyuiop"), err.Error())

		store := history.NewStore(history.NewFileKV(historyFile), history.DefaultCapacity)
		store.Load()
		assert.Empty(t, store.Words())
	})

	t.Run("blank word", func(t *testing.T) {
		setupCommandConfig(t, server.URL)

		cmd := newLookupCommand()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"   "})

		err := cmd.Execute()
		require.Error(t, err)
		assert.Equal(t, view.MsgEmptyInput, err.Error())
	})
}
