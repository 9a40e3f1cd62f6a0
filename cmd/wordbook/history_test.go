package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okanda/wordbook/internal/history"
)

func TestHistoryCommand(t *testing.T) {
	t.Run("empty history", func(t *testing.T) {
		setupCommandConfig(t, "https://dictionary.example.com/en")

		cmd := newHistoryCommand()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs([]string{})

		require.NoError(t, cmd.Execute())
		assert.Equal(t, "No searches yet.\n", out.String())
	})

	t.Run("lists most recent first", func(t *testing.T) {
		historyFile := setupCommandConfig(t, "https://dictionary.example.com/en")
		store := history.NewStore(history.NewFileKV(historyFile), history.DefaultCapacity)
		require.NoError(t, store.Record("alpha"))
		require.NoError(t, store.Record("beta"))

		cmd := newHistoryCommand()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs([]string{})

		require.NoError(t, cmd.Execute())
		assert.Equal(t, "1: beta\n2: alpha\n", out.String())
	})

	t.Run("clear", func(t *testing.T) {
		historyFile := setupCommandConfig(t, "https://dictionary.example.com/en")
		store := history.NewStore(history.NewFileKV(historyFile), history.DefaultCapacity)
		require.NoError(t, store.Record("alpha"))

		cmd := newHistoryCommand()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs([]string{"clear"})

		require.NoError(t, cmd.Execute())
		assert.Equal(t, "History cleared.\n", out.String())

		reloaded := history.NewStore(history.NewFileKV(historyFile), history.DefaultCapacity)
		reloaded.Load()
		assert.Empty(t, reloaded.Words())
	})
}
