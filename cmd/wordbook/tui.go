package main

import (
	"strings"

	"github.com/okanda/wordbook/internal/audio"
	"github.com/okanda/wordbook/internal/dictionary"
	"github.com/okanda/wordbook/internal/tui"
)

func runTUI() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client := dictionary.NewClient(cfg.Dictionary.BaseURL, cfg.Dictionary.RequestTimeout)
	defer func() {
		_ = client.Close()
	}()

	return tui.Run(tui.Options{
		Client:      client,
		History:     openHistory(cfg),
		Player:      audio.NewExecPlayer(strings.Fields(cfg.Audio.PlayerCommand)),
		Suggestions: cfg.UI.Suggestions,
	})
}
