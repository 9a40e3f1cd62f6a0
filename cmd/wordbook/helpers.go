package main

import (
	"fmt"

	"github.com/okanda/wordbook/internal/config"
	"github.com/okanda/wordbook/internal/history"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

func openHistory(cfg *config.Config) *history.Store {
	store := history.NewStore(history.NewFileKV(cfg.History.File), cfg.History.Capacity)
	store.Load()
	return store
}
