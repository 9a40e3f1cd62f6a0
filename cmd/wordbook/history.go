package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHistoryCommand() *cobra.Command {
	rootCommand := cobra.Command{
		Use:   "history",
		Short: "Show recently searched words, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			store := openHistory(cfg)
			words := store.Words()
			if len(words) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No searches yet.")
				return nil
			}
			for i, word := range words {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d: %s\n", i+1, word)
			}
			return nil
		},
	}

	rootCommand.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Forget all searched words",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			store := openHistory(cfg)
			if err := store.Clear(); err != nil {
				return fmt.Errorf("store.Clear > %w", err)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
			return nil
		},
	})
	return &rootCommand
}
