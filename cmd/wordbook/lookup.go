package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/okanda/wordbook/internal/dictionary"
	"github.com/okanda/wordbook/internal/view"
)

func newLookupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <word>",
		Short: "Look up a word and print its first definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := strings.ToLower(strings.TrimSpace(args[0]))
			if word == "" {
				return errors.New(view.MsgEmptyInput)
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			client := dictionary.NewClient(cfg.Dictionary.BaseURL, cfg.Dictionary.RequestTimeout)
			defer func() {
				_ = client.Close()
			}()

			entry, err := client.Lookup(cmd.Context(), word)
			if err != nil {
				if errors.Is(err, dictionary.ErrNotFound) {
					return errors.New(view.NotFoundMessage(word))
				}
				return fmt.Errorf("client.Lookup > %w", err)
			}

			store := openHistory(cfg)
			if err := store.Record(word); err != nil {
				return fmt.Errorf("store.Record > %w", err)
			}

			printResult(cmd.OutOrStdout(), view.BuildResult(entry))
			return nil
		},
	}
}

func printResult(w io.Writer, result view.ResultView) {
	bold := color.New(color.Bold)
	italic := color.New(color.Italic)
	faint := color.New(color.Faint)

	_, _ = bold.Fprint(w, result.Title)
	_, _ = fmt.Fprint(w, "  ")
	_, _ = italic.Fprintln(w, result.Phonetic)
	_, _ = fmt.Fprintf(w, "%s %s\n", result.Icon, result.PartOfSpeech)
	_, _ = fmt.Fprintf(w, "Meaning: %s\n", result.Definition)
	if result.HasExample {
		_, _ = fmt.Fprintf(w, "Example: %s\n", result.Example)
	} else {
		_, _ = faint.Fprintf(w, "Example: %s\n", result.Example)
	}
	if result.HasAudio {
		_, _ = fmt.Fprintf(w, "Audio: %s\n", result.AudioURL)
	} else {
		_, _ = faint.Fprintln(w, "Audio: not available")
	}
}
