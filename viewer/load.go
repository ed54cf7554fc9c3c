package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"prdesk.io/viewer/align"
	"prdesk.io/viewer/config"
	"prdesk.io/viewer/report"
	"prdesk.io/viewer/review"
	"prdesk.io/viewer/tokenize"
)

// loadConfig loads the configuration, honoring the --config flag and all flags set on cmd.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	return config.Load(path, cmd.Flags())
}

// tokenizer returns the tokenizer for the file at path.
func tokenizer(c *config.Config) func(path string) align.Tokenizer {
	return func(path string) align.Tokenizer {
		switch {
		case c.Tokenizer != "lexer":
			return align.SplitWords
		case c.Lang != "":
			return tokenize.Lexer(tokenize.Lang(c.Lang))
		default:
			return tokenize.Lexer(tokenize.LangFromFilename(path))
		}
	}
}

func reportOptions(c *config.Config) report.Options {
	return report.Options{
		Title:     c.Title,
		Context:   c.Context,
		Tokenizer: tokenizer(c),
	}
}

// loadReview loads a review from a single review file, or creates one from an old and a new
// file.
func loadReview(inputs []string) (*review.Review, error) {
	switch len(inputs) {
	case 1:
		return review.Load(inputs[0])
	case 2:
		oldText, err := os.ReadFile(inputs[0])
		if err != nil {
			return nil, fmt.Errorf("reading old file: %v", err)
		}
		newText, err := os.ReadFile(inputs[1])
		if err != nil {
			return nil, fmt.Errorf("reading new file: %v", err)
		}
		return review.FromFiles(inputs[0], string(oldText), inputs[1], string(newText)), nil
	default:
		return nil, fmt.Errorf("want a review file or an old and a new file, got %d arguments", len(inputs))
	}
}

// build loads the inputs and renders them into a bundle.
func build(c *config.Config, inputs []string) (*report.Bundle, error) {
	r, err := loadReview(inputs)
	if err != nil {
		return nil, err
	}
	return report.Build(r, reportOptions(c))
}
