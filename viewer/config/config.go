// Package config loads the settings of the viewer from defaults, an optional config file,
// PRDESK_* environment variables and command line flags, in increasing precedence.
package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"prdesk.io/viewer/render"
)

// Config holds the settings shared by all commands.
type Config struct {
	Format    string `mapstructure:"format"`    // Output format, see render.Formats
	Context   int    `mapstructure:"context"`   // Unchanged lines around changes, negative shows all
	Color     string `mapstructure:"color"`     // auto, always or never
	Tokenizer string `mapstructure:"tokenizer"` // words or lexer
	Lang      string `mapstructure:"lang"`      // Lexer language, derived from file names if empty
	Addr      string `mapstructure:"addr"`      // Listen address of serve
	Minify    bool   `mapstructure:"minify"`    // Minify packed documents
	Title     string `mapstructure:"title"`     // Overrides the report title
}

var defaults = map[string]any{
	"format":    "text",
	"context":   -1,
	"color":     "auto",
	"tokenizer": "words",
	"lang":      "",
	"addr":      "localhost:8080",
	"minify":    true,
	"title":     "",
}

var (
	colors     = []string{"auto", "always", "never"}
	tokenizers = []string{"words", "lexer"}
)

// RegisterFlags adds a flag for every setting to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "config file (yaml, json or toml)")
	fs.String("format", "text", "output format: "+strings.Join(render.Formats, ", "))
	fs.Int("context", -1, "unchanged lines shown around changes, negative shows all")
	fs.String("color", "auto", "colorize ansi output: "+strings.Join(colors, ", "))
	fs.String("tokenizer", "words", "tokenizer for changed lines: "+strings.Join(tokenizers, ", "))
	fs.String("lang", "", "language for the lexer tokenizer, derived from file names if empty")
	fs.String("addr", "localhost:8080", "address to listen on")
	fs.Bool("minify", true, "minify packed documents")
	fs.String("title", "", "title of the report")
}

// Load reads the configuration. The config file at path is optional; an empty path only uses
// the environment and flags. Flags that weren't set on the command line don't override other
// sources. flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}
	v.SetEnvPrefix("PRDESK")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %v", err)
		}
	}

	if flags != nil {
		for k := range defaults {
			if f := flags.Lookup(k); f != nil {
				if err := v.BindPFlag(k, f); err != nil {
					return nil, fmt.Errorf("binding flag %s: %v", k, err)
				}
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decoding config: %v", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that all enumerated settings have known values.
func (c *Config) Validate() error {
	if _, err := render.GetWriter(c.Format, render.Options{}); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if !slices.Contains(colors, c.Color) {
		return fmt.Errorf("invalid config: unknown color mode %q", c.Color)
	}
	if !slices.Contains(tokenizers, c.Tokenizer) {
		return fmt.Errorf("invalid config: unknown tokenizer %q", c.Tokenizer)
	}
	return nil
}

// RenderOptions returns the writer options of c.
func (c *Config) RenderOptions() render.Options {
	return render.Options{Context: c.Context, Color: c.Color}
}
