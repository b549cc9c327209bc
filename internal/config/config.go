// Package config loads strcalc.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the name of the configuration file searched for by Find.
const FileName = "strcalc.toml"

// Config is the full set of options read from a configuration file.
type Config struct {
	Output Output `toml:"output"`
	Input  Input  `toml:"input"`
	Batch  Batch  `toml:"batch"`
	Log    Log    `toml:"log"`
}

// Output controls how results are printed.
type Output struct {
	// Color is auto, on, or off.
	Color string `toml:"color"`
	// Decimals is the number of fraction digits printed for non-integers.
	Decimals int `toml:"decimals"`
	// Caret shows the failing column under an expression that failed.
	Caret bool `toml:"caret"`
}

// Input controls preprocessing of expressions before evaluation.
type Input struct {
	// FoldWidth applies NFKC normalization, turning full-width digits and
	// punctuation into their ASCII forms.
	FoldWidth bool `toml:"fold_width"`
}

// Batch controls the batch command.
type Batch struct {
	// Jobs is the number of lines evaluated at once. 0 means GOMAXPROCS.
	Jobs   int    `toml:"jobs"`
	Format string `toml:"format"`
}

// Log controls diagnostic logging.
type Log struct {
	Level string `toml:"level"`
	// File is a path to append JSON logs to, in addition to stderr.
	File string `toml:"file"`
}

// Default returns the configuration used when there is no file.
func Default() Config {
	return Config{
		Output: Output{Color: "auto", Decimals: 6, Caret: true},
		Input:  Input{FoldWidth: true},
		Batch:  Batch{Format: "text"},
		Log:    Log{Level: "warn"},
	}
}

// Find looks for FileName in startDir and its parents. The boolean result is
// false if no file was found.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load reads the configuration file at path over the defaults. Keys missing
// from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undec := meta.Undecoded(); len(undec) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %q", path, undec[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Resolve loads the configuration at path if it is non-empty. Otherwise it
// searches upward from dir and falls back to the defaults. The returned path
// is empty when no file was used.
func Resolve(path, dir string) (Config, string, error) {
	if path == "" {
		found, ok, err := Find(dir)
		if err != nil {
			return Config{}, "", err
		}
		if !ok {
			return Default(), "", nil
		}
		path = found
	}
	cfg, err := Load(path)
	if err != nil {
		return Config{}, "", err
	}
	return cfg, path, nil
}

// Validate checks enumerated and numeric options.
func (c Config) Validate() error {
	switch c.Output.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("output.color must be auto, on, or off, not %q", c.Output.Color)
	}
	if c.Output.Decimals < 0 {
		return fmt.Errorf("output.decimals must not be negative, got %d", c.Output.Decimals)
	}
	if c.Batch.Jobs < 0 {
		return fmt.Errorf("batch.jobs must not be negative, got %d", c.Batch.Jobs)
	}
	switch c.Batch.Format {
	case "text", "json", "msgpack":
	default:
		return fmt.Errorf("batch.format must be text, json, or msgpack, not %q", c.Batch.Format)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn, or error, not %q", c.Log.Level)
	}
	return nil
}
