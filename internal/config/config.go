// Package config provides configuration for the chess-rules command.
package config

import (
	"io"
	"os"
	"runtime"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// OutputFormat selects how results are written.
type OutputFormat int

const (
	Text OutputFormat = iota // Board diagram and plain lines
	JSON                     // One JSON document per run
)

// MaxPerftDepth bounds the perft search depth accepted from the command line.
const MaxPerftDepth = 10

// PerftConfig holds move-tree counting options.
type PerftConfig struct {
	Depth     int    // 0 disables perft
	Divide    bool   // Report counts per root move
	Workers   int    // Goroutines used by divide
	CacheDir  string // BadgerDB directory; empty disables the cache
	ListCache bool   // Print the cached results instead of searching
}

// NewPerftConfig returns perft options with perft disabled.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Workers: runtime.NumCPU(),
	}
}

// OutputConfig holds output options.
type OutputConfig struct {
	Format    OutputFormat
	ShowBoard bool // Print the board diagram after replay
	SAN       bool // Echo replayed moves in algebraic notation
}

// NewOutputConfig returns the default output options.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:    Text,
		ShowBoard: true,
	}
}

// Config holds all program configuration.
type Config struct {
	// Starting position; empty means the standard position.
	FEN string

	// Moves to replay in coordinate notation, optionally with a promotion
	// letter.
	Moves []string

	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	Perft  *PerftConfig
	Output *OutputConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Perft:      NewPerftConfig(),
		Output:     NewOutputConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate reports the first inconsistent setting.
func (c *Config) Validate() error {
	switch {
	case c.Verbosity < 0 || c.Verbosity > 2:
		return errors.Wrapf(errors.ErrInvalidConfig, "verbosity %d outside 0..2", c.Verbosity)
	case c.Perft.Depth < 0 || c.Perft.Depth > MaxPerftDepth:
		return errors.Wrapf(errors.ErrInvalidConfig, "perft depth %d outside 0..%d", c.Perft.Depth, MaxPerftDepth)
	case c.Perft.Divide && c.Perft.Depth == 0:
		return errors.Wrap(errors.ErrInvalidConfig, "divide requires a perft depth")
	case c.Perft.Workers < 1:
		return errors.Wrapf(errors.ErrInvalidConfig, "workers %d must be positive", c.Perft.Workers)
	case c.Perft.ListCache && c.Perft.CacheDir == "":
		return errors.Wrap(errors.ErrInvalidConfig, "listing the cache requires a cache directory")
	case c.Perft.CacheDir != "" && c.Perft.Depth == 0 && !c.Perft.ListCache:
		return errors.Wrap(errors.ErrInvalidConfig, "cache requires a perft depth")
	case c.OutputFile == nil || c.LogFile == nil:
		return errors.Wrap(errors.ErrInvalidConfig, "output streams must be set")
	}
	return nil
}
