// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Position options
	fenFlag   = flag.String("fen", "", "Starting position in FEN (default: standard position)")
	movesFlag = flag.String("moves", "", "Moves to replay, e.g. \"e2e4 e7e5 g1f3\"; promotions as e7e8n")

	// Perft options
	perftDepth = flag.Int("perft", 0, "Count leaf nodes of the move tree to this depth")
	divide     = flag.Bool("divide", false, "Report perft counts per root move")
	workers    = flag.Int("workers", 0, "Goroutines used by -divide (default: number of CPUs)")
	cacheDir   = flag.String("cache", "", "Directory of the perft result cache")
	listCache  = flag.Bool("cachelist", false, "Print the results stored in -cache and exit")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("J", false, "Output in JSON format")
	noBoard    = flag.Bool("noboard", false, "Don't print the board diagram")
	sanOutput  = flag.Bool("san", false, "Echo replayed moves in algebraic notation")

	// Logging
	logFile = flag.String("l", "", "Write diagnostics to this file (default: stderr)")
	quiet   = flag.Bool("s", false, "Silent mode: no diagnostics")
	verbose = flag.Bool("v", false, "Log every replayed move")

	// Information
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies the parsed flags into cfg.
func applyFlags(cfg *config.Config) {
	cfg.FEN = strings.TrimSpace(*fenFlag)
	cfg.Moves = splitMoves(*movesFlag)

	applyPerftFlags(cfg)
	applyOutputFlags(cfg)
	applyVerbosityFlags(cfg)
}

func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *perftDepth
	cfg.Perft.Divide = *divide
	if *workers != 0 {
		cfg.Perft.Workers = *workers
	}
	cfg.Perft.CacheDir = *cacheDir
	cfg.Perft.ListCache = *listCache
}

func applyOutputFlags(cfg *config.Config) {
	if *jsonOutput {
		cfg.Output.Format = config.JSON
	}
	cfg.Output.ShowBoard = !*noBoard
	cfg.Output.SAN = *sanOutput
}

func applyVerbosityFlags(cfg *config.Config) {
	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
}

// splitMoves splits a move list on whitespace and commas.
func splitMoves(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}
