// output.go - Text and JSON rendering of a run's report
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

// writeReport writes report to w in the configured format.
func writeReport(w io.Writer, cfg *config.Config, report *Report) error {
	if cfg.Output.Format == config.JSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	var sb strings.Builder
	if cfg.Perft.ListCache {
		for _, r := range report.Cached {
			fmt.Fprintf(&sb, "%s  depth %d  %d nodes  %v\n", r.FEN, r.Depth, r.Nodes, r.Elapsed)
		}
		_, err := io.WriteString(w, sb.String())
		return err
	}

	if report.Board != "" {
		sb.WriteString(report.Board)
		sb.WriteByte('\n')
	}
	if len(report.Moves) > 0 {
		fmt.Fprintf(&sb, "Moves: %s\n", strings.Join(report.Moves, " "))
	}
	fmt.Fprintf(&sb, "FEN: %s\n", report.FEN)

	state := report.State
	if report.InCheck && !strings.HasPrefix(state, "checkmate") {
		state += ", check"
	}
	fmt.Fprintf(&sb, "State: %s\n", state)
	if report.Draw != nil && report.Draw.InsufficientMaterial {
		sb.WriteString("Insufficient mating material\n")
	}

	if p := report.Perft; p != nil {
		for _, e := range p.Divide {
			fmt.Fprintf(&sb, "%s: %d\n", e.Move, e.Nodes)
		}
		if len(p.Divide) > 0 {
			sb.WriteByte('\n')
		}
		cached := ""
		if p.Cached {
			cached = " (cached)"
		}
		fmt.Fprintf(&sb, "Perft(%d): %d%s\n", p.Depth, p.Nodes, cached)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
