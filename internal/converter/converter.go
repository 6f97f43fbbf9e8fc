// Package converter rewrites an edge-list file with every weight passed
// through the power-law transform.
package converter

import (
	"fmt"

	"graphweight/internal/edgelist"
	"graphweight/internal/graph"
	"graphweight/internal/weight"

	"github.com/rs/zerolog"
)

// Options tunes a conversion run.
type Options struct {
	// Strict turns lines with the wrong token count into format errors.
	Strict bool
}

// Converter reads, transforms and writes edge-list files.
type Converter struct {
	logger zerolog.Logger
	opts   Options
}

// New creates a converter that logs to logger.
func New(logger zerolog.Logger, opts Options) *Converter {
	return &Converter{
		logger: logger.With().Str("component", "converter").Logger(),
		opts:   opts,
	}
}

// Convert runs a tolerant conversion without logging.
func Convert(inputPath, outputPath string) (*Report, error) {
	return New(zerolog.Nop(), Options{}).Convert(inputPath, outputPath)
}

// Convert reads inputPath fully, transforms every weight and writes the result
// to outputPath. The header is copied through as read, not recomputed.
// Nothing is written when reading, parsing or transforming fails.
func (c *Converter) Convert(inputPath, outputPath string) (*Report, error) {
	g, skipped, err := edgelist.ReadFile(inputPath, edgelist.Options{Strict: c.opts.Strict})
	if err != nil {
		return nil, err
	}
	for _, s := range skipped {
		c.logger.Debug().Int("line", s.Line).Int("tokens", s.Tokens).Msg("skipping edge line")
	}

	out, err := Transform(g)
	if err != nil {
		return nil, err
	}

	if err := edgelist.WriteFile(outputPath, out); err != nil {
		return nil, err
	}

	report := newReport(g, out, len(skipped))
	c.logger.Debug().
		Str("input", inputPath).
		Str("output", outputPath).
		Int("edges", report.EdgesWritten).
		Int("skipped", report.LinesSkipped).
		Msg("conversion finished")

	return report, nil
}

// Transform applies the weight curve to a copy of g, keeping edge order.
func Transform(g *graph.Graph) (*graph.Graph, error) {
	out, idx, err := g.MapWeights(weight.Transform)
	if err != nil {
		e := g.Edges[idx]
		return nil, fmt.Errorf("%w: edge %d (%d -> %d): %w", edgelist.ErrDomain, idx+1, e.Source, e.Target, err)
	}
	return out, nil
}
