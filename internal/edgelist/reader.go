// Package edgelist reads and writes the plain-text weighted edge-list format:
//
//	<node_count> <edge_count>
//	<src> <dst> <weight>
//	...
//
// Paths ending in ".zst" are transparently zstd-compressed.
package edgelist

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"graphweight/internal/graph"

	"github.com/klauspost/compress/zstd"
)

// CompressedSuffix marks files stored as a zstd frame.
const CompressedSuffix = ".zst"

// Options controls parsing.
type Options struct {
	// Strict rejects edge lines that do not have exactly three tokens
	// instead of dropping them.
	Strict bool
}

// SkippedLine records an edge line that was dropped for having the wrong
// number of tokens.
type SkippedLine struct {
	Line   int // 1-based line number in the input
	Tokens int
}

// ReadFile loads the whole file at path into memory and parses it.
func ReadFile(path string, opts Options) (*graph.Graph, []SkippedLine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrInputNotFound, path, err)
	}

	if strings.HasSuffix(path, CompressedSuffix) {
		data, err = decompress(data)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s: %v", ErrFormat, path, err)
		}
	}

	return Parse(string(data), opts)
}

func decompress(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return dec.DecodeAll(data, nil)
}

// Parse decodes an edge list held in memory.
// Edge lines with a token count other than three are skipped and reported,
// unless opts.Strict is set.
func Parse(text string, opts Options) (*graph.Graph, []SkippedLine, error) {
	if text == "" {
		return nil, nil, fmt.Errorf("%w: missing header line", ErrFormat)
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")

	header, err := parseHeader(lines[0])
	if err != nil {
		return nil, nil, err
	}

	g := graph.NewGraph(header)
	var skipped []SkippedLine

	for i, line := range lines[1:] {
		lineNo := i + 2
		fields := strings.Fields(line)
		if len(fields) != 3 {
			if opts.Strict {
				return nil, nil, fmt.Errorf("%w: line %d: expected 3 fields, got %d", ErrFormat, lineNo, len(fields))
			}
			skipped = append(skipped, SkippedLine{Line: lineNo, Tokens: len(fields)})
			continue
		}

		src, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, nil, fmt.Errorf("%w: line %d: source %q is not an integer", ErrFormat, lineNo, fields[0])
		}
		dst, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, nil, fmt.Errorf("%w: line %d: target %q is not an integer", ErrFormat, lineNo, fields[1])
		}
		w, err := parseWeight(fields[2])
		if err != nil {
			return nil, nil, fmt.Errorf("%w: line %d: weight %q is not a number", ErrFormat, lineNo, fields[2])
		}

		g.AddEdge(src, dst, w)
	}

	return g, skipped, nil
}

func parseHeader(line string) (graph.Header, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return graph.Header{}, fmt.Errorf("%w: line 1: header needs 2 fields, got %d", ErrFormat, len(fields))
	}
	nodes, err := strconv.Atoi(fields[0])
	if err != nil {
		return graph.Header{}, fmt.Errorf("%w: line 1: node count %q is not an integer", ErrFormat, fields[0])
	}
	edges, err := strconv.Atoi(fields[1])
	if err != nil {
		return graph.Header{}, fmt.Errorf("%w: line 1: edge count %q is not an integer", ErrFormat, fields[1])
	}
	return graph.Header{Nodes: nodes, Edges: edges}, nil
}

// parseWeight accepts overflowing literals as ±Inf, like most float parsers.
func parseWeight(s string) (float64, error) {
	w, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	return w, nil
}
