package edgelist

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"graphweight/internal/graph"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Basic(t *testing.T) {
	g, skipped, err := Parse("3 2\n0 1 0.5\n1 2 2.0\n", Options{})
	require.NoError(t, err)

	assert.Empty(t, skipped)
	assert.Equal(t, graph.Header{Nodes: 3, Edges: 2}, g.Header)
	assert.Equal(t, []graph.Edge{
		{Source: 0, Target: 1, Weight: 0.5},
		{Source: 1, Target: 2, Weight: 2.0},
	}, g.Edges)
}

func TestParse_SkipsWrongTokenCount(t *testing.T) {
	input := "4 9\n" +
		"0 1 1.5\n" +
		"5 6\n" +
		"\n" +
		"1 2 3 4\n" +
		"   2   3\t0.25  \n" +
		"7\n" +
		"3 0 8\n"

	g, skipped, err := Parse(input, Options{})
	require.NoError(t, err)

	// Header is passed through untouched even though edges were dropped.
	assert.Equal(t, graph.Header{Nodes: 4, Edges: 9}, g.Header)
	assert.Equal(t, []graph.Edge{
		{Source: 0, Target: 1, Weight: 1.5},
		{Source: 2, Target: 3, Weight: 0.25},
		{Source: 3, Target: 0, Weight: 8},
	}, g.Edges)
	assert.Equal(t, []SkippedLine{
		{Line: 3, Tokens: 2},
		{Line: 4, Tokens: 0},
		{Line: 5, Tokens: 4},
		{Line: 7, Tokens: 1},
	}, skipped)
}

func TestParse_NoTrailingNewline(t *testing.T) {
	g, skipped, err := Parse("1 1\r\n0 0 2", Options{})
	require.NoError(t, err)
	assert.Empty(t, skipped)
	require.Len(t, g.Edges, 1)
	assert.Equal(t, 2.0, g.Edges[0].Weight)
}

func TestParse_HeaderOnly(t *testing.T) {
	g, skipped, err := Parse("0 0\n", Options{})
	require.NoError(t, err)
	assert.Empty(t, skipped)
	assert.Empty(t, g.Edges)
}

func TestParse_Strict(t *testing.T) {
	_, _, err := Parse("2 1\n0 1 1\n5 6\n", Options{Strict: true})
	assert.ErrorIs(t, err, ErrFormat)
	assert.Contains(t, err.Error(), "line 3")
}

func TestParse_FormatErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  string
	}{
		{"empty file", "", "header"},
		{"blank header", "\n0 1 1\n", "line 1"},
		{"one header field", "3\n0 1 1\n", "line 1"},
		{"three header fields", "3 2 1\n", "line 1"},
		{"float node count", "3.0 2\n", "line 1"},
		{"bad edge count", "3 x\n", "line 1"},
		{"bad source", "3 2\n0 1 1\na 1 1\n", "line 3"},
		{"float target", "3 2\n0 1.5 1\n", "line 2"},
		{"bad weight", "3 2\n0 1 heavy\n", "line 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse(tt.input, Options{})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrFormat)
			assert.Contains(t, err.Error(), tt.line)
		})
	}
}

func TestParse_WeightLiterals(t *testing.T) {
	g, _, err := Parse("2 3\n0 1 1e-3\n1 0 -2\n1 1 1e400\n", Options{})
	require.NoError(t, err)
	require.Len(t, g.Edges, 3)
	assert.Equal(t, 0.001, g.Edges[0].Weight)
	// Negative weights parse; rejecting them is the transform's job.
	assert.Equal(t, -2.0, g.Edges[1].Weight)
	assert.True(t, math.IsInf(g.Edges[2].Weight, 1))
}

func TestReadFile_NotFound(t *testing.T) {
	_, _, err := ReadFile(filepath.Join(t.TempDir(), "missing.txt"), Options{})
	assert.ErrorIs(t, err, ErrInputNotFound)
}

func TestReadFile_CorruptCompressed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.txt.zst")
	require.NoError(t, os.WriteFile(path, []byte("3 2\nnot zstd\n"), 0o644))

	_, _, err := ReadFile(path, Options{})
	assert.ErrorIs(t, err, ErrFormat)
}
