package graph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph_AddEdgeKeepsOrder(t *testing.T) {
	g := NewGraph(Header{Nodes: 3, Edges: 2})
	g.AddEdge(1, 2, 2.0)
	g.AddEdge(0, 1, 0.5)

	require.Len(t, g.Edges, 2)
	assert.Equal(t, Edge{Source: 1, Target: 2, Weight: 2.0}, g.Edges[0])
	assert.Equal(t, Edge{Source: 0, Target: 1, Weight: 0.5}, g.Edges[1])
	assert.Equal(t, []float64{2.0, 0.5}, g.Weights())
}

func TestGraph_MapWeights(t *testing.T) {
	g := NewGraph(Header{Nodes: 4, Edges: 7})
	g.AddEdge(0, 1, 1)
	g.AddEdge(2, 3, 3)

	t.Run("Doubles every weight", func(t *testing.T) {
		out, idx, err := g.MapWeights(func(w float64) (float64, error) { return w * 2, nil })
		require.NoError(t, err)
		assert.Equal(t, -1, idx)
		assert.Equal(t, g.Header, out.Header)
		assert.Equal(t, []float64{2, 6}, out.Weights())
		// Source graph is untouched
		assert.Equal(t, []float64{1, 3}, g.Weights())
	})

	t.Run("Stops at first failure", func(t *testing.T) {
		boom := errors.New("boom")
		out, idx, err := g.MapWeights(func(w float64) (float64, error) {
			if w > 2 {
				return 0, boom
			}
			return w, nil
		})
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, idx)
		assert.Nil(t, out)
	})
}
