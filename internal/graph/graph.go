package graph

// Header is the first line of an edge-list file.
// The counts are declarative and never checked against the edges present.
type Header struct {
	Nodes int
	Edges int
}

// Edge is a single weighted connection between two opaque node IDs.
type Edge struct {
	Source int
	Target int
	Weight float64
}

// Graph holds a header and its edges in input order.
type Graph struct {
	Header Header
	Edges  []Edge
}

// NewGraph creates an empty graph with the given header.
func NewGraph(h Header) *Graph {
	return &Graph{
		Header: h,
		Edges:  []Edge{},
	}
}

// AddEdge appends an edge, keeping insertion order.
func (g *Graph) AddEdge(source, target int, weight float64) {
	g.Edges = append(g.Edges, Edge{Source: source, Target: target, Weight: weight})
}

// Weights returns the edge weights in order.
func (g *Graph) Weights() []float64 {
	ws := make([]float64, len(g.Edges))
	for i, e := range g.Edges {
		ws[i] = e.Weight
	}
	return ws
}

// MapWeights builds a new graph with the same header and every weight passed
// through fn. It stops at the first error and reports the failing edge index.
func (g *Graph) MapWeights(fn func(float64) (float64, error)) (*Graph, int, error) {
	out := &Graph{
		Header: g.Header,
		Edges:  make([]Edge, 0, len(g.Edges)),
	}
	for i, e := range g.Edges {
		w, err := fn(e.Weight)
		if err != nil {
			return nil, i, err
		}
		out.Edges = append(out.Edges, Edge{Source: e.Source, Target: e.Target, Weight: w})
	}
	return out, -1, nil
}
