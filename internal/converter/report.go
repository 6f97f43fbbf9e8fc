package converter

import (
	"graphweight/internal/graph"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WeightSummary describes a set of weights. All fields are zero when empty.
type WeightSummary struct {
	Min  float64
	Max  float64
	Mean float64
}

// Report describes a finished conversion.
type Report struct {
	Header       graph.Header
	EdgesWritten int
	LinesSkipped int
	Input        WeightSummary
	Output       WeightSummary
}

func newReport(in, out *graph.Graph, skipped int) *Report {
	return &Report{
		Header:       in.Header,
		EdgesWritten: len(out.Edges),
		LinesSkipped: skipped,
		Input:        summarize(in.Weights()),
		Output:       summarize(out.Weights()),
	}
}

func summarize(ws []float64) WeightSummary {
	if len(ws) == 0 {
		return WeightSummary{}
	}
	return WeightSummary{
		Min:  floats.Min(ws),
		Max:  floats.Max(ws),
		Mean: stat.Mean(ws, nil),
	}
}
