package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"graphweight/internal/graph"

	"github.com/klauspost/compress/zstd"
)

// WeightDigits is the number of fractional digits written for every weight.
const WeightDigits = 10

// Encode writes g to w in edge-list format.
func Encode(w io.Writer, g *graph.Graph) error {
	bw := bufio.NewWriter(w)

	line := make([]byte, 0, 64)
	line = strconv.AppendInt(line, int64(g.Header.Nodes), 10)
	line = append(line, ' ')
	line = strconv.AppendInt(line, int64(g.Header.Edges), 10)
	line = append(line, '\n')
	if _, err := bw.Write(line); err != nil {
		return err
	}

	for _, e := range g.Edges {
		line = line[:0]
		line = strconv.AppendInt(line, int64(e.Source), 10)
		line = append(line, ' ')
		line = strconv.AppendInt(line, int64(e.Target), 10)
		line = append(line, ' ')
		line = strconv.AppendFloat(line, e.Weight, 'f', WeightDigits, 64)
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteFile creates or truncates path and writes g to it.
// A failure midway leaves the file incomplete.
func WriteFile(path string, g *graph.Graph) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %s: %v", ErrWrite, path, cerr)
		}
	}()

	var out io.Writer = f
	var enc *zstd.Encoder
	if strings.HasSuffix(path, CompressedSuffix) {
		enc, err = zstd.NewWriter(f)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
		}
		out = enc
	}

	if err := Encode(out, g); err != nil {
		if enc != nil {
			enc.Close()
		}
		return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}
	if enc != nil {
		if err := enc.Close(); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
		}
	}
	return nil
}
