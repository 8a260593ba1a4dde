// SPDX-License-Identifier: MIT

// Package graphio reads and writes the plain edge-list instance format and
// vertex-per-line solution files.
//
// Instance format: the first integer is the vertex count n; every following
// pair of integers "u v" is an undirected edge. Tokens are whitespace
// separated, so line breaks carry no meaning. Ids on disk are 1-based unless
// ZeroBased is requested; this package is the single place where they are
// normalized to the 0-based ids used by core.Graph.
//
// Self-loops are dropped and duplicate edges collapsed, matching how the
// instances in the benchmark set are usually produced.
package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/misopt/core"
)

// Sentinel errors.
var (
	// ErrBadHeader indicates a missing or non-positive vertex count.
	ErrBadHeader = errors.New("graphio: missing or invalid vertex count")

	// ErrBadToken indicates a token that is not an integer.
	ErrBadToken = errors.New("graphio: token is not an integer")

	// ErrOddEndpoints indicates an edge with only one endpoint at end of input.
	ErrOddEndpoints = errors.New("graphio: dangling edge endpoint")

	// ErrVertexOutOfRange indicates an id outside the declared vertex range.
	ErrVertexOutOfRange = errors.New("graphio: vertex out of range")
)

// Base is the id convention used on disk.
type Base int

const (
	// ZeroBased files number vertices 0..n-1.
	ZeroBased Base = 0
	// OneBased files number vertices 1..n.
	OneBased Base = 1
)

// maxTokenSize bounds a single token; ids never come close.
const maxTokenSize = 1 << 16

// tokenReader yields integers from whitespace-separated input.
type tokenReader struct {
	sc  *bufio.Scanner
	pos int // 1-based index of the last token read, for error context
}

func newTokenReader(r io.Reader) *tokenReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxTokenSize)
	sc.Split(bufio.ScanWords)

	return &tokenReader{sc: sc}
}

// next returns the next integer, io.EOF at clean end of input.
func (t *tokenReader) next() (int, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return 0, err
		}
		return 0, io.EOF
	}
	t.pos++
	v, err := strconv.Atoi(t.sc.Text())
	if err != nil {
		return 0, fmt.Errorf("token %d %q: %w", t.pos, t.sc.Text(), ErrBadToken)
	}

	return v, nil
}

// Read parses an instance from r.
//
// Complexity: O(n + m log Δ).
func Read(r io.Reader, base Base) (*core.Graph, error) {
	tr := newTokenReader(r)
	n, err := tr.next()
	if errors.Is(err, io.EOF) || (err == nil && n <= 0) {
		return nil, ErrBadHeader
	}
	if err != nil {
		return nil, fmt.Errorf("graphio: header: %w", err)
	}

	b, err := core.NewBuilder(n, core.IgnoreLoops())
	if err != nil {
		return nil, fmt.Errorf("graphio: %w", err)
	}

	var (
		u, v int
		off  = int(base)
	)
	for {
		u, err = tr.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("graphio: %w", err)
		}
		v, err = tr.next()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("graphio: token %d: %w", tr.pos, ErrOddEndpoints)
		}
		if err != nil {
			return nil, fmt.Errorf("graphio: %w", err)
		}
		u, v = u-off, v-off
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("graphio: edge (%d,%d) with n=%d: %w", u+off, v+off, n, ErrVertexOutOfRange)
		}
		if err = b.AddEdge(u, v); err != nil {
			return nil, fmt.Errorf("graphio: %w", err)
		}
	}

	return b.Build(), nil
}

// ReadFile opens path and calls Read.
func ReadFile(path string, base Base) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f, base)
}

// Write emits g in the instance format: "n" on the first line, then one
// "u v" line per edge with u < v.
func Write(w io.Writer, g *core.Graph, base Base) error {
	bw := bufio.NewWriter(w)
	off := int(base)
	if _, err := fmt.Fprintf(bw, "%d\n", g.Order()); err != nil {
		return err
	}
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(bw, "%d %d\n", e[0]+off, e[1]+off); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteSolution writes one vertex id per line using the given base.
func WriteSolution(w io.Writer, set []int, base Base) error {
	bw := bufio.NewWriter(w)
	off := int(base)
	for _, v := range set {
		if _, err := fmt.Fprintf(bw, "%d\n", v+off); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// ReadSolution reads whitespace-separated vertex ids and normalizes them to
// 0-based. Range checks against a graph are left to core.Graph.CheckIndependent.
func ReadSolution(r io.Reader, base Base) ([]int, error) {
	tr := newTokenReader(r)
	var (
		out []int
		v   int
		err error
	)
	for {
		v, err = tr.next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("graphio: %w", err)
		}
		out = append(out, v-int(base))
	}
}
