// Package vector generates randomized binary16 test vectors and writes them
// in the text format consumed by the conformance benches.
package vector

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"

	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/x448/float16"

	"github.com/jmorganca/f16vec/logutil"
	"github.com/jmorganca/f16vec/types/half"
)

// DefaultFile is where vectors are written when no other path is given.
const DefaultFile = "randomOps.txt"

type Generator struct {
	rng    *rand.Rand
	logger *slog.Logger
}

type Option func(*Generator)

// WithRand sets the source operands are drawn from. The default is seeded
// from the runtime's random source, so every run differs.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) {
		g.rng = r
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = l
	}
}

func New(opts ...Option) *Generator {
	g := &Generator{
		rng:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// operand draws a bit pattern uniformly from the 16-bit space.
func (g *Generator) operand() float16.Float16 {
	return float16.Frombits(uint16(g.rng.Uint32()))
}

var ErrTooManyVectors = errors.New("too many vectors requested")

// maxNums is the number of distinct operand pairs; each pair yields exactly
// one line per operation, so no larger nums can be satisfied.
const maxNums = 1 << 32

// Generate samples operand pairs and applies every operation to each pair
// until at least len(half.Ops)*nums distinct lines exist. The count is over
// all operations together, so a single operation may end up with fewer than
// nums lines if others produced more.
func (g *Generator) Generate(nums int) (*Result, error) {
	if nums > 0 && (uint64(nums) > maxNums || nums > math.MaxInt/len(half.Ops)) {
		return nil, fmt.Errorf("%w: nums=%d", ErrTooManyVectors, nums)
	}

	seen := linkedhashset.New()
	target := len(half.Ops) * nums

	g.logger.Debug("generating vectors", "nums", nums, "target", target)

	var pairs int
	for seen.Size() < target {
		in1, in2 := g.operand(), g.operand()
		pairs++

		for _, op := range half.Ops {
			line := NewLine(in1, in2, op)
			if seen.Contains(line) {
				continue
			}

			seen.Add(line)
			logutil.TraceLogger(context.TODO(), g.logger, "vector", "line", line)
		}
	}

	r := &Result{lines: make([]Line, 0, seen.Size()), pairs: pairs}
	for _, v := range seen.Values() {
		r.lines = append(r.lines, v.(Line))
	}

	g.logger.Debug("generated vectors", "lines", len(r.lines), "pairs", pairs)
	return r, nil
}

type Result struct {
	lines []Line
	pairs int
}

// Lines returns the vectors in the order they were generated.
func (r *Result) Lines() []Line {
	return r.lines
}

func (r *Result) Len() int {
	return len(r.lines)
}

// Pairs is the number of operand pairs sampled.
func (r *Result) Pairs() int {
	return r.pairs
}

// Counts returns the number of lines per operation. Every operation has an
// entry, even when it is zero.
func (r *Result) Counts() map[half.Op]int {
	counts := make(map[half.Op]int, len(half.Ops))
	for _, op := range half.Ops {
		counts[op] = 0
	}

	for _, l := range r.lines {
		counts[l.Op]++
	}

	return counts
}

// GenerateFile generates vectors for nums and writes them to path.
func GenerateFile(path string, nums int, opts ...Option) (*Result, error) {
	r, err := New(opts...).Generate(nums)
	if err != nil {
		return nil, err
	}

	if err := Write(path, r.Lines()); err != nil {
		return nil, err
	}

	return r, nil
}
