package verify

import (
	"fmt"
	"slices"
	"strings"

	"github.com/hupe1980/wordcopy/internal/engine"
	"github.com/hupe1980/wordcopy/internal/word"
)

// Op names an operation under test.
type Op string

const (
	// OpCopy is wordcopy.Copy with its build-time path.
	OpCopy Op = "copy"
	// OpMove is wordcopy.Move on overlapping and adjacent regions.
	OpMove Op = "move"
	// OpStrict is the shifted path, runnable on every target.
	OpStrict Op = "strict"
	// OpUnaligned is the whole-word path. On targets without efficient
	// unaligned access only mutually aligned cases are swept.
	OpUnaligned Op = "unaligned"
)

// DefaultOps returns every op this target can run.
func DefaultOps() []Op {
	return []Op{OpCopy, OpMove, OpStrict, OpUnaligned}
}

// ParseOp parses a string into an Op value.
func ParseOp(s string) (Op, bool) {
	switch op := Op(strings.ToLower(strings.TrimSpace(s))); op {
	case OpCopy, OpMove, OpStrict, OpUnaligned:
		return op, true
	default:
		return "", false
	}
}

// ParseOps parses a comma separated op list. An empty string yields DefaultOps.
func ParseOps(s string) ([]Op, error) {
	if strings.TrimSpace(s) == "" {
		return DefaultOps(), nil
	}

	var ops []Op
	for _, part := range strings.Split(s, ",") {
		op, ok := ParseOp(part)
		if !ok {
			return nil, fmt.Errorf("%q: %w", part, ErrUnknownOp)
		}
		if !slices.Contains(ops, op) {
			ops = append(ops, op)
		}
	}
	return ops, nil
}

// Case is one cell of the sweep grid.
//
// Copy-like ops use DstOffset and SrcOffset as the word offsets of two
// separate regions. OpMove uses one region placed at DstOffset and moves
// Size bytes by Delta (dst minus src).
type Case struct {
	Op        Op
	Size      int
	DstOffset int
	SrcOffset int
	Delta     int
	// Fenced places the source against a guard page.
	Fenced bool
}

func (c Case) String() string {
	if c.Op == OpMove {
		return fmt.Sprintf("%s size=%d base=%d delta=%d", c.Op, c.Size, c.DstOffset, c.Delta)
	}
	s := fmt.Sprintf("%s size=%d dst=%d src=%d", c.Op, c.Size, c.DstOffset, c.SrcOffset)
	if c.Fenced {
		s += " fenced"
	}
	return s
}

// fencedOffset is the word offset of a size-byte region that ends on a page
// boundary.
func fencedOffset(size int) int {
	return -size & word.Mask
}

// boundarySizes covers each loop's entry and exit conditions.
func boundarySizes(maxSize int) []int {
	var sizes []int
	for n := 0; n <= 4*word.Size+1; n++ {
		sizes = append(sizes, n)
	}
	sizes = append(sizes,
		engine.MinThreshold-1, engine.MinThreshold, engine.MinThreshold+1,
		3*word.Size-1, 37, 64, 255, 256, maxSize,
	)

	sizes = slices.DeleteFunc(sizes, func(n int) bool { return n > maxSize })
	slices.Sort(sizes)
	return slices.Compact(sizes)
}

func buildCases(o *options) []Case {
	sizes := o.sizes
	if sizes == nil {
		sizes = boundarySizes(o.maxSize)
	}

	var cases []Case
	for _, op := range o.ops {
		for _, size := range sizes {
			if op == OpMove {
				cases = appendMoveCases(cases, size)
				continue
			}
			for dst := 0; dst < word.Size; dst++ {
				for src := 0; src < word.Size; src++ {
					if op == OpUnaligned && !word.EfficientUnaligned && dst != src {
						continue
					}
					if o.fence && src != fencedOffset(size) {
						continue
					}
					cases = append(cases, Case{Op: op, Size: size, DstOffset: dst, SrcOffset: src, Fenced: o.fence})
				}
			}
		}
	}
	return cases
}

func appendMoveCases(cases []Case, size int) []Case {
	for base := 0; base < word.Size; base++ {
		for delta := -3 * word.Size; delta <= 3*word.Size; delta++ {
			cases = append(cases, Case{Op: OpMove, Size: size, DstOffset: base, Delta: delta})
		}
		// Exact adjacency in both directions.
		cases = append(cases,
			Case{Op: OpMove, Size: size, DstOffset: base, Delta: size},
			Case{Op: OpMove, Size: size, DstOffset: base, Delta: -size},
		)
	}
	return cases
}
