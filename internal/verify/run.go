package verify

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync/atomic"
	"time"
	"unsafe"

	"github.com/hupe1980/wordcopy"
	"github.com/hupe1980/wordcopy/internal/engine"
	"github.com/hupe1980/wordcopy/internal/hash"
	"github.com/hupe1980/wordcopy/internal/mem"
	"github.com/hupe1980/wordcopy/internal/mmap"
	"github.com/hupe1980/wordcopy/internal/word"
	"github.com/hupe1980/wordcopy/testutil"
	"golang.org/x/sync/errgroup"
)

const guardByte = 0xEE

// Report summarizes a successful sweep.
type Report struct {
	Path      string        `json:"path"`
	WordSize  int           `json:"word_size"`
	ByteOrder string        `json:"byte_order"`
	Ops       []Op          `json:"ops"`
	Cases     int           `json:"cases"`
	Bytes     int64         `json:"bytes"`
	Digest    uint32        `json:"digest"`
	Duration  time.Duration `json:"duration"`
}

type copyFunc func(dst, src unsafe.Pointer, n uintptr)

func copyFuncFor(op Op) copyFunc {
	switch op {
	case OpStrict:
		return engine.Strict
	case OpUnaligned:
		return engine.Unaligned
	case OpMove:
		return func(dst, src unsafe.Pointer, n uintptr) { wordcopy.Move(dst, src, n) }
	default:
		return func(dst, src unsafe.Pointer, n uintptr) { wordcopy.Copy(dst, src, n) }
	}
}

// Run executes the sweep. It stops at the first mismatch and returns it as a
// *ErrMismatch.
func Run(ctx context.Context, opts ...Option) (*Report, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	cases := buildCases(&o)
	loggers := make(map[Op]*Logger, len(o.ops))
	for _, c := range cases {
		if _, ok := loggers[c.Op]; !ok {
			loggers[c.Op] = o.logger.WithOp(c.Op)
		}
	}
	sums := make([]uint32, len(cases))
	var total atomic.Int64

	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	for i, c := range cases {
		if gctx.Err() != nil {
			break
		}
		i, c := i, c
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := runCase(c, copyFuncFor(c.Op))
			loggers[c.Op].LogCase(gctx, c, err)
			if err != nil {
				return err
			}
			sums[i] = hash.CRC32C(out)
			total.Add(int64(c.Size))
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		o.logger.LogSweep(ctx, nil, err)
		return nil, err
	}

	report := &Report{
		Path:      word.ActivePath().String(),
		WordSize:  word.Size,
		ByteOrder: word.ByteOrder(),
		Ops:       o.ops,
		Cases:     len(cases),
		Bytes:     total.Load(),
		Digest:    hash.Combine(sums),
		Duration:  time.Since(start),
	}
	o.logger.LogSweep(ctx, report, nil)
	return report, nil
}

// region is a guarded buffer whose payload starts at a chosen word offset.
type region struct {
	raw  []byte
	size int
}

func newRegion(size, offset int) region {
	raw := mem.AllocOffset(size+2*word.Size, offset)
	testutil.Fill(raw, guardByte)
	return region{raw: raw, size: size}
}

func (r region) at(i int) unsafe.Pointer { return unsafe.Pointer(&r.raw[word.Size+i]) }

func (r region) data() []byte { return r.raw[word.Size : word.Size+r.size] }

func runCase(c Case, fn copyFunc) ([]byte, error) {
	switch {
	case c.Op == OpMove:
		return runMoveCase(c, fn)
	case c.Fenced:
		return runFencedCase(c, fn)
	default:
		return runCopyCase(c, fn)
	}
}

func runCopyCase(c Case, fn copyFunc) ([]byte, error) {
	src := newRegion(c.Size, c.SrcOffset)
	testutil.FillPattern(src.data(), byte(c.Size))
	dst := newRegion(c.Size, c.DstOffset)

	fn(dst.at(0), src.at(0), uintptr(c.Size))

	if err := compare(c, dst, src.data()); err != nil {
		return nil, err
	}
	return dst.data(), nil
}

// fence is the part of *mmap.Fence a fenced case uses.
type fence interface {
	Len() int
	Head(n int) []byte
	Tail(n int) []byte
	Close() error
}

func defaultOpenFence(size int) (fence, error) {
	return mmap.NewFence(size)
}

var openFence = defaultOpenFence

// runFencedCase copies from a source that ends on a guard page. A read past
// the source faults and is reported as ErrFault.
func runFencedCase(c Case, fn copyFunc) (out []byte, err error) {
	f, err := openFence(c.Size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			out, err = nil, fmt.Errorf("%s: close fence: %w", c, cerr)
		}
	}()

	// The source ends on the last usable byte. Tail(0) has no element to take
	// the address of, so the pointer is derived from the start of the mapping.
	src := f.Tail(c.Size)
	srcPtr := unsafe.Add(unsafe.Pointer(unsafe.SliceData(f.Head(f.Len()))), f.Len()-c.Size)
	testutil.FillPattern(src, byte(c.Size))

	dst := newRegion(c.Size, c.DstOffset)

	old := debug.SetPanicOnFault(true)
	defer debug.SetPanicOnFault(old)
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("%s: %v: %w", c, r, ErrFault)
		}
	}()

	fn(dst.at(0), srcPtr, uintptr(c.Size))

	if err := compare(c, dst, src); err != nil {
		return nil, err
	}
	return dst.data(), nil
}

func runMoveCase(c Case, fn copyFunc) ([]byte, error) {
	dist := max(c.Delta, -c.Delta)
	r := newRegion(c.Size+dist, c.DstOffset)
	testutil.FillPattern(r.data(), byte(c.Size))

	src, dst := 0, c.Delta
	if c.Delta < 0 {
		src, dst = -c.Delta, 0
	}

	want := append([]byte(nil), r.data()...)
	side := append([]byte(nil), want[src:src+c.Size]...)
	copy(want[dst:dst+c.Size], side)

	fn(r.at(dst), r.at(src), uintptr(c.Size))

	if err := compare(c, r, want); err != nil {
		return nil, err
	}
	return r.data(), nil
}

// compare checks r's payload against want and its guards against guardByte.
// Indexes are relative to the payload start, so guard bytes below it are
// negative.
func compare(c Case, r region, want []byte) error {
	if i := testutil.FirstDiff(want, r.data()); i >= 0 {
		return newMismatch(c, i, want[i], r.data()[i], false)
	}
	for i := 0; i < word.Size; i++ {
		if b := r.raw[i]; b != guardByte {
			return newMismatch(c, i-word.Size, guardByte, b, true)
		}
		if b := r.raw[word.Size+r.size+i]; b != guardByte {
			return newMismatch(c, r.size+i, guardByte, b, true)
		}
	}
	return nil
}
