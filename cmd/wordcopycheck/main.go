// Command wordcopycheck sweeps the wordcopy primitives across every word
// alignment and reports a digest of all outputs.
//
// Compare the digest of a default build with one built using
// -tags strictalign to confirm both copy paths agree.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"
	"unsafe"

	"github.com/hupe1980/wordcopy/internal/verify"
	"github.com/hupe1980/wordcopy/internal/word"
	"golang.org/x/sys/cpu"
)

var (
	maxSize = flag.Int("max", verify.DefaultMaxSize, "largest copy size in the sweep")
	workers = flag.Int("workers", runtime.GOMAXPROCS(0), "number of cases run concurrently")
	ops     = flag.String("ops", "", "comma separated ops (copy, move, strict, unaligned); empty runs all")
	fence   = flag.Bool("fence", false, "place copy sources against a guard page to catch over-reads")
	path    = flag.String("path", "", "fail unless the build selected this copy path (unaligned, shifted)")
	asJSON  = flag.Bool("json", false, "print the report as JSON")
	verbose = flag.Bool("v", false, "verbose output")
	timeout = flag.Duration("timeout", time.Minute, "abort the sweep after this long")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := verify.NewTextLogger(level)

	selected, err := verify.ParseOps(*ops)
	if err != nil {
		fmt.Fprintf(os.Stderr, "wordcopycheck: %v\n", err)
		return 2
	}

	opts := []verify.Option{
		verify.WithMaxSize(*maxSize),
		verify.WithWorkers(*workers),
		verify.WithOps(selected...),
		verify.WithFence(*fence),
		verify.WithLogger(logger),
	}
	if *path != "" {
		p, ok := word.ParsePath(*path)
		if !ok {
			fmt.Fprintf(os.Stderr, "wordcopycheck: unknown path %q\n", *path)
			return 2
		}
		opts = append(opts, verify.WithExpectPath(p))
	}

	logCPU(logger)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	report, err := verify.Run(ctx, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "wordcopycheck: %v\n", err)
		if errors.Is(err, verify.ErrInvalidSize) || errors.Is(err, verify.ErrUnknownOp) {
			return 2
		}
		return 1
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			fmt.Fprintf(os.Stderr, "wordcopycheck: %v\n", err)
			return 1
		}
		return 0
	}

	fmt.Printf("path:       %s\n", report.Path)
	fmt.Printf("word size:  %d\n", report.WordSize)
	fmt.Printf("byte order: %s\n", report.ByteOrder)
	fmt.Printf("cases:      %d\n", report.Cases)
	fmt.Printf("bytes:      %d\n", report.Bytes)
	fmt.Printf("digest:     %08x\n", report.Digest)
	fmt.Printf("duration:   %s\n", report.Duration)
	return 0
}

func logCPU(logger *verify.Logger) {
	attrs := []any{
		"goos", runtime.GOOS,
		"goarch", runtime.GOARCH,
		"big_endian", cpu.IsBigEndian,
		"cache_line", unsafe.Sizeof(cpu.CacheLinePad{}),
	}
	switch runtime.GOARCH {
	case "amd64", "386":
		attrs = append(attrs, "erms", cpu.X86.HasERMS, "avx2", cpu.X86.HasAVX2)
	case "arm64":
		attrs = append(attrs, "asimd", cpu.ARM64.HasASIMD)
	}
	logger.Debug("cpu features", attrs...)
}
