// Package testutil provides testing utilities for wordcopy.
//
// This package is intended for use in tests, benchmarks and the verify
// harness. It provides deterministic byte patterns, seeded random buffers,
// and comparison helpers.
//
// # Patterns
//
//	src := testutil.Pattern(37)          // 0, 1, ..., 36
//	rng := testutil.NewRNG(4711)
//	noise := rng.Bytes(1024)
//
// # Comparison
//
//	if i := testutil.FirstDiff(want, got); i >= 0 {
//	    t.Fatalf("byte %d differs", i)
//	}
package testutil
