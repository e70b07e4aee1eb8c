// Package verify sweeps the copy and move primitives across every word
// alignment and a set of boundary sizes, checking each result against a
// byte-by-byte reference.
//
// # Usage
//
//	report, err := verify.Run(ctx,
//	    verify.WithMaxSize(4096),
//	    verify.WithWorkers(8),
//	    verify.WithLogger(verify.NewTextLogger(slog.LevelDebug)),
//	)
//
// A *ErrMismatch describes the first wrong byte found. Report.Digest is a
// CRC32C over every output in case order; it depends only on the bytes, so
// a build with -tags strictalign must produce the same digest as a default
// build.
package verify
