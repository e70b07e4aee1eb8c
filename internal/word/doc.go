// Package word holds the platform word constants and the narrow unsafe
// boundary used by the copy engine.
//
// # Build-Time Selection
//
// Two properties of the target are fixed at compile time and never probed
// at runtime:
//
//   - EfficientUnaligned: whether misaligned word loads and stores are cheap.
//     Build with -tags strictalign to force the aligned (shifted) path.
//   - Byte order: Merge picks the little- or big-endian shift directions from
//     cpu.IsBigEndian.
package word
