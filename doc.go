// Package wordcopy provides a forward copy and an overlap-safe move for
// targets that pay a penalty, or fault, on misaligned word accesses.
//
// # Quick Start
//
// Pointer form, with the usual memcpy/memmove contracts:
//
//	wordcopy.Copy(dst, src, n)  // regions must not overlap (dst below src is fine)
//	wordcopy.Move(dst, src, n)  // any overlap
//
// Slice form:
//
//	n := wordcopy.CopyBytes(dst, src)
//	n := wordcopy.MoveBytes(buf[4:], buf)
//
// # Word Copy Paths
//
// Copies of at least two words run a word loop. Which one is decided at
// build time:
//
//   - unaligned: targets with cheap misaligned access (386, amd64, arm64,
//     ppc64, ppc64le, s390x) copy whole words from any address.
//   - shifted: everywhere else, the destination is aligned first and
//     misaligned source words are rebuilt from two aligned loads.
//
// Build with -tags strictalign to force the shifted path on any target.
// ActivePath reports the selection.
//
// # Safety
//
// Nothing is validated. Both regions must be valid for n bytes; violating
// that is undefined behavior, not an error. The primitives never allocate,
// never lock and never retain dst or src.
package wordcopy
