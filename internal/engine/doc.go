// Package engine implements the forward copy and backward move loops.
//
// # Forward Copy
//
// Copies shorter than MinThreshold go straight to a byte loop. Longer copies
// take one of two paths fixed at build time:
//
//   - Unaligned: whole words from offset 0, for targets where misaligned
//     loads and stores are cheap.
//   - Strict: byte-copy until the destination is word aligned, then either a
//     plain word loop (source shares the alignment) or a shifted word loop
//     that reads the source only at aligned addresses and rebuilds each
//     destination word with word.Merge.
//
// Both finish with a byte loop for the tail.
//
// # Backward Move
//
// Backward copies one byte at a time from the end. The root package uses it
// only when the destination overlaps the source from above.
package engine
