// Package mem provides placement-controlled allocation for exercising
// aligned and misaligned copies.
//
// # Aligned Allocation
//
// AllocAligned returns cache-line aligned buffers. AllocOffset places the
// first byte at a chosen offset within a word, which is how tests and the
// verify harness pin every source/destination alignment pair.
package mem
