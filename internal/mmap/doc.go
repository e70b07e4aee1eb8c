// Package mmap provides page-fenced anonymous mappings.
//
// A Fence maps a read/write area between two PROT_NONE pages. A slice taken
// from the head or tail of that area starts or ends exactly on an
// inaccessible page, so any access one byte outside it faults instead of
// silently reading a neighbor.
//
// # Usage
//
//	f, err := mmap.NewFence(37)
//	if err != nil { ... }
//	defer f.Close()
//
//	src := f.Tail(37) // src[37] would be in the guard page
//
// Combine with debug.SetPanicOnFault to turn the fault into a recoverable
// panic on the current goroutine.
//
// Fences are available on unix platforms. Elsewhere NewFence returns
// ErrUnsupported.
package mmap
