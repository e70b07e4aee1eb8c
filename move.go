package wordcopy

import (
	"unsafe"

	"github.com/hupe1980/wordcopy/internal/engine"
)

// Move copies n bytes from src to dst as if src were read in full before
// dst is written, and returns dst. The regions may overlap in any way.
func Move(dst, src unsafe.Pointer, n uintptr) unsafe.Pointer {
	d, s := uintptr(dst), uintptr(src)

	// A source that ends exactly where dst starts does not overlap.
	if d < s || s+n <= d {
		return Copy(dst, src, n)
	}

	if d > s {
		engine.Backward(dst, src, n)
	}
	return dst
}

// Memmove is Move under its conventional name.
func Memmove(dst, src unsafe.Pointer, n uintptr) unsafe.Pointer {
	return Move(dst, src, n)
}

// MoveBytes copies min(len(dst), len(src)) bytes from src to dst and returns
// the number of bytes copied. The slices may overlap.
func MoveBytes(dst, src []byte) int {
	n := min(len(dst), len(src))
	if n == 0 {
		return 0
	}
	Move(unsafe.Pointer(unsafe.SliceData(dst)), unsafe.Pointer(unsafe.SliceData(src)), uintptr(n))
	return n
}
