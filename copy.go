package wordcopy

import (
	"unsafe"

	"github.com/hupe1980/wordcopy/internal/engine"
	"github.com/hupe1980/wordcopy/internal/word"
)

// WordSize is the native word width in bytes.
const WordSize = word.Size

// Path identifies the word-copy strategy compiled into the package.
type Path = word.Path

// ActivePath returns the word-copy path selected at build time.
func ActivePath() Path {
	return word.ActivePath()
}

// Copy copies n bytes from src to dst and returns dst.
//
// The regions must not overlap, except that dst may precede src. Use Move
// when dst may lie inside the source region.
func Copy(dst, src unsafe.Pointer, n uintptr) unsafe.Pointer {
	engine.Forward(dst, src, n)
	return dst
}

// Memcpy is Copy under its conventional name.
func Memcpy(dst, src unsafe.Pointer, n uintptr) unsafe.Pointer {
	return Copy(dst, src, n)
}

// CopyBytes copies min(len(dst), len(src)) bytes from src to dst and returns
// the number of bytes copied. The slices must not overlap, except that dst
// may start before src.
func CopyBytes(dst, src []byte) int {
	n := min(len(dst), len(src))
	if n == 0 {
		return 0
	}
	Copy(unsafe.Pointer(unsafe.SliceData(dst)), unsafe.Pointer(unsafe.SliceData(src)), uintptr(n))
	return n
}
