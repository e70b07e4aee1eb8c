package word

import (
	"math/bits"
	"unsafe"
)

const (
	// Size is the native word width in bytes.
	Size = bits.UintSize / 8

	// Mask tests an address for word alignment.
	Mask = Size - 1
)

// Offset returns the misalignment of p relative to a word boundary.
func Offset(p unsafe.Pointer) uintptr {
	return uintptr(p) & Mask
}

// IsAligned reports whether p sits on a word boundary.
func IsAligned(p unsafe.Pointer) bool {
	return Offset(p) == 0
}

// Load reads the word at p+off.
//
// This and Store are the only places that view a byte buffer as words.
// The caller guarantees that Size bytes are readable at p+off and, when
// EfficientUnaligned is false, that p+off is word aligned.
//
//go:nocheckptr
func Load(p unsafe.Pointer, off uintptr) uint {
	return *(*uint)(unsafe.Add(p, off))
}

// Store writes w to the word at p+off under the same contract as Load.
//
//go:nocheckptr
func Store(p unsafe.Pointer, off uintptr, w uint) {
	*(*uint)(unsafe.Add(p, off)) = w
}
