package mem

import (
	"unsafe"

	"github.com/hupe1980/wordcopy/internal/word"
)

// Alignment is the byte alignment used by AllocAligned (one cache line).
const Alignment = 64

// AllocAligned allocates a byte slice of the given size with 64-byte alignment.
// The returned slice is guaranteed to start at a memory address divisible by 64.
//
// Note: This function allocates slightly more memory than requested to ensure alignment.
// The underlying array is kept alive by the returned slice.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}

	// Allocate size + alignment to ensure we can find an aligned offset
	totalSize := size + Alignment
	buf := make([]byte, totalSize)

	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	addr := uintptr(ptr)
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	return buf[offset : offset+uintptr(size)]
}

// AllocOffset allocates a byte slice of the given size whose first byte sits
// offset bytes past a word boundary. offset is reduced modulo word.Size.
//
// The slice keeps at least word.Size bytes of spare capacity, so even a
// zero-size result has a well-defined unsafe.SliceData address.
func AllocOffset(size, offset int) []byte {
	if size < 0 {
		return nil
	}
	offset &= word.Mask

	buf := AllocAligned(size + word.Size)
	return buf[offset : offset+size]
}
