package engine

import (
	"unsafe"

	"github.com/hupe1980/wordcopy/internal/word"
)

// MinThreshold is the smallest count for which word copying pays for the
// alignment work.
const MinThreshold = 2 * word.Size

// Forward copies n bytes from src to dst using the path selected at build
// time. The regions must not overlap unless dst precedes src.
func Forward(dst, src unsafe.Pointer, n uintptr) {
	if word.EfficientUnaligned {
		Unaligned(dst, src, n)
		return
	}
	Strict(dst, src, n)
}

// Unaligned copies whole words regardless of the alignment of dst and src.
// It must only run where misaligned word access is allowed, or where dst and
// src share the same offset within a word.
func Unaligned(dst, src unsafe.Pointer, n uintptr) {
	var i uintptr
	if n >= MinThreshold {
		i = copyWords(dst, src, 0, n)
	}
	copyTail(dst, src, i, n)
}

// Strict copies n bytes without issuing a single misaligned word access.
//
//go:nocheckptr
func Strict(dst, src unsafe.Pointer, n uintptr) {
	var i uintptr
	if n >= MinThreshold {
		for ; !word.IsAligned(unsafe.Add(dst, i)); i++ {
			*(*byte)(unsafe.Add(dst, i)) = *(*byte)(unsafe.Add(src, i))
		}

		if distance := (uintptr(src) + i) & word.Mask; distance != 0 {
			i = copyShifted(dst, src, i, n, distance)
		} else {
			i = copyWords(dst, src, i, n)
		}
	}
	copyTail(dst, src, i, n)
}

// copyShifted fills aligned destination words starting at dst+i from a
// source that sits distance bytes past a word boundary. It returns the index
// of the first byte left uncopied. Source and destination indexes move in
// lockstep, so the tail resumes at the matching source offset.
//
//go:nocheckptr
func copyShifted(dst, src unsafe.Pointer, i, n, distance uintptr) uintptr {
	// Aligned view of the word holding src+i. The bytes below src+i that it
	// covers are read but never stored.
	base := unsafe.Add(src, int(i)-int(distance))

	// The loop reads one word ahead. Requiring Size+Mask bytes keeps that
	// read inside src+n.
	next := word.Load(base, 0)
	for off := uintptr(0); n-i >= word.Size+word.Mask; off += word.Size {
		last := next
		next = word.Load(base, off+word.Size)
		word.Store(dst, i, word.Merge(last, next, distance))
		i += word.Size
	}
	return i
}

// copyWords copies whole words from src+i to dst+i and returns the index of
// the first byte left uncopied.
func copyWords(dst, src unsafe.Pointer, i, n uintptr) uintptr {
	for ; n-i >= word.Size; i += word.Size {
		word.Store(dst, i, word.Load(src, i))
	}
	return i
}

//go:nocheckptr
func copyTail(dst, src unsafe.Pointer, i, n uintptr) {
	for ; i < n; i++ {
		*(*byte)(unsafe.Add(dst, i)) = *(*byte)(unsafe.Add(src, i))
	}
}
