package word

import "golang.org/x/sys/cpu"

// Merge rebuilds one destination word from two adjacent aligned source
// words when the source runs distance bytes ahead of the destination.
// distance must be in [1, Size-1].
//
// The result holds the bytes last[distance:] followed by next[:distance] in
// memory order. Which bits those are depends on the byte order, so the
// variant is fixed at compile time.
func Merge(last, next uint, distance uintptr) uint {
	if cpu.IsBigEndian {
		return mergeHigh(last, next, distance)
	}
	return mergeLow(last, next, distance)
}

// mergeLow is the little-endian variant: earlier bytes live in the low bits.
func mergeLow(last, next uint, distance uintptr) uint {
	return last>>(distance*8) | next<<((Size-distance)*8)
}

// mergeHigh is the big-endian variant: earlier bytes live in the high bits.
func mergeHigh(last, next uint, distance uintptr) uint {
	return last<<(distance*8) | next>>((Size-distance)*8)
}
