package engine

import "unsafe"

// Backward copies n bytes from src to dst starting with the last byte. It is
// correct whenever dst does not precede src.
//
//go:nocheckptr
func Backward(dst, src unsafe.Pointer, n uintptr) {
	for n > 0 {
		n--
		*(*byte)(unsafe.Add(dst, n)) = *(*byte)(unsafe.Add(src, n))
	}
}
