package engine

import (
	"unsafe"

	"github.com/hupe1980/wordcopy/internal/mem"
	"github.com/hupe1980/wordcopy/internal/word"
	"github.com/hupe1980/wordcopy/testutil"
)

const (
	guard     = word.Size
	guardByte = 0xEE
)

type copyFunc func(dst, src unsafe.Pointer, n uintptr)

// buffer is a region placed at a chosen word offset and fenced by guard
// bytes on both sides.
type buffer struct {
	raw  []byte
	size int
}

func newBuffer(size, offset int) buffer {
	raw := mem.AllocOffset(size+2*guard, offset)
	testutil.Fill(raw, guardByte)
	return buffer{raw: raw, size: size}
}

func (b buffer) ptr() unsafe.Pointer { return unsafe.Pointer(&b.raw[guard]) }

func (b buffer) data() []byte { return b.raw[guard : guard+b.size] }

func (b buffer) guardsIntact() bool {
	return testutil.AllEqual(b.raw[:guard], guardByte) &&
		testutil.AllEqual(b.raw[guard+b.size:], guardByte)
}

func naiveCopy(dst, src []byte) {
	for i := range dst {
		dst[i] = src[i]
	}
}

func copySizes() []int {
	sizes := make([]int, 0, 4*word.Size+6)
	for n := 0; n <= 4*word.Size+1; n++ {
		sizes = append(sizes, n)
	}
	return append(sizes, 37, 64, 255, 1024)
}
