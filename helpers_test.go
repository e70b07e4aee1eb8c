package wordcopy

import (
	"unsafe"

	"github.com/hupe1980/wordcopy/internal/mem"
	"github.com/hupe1980/wordcopy/testutil"
)

const guardByte = 0xEE

// arena is a guarded scratch region placed at a chosen word offset.
type arena struct {
	raw  []byte
	size int
}

func newArena(size, offset int) arena {
	raw := mem.AllocOffset(size+2*WordSize, offset)
	testutil.Fill(raw, guardByte)
	return arena{raw: raw, size: size}
}

func (a arena) at(i int) unsafe.Pointer { return unsafe.Pointer(&a.raw[WordSize+i]) }

func (a arena) data() []byte { return a.raw[WordSize : WordSize+a.size] }

func (a arena) guardsIntact() bool {
	return testutil.AllEqual(a.raw[:WordSize], guardByte) &&
		testutil.AllEqual(a.raw[WordSize+a.size:], guardByte)
}

// referenceMove reads the whole source into a side buffer before writing.
func referenceMove(buf []byte, dst, src, n int) {
	side := append([]byte(nil), buf[src:src+n]...)
	copy(buf[dst:dst+n], side)
}
