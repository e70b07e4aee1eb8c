package word

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstants(t *testing.T) {
	assert.Equal(t, int(unsafe.Sizeof(uint(0))), Size)
	assert.Equal(t, int(unsafe.Sizeof(uintptr(0))), Size)
	assert.Equal(t, Size-1, Mask)
	assert.Zero(t, Size&Mask, "word size must be a power of two")
}

func TestOffset(t *testing.T) {
	buf := make([]uint, 4)
	base := unsafe.Pointer(&buf[0])
	require.True(t, IsAligned(base))

	for i := uintptr(0); i < 2*Size; i++ {
		p := unsafe.Add(base, i)
		assert.Equal(t, i%Size, Offset(p))
		assert.Equal(t, i%Size == 0, IsAligned(p))
	}
}

func TestLoadStore(t *testing.T) {
	buf := make([]uint, 3)
	base := unsafe.Pointer(&buf[0])

	Store(base, Size, 0x5A5A)
	assert.Equal(t, uint(0x5A5A), buf[1])
	assert.Equal(t, uint(0x5A5A), Load(base, Size))
	assert.Zero(t, Load(base, 0))
	assert.Zero(t, Load(base, 2*Size))
}

func TestPath(t *testing.T) {
	assert.Equal(t, "unaligned", Unaligned.String())
	assert.Equal(t, "shifted", Shifted.String())
	assert.Equal(t, "unknown", Path(42).String())

	p, ok := ParsePath(" Shifted ")
	assert.True(t, ok)
	assert.Equal(t, Shifted, p)

	_, ok = ParsePath("avx512")
	assert.False(t, ok)

	if EfficientUnaligned {
		assert.Equal(t, Unaligned, ActivePath())
	} else {
		assert.Equal(t, Shifted, ActivePath())
	}
	assert.Contains(t, []string{"big", "little"}, ByteOrder())
}
