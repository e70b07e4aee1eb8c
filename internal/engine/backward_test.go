package engine

import (
	"fmt"
	"testing"
	"unsafe"

	"github.com/hupe1980/wordcopy/internal/word"
	"github.com/hupe1980/wordcopy/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackwardOverlap(t *testing.T) {
	for _, size := range []int{1, word.Size, MinThreshold + 1, 37, 100} {
		for shift := 1; shift <= size+1; shift++ {
			t.Run(fmt.Sprintf("size=%d/shift=%d", size, shift), func(t *testing.T) {
				buf := newBuffer(size+shift, 0)
				testutil.FillPattern(buf.data(), 0x50)

				want := append([]byte(nil), buf.data()...)
				side := append([]byte(nil), want[:size]...)
				copy(want[shift:shift+size], side)

				src := buf.ptr()
				dst := unsafe.Add(src, shift)
				Backward(dst, src, uintptr(size))

				assert.Equal(t, want, buf.data())
				assert.True(t, buf.guardsIntact())
			})
		}
	}
}

func TestBackwardDisjoint(t *testing.T) {
	src := newBuffer(50, 1)
	testutil.FillPattern(src.data(), 0)
	dst := newBuffer(50, 6)

	Backward(dst.ptr(), src.ptr(), 50)

	require.Equal(t, src.data(), dst.data())
	assert.True(t, dst.guardsIntact())
}

func TestBackwardZeroLength(t *testing.T) {
	buf := newBuffer(0, 3)
	Backward(buf.ptr(), buf.ptr(), 0)
	assert.True(t, buf.guardsIntact())
	assert.NotPanics(t, func() { Backward(nil, nil, 0) })
}
