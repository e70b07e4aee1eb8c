package wordcopy

import (
	"fmt"
	"testing"

	"github.com/hupe1980/wordcopy/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveOverlap(t *testing.T) {
	tests := []struct {
		name string
		dst  int
		src  int
	}{
		{"same region", 0, 0},
		{"dst after src", 3, 0},
		{"dst one word after src", WordSize, 0},
		{"dst before src", 0, 5},
		{"dst one word before src", 0, WordSize},
		{"adjacent above", 40, 0},
		{"adjacent below", 0, 40},
		{"disjoint above", 60, 0},
		{"disjoint below", 0, 60},
	}

	for _, tt := range tests {
		for base := 0; base < WordSize; base++ {
			t.Run(fmt.Sprintf("%s/base=%d", tt.name, base), func(t *testing.T) {
				const n = 40
				a := newArena(n+60, base)
				testutil.FillPattern(a.data(), 0x20)

				want := append([]byte(nil), a.data()...)
				referenceMove(want, tt.dst, tt.src, n)

				got := Move(a.at(tt.dst), a.at(tt.src), n)

				assert.Equal(t, a.at(tt.dst), got)
				assert.Equal(t, want, a.data())
				assert.True(t, a.guardsIntact())
			})
		}
	}
}

func TestMoveAllShifts(t *testing.T) {
	for _, n := range []int{1, WordSize - 1, 2 * WordSize, 37, 100} {
		for delta := -(n + 1); delta <= n+1; delta++ {
			for base := 0; base < WordSize; base++ {
				src := n + 1
				dst := src + delta

				a := newArena(3*n+2, base)
				testutil.FillPattern(a.data(), 0x70)

				want := append([]byte(nil), a.data()...)
				referenceMove(want, dst, src, n)

				Move(a.at(dst), a.at(src), uintptr(n))

				require.Equal(t, want, a.data(), "n=%d delta=%d base=%d", n, delta, base)
				require.True(t, a.guardsIntact())
			}
		}
	}
}

func TestMoveZeroLength(t *testing.T) {
	a := newArena(8, 1)
	testutil.FillPattern(a.data(), 0)
	before := append([]byte(nil), a.data()...)

	assert.Equal(t, a.at(4), Move(a.at(4), a.at(0), 0))
	assert.Equal(t, a.at(0), Memmove(a.at(0), a.at(4), 0))
	assert.Equal(t, before, a.data())
	assert.Nil(t, Move(nil, nil, 0))
}

func TestMoveBytes(t *testing.T) {
	buf := testutil.Pattern(64)

	n := MoveBytes(buf[5:], buf)
	assert.Equal(t, 59, n)
	assert.Equal(t, testutil.Pattern(59), buf[5:])
	assert.Equal(t, testutil.Pattern(5), buf[:5])

	buf = testutil.Pattern(64)
	n = MoveBytes(buf, buf[7:])
	assert.Equal(t, 57, n)
	assert.Equal(t, testutil.PatternFrom(7, 57), buf[:57])

	assert.Zero(t, MoveBytes(buf[:0], buf))
}
