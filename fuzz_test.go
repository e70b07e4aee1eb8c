package wordcopy

import (
	"testing"
)

func FuzzCopyBytes(f *testing.F) {
	f.Add([]byte("the quick brown fox jumps over the lazy dog"), uint8(3), uint8(7))
	f.Add([]byte{}, uint8(0), uint8(0))

	f.Fuzz(func(t *testing.T, data []byte, dstOff, srcOff uint8) {
		src := newArena(len(data), int(srcOff))
		copy(src.data(), data)
		dst := newArena(len(data), int(dstOff))

		if n := CopyBytes(dst.data(), src.data()); n != len(data) {
			t.Fatalf("copied %d bytes, want %d", n, len(data))
		}
		if string(dst.data()) != string(data) {
			t.Fatalf("copy mismatch at offsets dst=%d src=%d", dstOff, srcOff)
		}
		if !dst.guardsIntact() {
			t.Fatal("guard bytes overwritten")
		}
	})
}

func FuzzMoveBytes(f *testing.F) {
	f.Add([]byte("overlapping regions move like memmove"), uint8(4), uint8(0), uint8(20))
	f.Add([]byte("abcdefghijklmnopqrstuvwxyz"), uint8(0), uint8(9), uint8(17))

	f.Fuzz(func(t *testing.T, data []byte, dst, src, n uint8) {
		if int(dst)+int(n) > len(data) || int(src)+int(n) > len(data) {
			return
		}

		want := append([]byte(nil), data...)
		copy(want[dst:int(dst)+int(n)], data[src:int(src)+int(n)])

		got := append([]byte(nil), data...)
		MoveBytes(got[dst:int(dst)+int(n)], got[src:int(src)+int(n)])

		if string(got) != string(want) {
			t.Fatalf("move mismatch: dst=%d src=%d n=%d", dst, src, n)
		}
	})
}
