package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// FillBytes fills dst with random bytes.
// Locks only once per call (preferred over calling Intn in a loop).
func (r *RNG) FillBytes(dst []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = r.rand.Read(dst)
}

// Bytes returns n random bytes.
func (r *RNG) Bytes(n int) []byte {
	b := make([]byte, n)
	r.FillBytes(b)
	return b
}

// Pattern returns the incrementing sequence 0, 1, 2, ... of length n,
// wrapping at 256.
func Pattern(n int) []byte {
	return PatternFrom(0, n)
}

// PatternFrom returns an incrementing byte sequence of length n starting at start.
func PatternFrom(start byte, n int) []byte {
	b := make([]byte, n)
	FillPattern(b, start)
	return b
}

// FillPattern writes an incrementing byte sequence starting at start into dst.
func FillPattern(dst []byte, start byte) {
	for i := range dst {
		dst[i] = start + byte(i)
	}
}

// Fill sets every byte of dst to v.
func Fill(dst []byte, v byte) {
	for i := range dst {
		dst[i] = v
	}
}

// AllEqual reports whether every byte of b equals v.
func AllEqual(b []byte, v byte) bool {
	for _, c := range b {
		if c != v {
			return false
		}
	}
	return true
}

// FirstDiff returns the index of the first differing byte of a and b, or -1
// when they are equal. Slices of different length differ at the shorter length.
func FirstDiff(a, b []byte) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	if len(a) != len(b) {
		return n
	}
	return -1
}
