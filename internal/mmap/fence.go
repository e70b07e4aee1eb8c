package mmap

import (
	"errors"
	"fmt"
	"os"
)

var (
	// ErrUnsupported is returned on platforms without anonymous mappings.
	ErrUnsupported = errors.New("mmap: fences not supported on this platform")

	// ErrInvalidSize is returned for a negative size.
	ErrInvalidSize = errors.New("mmap: invalid size")
)

// Fence is an anonymous read/write mapping guarded by an inaccessible page
// on each side.
type Fence struct {
	mapping []byte
	usable  []byte
	unmap   func([]byte) error
}

// NewFence maps at least size usable bytes, rounded up to whole pages.
func NewFence(size int) (*Fence, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	page := os.Getpagesize()
	pages := max(1, (size+page-1)/page)

	mapping, unmap, err := osMapFenced(page, pages)
	if err != nil {
		return nil, err
	}

	return &Fence{
		mapping: mapping,
		usable:  mapping[page : page+pages*page : page+pages*page],
		unmap:   unmap,
	}, nil
}

// Len returns the number of usable bytes.
func (f *Fence) Len() int {
	return len(f.usable)
}

// Head returns the first n usable bytes. The byte before it is unmapped.
func (f *Fence) Head(n int) []byte {
	return f.usable[:n:n]
}

// Tail returns the last n usable bytes. The byte after it is unmapped.
func (f *Fence) Tail(n int) []byte {
	return f.usable[len(f.usable)-n:]
}

// Close unmaps the fence. Slices taken from it must not be used afterwards.
func (f *Fence) Close() error {
	if f == nil || f.mapping == nil {
		return nil
	}
	err := f.unmap(f.mapping)
	f.mapping, f.usable = nil, nil
	return err
}
