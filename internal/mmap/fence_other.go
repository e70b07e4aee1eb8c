//go:build !unix

package mmap

func osMapFenced(page, pages int) ([]byte, func([]byte) error, error) {
	return nil, nil, ErrUnsupported
}
