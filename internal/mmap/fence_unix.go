//go:build unix

package mmap

import "golang.org/x/sys/unix"

func osMapFenced(page, pages int) ([]byte, func([]byte) error, error) {
	data, err := unix.Mmap(-1, 0, (pages+2)*page, unix.PROT_NONE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, err
	}

	if err := unix.Mprotect(data[page:(pages+1)*page], unix.PROT_READ|unix.PROT_WRITE); err != nil {
		_ = unix.Munmap(data)
		return nil, nil, err
	}

	return data, unix.Munmap, nil
}
