package hash

import (
	"encoding/binary"
	"hash"
	"hash/crc32"
)

var crc32cTable = crc32.MakeTable(crc32.Castagnoli)

// CRC32C computes the CRC32-Castagnoli checksum of data.
func CRC32C(data []byte) uint32 {
	return crc32.Checksum(data, crc32cTable)
}

// NewCRC32C returns a new CRC32-Castagnoli hash.Hash32.
func NewCRC32C() hash.Hash32 {
	return crc32.New(crc32cTable)
}

// Combine folds an ordered list of checksums into one. The result depends on
// order, so callers that compute parts concurrently must index them first.
func Combine(sums []uint32) uint32 {
	h := NewCRC32C()
	var b [4]byte
	for _, s := range sums {
		binary.LittleEndian.PutUint32(b[:], s)
		_, _ = h.Write(b[:])
	}
	return h.Sum32()
}
