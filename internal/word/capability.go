package word

import (
	"strings"

	"golang.org/x/sys/cpu"
)

// Path identifies the word-copy strategy compiled into the engine.
type Path uint8

const (
	// Unaligned copies whole words from any address.
	Unaligned Path = iota
	// Shifted aligns the destination first and merges misaligned source words.
	Shifted
)

// String returns the string representation of a Path.
func (p Path) String() string {
	switch p {
	case Unaligned:
		return "unaligned"
	case Shifted:
		return "shifted"
	default:
		return "unknown"
	}
}

// ParsePath parses a string into a Path value.
func ParsePath(s string) (Path, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "unaligned":
		return Unaligned, true
	case "shifted":
		return Shifted, true
	default:
		return Unaligned, false
	}
}

// ActivePath returns the path selected at build time.
func ActivePath() Path {
	if EfficientUnaligned {
		return Unaligned
	}
	return Shifted
}

// ByteOrder returns "big" or "little" for the compile-time byte order.
func ByteOrder() string {
	if cpu.IsBigEndian {
		return "big"
	}
	return "little"
}
