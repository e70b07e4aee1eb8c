//go:build (386 || amd64 || arm64 || ppc64 || ppc64le || s390x) && !strictalign

package word

// EfficientUnaligned reports whether the target handles misaligned word
// accesses without a penalty.
const EfficientUnaligned = true
