// Package safeconv guards integer conversions at the grammar runtime
// boundary, where byte offsets arrive as uint.
package safeconv

// MaxInt is the largest value an int holds on this platform.
const MaxInt = int(^uint(0) >> 1)

// MustUintToInt converts v to int, panicking on overflow. Callers use it
// where v is bounded by a buffer length, so overflow means corruption
// rather than bad input.
func MustUintToInt(v uint) int {
	if v > uint(MaxInt) {
		panic("safeconv: uint overflows int")
	}

	return int(v)
}
