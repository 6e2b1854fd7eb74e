package internal

import "math/bits"

// Max calculates the maximum of two integers.
func Max(a int, b int) int {
	if a < b {
		return b
	}
	return a
}

// HeightBound returns the maximum height of a red-black tree with n nodes,
// rounded up from 2*log2(n+1).
func HeightBound(n int) int {
	if n <= 0 {
		return 0
	}
	return 2 * bits.Len(uint(n+1))
}
