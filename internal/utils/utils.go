package utils

// RoundUp2 - Returns the nearest bigger (or equal) exponent of 2 of a.
// Values less than 1 are rounded up to 1.
func RoundUp2(a int64) int64 {
	if a <= 1 {
		return 1
	}

	a--
	a |= a >> 1
	a |= a >> 2
	a |= a >> 4
	a |= a >> 8
	a |= a >> 16
	a |= a >> 32
	a++

	return a
}
