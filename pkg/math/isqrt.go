package math

import "fmt"

// ISqrt returns the largest integer r with r*r <= n. It panics if n is
// negative.
func ISqrt(n int) int {
	if n < 0 {
		panic(fmt.Sprintf("math: ISqrt of negative number %d", n))
	}

	// Highest power of four not above n.
	bit := 1
	for bit <= n>>2 {
		bit <<= 2
	}

	result := 0
	for bit != 0 {
		if n >= result+bit {
			n -= result + bit
			result = result>>1 + bit
		} else {
			result >>= 1
		}
		bit >>= 2
	}
	return result
}
