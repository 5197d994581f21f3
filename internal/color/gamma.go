package color

import "math"

// Gamma builds a 256 entry correction table for the given exponent. A factor of 1 or less gives the identity table.
func Gamma(factor float64) []byte {
	table := make([]byte, 256)
	for i := range table {
		if factor <= 1 {
			table[i] = byte(i)
			continue
		}
		table[i] = byte(math.Floor(math.Pow(float64(i)/255, factor)*255 + 0.5))
	}
	return table
}
