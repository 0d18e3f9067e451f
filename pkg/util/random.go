package util

import "math/rand/v2"

// GenerateRandomOperands generates n random 16-bit operand pairs.  A given
// seed always yields the same sequence.
func GenerateRandomOperands(n uint, seed uint64) [][2]uint16 {
	r := rand.New(rand.NewPCG(seed, seed))
	items := make([][2]uint16, n)

	for i := uint(0); i < n; i++ {
		items[i] = [2]uint16{uint16(r.UintN(65536)), uint16(r.UintN(65536))}
	}

	return items
}
