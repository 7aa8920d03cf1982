package hashmap

import (
	"unicode/utf16"
)

// hashMultiplier is the prime of the polynomial rolling hash.
const hashMultiplier = 31

// hashKey folds key into [0, capacity) one UTF-16 code unit at a time:
// h = (h*31 + unit) mod capacity. The result depends on capacity, so every
// entry has to be rehashed when the table grows.
func hashKey(key string, capacity int) int {
	c := uint64(capacity)
	var h uint64
	for _, r := range key {
		if r >= 0x10000 {
			hi, lo := utf16.EncodeRune(r)
			h = (h*hashMultiplier + uint64(hi)) % c
			h = (h*hashMultiplier + uint64(lo)) % c
			continue
		}
		h = (h*hashMultiplier + uint64(r)) % c
	}
	return int(h)
}
