package util

import "hash/fnv"

// StableSeed hashes s with 64-bit FNV-1a. Unlike runtime map or string
// hashing, the result is identical across processes and platforms, so it
// can seed reproducible pseudo-random streams.
func StableSeed(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}
