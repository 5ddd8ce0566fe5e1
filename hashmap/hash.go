// File: hash.go
// Role: default key hashing (xxhash for strings and integers, maphash otherwise).
package hashmap

import (
	"encoding/binary"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// DefaultHasher returns the Hasher used by New. Strings and fixed-width
// integers go through xxhash; any other comparable key is hashed with
// maphash.Comparable under a seed fixed for the returned function.
func DefaultHasher[K comparable]() Hasher[K] {
	seed := maphash.MakeSeed()

	return func(key K) uint64 {
		switch k := any(key).(type) {
		case string:
			return xxhash.Sum64String(k)
		case int:
			return hashUint64(uint64(k))
		case int64:
			return hashUint64(uint64(k))
		case int32:
			return hashUint64(uint64(k))
		case uint:
			return hashUint64(uint64(k))
		case uint64:
			return hashUint64(k)
		case uint32:
			return hashUint64(uint64(k))
		}

		return maphash.Comparable(seed, key)
	}
}

// hashUint64 runs the little-endian bytes of u through xxhash so that
// sequential integers spread across buckets.
func hashUint64(u uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], u)

	return xxhash.Sum64(buf[:])
}
