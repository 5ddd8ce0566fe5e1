// File: types.go
// Role: sentinel errors, entry type, Hasher capability and construction options.
package hashmap

import "errors"

// Sentinel errors returned by Map operations.
var (
	// ErrInvalidKey indicates a nil key of a pointer, channel or interface key type.
	ErrInvalidKey = errors.New("hashmap: invalid key")

	// ErrDuplicateKey indicates Put was called with a key that is already stored.
	ErrDuplicateKey = errors.New("hashmap: duplicate key")

	// ErrKeyNotFound indicates Get or Remove was called with an absent key.
	ErrKeyNotFound = errors.New("hashmap: key not found")

	// ErrBadCapacity indicates an initial capacity of zero or less.
	ErrBadCapacity = errors.New("hashmap: capacity must be positive")
)

const (
	// DefaultCapacity is the bucket count of a Map built without WithCapacity.
	DefaultCapacity = 64

	// LoadFactor is the Size()/Capacity() ratio at which Put doubles the bucket array.
	LoadFactor = 0.8
)

// Hasher maps a key to a 64-bit hash. It must be deterministic for the
// lifetime of the Map and consistent with ==.
type Hasher[K comparable] func(key K) uint64

// entry is one key/value pair in a bucket chain.
type entry[K comparable, V any] struct {
	key   K
	value V
}

// settings collects construction-time parameters.
type settings struct {
	capacity int
}

// Option configures a Map at construction time.
type Option func(*settings)

// WithCapacity sets the initial number of buckets.
// Panics with ErrBadCapacity if n ≤ 0.
func WithCapacity(n int) Option {
	return func(s *settings) {
		if n <= 0 {
			panic(ErrBadCapacity)
		}
		s.capacity = n
	}
}
