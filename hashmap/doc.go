// Package hashmap provides Map, a generic hash table with separate chaining
// and automatic growth, used by core as the node index of a Graph.
//
// Overview:
//
//   - Keys are any comparable type. A nil pointer, channel or interface key
//     is rejected by Put with ErrInvalidKey; 0, "" and other zero values are
//     ordinary keys.
//   - Each bucket holds an ordered chain of entries; lookups scan the chain
//     of bucket hash(key) mod Capacity() for an equal key.
//   - Put never overwrites: inserting an existing key returns ErrDuplicateKey
//     and leaves the stored value untouched.
//   - When Size()/Capacity() reaches LoadFactor (0.8) after a Put, the bucket
//     array doubles and every entry is rehashed against the new capacity.
//   - Remove and Clear never shrink the bucket array.
//
// Hashing:
//
//	Strings and integer keys are hashed with xxhash (github.com/cespare/xxhash/v2).
//	Every other comparable key falls back to hash/maphash.Comparable with a seed
//	drawn once per Map, so hashes are stable for the lifetime of the Map.
//	Callers who need a different distribution pass their own Hasher to NewWithHasher.
//
// Complexity:
//
//   - Put/Get/ContainsKey/Remove: O(1) average, O(n) worst case (single chain).
//   - Resize: O(n), amortised O(1) per Put.
//   - Clear: O(Capacity()).
//
// Errors (sentinel):
//
//   - ErrInvalidKey    – key is nil.
//   - ErrDuplicateKey  – Put on a key that is already present.
//   - ErrKeyNotFound   – Get/Remove on an absent key.
//   - ErrBadCapacity   – WithCapacity called with n ≤ 0 (raised via panic).
//
// Thread safety:
//
//	Map performs no locking. Concurrent readers are fine on an unmodified Map;
//	any mutation must be serialised by the caller.
package hashmap
