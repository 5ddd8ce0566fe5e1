// File: hashmap.go
// Role: Map construction, mutation and lookup.
// Determinism:
//   - Range and Keys walk buckets in index order and each chain in insertion order.
//     The order changes after a resize; callers needing insertion order track it themselves.
package hashmap

import (
	"fmt"
	"reflect"
)

// Map is a hash table from K to V with chained buckets.
// The zero Map is not usable; construct with New or NewWithHasher.
type Map[K comparable, V any] struct {
	buckets [][]entry[K, V] // bucket index → chain
	size    int             // number of stored entries
	hash    Hasher[K]       // key hash function
	nilable bool            // K is a pointer, channel or interface kind
}

// New returns an empty Map using DefaultHasher.
//
// Complexity: O(capacity).
func New[K comparable, V any](opts ...Option) *Map[K, V] {
	return NewWithHasher[K, V](DefaultHasher[K](), opts...)
}

// NewWithHasher returns an empty Map that distributes keys with h.
// A nil h falls back to DefaultHasher.
func NewWithHasher[K comparable, V any](h Hasher[K], opts ...Option) *Map[K, V] {
	s := settings{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(&s)
	}
	if h == nil {
		h = DefaultHasher[K]()
	}

	return &Map[K, V]{
		buckets: make([][]entry[K, V], s.capacity),
		hash:    h,
		nilable: nilableKind(reflect.TypeFor[K]()),
	}
}

// Put stores value under key.
//
// Steps:
//  1. Reject a nil key (ErrInvalidKey). Zero values of other kinds, such as 0 or "", are valid keys.
//  2. Scan the target chain; an equal key yields ErrDuplicateKey and no change.
//  3. Append the entry to the chain.
//  4. If Size()/Capacity() ≥ LoadFactor, double the bucket array and rehash.
//
// Complexity: O(1) average, O(n) when a resize is triggered.
func (m *Map[K, V]) Put(key K, value V) error {
	if m.isNil(key) {
		return fmt.Errorf("%w: nil %T", ErrInvalidKey, key)
	}

	idx := m.index(key, len(m.buckets))
	for _, e := range m.buckets[idx] {
		if e.key == key {
			return fmt.Errorf("%w: %v", ErrDuplicateKey, key)
		}
	}
	m.buckets[idx] = append(m.buckets[idx], entry[K, V]{key: key, value: value})
	m.size++

	if float64(m.size)/float64(len(m.buckets)) >= LoadFactor {
		m.resize()
	}

	return nil
}

// Get returns the value stored under key, or ErrKeyNotFound.
func (m *Map[K, V]) Get(key K) (V, error) {
	if e := m.find(key); e != nil {
		return e.value, nil
	}
	var zero V

	return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
}

// ContainsKey reports whether key is stored. It never fails; a nil key is never stored.
func (m *Map[K, V]) ContainsKey(key K) bool {
	return m.find(key) != nil
}

// Remove detaches key and returns its value, or ErrKeyNotFound.
// Capacity is left unchanged.
func (m *Map[K, V]) Remove(key K) (V, error) {
	var zero V
	idx := m.index(key, len(m.buckets))
	chain := m.buckets[idx]
	for i := range chain {
		if chain[i].key != key {
			continue
		}
		value := chain[i].value
		// Shift the tail left to keep chain order, then clear the vacated slot.
		copy(chain[i:], chain[i+1:])
		chain[len(chain)-1] = entry[K, V]{}
		m.buckets[idx] = chain[:len(chain)-1]
		m.size--

		return value, nil
	}

	return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
}

// Clear drops every entry; capacity is unchanged.
func (m *Map[K, V]) Clear() {
	for i := range m.buckets {
		m.buckets[i] = nil
	}
	m.size = 0
}

// Size returns the number of stored entries.
func (m *Map[K, V]) Size() int { return m.size }

// Capacity returns the number of buckets.
func (m *Map[K, V]) Capacity() int { return len(m.buckets) }

// Range calls fn for every entry until fn returns false.
// fn must not mutate the Map.
func (m *Map[K, V]) Range(fn func(key K, value V) bool) {
	for _, chain := range m.buckets {
		for _, e := range chain {
			if !fn(e.key, e.value) {
				return
			}
		}
	}
}

// Keys returns every stored key in bucket order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.size)
	m.Range(func(k K, _ V) bool {
		keys = append(keys, k)
		return true
	})

	return keys
}

// find returns a pointer to the entry holding key, or nil.
func (m *Map[K, V]) find(key K) *entry[K, V] {
	chain := m.buckets[m.index(key, len(m.buckets))]
	for i := range chain {
		if chain[i].key == key {
			return &chain[i]
		}
	}

	return nil
}

// isNil reports whether key is the nil value of a nil-able key type.
func (m *Map[K, V]) isNil(key K) bool {
	if !m.nilable {
		return false
	}

	return reflect.ValueOf(&key).Elem().IsNil()
}

// nilableKind reports whether values of the comparable type t can be nil.
func nilableKind(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return true
	}

	return false
}

// index reduces the unsigned hash of key into [0, capacity).
func (m *Map[K, V]) index(key K, capacity int) int {
	return int(m.hash(key) % uint64(capacity))
}

// resize doubles the bucket array and reinserts every entry at the
// index computed from the new capacity.
func (m *Map[K, V]) resize() {
	old := m.buckets
	m.buckets = make([][]entry[K, V], 2*len(old))
	for _, chain := range old {
		for _, e := range chain {
			idx := m.index(e.key, len(m.buckets))
			m.buckets[idx] = append(m.buckets[idx], e)
		}
	}
}
