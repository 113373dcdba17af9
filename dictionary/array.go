package dictionary

import "iter"

// defaultArrayCapacity is the initial number of pair slots.
const defaultArrayCapacity = 8

// ArrayDictionary stores its pairs in a contiguous slice and finds keys by
// linear scan. Removal moves the last pair into the vacated slot, so
// iteration order is insertion order until the first removal.
type ArrayDictionary[K comparable, V any] struct {
	pairs []pair[K, V]
}

// NewArrayDictionary returns an empty ArrayDictionary.
func NewArrayDictionary[K comparable, V any]() *ArrayDictionary[K, V] {
	return &ArrayDictionary[K, V]{
		pairs: make([]pair[K, V], 0, defaultArrayCapacity),
	}
}

// indexOf returns the slot holding key, or -1.
func (d *ArrayDictionary[K, V]) indexOf(key K) int {
	for i := range d.pairs {
		if d.pairs[i].key == key {
			return i
		}
	}

	return -1
}

// Get returns the value stored under key, or ErrNoSuchKey.
// Complexity: O(n).
func (d *ArrayDictionary[K, V]) Get(key K) (V, error) {
	v, ok := d.Lookup(key)
	if !ok {
		return v, ErrNoSuchKey
	}

	return v, nil
}

// Lookup returns the value stored under key and whether it was found.
// Complexity: O(n).
func (d *ArrayDictionary[K, V]) Lookup(key K) (V, bool) {
	if i := d.indexOf(key); i >= 0 {
		return d.pairs[i].value, true
	}
	var zero V

	return zero, false
}

// Put inserts or overwrites key. When the backing slice is full its capacity
// is doubled before the append.
// Complexity: O(n) for the key scan, O(1) amortized for the append.
func (d *ArrayDictionary[K, V]) Put(key K, value V) {
	if i := d.indexOf(key); i >= 0 {
		d.pairs[i].value = value
		return
	}
	if len(d.pairs) == cap(d.pairs) {
		grown := make([]pair[K, V], len(d.pairs), max(2*cap(d.pairs), defaultArrayCapacity))
		copy(grown, d.pairs)
		d.pairs = grown
	}
	d.pairs = append(d.pairs, pair[K, V]{key: key, value: value})
}

// Remove deletes key, filling its slot with the last pair.
// Complexity: O(n).
func (d *ArrayDictionary[K, V]) Remove(key K) (V, error) {
	i := d.indexOf(key)
	if i < 0 {
		var zero V
		return zero, ErrNoSuchKey
	}
	v := d.pairs[i].value
	last := len(d.pairs) - 1
	d.pairs[i] = d.pairs[last]
	d.pairs[last] = pair[K, V]{} // release references
	d.pairs = d.pairs[:last]

	return v, nil
}

// ContainsKey reports whether key is present.
func (d *ArrayDictionary[K, V]) ContainsKey(key K) bool {
	return d.indexOf(key) >= 0
}

// Size returns the number of stored pairs.
func (d *ArrayDictionary[K, V]) Size() int {
	return len(d.pairs)
}

// All iterates over the pairs in slot order.
func (d *ArrayDictionary[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, p := range d.pairs {
			if !yield(p.key, p.value) {
				return
			}
		}
	}
}
