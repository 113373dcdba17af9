package dictionary

import (
	"hash/maphash"
	"iter"
)

// defaultChainCount is the initial number of buckets.
const defaultChainCount = 8

// ChainedHash is a separate-chaining hash dictionary. Each bucket is an
// ArrayDictionary; the bucket array doubles once the number of stored pairs
// reaches the number of buckets (load factor 1).
type ChainedHash[K comparable, V any] struct {
	seed   maphash.Seed
	chains []*ArrayDictionary[K, V] // nil until the first key lands in a bucket
	load   int
}

// NewChainedHash returns an empty ChainedHash.
func NewChainedHash[K comparable, V any]() *ChainedHash[K, V] {
	return &ChainedHash[K, V]{
		seed:   maphash.MakeSeed(),
		chains: make([]*ArrayDictionary[K, V], defaultChainCount),
	}
}

// bucket maps key to its chain index for the current bucket count.
func (d *ChainedHash[K, V]) bucket(key K, n int) int {
	return int(maphash.Comparable(d.seed, key) % uint64(n))
}

// chain returns the bucket for key, or nil when the bucket was never used.
func (d *ChainedHash[K, V]) chain(key K) *ArrayDictionary[K, V] {
	return d.chains[d.bucket(key, len(d.chains))]
}

// Get returns the value stored under key, or ErrNoSuchKey.
// Complexity: O(1) expected.
func (d *ChainedHash[K, V]) Get(key K) (V, error) {
	v, ok := d.Lookup(key)
	if !ok {
		return v, ErrNoSuchKey
	}

	return v, nil
}

// Lookup returns the value stored under key and whether it was found.
// Complexity: O(1) expected.
func (d *ChainedHash[K, V]) Lookup(key K) (V, bool) {
	if c := d.chain(key); c != nil {
		return c.Lookup(key)
	}
	var zero V

	return zero, false
}

// Put inserts or overwrites key, resizing afterwards if the load factor
// reached 1.
// Complexity: O(1) expected, O(n) for the occasional resize.
func (d *ChainedHash[K, V]) Put(key K, value V) {
	i := d.bucket(key, len(d.chains))
	c := d.chains[i]
	if c == nil {
		c = NewArrayDictionary[K, V]()
		d.chains[i] = c
	}
	before := c.Size()
	c.Put(key, value)
	if c.Size() > before {
		d.load++
		if d.load >= len(d.chains) {
			d.resize(2 * len(d.chains))
		}
	}
}

// resize rehashes every pair into n buckets.
func (d *ChainedHash[K, V]) resize(n int) {
	chains := make([]*ArrayDictionary[K, V], n)
	for _, old := range d.chains {
		if old == nil {
			continue
		}
		for k, v := range old.All() {
			i := d.bucket(k, n)
			if chains[i] == nil {
				chains[i] = NewArrayDictionary[K, V]()
			}
			chains[i].Put(k, v)
		}
	}
	d.chains = chains
}

// Remove deletes key and returns its value, or ErrNoSuchKey.
// Complexity: O(1) expected.
func (d *ChainedHash[K, V]) Remove(key K) (V, error) {
	c := d.chain(key)
	if c == nil {
		var zero V
		return zero, ErrNoSuchKey
	}
	v, err := c.Remove(key)
	if err != nil {
		return v, err
	}
	d.load--

	return v, nil
}

// ContainsKey reports whether key is present.
func (d *ChainedHash[K, V]) ContainsKey(key K) bool {
	c := d.chain(key)
	return c != nil && c.ContainsKey(key)
}

// Size returns the number of stored pairs.
func (d *ChainedHash[K, V]) Size() int {
	return d.load
}

// All iterates bucket by bucket. The order depends on the per-dictionary hash
// seed, so two dictionaries holding the same keys may iterate differently.
func (d *ChainedHash[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, c := range d.chains {
			if c == nil {
				continue
			}
			for k, v := range c.All() {
				if !yield(k, v) {
					return
				}
			}
		}
	}
}
