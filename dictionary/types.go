package dictionary

import (
	"errors"
	"iter"
)

// ErrNoSuchKey indicates that a Get or Remove referenced a key that is not
// present in the dictionary.
var ErrNoSuchKey = errors.New("dictionary: no such key")

// Dictionary is a key → value mapping with unique keys.
type Dictionary[K comparable, V any] interface {
	// Get returns the value stored under key, or ErrNoSuchKey.
	Get(key K) (V, error)

	// Lookup returns the value stored under key and whether it was present.
	Lookup(key K) (V, bool)

	// Put stores value under key, replacing any previous value.
	Put(key K, value V)

	// Remove deletes key and returns its value, or ErrNoSuchKey.
	Remove(key K) (V, error)

	// ContainsKey reports whether key is present.
	ContainsKey(key K) bool

	// Size returns the number of stored pairs.
	Size() int

	// All iterates over every key/value pair.
	All() iter.Seq2[K, V]
}

// Compile-time checks.
var (
	_ Dictionary[string, int] = (*ArrayDictionary[string, int])(nil)
	_ Dictionary[string, int] = (*ChainedHash[string, int])(nil)
)

// pair is one stored key/value association.
type pair[K comparable, V any] struct {
	key   K
	value V
}
