// Package dictionary provides the associative containers used as supporting
// storage by the rest of lvlds: an array-backed dictionary, a chained hash
// dictionary and a hash set built on top of it.
//
// Contract shared by every Dictionary implementation:
//
//   - Keys are unique; Put on an existing key overwrites its value.
//   - Get and Remove on a missing key return ErrNoSuchKey.
//   - All yields every pair exactly once. The order is unspecified but stable
//     for as long as the dictionary is not mutated.
//
// Complexity:
//
//   - ArrayDictionary: O(n) lookups, O(1) amortized appends (doubling growth).
//     Best for the small per-bucket chains of ChainedHash.
//   - ChainedHash: O(1) expected Get/Put/Remove. The bucket array doubles
//     whenever the load factor reaches 1.
//   - Set: same costs as ChainedHash.
//
// None of the types are safe for concurrent use.
package dictionary
