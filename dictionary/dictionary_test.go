package dictionary_test

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlds/dictionary"
)

// implementations lists every Dictionary constructor under test.
func implementations() map[string]func() dictionary.Dictionary[string, int] {
	return map[string]func() dictionary.Dictionary[string, int]{
		"array":   func() dictionary.Dictionary[string, int] { return dictionary.NewArrayDictionary[string, int]() },
		"chained": func() dictionary.Dictionary[string, int] { return dictionary.NewChainedHash[string, int]() },
	}
}

func TestDictionary_PutGetOverwrite(t *testing.T) {
	for name, mk := range implementations() {
		t.Run(name, func(t *testing.T) {
			d := mk()
			d.Put("a", 1)
			d.Put("b", 2)
			d.Put("a", 10) // overwrite keeps size

			assert.Equal(t, 2, d.Size())
			v, err := d.Get("a")
			require.NoError(t, err)
			assert.Equal(t, 10, v)

			_, ok := d.Lookup("zzz")
			assert.False(t, ok)
			assert.True(t, d.ContainsKey("b"))
			assert.False(t, d.ContainsKey("c"))
		})
	}
}

func TestDictionary_MissingKey(t *testing.T) {
	for name, mk := range implementations() {
		t.Run(name, func(t *testing.T) {
			d := mk()
			_, err := d.Get("nope")
			assert.ErrorIs(t, err, dictionary.ErrNoSuchKey)
			_, err = d.Remove("nope")
			assert.ErrorIs(t, err, dictionary.ErrNoSuchKey)
		})
	}
}

func TestDictionary_RemoveKeepsOthers(t *testing.T) {
	for name, mk := range implementations() {
		t.Run(name, func(t *testing.T) {
			d := mk()
			for i := 0; i < 5; i++ {
				d.Put(fmt.Sprintf("k%d", i), i)
			}
			v, err := d.Remove("k1")
			require.NoError(t, err)
			assert.Equal(t, 1, v)
			assert.Equal(t, 4, d.Size())
			assert.False(t, d.ContainsKey("k1"))
			for _, k := range []string{"k0", "k2", "k3", "k4"} {
				assert.True(t, d.ContainsKey(k), k)
			}
		})
	}
}

// TestDictionary_AgainstMap runs a random operation sequence against a Go map
// and compares contents, exercising growth and rehashing.
func TestDictionary_AgainstMap(t *testing.T) {
	for name, mk := range implementations() {
		t.Run(name, func(t *testing.T) {
			r := rand.New(rand.NewSource(7))
			d := mk()
			want := map[string]int{}
			for i := 0; i < 2000; i++ {
				k := fmt.Sprintf("key-%d", r.Intn(300))
				if r.Intn(4) == 0 {
					_, err := d.Remove(k)
					_, had := want[k]
					if had {
						require.NoError(t, err)
					} else {
						require.ErrorIs(t, err, dictionary.ErrNoSuchKey)
					}
					delete(want, k)
					continue
				}
				d.Put(k, i)
				want[k] = i
			}

			require.Equal(t, len(want), d.Size())
			got := map[string]int{}
			for k, v := range d.All() {
				_, dup := got[k]
				require.False(t, dup, "key %s yielded twice", k)
				got[k] = v
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestDictionary_IterationStable(t *testing.T) {
	d := dictionary.NewChainedHash[int, int]()
	for i := 0; i < 100; i++ {
		d.Put(i, i*i)
	}
	var first, second []int
	for k := range d.All() {
		first = append(first, k)
	}
	for k := range d.All() {
		second = append(second, k)
	}
	assert.Equal(t, first, second)
}

func TestDictionary_IterationEarlyStop(t *testing.T) {
	for name, mk := range implementations() {
		t.Run(name, func(t *testing.T) {
			d := mk()
			for i := 0; i < 20; i++ {
				d.Put(fmt.Sprint(i), i)
			}
			n := 0
			for range d.All() {
				n++
				if n == 3 {
					break
				}
			}
			assert.Equal(t, 3, n)
		})
	}
}

func TestArrayDictionary_InsertionOrder(t *testing.T) {
	d := dictionary.NewArrayDictionary[string, int]()
	for i, k := range []string{"x", "y", "z", "w", "v", "u", "t", "s", "r"} {
		d.Put(k, i)
	}
	var keys []string
	for k := range d.All() {
		keys = append(keys, k)
	}
	assert.Equal(t, []string{"x", "y", "z", "w", "v", "u", "t", "s", "r"}, keys)
}

func TestChainedHash_PointerKeys(t *testing.T) {
	type node struct{ name string }
	a, b := &node{"a"}, &node{"a"} // equal contents, distinct identity
	d := dictionary.NewChainedHash[*node, string]()
	d.Put(a, "first")
	d.Put(b, "second")
	d.Put(nil, "nil-key")

	assert.Equal(t, 3, d.Size())
	v, err := d.Get(a)
	require.NoError(t, err)
	assert.Equal(t, "first", v)
	v, err = d.Get(nil)
	require.NoError(t, err)
	assert.Equal(t, "nil-key", v)
}

func TestSet(t *testing.T) {
	s := dictionary.NewSet("b", "a", "c", "a")
	assert.Equal(t, 3, s.Size())
	assert.True(t, s.Contains("a"))

	s.Add("c") // idempotent
	assert.Equal(t, 3, s.Size())

	require.NoError(t, s.Remove("a"))
	assert.ErrorIs(t, s.Remove("a"), dictionary.ErrNoSuchKey)
	assert.False(t, s.Contains("a"))

	got := s.Slice()
	sort.Strings(got)
	assert.Equal(t, []string{"b", "c"}, got)
}
