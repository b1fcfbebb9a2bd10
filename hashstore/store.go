// Package hashstore provides a reference, in-memory implementation of the
// trie.Storage contract: a sorted key/value store that answers prefix
// queries by binary-searching a maintained sorted index, the same
// approach the upstream calculate_root documentation sketches with a
// BTreeMap.
package hashstore

import (
	"bytes"
	"sort"

	"github.com/jaiminpan/triehash/trie"
)

// Store is an ephemeral, sorted key/value store. It is not safe for
// concurrent use.
type Store struct {
	values map[string][]byte
	sorted [][]byte // kept sorted; rebuilt lazily after mutation

	dirty bool
	cache *trie.Cache // optional; invalidated automatically by Put/Delete
}

// New returns an empty Store. If cache is non-nil, Put and Delete call its
// InvalidateKey hook automatically so callers cannot forget to do so.
func New(cache *trie.Cache) *Store {
	return &Store{
		values: make(map[string][]byte),
		cache:  cache,
	}
}

// Put inserts or overwrites the value at key.
func (s *Store) Put(key, value []byte) {
	k := string(key)
	if _, exists := s.values[k]; !exists {
		s.dirty = true
	}
	v := make([]byte, len(value))
	copy(v, value)
	s.values[k] = v
	if s.cache != nil {
		s.cache.InvalidateKey(key)
	}
}

// Delete removes the value at key, if any.
func (s *Store) Delete(key []byte) {
	k := string(key)
	if _, exists := s.values[k]; !exists {
		return
	}
	delete(s.values, k)
	s.dirty = true
	if s.cache != nil {
		s.cache.InvalidateKey(key)
	}
}

// GetValue implements trie.Storage.
func (s *Store) GetValue(key []byte) ([]byte, bool) {
	v, ok := s.values[string(key)]
	return v, ok
}

// PrefixKeys implements trie.Storage.
func (s *Store) PrefixKeys(prefix []byte) [][]byte {
	s.reindex()
	start := sort.Search(len(s.sorted), func(i int) bool {
		return bytes.Compare(s.sorted[i], prefix) >= 0
	})
	var out [][]byte
	for i := start; i < len(s.sorted); i++ {
		if !bytes.HasPrefix(s.sorted[i], prefix) {
			break
		}
		out = append(out, s.sorted[i])
	}
	return out
}

// reindex rebuilds the sorted key index after a mutation. Call sites that
// read (PrefixKeys) pay this cost at most once per batch of writes.
func (s *Store) reindex() {
	if !s.dirty && s.sorted != nil {
		return
	}
	s.sorted = s.sorted[:0]
	for k := range s.values {
		s.sorted = append(s.sorted, []byte(k))
	}
	sort.Slice(s.sorted, func(i, j int) bool {
		return bytes.Compare(s.sorted[i], s.sorted[j]) < 0
	})
	s.dirty = false
}
