package trie

import "sync"

// Cache memoizes the encoded node value (the bytes produced by nodeValue,
// not the possibly-hashed Merkle value) for each absolute NodeKey seen
// during a computation. Entries stay valid for as long as the associated
// storage snapshot is unchanged; callers must invalidate affected entries
// through InvalidateKey or InvalidatePrefix after every storage mutation.
//
// A Cache is owned exclusively by whichever computation is actively using
// it (spec.md §5); the lock below guards against accidental concurrent
// reuse rather than supporting genuine concurrent access.
type Cache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string][]byte)}
}

func (c *Cache) get(k NodeKey) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[string(nibbleBytes(k))]
	return v, ok
}

func (c *Cache) set(k NodeKey, v []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.entries == nil {
		c.entries = make(map[string][]byte)
	}
	c.entries[string(nibbleBytes(k))] = v
}

// InvalidateKey must be called after any change to the value stored at
// storage key K, including insertion and deletion. The node at K, every
// ancestor of K, and any sibling whose skip-compressed path could have
// shifted may depend on it, so this drops every cache entry.
func (c *Cache) InvalidateKey(k []byte) {
	c.clear()
}

// InvalidatePrefix must be called after any change affecting the set of
// keys starting with prefix. Same conservative semantics as InvalidateKey.
func (c *Cache) InvalidatePrefix(prefix []byte) {
	c.clear()
}

func (c *Cache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string][]byte)
}

// nibbleBytes packs a NodeKey into a byte string suitable for use as a map
// key, distinguishing odd and even lengths (unlike TruncatedBytes, which
// collapses them) by prefixing with the nibble count.
func nibbleBytes(k NodeKey) []byte {
	out := make([]byte, 0, len(k)+2)
	out = append(out, byte(len(k)), byte(len(k)>>8))
	for _, n := range k {
		out = append(out, byte(n))
	}
	return out
}
