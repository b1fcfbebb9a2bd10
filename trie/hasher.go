package trie

import (
	"context"

	"golang.org/x/crypto/blake2b"
)

// merkleValue computes the Merkle value of the node whose absolute key is
// absoluteKey and whose partialKey is the suffix of absoluteKey it
// contributes, applying the inline-vs-hash rule: the root is always
// hashed, and so is any node whose encoded value is 32 bytes or longer;
// everything else is returned verbatim.
func merkleValue(s Storage, cache *Cache, absoluteKey, partialKey NodeKey, isRoot bool) ([]byte, error) {
	encoded, err := nodeValue(s, cache, absoluteKey, partialKey)
	if err != nil {
		return nil, err
	}
	if isRoot || len(encoded) >= 32 {
		sum := blake2b.Sum256(encoded)
		return sum[:], nil
	}
	return encoded, nil
}

// Root computes the 32-byte root hash of the trie described by s, with no
// memoization.
func Root(ctx context.Context, s Storage) ([32]byte, error) {
	return RootWithCache(ctx, s, nil)
}

// RootWithCache computes the 32-byte root hash of the trie described by s,
// consulting and populating cache as described by the Cache type. A nil
// cache behaves exactly like Root.
//
// ctx is checked once at entry: the computation is synchronous and
// uninterruptible once started (there are no internal suspension points to
// cancel at), so a context that is already done is rejected before any
// work begins rather than silently honored partway through.
func RootWithCache(ctx context.Context, s Storage, cache *Cache) ([32]byte, error) {
	if err := ctx.Err(); err != nil {
		return [32]byte{}, err
	}

	rootKey, ok := commonPrefix(s.PrefixKeys(nil))
	if !ok {
		rootKey = nil
	}

	value, err := merkleValue(s, cache, rootKey, rootKey, true)
	if err != nil {
		return [32]byte{}, err
	}

	var out [32]byte
	copy(out[:], value)
	return out, nil
}
