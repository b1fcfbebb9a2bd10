// Package trie computes the root hash of a hexary (radix-16)
// Merkle-Patricia trie built on top of an abstract key/value storage. The
// trie is never materialized: its shape is inferred on the fly from two
// storage queries (spec.md, Storage) and the per-node encoding and hashing
// rule are applied as the recursion unwinds.
package trie

import "fmt"

// Nibble is a 4-bit unsigned integer in [0, 15].
type Nibble uint8

// NodeKey is an ordered sequence of nibbles identifying a node's absolute
// path from the notional trie root. An empty NodeKey denotes the root
// position itself.
type NodeKey []Nibble

// NodeKeyFromBytes splits each byte of b into a (high, low) nibble pair,
// high nibble first.
func NodeKeyFromBytes(b []byte) NodeKey {
	out := make(NodeKey, 0, len(b)*2)
	for _, c := range b {
		out = append(out, Nibble(c>>4), Nibble(c&0xf))
	}
	return out
}

// Append returns a new NodeKey equal to k with the given nibbles appended.
// It never aliases k's backing array.
func (k NodeKey) Append(nibbles ...Nibble) NodeKey {
	out := make(NodeKey, len(k)+len(nibbles))
	copy(out, k)
	copy(out[len(k):], nibbles)
	return out
}

// TruncatedBytes pairs nibbles from the left, high nibble first, dropping
// any trailing unpaired nibble. For a key of even length this is the exact
// byte string that would be passed to storage.
func (k NodeKey) TruncatedBytes() []byte {
	out := make([]byte, len(k)/2)
	for i := range out {
		out[i] = byte(k[2*i])<<4 | byte(k[2*i+1])
	}
	return out
}

// IsAncestorOrEqual reports whether the storage key b is equal to, or a
// strict descendant of, the node identified by k.
//
// If k has even length L, this is true iff b begins with the L/2-byte
// truncated form of k. If k has odd length, this is true iff b begins
// with the truncated form, is strictly longer than it, and the high
// nibble of b at byte position (L-1)/2 equals k's final nibble.
func (k NodeKey) IsAncestorOrEqual(b []byte) bool {
	truncated := k.TruncatedBytes()
	if !hasPrefix(b, truncated) {
		return false
	}
	if len(k)%2 == 0 {
		return true
	}
	if len(b) <= len(truncated) {
		return false
	}
	lastNibble := k[len(k)-1]
	return Nibble(b[len(truncated)]>>4) == lastNibble
}

func hasPrefix(b, prefix []byte) bool {
	if len(b) < len(prefix) {
		return false
	}
	for i, p := range prefix {
		if b[i] != p {
			return false
		}
	}
	return true
}

// String renders k as a sequence of hex digits, for debugging.
func (k NodeKey) String() string {
	s := make([]byte, len(k))
	for i, n := range k {
		s[i] = "0123456789abcdef"[n]
	}
	return fmt.Sprintf("%q", s)
}
