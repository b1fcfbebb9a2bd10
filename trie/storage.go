package trie

// Storage is the abstract key/value collaborator the core reads from. A
// single root computation treats the snapshot it describes as immutable:
// both methods must be pure and mutually consistent across every call made
// during that computation.
type Storage interface {
	// GetValue returns the value stored at key and true, or false if key
	// has no stored value. It must return the same answer every time it
	// is called with the same key during one computation.
	GetValue(key []byte) ([]byte, bool)

	// PrefixKeys returns every stored key whose byte form begins with
	// prefix. Omitting a matching key silently corrupts the computed
	// root (spec.md §7); order is unspecified.
	PrefixKeys(prefix []byte) [][]byte
}

// descendants returns every storage key that is equal to, or a strict
// descendant of, the node identified by k. The byte-level PrefixKeys query
// is coarser than nibble-level containment when k has odd length, so the
// result is always filtered through IsAncestorOrEqual.
func descendants(s Storage, k NodeKey) [][]byte {
	candidates := s.PrefixKeys(k.TruncatedBytes())
	out := candidates[:0:0]
	for _, c := range candidates {
		if k.IsAncestorOrEqual(c) {
			out = append(out, c)
		}
	}
	return out
}
