package trie

// childNode pairs a child slot index with the absolute NodeKey of the
// (possibly skip-compressed) node occupying that slot.
type childNode struct {
	index Nibble
	key   NodeKey
}

// childNodes infers the shape of the node at absoluteKey: for each of the
// 16 possible branch nibbles, it asks which stored keys descend from that
// trial child and, if any do, folds their common prefix in as the child's
// absolute key (any skip-compressed path is already included). The result
// has between 0 and 16 entries, ordered by ascending slot index, and every
// returned key strictly extends absoluteKey by at least one nibble.
func childNodes(s Storage, absoluteKey NodeKey) []childNode {
	var out []childNode
	for i := Nibble(0); i < 16; i++ {
		trial := absoluteKey.Append(i)
		keys := descendants(s, trial)
		prefix, ok := commonPrefix(keys)
		if !ok {
			continue
		}
		out = append(out, childNode{index: i, key: prefix})
	}
	return out
}
