package trie

// commonPrefix returns the longest NodeKey that is a nibble-wise prefix of
// every key in keys. The second return value is false iff keys is empty.
func commonPrefix(keys [][]byte) (NodeKey, bool) {
	if len(keys) == 0 {
		return nil, false
	}
	longest := NodeKeyFromBytes(keys[0])
	for _, raw := range keys[1:] {
		if len(longest) == 0 {
			break
		}
		elem := NodeKeyFromBytes(raw)
		if len(elem) < len(longest) {
			longest = longest[:len(elem)]
		}
		for i, n := range longest {
			if elem[i] != n {
				longest = longest[:i]
				break
			}
		}
	}
	return longest, true
}
