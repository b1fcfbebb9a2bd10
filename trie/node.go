package trie

import "github.com/jaiminpan/triehash/codec"

// nodeType classifies a node by the two most-significant header bits.
type nodeType byte

const (
	nodeTypeEmpty  nodeType = 0b00 // no stored value, no children
	nodeTypeLeaf   nodeType = 0b01 // stored value, no children
	nodeTypeBranch nodeType = 0b10 // children, no stored value
	nodeTypeBoth   nodeType = 0b11 // children and stored value
)

// nodeValue produces the canonical encoded bytes of the node identified by
// absoluteKey, whose contribution to that key is partialKey. It consults
// cache first; on a miss it infers the node's shape, recurses into any
// children through merkleValue, and caches the result under absoluteKey.
func nodeValue(s Storage, cache *Cache, absoluteKey, partialKey NodeKey) ([]byte, error) {
	if cache != nil {
		if v, ok := cache.get(absoluteKey); ok {
			return v, nil
		}
	}

	var storedValue []byte
	var hasValue bool
	if len(absoluteKey)%2 == 0 {
		storedValue, hasValue = s.GetValue(absoluteKey.TruncatedBytes())
	}

	children := childNodes(s, absoluteKey)

	typ := nodeTypeFor(hasValue, len(children) > 0)

	out, err := appendHeader(nil, typ, len(partialKey))
	if err != nil {
		return nil, &valueTooLargeError{key: absoluteKey, err: err}
	}
	out = appendPartialKeyHex(out, partialKey)

	if len(children) == 0 {
		if hasValue {
			out, err = codec.AppendBytes(out, storedValue)
			if err != nil {
				return nil, &valueTooLargeError{key: absoluteKey, err: err}
			}
		}
	} else {
		out = appendChildBitmap(out, children)
		for _, c := range children {
			childAbsolute := c.key
			childPartial := childAbsolute[len(absoluteKey)+1:]
			childMerkle, err := merkleValue(s, cache, childAbsolute, childPartial, false)
			if err != nil {
				return nil, err
			}
			out, err = codec.AppendBytes(out, childMerkle)
			if err != nil {
				return nil, &valueTooLargeError{key: childAbsolute, err: err}
			}
		}
		if hasValue {
			out, err = codec.AppendBytes(out, storedValue)
			if err != nil {
				return nil, &valueTooLargeError{key: absoluteKey, err: err}
			}
		}
	}

	if cache != nil {
		cache.set(absoluteKey, out)
	}
	return out, nil
}

func nodeTypeFor(hasValue, hasChildren bool) nodeType {
	switch {
	case !hasValue && !hasChildren:
		return nodeTypeEmpty
	case hasValue && !hasChildren:
		return nodeTypeLeaf
	case !hasValue && hasChildren:
		return nodeTypeBranch
	default:
		return nodeTypeBoth
	}
}

// appendHeader appends the 2-bit type plus the partial-key nibble length L
// encoded per spec.md §4.E: single byte if L < 63, otherwise a leading
// (type<<6)|63 byte followed by as many 255s as needed and a final byte
// holding the remainder.
func appendHeader(dst []byte, typ nodeType, nibbleLen int) ([]byte, error) {
	if nibbleLen < 63 {
		return append(dst, byte(typ)<<6|byte(nibbleLen)), nil
	}
	dst = append(dst, byte(typ)<<6|63)
	remaining := nibbleLen - 63
	for remaining > 255 {
		dst = append(dst, 255)
		remaining -= 255
	}
	return append(dst, byte(remaining)), nil
}

// appendPartialKeyHex packs the partial key's nibbles two per byte, high
// nibble first. An odd-length partial key emits its first nibble alone, in
// the low half of a byte whose high half is zero.
func appendPartialKeyHex(dst []byte, partialKey NodeKey) []byte {
	nibbles := []Nibble(partialKey)
	if len(nibbles)%2 != 0 {
		dst = append(dst, byte(nibbles[0]))
		nibbles = nibbles[1:]
	}
	for i := 0; i < len(nibbles); i += 2 {
		dst = append(dst, byte(nibbles[i])<<4|byte(nibbles[i+1]))
	}
	return dst
}

// appendChildBitmap appends the 16-bit little-endian bitmap of occupied
// child slots.
func appendChildBitmap(dst []byte, children []childNode) []byte {
	var bitmap uint16
	for _, c := range children {
		bitmap |= 1 << uint(c.index)
	}
	return append(dst, byte(bitmap), byte(bitmap>>8))
}
