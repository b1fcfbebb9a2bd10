package trie

import "testing"

func TestNodeKeyFromBytesAndTruncatedBytes(t *testing.T) {
	b := []byte{0xAB, 0xCD}
	k := NodeKeyFromBytes(b)
	if len(k) != 4 {
		t.Fatalf("expected 4 nibbles, got %d", len(k))
	}
	want := []Nibble{0xA, 0xB, 0xC, 0xD}
	for i, n := range want {
		if k[i] != n {
			t.Fatalf("nibble %d: expected %x got %x", i, n, k[i])
		}
	}
	got := k.TruncatedBytes()
	if len(got) != 2 || got[0] != 0xAB || got[1] != 0xCD {
		t.Fatalf("unexpected truncated bytes: %x", got)
	}
}

func TestTruncatedBytesOddLengthDropsLastNibble(t *testing.T) {
	k := NodeKey{0xA, 0xB, 0xC}
	got := k.TruncatedBytes()
	if len(got) != 1 || got[0] != 0xAB {
		t.Fatalf("expected [0xAB], got %x", got)
	}
}

func TestIsAncestorOrEqualEvenLength(t *testing.T) {
	k := NodeKeyFromBytes([]byte("fo"))
	if !k.IsAncestorOrEqual([]byte("foo")) {
		t.Fatal("expected 'fo' to be ancestor of 'foo'")
	}
	if !k.IsAncestorOrEqual([]byte("fo")) {
		t.Fatal("expected 'fo' to be ancestor-or-equal of itself")
	}
	if k.IsAncestorOrEqual([]byte("bar")) {
		t.Fatal("expected 'fo' not to be ancestor of 'bar'")
	}
}

func TestIsAncestorOrEqualOddLength(t *testing.T) {
	// "fo" truncated to the 'f' nibble pair plus a lone '6' nibble (high
	// half of 'o' == 0x6) : key = 'f', 0x6
	k := NodeKey{0x6, 0x6, 0x6}
	if !k.IsAncestorOrEqual([]byte("fo")) {
		t.Fatal("expected odd-length key to match 'fo'")
	}
	if k.IsAncestorOrEqual([]byte("f")) {
		t.Fatal("'f' alone is not strictly longer than the truncated form")
	}
	other := NodeKey{0x6, 0x6, 0x7} // last nibble 0x7 != high nibble of 'o' (0x6)
	if other.IsAncestorOrEqual([]byte("fo")) {
		t.Fatal("expected mismatched trailing nibble to reject")
	}
}

func TestAppendDoesNotAliasBackingArray(t *testing.T) {
	base := NodeKey{1, 2, 3}
	a := base.Append(4)
	b := base.Append(5)
	if a[3] != 4 || b[3] != 5 {
		t.Fatalf("Append aliased: a=%v b=%v", a, b)
	}
}
