package trie

import "testing"

func TestCacheGetSetRoundTrip(t *testing.T) {
	c := NewCache()
	k := NodeKey{1, 2, 3}
	if _, ok := c.get(k); ok {
		t.Fatal("expected miss on empty cache")
	}
	c.set(k, []byte("encoded"))
	v, ok := c.get(k)
	if !ok || string(v) != "encoded" {
		t.Fatalf("expected hit with 'encoded', got %q ok=%v", v, ok)
	}
}

func TestCacheDistinguishesOddAndEvenParityKeys(t *testing.T) {
	c := NewCache()
	even := NodeKey{1, 2}
	odd := NodeKey{1, 2, 0}
	c.set(even, []byte("even"))
	c.set(odd, []byte("odd"))
	v, _ := c.get(even)
	if string(v) != "even" {
		t.Fatalf("expected 'even', got %q", v)
	}
	v, _ = c.get(odd)
	if string(v) != "odd" {
		t.Fatalf("expected 'odd', got %q", v)
	}
}

func TestCacheInvalidateKeyClearsAll(t *testing.T) {
	c := NewCache()
	c.set(NodeKey{1}, []byte("a"))
	c.set(NodeKey{2}, []byte("b"))
	c.InvalidateKey([]byte{1})
	if _, ok := c.get(NodeKey{1}); ok {
		t.Fatal("expected entry to be evicted")
	}
	if _, ok := c.get(NodeKey{2}); ok {
		t.Fatal("expected conservative invalidation to clear unrelated entries too")
	}
}
