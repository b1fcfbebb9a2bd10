package trie

import "testing"

func TestAppendHeaderShortLength(t *testing.T) {
	out, err := appendHeader(nil, nodeTypeLeaf, 6)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0] != 0b01<<6|6 {
		t.Fatalf("unexpected header: %x", out)
	}
}

func TestAppendHeaderLongLength(t *testing.T) {
	// 256 nibbles: 256-63 = 193, fits in one trailing byte.
	out, err := appendHeader(nil, nodeTypeBranch, 256)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 header bytes, got %d (%x)", len(out), out)
	}
	if out[0] != 0b10<<6|63 {
		t.Fatalf("unexpected leading header byte: %x", out[0])
	}
	if out[1] != 193 {
		t.Fatalf("unexpected trailing header byte: %d", out[1])
	}
}

func TestAppendHeaderVeryLongLengthUsesMultiple255s(t *testing.T) {
	// 63 + 255 + 10 = 328
	out, err := appendHeader(nil, nodeTypeBoth, 328)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 header bytes, got %d (%x)", len(out), out)
	}
	if out[0] != 0b11<<6|63 || out[1] != 255 || out[2] != 10 {
		t.Fatalf("unexpected header bytes: %x", out)
	}
}

func TestAppendPartialKeyHexEvenLength(t *testing.T) {
	out := appendPartialKeyHex(nil, NodeKey{0x6, 0x6, 0x6, 0xf})
	if len(out) != 2 || out[0] != 0x66 || out[1] != 0x6f {
		t.Fatalf("unexpected encoding: %x", out)
	}
}

func TestAppendPartialKeyHexOddLength(t *testing.T) {
	out := appendPartialKeyHex(nil, NodeKey{0xa, 0x6, 0x6})
	if len(out) != 2 {
		t.Fatalf("expected 2 bytes, got %d (%x)", len(out), out)
	}
	if out[0] != 0x0a {
		t.Fatalf("expected lone leading nibble in low half of first byte, got %x", out[0])
	}
	if out[1] != 0x66 {
		t.Fatalf("expected remaining pair packed, got %x", out[1])
	}
}

func TestAppendChildBitmap(t *testing.T) {
	children := []childNode{{index: 0}, {index: 3}, {index: 15}}
	out := appendChildBitmap(nil, children)
	if len(out) != 2 {
		t.Fatalf("expected 2 bytes, got %d", len(out))
	}
	bitmap := uint16(out[0]) | uint16(out[1])<<8
	want := uint16(1<<0 | 1<<3 | 1<<15)
	if bitmap != want {
		t.Fatalf("expected bitmap %016b got %016b", want, bitmap)
	}
}
