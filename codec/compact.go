// Package codec implements the variable-length length-prefix framing used
// by the trie package to frame stored values and inlined child Merkle
// values.
//
// The encoding packs the byte-string length into the low two bits of the
// first byte, selecting one of four width modes:
//
//	00 -> 1 byte,  length in the upper 6 bits (0..63)
//	01 -> 2 bytes, length in the upper 14 bits, little-endian (64..2^14-1)
//	10 -> 4 bytes, length in the upper 30 bits, little-endian (2^14..2^30-1)
//	11 -> 1+n bytes, upper 6 bits of the first byte hold n-4, followed by
//	      n little-endian length bytes (2^30 and above)
package codec

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const (
	maxMode0 = 1<<6 - 1
	maxMode1 = 1<<14 - 1
	maxMode2 = 1<<30 - 1
)

// ErrLengthTooLarge is returned when a length cannot be represented even
// by the widest big-mode length prefix.
var ErrLengthTooLarge = fmt.Errorf("codec: length exceeds the largest representable prefix")

// AppendLength appends the compact length prefix for n to dst and returns
// the extended slice.
func AppendLength(dst []byte, n int) ([]byte, error) {
	switch {
	case n <= maxMode0:
		return append(dst, byte(n<<2)), nil
	case n <= maxMode1:
		buf := make([]byte, 2)
		binary.LittleEndian.PutUint16(buf, uint16(n<<2)|0b01)
		return append(dst, buf...), nil
	case n <= maxMode2:
		buf := make([]byte, 4)
		binary.LittleEndian.PutUint32(buf, uint32(n<<2)|0b10)
		return append(dst, buf...), nil
	default:
		return appendBigMode(dst, n)
	}
}

// appendBigMode encodes n using the 1+n byte "big" mode: the first byte's
// upper six bits hold (numBytes-4), the low two bits are 0b11, and the
// length follows as numBytes little-endian bytes.
func appendBigMode(dst []byte, n int) ([]byte, error) {
	var raw [8]byte
	binary.LittleEndian.PutUint64(raw[:], uint64(n))
	numBytes := 8
	for numBytes > 4 && raw[numBytes-1] == 0 {
		numBytes--
	}
	if numBytes-4 > maxMode0 {
		return nil, ErrLengthTooLarge
	}
	dst = append(dst, byte((numBytes-4)<<2)|0b11)
	dst = append(dst, raw[:numBytes]...)
	return dst, nil
}

// AppendBytes appends the framed (length-prefixed) byte string b to dst.
func AppendBytes(dst []byte, b []byte) ([]byte, error) {
	dst, err := AppendLength(dst, len(b))
	if err != nil {
		return nil, err
	}
	return append(dst, b...), nil
}

// ReadBytes reads one framed byte string from r.
func ReadBytes(r *bytes.Reader) ([]byte, error) {
	n, err := readLength(r)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	if _, err := readFull(r, out); err != nil {
		return nil, err
	}
	return out, nil
}

func readLength(r *bytes.Reader) (int, error) {
	first, err := r.ReadByte()
	if err != nil {
		return 0, err
	}
	switch first & 0b11 {
	case 0b00:
		return int(first >> 2), nil
	case 0b01:
		var b2 byte
		if b2, err = r.ReadByte(); err != nil {
			return 0, err
		}
		return int(binary.LittleEndian.Uint16([]byte{first, b2}) >> 2), nil
	case 0b10:
		rest := make([]byte, 3)
		if _, err := readFull(r, rest); err != nil {
			return 0, err
		}
		buf := append([]byte{first}, rest...)
		return int(binary.LittleEndian.Uint32(buf) >> 2), nil
	default:
		numBytes := int(first>>2) + 4
		rest := make([]byte, numBytes)
		if _, err := readFull(r, rest); err != nil {
			return 0, err
		}
		var padded [8]byte
		copy(padded[:], rest)
		return int(binary.LittleEndian.Uint64(padded[:])), nil
	}
}

func readFull(r *bytes.Reader, buf []byte) (int, error) {
	n := 0
	for n < len(buf) {
		m, err := r.Read(buf[n:])
		n += m
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
