package trie

import "fmt"

// ErrValueTooLarge is returned when a stored value's length cannot be
// represented by the length-prefix codec, even in its widest mode.
var ErrValueTooLarge = fmt.Errorf("trie: stored value too large to encode")

// valueTooLargeError wraps ErrValueTooLarge with the offending node's
// absolute key for diagnostics.
type valueTooLargeError struct {
	key NodeKey
	err error
}

func (e *valueTooLargeError) Error() string {
	return fmt.Sprintf("trie: node %s: %v", e.key, e.err)
}

func (e *valueTooLargeError) Unwrap() error {
	return ErrValueTooLarge
}
