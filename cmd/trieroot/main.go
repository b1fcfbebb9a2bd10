// Command trieroot reads newline-delimited "hexkey\thexvalue" pairs and
// prints the hexary Merkle-Patricia trie root of the resulting key/value
// set.
package main

import (
	"bufio"
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jaiminpan/triehash/hashstore"
	"github.com/jaiminpan/triehash/trie"
)

func main() {
	input := flag.String("input", "", "path to a key/value file (defaults to stdin)")
	flag.Parse()

	if err := run(*input, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "trieroot:", err)
		os.Exit(1)
	}
}

func run(inputPath string, out io.Writer) error {
	r := io.Reader(os.Stdin)
	if inputPath != "" {
		f, err := os.Open(inputPath)
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		r = f
	}

	store := hashstore.New(nil)
	if err := loadInto(store, r); err != nil {
		return err
	}

	root, err := trie.Root(context.Background(), store)
	if err != nil {
		return fmt.Errorf("computing root: %w", err)
	}
	fmt.Fprintln(out, hex.EncodeToString(root[:]))
	return nil
}

func loadInto(store *hashstore.Store, r io.Reader) error {
	batch := store.NewBatch()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			return fmt.Errorf("malformed line %q: want \"hexkey\\thexvalue\"", line)
		}
		key, err := hex.DecodeString(parts[0])
		if err != nil {
			return fmt.Errorf("decoding key %q: %w", parts[0], err)
		}
		value, err := hex.DecodeString(parts[1])
		if err != nil {
			return fmt.Errorf("decoding value %q: %w", parts[1], err)
		}
		batch.Put(key, value)
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	batch.Write()
	return nil
}
