package hashstore

// Batch buffers a set of writes and applies them to a Store in one shot,
// so PrefixKeys only pays the reindexing cost once no matter how many keys
// were loaded. Mirrors the write-then-flush shape of a disk-backed batch,
// scaled down to the in-memory case.
type Batch struct {
	store   *Store
	puts    map[string][]byte
	deletes map[string]struct{}
}

// NewBatch returns a Batch that will apply its buffered writes to store.
func (s *Store) NewBatch() *Batch {
	return &Batch{
		store:   s,
		puts:    make(map[string][]byte),
		deletes: make(map[string]struct{}),
	}
}

// Put buffers an insert or overwrite of key.
func (b *Batch) Put(key, value []byte) {
	v := make([]byte, len(value))
	copy(v, value)
	b.puts[string(key)] = v
	delete(b.deletes, string(key))
}

// Delete buffers a removal of key.
func (b *Batch) Delete(key []byte) {
	b.deletes[string(key)] = struct{}{}
	delete(b.puts, string(key))
}

// Write applies every buffered operation to the batch's Store and resets
// the batch for reuse.
func (b *Batch) Write() {
	for k, v := range b.puts {
		b.store.Put([]byte(k), v)
	}
	for k := range b.deletes {
		b.store.Delete([]byte(k))
	}
	b.Reset()
}

// Reset discards any buffered operations without applying them.
func (b *Batch) Reset() {
	b.puts = make(map[string][]byte)
	b.deletes = make(map[string]struct{})
}
