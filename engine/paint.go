package engine

// bitset is a dense bitset over small positive integer handles (1-based).
// It backs the paint table: "is target handle h currently committed to
// the in-progress mapping". Using a bitset instead of map[handle]bool
// keyed storage matches how the rest of the engine treats handles —
// small, dense integers indexing directly into slices — and avoids any
// map allocation/hashing on the matcher's hottest path.
type bitset struct {
	words []uint64
}

func newBitset(size int) bitset {
	return bitset{words: make([]uint64, (size+63)/64+1)}
}

func (b *bitset) set(h int) {
	b.words[h/64] |= 1 << uint(h%64)
}

func (b *bitset) clear(h int) {
	b.words[h/64] &^= 1 << uint(h%64)
}

func (b *bitset) isSet(h int) bool {
	return b.words[h/64]&(1<<uint(h%64)) != 0
}

// clearAll resets every bit to zero without reallocating.
func (b *bitset) clearAll() {
	for i := range b.words {
		b.words[i] = 0
	}
}

// paint is the engine's side table of "currently used by the in-progress
// mapping" markers for target atoms and target bonds. The two handle
// spaces (atoms, bonds) are numbered independently starting at 1, so they
// get independent bitsets.
type paint struct {
	vertex bitset
	edge   bitset
}

func newPaint(atomCount, bondCount int) paint {
	return paint{vertex: newBitset(atomCount + 1), edge: newBitset(bondCount + 1)}
}
