package mempool

import "math/bits"

const (
	// DefaultChunkSize is the default number of entries per chunk.
	DefaultChunkSize = 4096

	// None is the index sentinel meaning "no entry". It is what chain
	// links over a pool use as their end marker.
	None int32 = -1
)

// Stats tracks pool usage counters.
type Stats struct {
	Chunks      int // chunks currently held
	TotalAllocs int // entries allocated since creation
}

// Pool is an index-addressed bump allocator for entries of type T.
// Entries are never released individually; Free drops every chunk at
// once.
type Pool[T any] struct {
	chunks    [][]T
	chunkBits int
	chunkMask int32
	n         int32
}

// New creates a pool with the given chunk size, rounded up to the next
// power of two. Sizes <= 0 fall back to DefaultChunkSize.
func New[T any](chunkSize int) *Pool[T] {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	chunkBits := bits.Len(uint(chunkSize - 1))
	return &Pool[T]{
		chunkBits: chunkBits,
		chunkMask: int32(1)<<chunkBits - 1,
	}
}

// Alloc returns the index of a fresh zero-valued entry and a pointer to
// it. The pointer stays valid until Free.
func (p *Pool[T]) Alloc() (int32, *T) {
	chunk := int(p.n >> p.chunkBits)
	if chunk == len(p.chunks) {
		p.chunks = append(p.chunks, make([]T, 1<<p.chunkBits))
	}
	idx := p.n
	p.n++
	return idx, &p.chunks[chunk][idx&p.chunkMask]
}

// Get returns a pointer to the entry at index i. It panics on an index
// that was never returned by Alloc.
func (p *Pool[T]) Get(i int32) *T {
	if i < 0 || i >= p.n {
		panic("mempool: index out of range")
	}
	return &p.chunks[i>>p.chunkBits][i&p.chunkMask]
}

// Len returns the number of allocated entries.
func (p *Pool[T]) Len() int {
	return int(p.n)
}

// Stats returns the current usage counters.
func (p *Pool[T]) Stats() Stats {
	return Stats{
		Chunks:      len(p.chunks),
		TotalAllocs: int(p.n),
	}
}

// Free releases every chunk in one operation. The pool must not be used
// after Free; create a new pool instead.
func (p *Pool[T]) Free() {
	p.chunks = nil
	p.n = 0
}
