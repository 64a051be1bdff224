// Package acolorhash implements the bounded color hash table that
// deduplicates raster pixels into weighted buckets.
//
// The table is a fixed array of bucket heads over an index-addressed
// entry pool: each entry stores a packed post-posterization color key,
// its accumulated weight, and the index of the next entry in its chain.
// Inserting a color past the configured bound fails the whole table; the
// caller discards it and retries with coarser posterization.
package acolorhash

import (
	"errors"

	"github.com/huequant/huequant/internal/mempool"
	"github.com/huequant/huequant/pixel"
)

// NumBuckets is the fixed bucket count. Prime, and larger than realistic
// distinct-color counts, so chains stay short.
const NumBuckets = 30029

// ErrTooManyColors is returned by Add and Merge when a new distinct
// color would exceed the table's bound. The table contents are then
// unusable and the caller must Free it; no partial histogram may be
// materialized from it.
var ErrTooManyColors = errors.New("acolorhash: too many colors")

type entry struct {
	key    uint32
	weight float32
	next   int32
}

// Table deduplicates colors after posterization, accumulating one
// weight per distinct packed key. A Table is not safe for concurrent
// use; build one per scan and Free it when done.
type Table struct {
	heads     []int32
	pool      *mempool.Pool[entry]
	mask      uint32
	maxColors int
	colors    int
}

// New creates an empty table bounded to maxColors distinct colors, with
// the lowest ignoreBits bits of every channel posterized away.
func New(maxColors, ignoreBits int) *Table {
	heads := make([]int32, NumBuckets)
	for i := range heads {
		heads[i] = mempool.None
	}
	return &Table{
		heads:     heads,
		pool:      mempool.New[entry](mempool.DefaultChunkSize),
		mask:      pixel.PosterizeMask(ignoreBits),
		maxColors: maxColors,
	}
}

// Add merges one pixel into the table with the given weight boost.
func (t *Table) Add(p pixel.RGBA, boost float32) error {
	return t.addKey(p.Pack()&t.mask, boost)
}

func (t *Table) addKey(key uint32, boost float32) error {
	bucket := key % NumBuckets

	for i := t.heads[bucket]; i != mempool.None; {
		e := t.pool.Get(i)
		if e.key == key {
			e.weight += boost
			return nil
		}
		i = e.next
	}

	if t.colors >= t.maxColors {
		return ErrTooManyColors
	}

	i, e := t.pool.Alloc()
	e.key = key
	e.weight = boost
	e.next = t.heads[bucket]
	t.heads[bucket] = i
	t.colors++
	return nil
}

// Count returns the number of distinct colors recorded so far.
func (t *Table) Count() int {
	return t.colors
}

// ForEach visits every entry exactly once, in bucket order then chain
// order. The visit order is an implementation detail; callers may rely
// only on completeness.
func (t *Table) ForEach(fn func(key uint32, weight float32)) {
	for _, head := range t.heads {
		for i := head; i != mempool.None; {
			e := t.pool.Get(i)
			fn(e.key, e.weight)
			i = e.next
		}
	}
}

// Merge folds every entry of other into t, re-applying t's color bound.
// Both tables must have been built with the same posterization level.
// On error t is unusable, exactly as after a failed Add.
func (t *Table) Merge(other *Table) error {
	var err error
	other.ForEach(func(key uint32, weight float32) {
		if err != nil {
			return
		}
		err = t.addKey(key, weight)
	})
	return err
}

// Free releases the entry pool in one operation. The table must not be
// used afterwards.
func (t *Table) Free() {
	t.pool.Free()
	t.heads = nil
}
