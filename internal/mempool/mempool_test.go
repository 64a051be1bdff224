package mempool

import "testing"

type item struct {
	key  uint32
	next int32
}

func TestPool_Alloc(t *testing.T) {
	t.Run("zero value", func(t *testing.T) {
		p := New[item](8)
		idx, e := p.Alloc()
		if idx != 0 {
			t.Errorf("first index = %d, want 0", idx)
		}
		if e.key != 0 || e.next != 0 {
			t.Errorf("entry not zero-valued: %+v", e)
		}
	})

	t.Run("sequential indices", func(t *testing.T) {
		p := New[item](8)
		for want := int32(0); want < 20; want++ {
			idx, _ := p.Alloc()
			if idx != want {
				t.Fatalf("index = %d, want %d", idx, want)
			}
		}
		if p.Len() != 20 {
			t.Errorf("Len = %d, want 20", p.Len())
		}
	})

	t.Run("chunk size rounding", func(t *testing.T) {
		p := New[item](5)
		if got := int32(1) << p.chunkBits; got != 8 {
			t.Errorf("chunk size = %d, want 8", got)
		}
		p = New[item](0)
		if got := int(1) << p.chunkBits; got != DefaultChunkSize {
			t.Errorf("chunk size = %d, want %d", got, DefaultChunkSize)
		}
	})
}

func TestPool_StableAcrossGrowth(t *testing.T) {
	p := New[item](4)
	idx, first := p.Alloc()
	first.key = 42

	// Force several chunk growths.
	for i := 0; i < 100; i++ {
		p.Alloc()
	}

	if got := p.Get(idx); got != first {
		t.Error("entry address changed after growth")
	}
	if p.Get(idx).key != 42 {
		t.Errorf("entry value lost after growth: %d", p.Get(idx).key)
	}
	if s := p.Stats(); s.Chunks != 26 || s.TotalAllocs != 101 {
		t.Errorf("Stats = %+v, want 26 chunks / 101 allocs", s)
	}
}

func TestPool_Get_OutOfRange(t *testing.T) {
	p := New[item](4)
	p.Alloc()

	for _, idx := range []int32{-1, 1, None} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Get(%d) did not panic", idx)
				}
			}()
			p.Get(idx)
		}()
	}
}

func TestPool_Free(t *testing.T) {
	p := New[item](4)
	for i := 0; i < 10; i++ {
		p.Alloc()
	}
	p.Free()

	if p.Len() != 0 {
		t.Errorf("Len after Free = %d, want 0", p.Len())
	}
	if s := p.Stats(); s.Chunks != 0 {
		t.Errorf("chunks held after Free: %d", s.Chunks)
	}
}
