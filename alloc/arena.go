package alloc

const arenaChunkSize = 64 * 1024

// Arena is a bump-pointer allocator that serves many small allocations out of
// large contiguous chunks.  Deallocate is a no-op; everything is released at
// once by Reset.  Not safe for concurrent use.
type Arena struct {
	chunks  [][]byte
	current []byte
	offset  int
	used    int
	limit   int // 0 means unbounded
}

// NewArena returns an unbounded arena.
func NewArena() *Arena {
	return &Arena{}
}

// NewArenaSize returns an arena with a fixed byte budget.  Allocations beyond
// the budget fail with [ErrNoMem].
func NewArenaSize(limit int) *Arena {
	return &Arena{limit: limit}
}

func (a *Arena) Allocate(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNoMem
	}
	if a.limit > 0 && a.used+n > a.limit {
		return nil, ErrNoMem
	}
	if a.offset+n > len(a.current) {
		sz := arenaChunkSize
		if a.limit > 0 && a.limit < sz {
			sz = a.limit
		}
		if n > sz {
			sz = n
		}
		chunk := make([]byte, sz)
		a.chunks = append(a.chunks, chunk)
		a.current = chunk
		a.offset = 0
	}
	p := a.current[a.offset : a.offset+n : a.offset+n]
	a.offset += n
	a.used += n
	return p, nil
}

func (a *Arena) Reallocate(p []byte, n int) ([]byte, error) {
	if p == nil {
		return a.Allocate(n)
	}
	if n <= len(p) {
		a.used -= len(p) - n
		return p[:n:n], nil
	}
	// Extend in place when p is the newest allocation in the current chunk.
	if len(p) > 0 && a.offset >= len(p) && &a.current[a.offset-len(p)] == &p[0] {
		grow := n - len(p)
		if a.offset+grow <= len(a.current) {
			if a.limit > 0 && a.used+grow > a.limit {
				return nil, ErrNoMem
			}
			a.offset += grow
			a.used += grow
			base := a.offset - n
			return a.current[base : base+n : base+n], nil
		}
	}
	q, err := a.Allocate(n)
	if err != nil {
		return nil, err
	}
	copy(q, p)
	return q, nil
}

func (a *Arena) Deallocate(p []byte) {}

// Reset releases every allocation at once, keeping the first chunk for reuse.
func (a *Arena) Reset() {
	if len(a.chunks) > 0 {
		a.chunks = a.chunks[:1]
		a.current = a.chunks[0]
	}
	a.offset = 0
	a.used = 0
}

// Used returns the number of bytes currently allocated from the arena.
func (a *Arena) Used() int {
	return a.used
}

var _ Allocator = (*Arena)(nil)
