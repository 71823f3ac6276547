package alloc

// Pool recycles released blocks on free lists keyed by capacity class, so a
// store that churns through short-lived nodes of similar sizes stops hitting
// the heap.  Not safe for concurrent use.
type Pool struct {
	free map[int][][]byte
}

func NewPool() *Pool {
	return &Pool{free: map[int][][]byte{}}
}

// poolClass rounds n up to the next power of two, with a small floor.
func poolClass(n int) int {
	c := 16
	for c < n {
		c <<= 1
	}
	return c
}

func (p *Pool) Allocate(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNoMem
	}
	c := poolClass(n)
	if list := p.free[c]; len(list) > 0 {
		b := list[len(list)-1]
		p.free[c] = list[:len(list)-1]
		b = b[:n]
		clear(b)
		return b, nil
	}
	return make([]byte, n, c), nil
}

func (p *Pool) Reallocate(b []byte, n int) ([]byte, error) {
	if b == nil {
		return p.Allocate(n)
	}
	if n < 0 {
		return nil, ErrNoMem
	}
	if n <= cap(b) {
		return b[:n], nil
	}
	q, err := p.Allocate(n)
	if err != nil {
		return nil, err
	}
	copy(q, b)
	p.Deallocate(b)
	return q, nil
}

func (p *Pool) Deallocate(b []byte) {
	if b == nil || cap(b) == 0 {
		return
	}
	c := cap(b)
	p.free[c] = append(p.free[c], b[:c])
}

var _ Allocator = (*Pool)(nil)
