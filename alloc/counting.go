package alloc

import "github.com/drobilla/serd-sub002/debug"

// Counting wraps another allocator and tracks outstanding blocks and bytes.
// It is used for diagnostics and to assert in tests that every allocation is
// balanced by a release.
type Counting struct {
	inner  Allocator
	blocks int
	bytes  int
	allocs int
}

// NewCounting wraps inner, or [Default] if inner is nil.
func NewCounting(inner Allocator) *Counting {
	if inner == nil {
		inner = Default()
	}
	return &Counting{inner: inner}
}

func (c *Counting) Allocate(n int) ([]byte, error) {
	p, err := c.inner.Allocate(n)
	if err != nil {
		return nil, err
	}
	c.blocks++
	c.bytes += len(p)
	c.allocs++
	if debug.Alloc() {
		debug.Logf("alloc %d bytes (%d live)\n", n, c.blocks)
	}
	return p, nil
}

func (c *Counting) Reallocate(p []byte, n int) ([]byte, error) {
	old := len(p)
	q, err := c.inner.Reallocate(p, n)
	if err != nil {
		return nil, err
	}
	if p == nil {
		c.blocks++
		c.allocs++
	}
	c.bytes += len(q) - old
	return q, nil
}

func (c *Counting) Deallocate(p []byte) {
	if p == nil {
		return
	}
	c.blocks--
	c.bytes -= len(p)
	if debug.Alloc() {
		debug.Logf("free %d bytes (%d live)\n", len(p), c.blocks)
	}
	c.inner.Deallocate(p)
}

// Live returns the number of outstanding blocks and bytes.
func (c *Counting) Live() (blocks, bytes int) {
	return c.blocks, c.bytes
}

// Allocs returns the total number of allocations made through c.
func (c *Counting) Allocs() int {
	return c.allocs
}

var _ Allocator = (*Counting)(nil)
