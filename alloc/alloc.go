// Package alloc provides the memory allocation capability the node store and
// everything it owns obtain their memory through.
//
// [Allocator] is the capability itself; [Default] returns the ambient
// allocator backed by the Go heap.  [Arena], [Pool], and [Counting] are
// substitutable strategies.  [Free] is the public release entry point for any
// block an allocator in this family produced.
package alloc

import "errors"

var ErrNoMem = errors.New("out of memory")

// Allocator is a record of three operations.  Allocate returns a block of
// length n or fails with [ErrNoMem].  Reallocate behaves as Allocate but
// preserves contents up to min(old, new) length; on failure the original
// block remains valid and owned by the caller.  Deallocate accepts only
// blocks previously returned by the same allocator, or nil as a no-op.
//
// Allocators are not required to be safe for concurrent use.
type Allocator interface {
	Allocate(n int) ([]byte, error)
	Reallocate(p []byte, n int) ([]byte, error)
	Deallocate(p []byte)
}

// Default returns the ambient allocator.  Its Deallocate is a no-op; released
// blocks are left to the garbage collector.
func Default() Allocator {
	return systemAllocator{}
}

type systemAllocator struct{}

func (systemAllocator) Allocate(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNoMem
	}
	return make([]byte, n), nil
}

func (a systemAllocator) Reallocate(p []byte, n int) ([]byte, error) {
	if p == nil {
		return a.Allocate(n)
	}
	if n < 0 {
		return nil, ErrNoMem
	}
	if n <= cap(p) {
		return p[:n], nil
	}
	q := make([]byte, n)
	copy(q, p)
	return q, nil
}

func (systemAllocator) Deallocate(p []byte) {}

var _ Allocator = systemAllocator{}

// Free releases a block produced by a, which may be any allocator in this
// package family.  A nil allocator means [Default]; releasing nil is a no-op.
func Free(a Allocator, p []byte) {
	if p == nil {
		return
	}
	if a == nil {
		a = Default()
	}
	a.Deallocate(p)
}
