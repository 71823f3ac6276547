package alloc

import (
	"bytes"
	"errors"
	"testing"
)

func TestDefaultAllocate(t *testing.T) {
	a := Default()
	for _, n := range []int{0, 1, 7, 4096} {
		p, err := a.Allocate(n)
		if err != nil {
			t.Fatalf("Allocate(%d): %v", n, err)
		}
		if len(p) != n {
			t.Errorf("Allocate(%d) gave %d bytes", n, len(p))
		}
	}
	if _, err := a.Allocate(-1); !errors.Is(err, ErrNoMem) {
		t.Errorf("Allocate(-1) gave %v, want ErrNoMem", err)
	}
}

func TestDefaultReallocate(t *testing.T) {
	a := Default()
	p, _ := a.Allocate(4)
	copy(p, "abcd")

	q, err := a.Reallocate(p, 8)
	if err != nil {
		t.Fatal(err)
	}
	if string(q[:4]) != "abcd" {
		t.Errorf("grow lost contents: %q", q[:4])
	}

	q, err = a.Reallocate(q, 2)
	if err != nil {
		t.Fatal(err)
	}
	if string(q) != "ab" {
		t.Errorf("shrink gave %q, want %q", q, "ab")
	}

	q, err = a.Reallocate(nil, 3)
	if err != nil || len(q) != 3 {
		t.Errorf("Reallocate(nil, 3) gave %d bytes, err %v", len(q), err)
	}
}

func TestFree(t *testing.T) {
	Free(nil, nil)
	p, _ := Default().Allocate(8)
	Free(nil, p)
	Free(Default(), nil)
}

func TestArenaAllocate(t *testing.T) {
	a := NewArena()
	p, err := a.Allocate(4)
	if err != nil {
		t.Fatal(err)
	}
	q, err := a.Allocate(4)
	if err != nil {
		t.Fatal(err)
	}
	copy(p, "aaaa")
	copy(q, "bbbb")
	if string(p) != "aaaa" || string(q) != "bbbb" {
		t.Errorf("allocations overlap: %q %q", p, q)
	}
	if a.Used() != 8 {
		t.Errorf("Used() = %d, want 8", a.Used())
	}
	a.Deallocate(p)
	a.Reset()
	if a.Used() != 0 {
		t.Errorf("Used() after Reset = %d", a.Used())
	}
}

func TestArenaLargeBlock(t *testing.T) {
	a := NewArena()
	p, err := a.Allocate(arenaChunkSize * 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(p) != arenaChunkSize*2 {
		t.Errorf("got %d bytes", len(p))
	}
}

func TestArenaBudget(t *testing.T) {
	a := NewArenaSize(16)
	p, err := a.Allocate(8)
	if err != nil {
		t.Fatal(err)
	}
	copy(p, "12345678")
	if _, err := a.Allocate(16); !errors.Is(err, ErrNoMem) {
		t.Fatalf("over-budget Allocate gave %v, want ErrNoMem", err)
	}
	// A failed reallocation leaves the original block valid.
	if _, err := a.Reallocate(p, 64); !errors.Is(err, ErrNoMem) {
		t.Fatalf("over-budget Reallocate gave %v, want ErrNoMem", err)
	}
	if string(p) != "12345678" {
		t.Errorf("original block damaged: %q", p)
	}
}

func TestArenaReallocate(t *testing.T) {
	a := NewArena()
	p, _ := a.Allocate(4)
	copy(p, "abcd")
	q, err := a.Reallocate(p, 16)
	if err != nil {
		t.Fatal(err)
	}
	if string(q[:4]) != "abcd" {
		t.Errorf("grow lost contents: %q", q[:4])
	}
	q, err = a.Reallocate(q, 2)
	if err != nil {
		t.Fatal(err)
	}
	if string(q) != "ab" {
		t.Errorf("shrink gave %q", q)
	}
}

func TestPoolReuse(t *testing.T) {
	p := NewPool()
	b, err := p.Allocate(10)
	if err != nil {
		t.Fatal(err)
	}
	copy(b, bytes.Repeat([]byte{0xff}, 10))
	p.Deallocate(b)

	c, err := p.Allocate(12)
	if err != nil {
		t.Fatal(err)
	}
	if len(c) != 12 || cap(c) != 16 {
		t.Errorf("got len %d cap %d, want 12/16", len(c), cap(c))
	}
	for i, x := range c {
		if x != 0 {
			t.Errorf("recycled block not cleared at %d", i)
			break
		}
	}
}

func TestPoolReallocate(t *testing.T) {
	p := NewPool()
	b, _ := p.Allocate(4)
	copy(b, "abcd")
	c, err := p.Reallocate(b, 100)
	if err != nil {
		t.Fatal(err)
	}
	if string(c[:4]) != "abcd" {
		t.Errorf("grow lost contents: %q", c[:4])
	}
}

func TestCounting(t *testing.T) {
	c := NewCounting(nil)
	p, err := c.Allocate(8)
	if err != nil {
		t.Fatal(err)
	}
	q, err := c.Allocate(4)
	if err != nil {
		t.Fatal(err)
	}
	if blocks, bytes := c.Live(); blocks != 2 || bytes != 12 {
		t.Errorf("Live() = %d, %d, want 2, 12", blocks, bytes)
	}
	c.Deallocate(p)
	c.Deallocate(nil)
	if blocks, bytes := c.Live(); blocks != 1 || bytes != 4 {
		t.Errorf("Live() = %d, %d, want 1, 4", blocks, bytes)
	}
	c.Deallocate(q)
	if blocks, _ := c.Live(); blocks != 0 {
		t.Errorf("Live() = %d blocks, want 0", blocks)
	}
	if c.Allocs() != 2 {
		t.Errorf("Allocs() = %d, want 2", c.Allocs())
	}
}
