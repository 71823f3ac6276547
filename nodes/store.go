package nodes

import (
	"bytes"
	"hash/maphash"

	"github.com/drobilla/serd-sub002/alloc"
	"github.com/drobilla/serd-sub002/debug"
	"github.com/drobilla/serd-sub002/node"
)

type entry struct {
	node *node.Node
	refs uint32
}

// Store is a hash-consing table of canonical nodes.  It is bound to one
// allocator for its entire lifetime and is the sole owner of every node it
// hands out; callers hold non-owning references.  A Store is not safe for
// concurrent use.
type Store struct {
	alloc alloc.Allocator
	seed  maphash.Seed
	table map[uint64][]*entry
	count int
}

// New returns an empty store bound to a.  A nil allocator means
// [alloc.Default].
func New(a alloc.Allocator) *Store {
	if a == nil {
		a = alloc.Default()
	}
	return &Store{
		alloc: a,
		seed:  maphash.MakeSeed(),
		table: map[uint64][]*entry{},
	}
}

// Size returns the current number of distinct canonical nodes.
func (s *Store) Size() int {
	return s.count
}

// specEquals mirrors node.Node.Equals against a descriptor, so a search can
// run without constructing the node the descriptor denotes.
func specEquals(n *node.Node, sp node.Spec) bool {
	if n.Kind() != sp.Kind || !bytes.Equal(n.Bytes(), sp.Bytes) {
		return false
	}
	switch sp.Kind {
	case node.TaggedLiteral:
		return bytes.Equal(n.Lang(), sp.Lang)
	case node.TypedLiteral:
		return n.Datatype() == sp.Datatype ||
			bytes.Equal(n.Datatype().Bytes(), sp.Datatype.Bytes())
	}
	return true
}

func (s *Store) findSpec(code uint64, sp node.Spec) *entry {
	for _, e := range s.table[code] {
		if specEquals(e.node, sp) {
			return e
		}
	}
	return nil
}

// Get returns the canonical node described by sp, constructing it on first
// use.  On a hit the existing node's reference count is incremented and
// nothing is allocated; on a miss a new node with one reference is built
// through the bound allocator, copying every caller byte.  A typed literal
// takes its own reference on the canonical datatype node, interning the
// given one first if necessary.  On any failure the store is left exactly as
// it was.
func (s *Store) Get(sp node.Spec) (*node.Node, error) {
	if err := sp.Valid(); err != nil {
		return nil, err
	}
	code := sp.Hash(s.seed)
	if e := s.findSpec(code, sp); e != nil {
		e.refs++
		return e.node, nil
	}
	if sp.Kind == node.TypedLiteral {
		dt, err := s.Get(sp.Datatype.Spec())
		if err != nil {
			return nil, err
		}
		sp.Datatype = dt
	}
	n, err := node.New(s.alloc, sp)
	if err != nil {
		if sp.Kind == node.TypedLiteral {
			s.Deref(sp.Datatype)
		}
		return nil, err
	}
	s.table[code] = append(s.table[code], &entry{node: n, refs: 1})
	s.count++
	if debug.Store() {
		debug.Logf("intern %s %q (%d nodes)\n", n.Kind(), n.Bytes(), s.count)
	}
	return n, nil
}

// Existing returns the canonical node equal to the described one, or nil.
// It allocates nothing and changes no reference count.
func (s *Store) Existing(sp node.Spec) *node.Node {
	if sp.Valid() != nil {
		return nil
	}
	if e := s.findSpec(sp.Hash(s.seed), sp); e != nil {
		return e.node
	}
	return nil
}

// Intern returns the canonical equivalent of n with its reference count
// incremented, copying whatever the store needs to own.  The input itself is
// never retained, so transient caller-built nodes become long-lived shared
// instances.  Interning nil returns nil.
func (s *Store) Intern(n *node.Node) (*node.Node, error) {
	if n == nil {
		return nil, nil
	}
	return s.Get(n.Spec())
}

// Deref releases one reference to n.  When the count reaches zero the node
// leaves the table and its memory returns to the allocator, at which point
// any pointer to it is invalid.  A node the store does not track, either
// never interned here or already fully released, is a no-op.  Releasing a
// live node more times than it was acquired is a caller error the store does
// not detect.
func (s *Store) Deref(n *node.Node) {
	if n == nil {
		return
	}
	code := n.Hash(s.seed)
	chain := s.table[code]
	for i, e := range chain {
		if e.node != n {
			continue
		}
		if e.refs--; e.refs > 0 {
			return
		}
		chain[i] = chain[len(chain)-1]
		chain = chain[:len(chain)-1]
		if len(chain) == 0 {
			delete(s.table, code)
		} else {
			s.table[code] = chain
		}
		s.count--
		dt := n.Datatype()
		node.FreeNode(s.alloc, n)
		if debug.Store() {
			debug.Logf("release node (%d nodes)\n", s.count)
		}
		if dt != nil {
			s.Deref(dt)
		}
		return
	}
}

// Free destroys the store, releasing every node unconditionally regardless
// of outstanding references.  No node pointer obtained from the store is
// valid afterwards, and the store itself must not be used again.
func (s *Store) Free() {
	for _, chain := range s.table {
		for _, e := range chain {
			node.FreeNode(s.alloc, e.node)
		}
	}
	s.table = nil
	s.count = 0
}
