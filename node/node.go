// Package node provides the immutable value model for RDF-style terms: URIs,
// blank-node identifiers, and plain, language-tagged, or typed literals.
//
// A [Spec] describes a node without allocating it; [New] materializes one,
// copying every byte it keeps through an [alloc.Allocator].  Two nodes are
// equal iff their kind, content, and auxiliary data are equal; [Flags] are
// writer hints and never affect equality or hashing.
package node

import (
	"bytes"

	"github.com/drobilla/serd-sub002/alloc"
)

// Node is one immutable term.  Its content bytes are owned by the allocator
// that built it; callers must not modify anything an accessor returns.
type Node struct {
	kind     Kind
	bytes    []byte
	flags    Flags
	lang     []byte // TaggedLiteral only
	datatype *Node  // TypedLiteral only; back-reference to the datatype URI node
}

func (n *Node) Kind() Kind {
	return n.kind
}

// Bytes returns the lexical content of the node.
func (n *Node) Bytes() []byte {
	return n.bytes
}

func (n *Node) String() string {
	return string(n.bytes)
}

// Lang returns the language tag of a tagged literal, or nil.
func (n *Node) Lang() []byte {
	return n.lang
}

// Datatype returns the datatype URI node of a typed literal, or nil.
func (n *Node) Datatype() *Node {
	return n.datatype
}

func (n *Node) Flags() Flags {
	return n.flags
}

// Spec returns a descriptor that would construct a node equal to n.  The
// descriptor aliases n's bytes.
func (n *Node) Spec() Spec {
	return Spec{Kind: n.kind, Bytes: n.bytes, Lang: n.lang, Datatype: n.datatype}
}

// New builds a caller-owned node from s, copying content and language bytes
// through a (nil means [alloc.Default]).  The datatype back-reference is kept
// as given; its lifetime belongs to the caller.  On failure nothing is
// retained.
func New(a alloc.Allocator, s Spec) (*Node, error) {
	if err := s.Valid(); err != nil {
		return nil, err
	}
	if a == nil {
		a = alloc.Default()
	}
	body, err := copyBytes(a, s.Bytes)
	if err != nil {
		return nil, err
	}
	n := &Node{kind: s.Kind, bytes: body, flags: contentFlags(body)}
	switch s.Kind {
	case TaggedLiteral:
		lang, err := copyBytes(a, s.Lang)
		if err != nil {
			a.Deallocate(body)
			return nil, err
		}
		n.lang = lang
	case TypedLiteral:
		n.datatype = s.Datatype
	}
	return n, nil
}

func copyBytes(a alloc.Allocator, b []byte) ([]byte, error) {
	p, err := a.Allocate(len(b))
	if err != nil {
		return nil, err
	}
	copy(p, b)
	return p, nil
}

// FreeNode releases the memory n owns back to a.  The datatype back-reference
// is not touched.  Freeing nil is a no-op.
func FreeNode(a alloc.Allocator, n *Node) {
	if n == nil {
		return
	}
	if a == nil {
		a = alloc.Default()
	}
	a.Deallocate(n.bytes)
	a.Deallocate(n.lang)
	n.bytes = nil
	n.lang = nil
	n.datatype = nil
}

// Equals reports whether two nodes have equal kind, content, and auxiliary
// data.  Flags never participate.
func (n *Node) Equals(o *Node) bool {
	if n == o {
		return true
	}
	if n == nil || o == nil {
		return false
	}
	if n.kind != o.kind || !bytes.Equal(n.bytes, o.bytes) {
		return false
	}
	switch n.kind {
	case TaggedLiteral:
		return bytes.Equal(n.lang, o.lang)
	case TypedLiteral:
		return n.datatype == o.datatype ||
			bytes.Equal(n.datatype.bytes, o.datatype.bytes)
	}
	return true
}
