// Package world owns the per-run context above the node store: the node
// store itself and the monotonically increasing counters that scope parsed
// documents and freshly generated blank-node labels.  The interning core
// takes no dependency on any of it.
package world

import (
	"strconv"

	"github.com/drobilla/serd-sub002/alloc"
	"github.com/drobilla/serd-sub002/node"
	"github.com/drobilla/serd-sub002/nodes"
)

// World owns a node store and hands out identifiers.  Like the store it is
// not safe for concurrent use.
type World struct {
	nodes   *nodes.Store
	nextDoc uint64
	blanks  uint64
}

// New returns a world with an empty store bound to a (nil means
// [alloc.Default]).
func New(a alloc.Allocator) *World {
	return &World{nodes: nodes.New(a)}
}

// Nodes returns the world's node store.
func (w *World) Nodes() *nodes.Store {
	return w.nodes
}

// NextDocumentID returns the identifier for the next parsed input stream.
// Identifiers start at 1 and increase monotonically for the life of the
// world.
func (w *World) NextDocumentID() uint64 {
	w.nextDoc++
	return w.nextDoc
}

// Blank interns and returns a fresh blank-node label, unique within this
// world.  The caller owns one reference on the returned node.
func (w *World) Blank() (*node.Node, error) {
	w.blanks++
	return w.nodes.Get(node.MakeBlank("b" + strconv.FormatUint(w.blanks, 10)))
}

// Free destroys the world's store and every node it still holds.
func (w *World) Free() {
	w.nodes.Free()
}
