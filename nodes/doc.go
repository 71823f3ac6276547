// Package nodes provides a hash-consing, reference-counted store of
// canonical [node.Node] instances.
//
// [Store.Get] is the construct-or-find entry point: descriptors are hashed
// without allocating a node, so looking up an existing term costs nothing but
// the table search.  Every acquisition through Get or [Store.Intern] must be
// balanced by one [Store.Deref]; a node is released through the store's
// allocator the instant its last reference is dropped.
package nodes
