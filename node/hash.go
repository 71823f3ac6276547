package node

import (
	"encoding/binary"
	"hash/maphash"
)

// The hash of a node and the hash of a descriptor for that node must agree,
// or a store searching with a descriptor would miss the node it is about to
// duplicate.  tokenHash is the single folding step both sides are built from;
// Node.Hash deliberately mirrors Spec.Hash so the two are easy to compare.

func tokenHash(h *maphash.Hash, kind Kind, content []byte) {
	var hdr [9]byte
	hdr[0] = byte(kind)
	binary.LittleEndian.PutUint64(hdr[1:], uint64(len(content)))
	h.Write(hdr[:])
	h.Write(content)
}

// Hash returns the digest of s under seed.  Seeds come from
// [maphash.MakeSeed], so digests are deterministic within a process run but
// not across runs.
func (s Spec) Hash(seed maphash.Seed) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	tokenHash(&h, s.Kind, s.Bytes)
	switch s.Kind {
	case TaggedLiteral:
		tokenHash(&h, TaggedLiteral, s.Lang)
	case TypedLiteral:
		tokenHash(&h, URI, s.Datatype.bytes)
	}
	return h.Sum64()
}

// Hash returns the digest of n under seed, identical to the digest of any
// descriptor that would construct a node equal to n.
func (n *Node) Hash(seed maphash.Seed) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	tokenHash(&h, n.kind, n.bytes)
	switch n.kind {
	case TaggedLiteral:
		tokenHash(&h, TaggedLiteral, n.lang)
	case TypedLiteral:
		// A fully released literal no longer holds its datatype; hash it as
		// absent so a store lookup can still run and miss.
		if n.datatype != nil {
			tokenHash(&h, URI, n.datatype.bytes)
		}
	}
	return h.Sum64()
}
