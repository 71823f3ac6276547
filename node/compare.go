package node

import (
	"bytes"
	"cmp"
)

// Compare orders nodes by kind, then content, then auxiliary data, returning
// -1, 0, or 1.  A nil node sorts before everything else.  The order is total
// and stable across runs, so it is suitable for deterministic output.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if c := cmp.Compare(a.kind, b.kind); c != 0 {
		return c
	}
	if c := bytes.Compare(a.bytes, b.bytes); c != 0 {
		return c
	}
	switch a.kind {
	case TaggedLiteral:
		return bytes.Compare(a.lang, b.lang)
	case TypedLiteral:
		return bytes.Compare(a.datatype.bytes, b.datatype.bytes)
	}
	return 0
}
