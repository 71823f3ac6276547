package node

// Flags are cheaply precomputed properties of a node's content, of use to a
// writer deciding how to quote or escape it.  They never participate in
// equality or hashing.
type Flags uint32

const (
	HasNewline Flags = 1 << iota // content contains '\n' or '\r'
	HasQuote                     // content contains '"'
)

func contentFlags(body []byte) Flags {
	var f Flags
	for _, b := range body {
		switch b {
		case '\n', '\r':
			f |= HasNewline
		case '"':
			f |= HasQuote
		}
	}
	return f
}
