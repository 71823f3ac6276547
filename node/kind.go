package node

import "fmt"

// Kind is the basic category of a node.  The literal kinds are distinct so
// that the language or datatype a literal carries is fixed by its kind rather
// than checked at run time.
type Kind int

const (
	URI Kind = iota
	Blank
	Literal
	TaggedLiteral
	TypedLiteral
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		URI:           "URI",
		Blank:         "Blank",
		Literal:       "Literal",
		TaggedLiteral: "TaggedLiteral",
		TypedLiteral:  "TypedLiteral",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"URI":           URI,
		"Blank":         Blank,
		"Literal":       Literal,
		"TaggedLiteral": TaggedLiteral,
		"TypedLiteral":  TypedLiteral,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		URI,
		Blank,
		Literal,
		TaggedLiteral,
		TypedLiteral,
	}
}

func (k Kind) IsLiteral() bool {
	switch k {
	case Literal, TaggedLiteral, TypedLiteral:
		return true
	default:
		return false
	}
}
