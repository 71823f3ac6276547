package node

import (
	"encoding/base64"
	"strconv"
	"strings"
)

// Datatype URIs used by the value descriptors.
const (
	XSDBoolean = "http://www.w3.org/2001/XMLSchema#boolean"
	XSDInteger = "http://www.w3.org/2001/XMLSchema#integer"
	XSDDecimal = "http://www.w3.org/2001/XMLSchema#decimal"
	XSDBase64  = "http://www.w3.org/2001/XMLSchema#base64Binary"
)

// Spec describes a node to construct or look up: a kind tag plus the
// kind-appropriate payload.  It refers to caller-owned bytes and is never
// retained; a store copies whatever it decides to keep.
type Spec struct {
	Kind     Kind
	Bytes    []byte
	Lang     []byte // TaggedLiteral only
	Datatype *Node  // TypedLiteral only; must be a URI node
}

// Valid reports whether the auxiliary data is consistent with the kind.
func (s Spec) Valid() error {
	switch s.Kind {
	case URI, Blank, Literal:
		if s.Lang != nil {
			return ErrSpecLang
		}
		if s.Datatype != nil {
			return ErrSpecDatatype
		}
	case TaggedLiteral:
		if s.Datatype != nil {
			return ErrSpecDatatype
		}
		if len(s.Lang) == 0 {
			return ErrNoLang
		}
	case TypedLiteral:
		if s.Lang != nil {
			return ErrSpecLang
		}
		if s.Datatype == nil {
			return ErrNoDatatype
		}
		if s.Datatype.Kind() != URI {
			return ErrDatatypeKind
		}
	default:
		return ErrBadKind
	}
	return nil
}

func MakeURI(uri string) Spec {
	return Spec{Kind: URI, Bytes: []byte(uri)}
}

func MakeBlank(label string) Spec {
	return Spec{Kind: Blank, Bytes: []byte(label)}
}

func MakeLiteral(body string) Spec {
	return Spec{Kind: Literal, Bytes: []byte(body)}
}

func MakeTagged(body, lang string) Spec {
	return Spec{Kind: TaggedLiteral, Bytes: []byte(body), Lang: []byte(lang)}
}

func MakeTyped(body string, datatype *Node) Spec {
	return Spec{Kind: TypedLiteral, Bytes: []byte(body), Datatype: datatype}
}

// MakeBoolean describes a typed literal with the canonical xsd:boolean form.
// The datatype node is supplied by the caller, typically interned once from
// [XSDBoolean].
func MakeBoolean(v bool, datatype *Node) Spec {
	return MakeTyped(strconv.FormatBool(v), datatype)
}

// MakeInteger describes a typed literal with the canonical xsd:integer form.
func MakeInteger(v int64, datatype *Node) Spec {
	return MakeTyped(strconv.FormatInt(v, 10), datatype)
}

// MakeDecimal describes a typed literal with a canonical xsd:decimal form,
// which always carries a decimal point.
func MakeDecimal(v float64, datatype *Node) Spec {
	body := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(body, ".") {
		body += ".0"
	}
	return MakeTyped(body, datatype)
}

// MakeBase64 describes a typed literal holding the standard base64 encoding
// of data.
func MakeBase64(data []byte, datatype *Node) Spec {
	return MakeTyped(base64.StdEncoding.EncodeToString(data), datatype)
}
