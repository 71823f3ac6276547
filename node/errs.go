package node

import "errors"

var (
	ErrSpecLang     = errors.New("language tag not allowed for kind")
	ErrSpecDatatype = errors.New("datatype not allowed for kind")
	ErrNoLang       = errors.New("tagged literal without language")
	ErrNoDatatype   = errors.New("typed literal without datatype")
	ErrDatatypeKind = errors.New("datatype is not a URI node")
	ErrBadKind      = errors.New("bad node kind")
)
