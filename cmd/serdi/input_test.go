package main

import (
	"strings"
	"testing"

	"github.com/drobilla/serd-sub002/node"
	"github.com/drobilla/serd-sub002/nodes"
)

func TestInternTerm(t *testing.T) {
	var termTests = []struct {
		in   string
		kind node.Kind
		text string
		lang string
		dt   string
	}{
		{in: "<http://example.org/a>", kind: node.URI, text: "http://example.org/a"},
		{in: "_:b0", kind: node.Blank, text: "b0"},
		{in: `"hello"`, kind: node.Literal, text: "hello"},
		{in: `"hallo"@de`, kind: node.TaggedLiteral, text: "hallo", lang: "de"},
		{in: `"5"^^<http://www.w3.org/2001/XMLSchema#integer>`, kind: node.TypedLiteral,
			text: "5", dt: "http://www.w3.org/2001/XMLSchema#integer"},
	}
	for _, tt := range termTests {
		st := nodes.New(nil)
		n, err := internTerm(st, tt.in)
		if err != nil {
			t.Errorf("%s: %v", tt.in, err)
			continue
		}
		if n.Kind() != tt.kind || n.String() != tt.text {
			t.Errorf("%s: got %s %q, want %s %q", tt.in, n.Kind(), n.String(), tt.kind, tt.text)
		}
		if string(n.Lang()) != tt.lang {
			t.Errorf("%s: lang %q, want %q", tt.in, n.Lang(), tt.lang)
		}
		if tt.dt != "" && (n.Datatype() == nil || n.Datatype().String() != tt.dt) {
			t.Errorf("%s: datatype %v, want %q", tt.in, n.Datatype(), tt.dt)
		}
		st.Free()
	}
}

func TestInternTermBad(t *testing.T) {
	st := nodes.New(nil)
	defer st.Free()
	for _, in := range []string{"bare", `"open`, "<u", `"x"^^plain`} {
		if _, err := internTerm(st, in); err == nil {
			t.Errorf("%q: expected an error", in)
		}
	}
}

func TestInternReader(t *testing.T) {
	st := nodes.New(nil)
	defer st.Free()
	in := strings.NewReader(`
# comment
<http://example.org/a>
<http://example.org/a>
"hello"
`)
	seen := map[*node.Node]int{}
	total, err := internReader(st, in, seen)
	if err != nil {
		t.Fatal(err)
	}
	if total != 3 {
		t.Errorf("read %d terms, want 3", total)
	}
	if st.Size() != 2 {
		t.Errorf("store size %d, want 2", st.Size())
	}
	for n, count := range seen {
		if n.Kind() == node.URI && count != 2 {
			t.Errorf("URI counted %d times, want 2", count)
		}
	}
}
