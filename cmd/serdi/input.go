package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/drobilla/serd-sub002/node"
	"github.com/drobilla/serd-sub002/nodes"
)

// internTerm materializes one line's term in st.  The accepted forms are
// deliberately dumb: <uri>, _:label, "body", "body"@lang, or "body"^^<uri>;
// escapes are not interpreted.
func internTerm(st *nodes.Store, line string) (*node.Node, error) {
	switch {
	case strings.HasPrefix(line, "<") && strings.HasSuffix(line, ">"):
		return st.Get(node.MakeURI(line[1 : len(line)-1]))
	case strings.HasPrefix(line, "_:"):
		return st.Get(node.MakeBlank(line[2:]))
	case strings.HasPrefix(line, `"`):
		end := strings.LastIndex(line, `"`)
		if end == 0 {
			return nil, fmt.Errorf("unterminated literal %q", line)
		}
		body, suffix := line[1:end], line[end+1:]
		switch {
		case suffix == "":
			return st.Get(node.MakeLiteral(body))
		case strings.HasPrefix(suffix, "@"):
			return st.Get(node.MakeTagged(body, suffix[1:]))
		case strings.HasPrefix(suffix, "^^<") && strings.HasSuffix(suffix, ">"):
			dt, err := st.Get(node.MakeURI(suffix[3 : len(suffix)-1]))
			if err != nil {
				return nil, err
			}
			lit, err := st.Get(node.MakeTyped(body, dt))
			st.Deref(dt)
			return lit, err
		}
	}
	return nil, fmt.Errorf("unrecognized term %q", line)
}

// internReader interns every non-blank, non-comment line of r into st,
// counting occurrences per canonical node in seen.  It returns the number of
// terms read.
func internReader(st *nodes.Store, r io.Reader, seen map[*node.Node]int) (int, error) {
	sc := bufio.NewScanner(r)
	total := 0
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		n, err := internTerm(st, line)
		if err != nil {
			return total, err
		}
		seen[n]++
		total++
	}
	return total, sc.Err()
}

// internFile interns one named input, "-" meaning stdin.
func internFile(st *nodes.Store, stdin io.Reader, file string, seen map[*node.Node]int) (int, error) {
	var r io.Reader
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return 0, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	} else {
		r = stdin
	}
	n, err := internReader(st, r, seen)
	if err != nil {
		return n, fmt.Errorf("error processing %s: %w", file, err)
	}
	return n, nil
}
