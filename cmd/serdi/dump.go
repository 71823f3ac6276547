package main

import (
	"fmt"
	"slices"

	"github.com/expr-lang/expr"
	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/drobilla/serd-sub002/node"
	"github.com/drobilla/serd-sub002/nodes"
)

type record struct {
	Kind     string `yaml:"kind"`
	Text     string `yaml:"text"`
	Lang     string `yaml:"lang,omitempty"`
	Datatype string `yaml:"datatype,omitempty"`
	Count    int    `yaml:"count"`
}

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	st := nodes.New(nil)
	defer st.Free()
	seen := map[*node.Node]int{}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		if _, err := internFile(st, cc.In, file, seen); err != nil {
			return err
		}
	}

	list := make([]*node.Node, 0, len(seen))
	for n := range seen {
		list = append(list, n)
	}
	slices.SortFunc(list, node.Compare)

	recs := make([]record, 0, len(list))
	for _, n := range list {
		rec := record{
			Kind:  n.Kind().String(),
			Text:  n.String(),
			Lang:  string(n.Lang()),
			Count: seen[n],
		}
		if dt := n.Datatype(); dt != nil {
			rec.Datatype = dt.String()
		}
		recs = append(recs, rec)
	}
	if cfg.Where != "" {
		recs, err = filterRecords(cfg.Where, recs)
		if err != nil {
			return fmt.Errorf("bad filter %q: %w", cfg.Where, err)
		}
	}
	out, err := yaml.Marshal(recs)
	if err != nil {
		return fmt.Errorf("internal error: %w", err)
	}
	_, err = cc.Out.Write(out)
	return err
}

func filterRecords(src string, recs []record) ([]record, error) {
	prg, err := expr.Compile(src)
	if err != nil {
		return nil, err
	}
	kept := recs[:0]
	for _, rec := range recs {
		res, err := expr.Run(prg, map[string]any{
			"kind":     rec.Kind,
			"text":     rec.Text,
			"lang":     rec.Lang,
			"datatype": rec.Datatype,
			"count":    rec.Count,
		})
		if err != nil {
			return nil, err
		}
		keep, ok := res.(bool)
		if !ok {
			return nil, fmt.Errorf("filter returned %T, want bool", res)
		}
		if keep {
			kept = append(kept, rec)
		}
	}
	return kept, nil
}
