package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/drobilla/serd-sub002/node"
	"github.com/drobilla/serd-sub002/world"
)

func stats(cfg *StatsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Stats.Parse(cc, args)
	if err != nil {
		return err
	}
	w := world.New(nil)
	defer w.Free()
	st := w.Nodes()
	seen := map[*node.Node]int{}
	total := 0
	var docs uint64
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		n, err := internFile(st, cc.In, file, seen)
		if err != nil {
			return err
		}
		docs = w.NextDocumentID()
		total += n
	}

	num := fmt.Sprintf
	if cfg.colorize(cc.Out) {
		num = color.New(color.FgCyan, color.Bold).SprintfFunc()
	}
	distinct := st.Size()
	fmt.Fprintf(cc.Out, "documents %s\n", num("%d", docs))
	fmt.Fprintf(cc.Out, "terms     %s\n", num("%d", total))
	fmt.Fprintf(cc.Out, "distinct  %s\n", num("%d", distinct))
	if total > 0 {
		saved := 100 * (1 - float64(distinct)/float64(total))
		fmt.Fprintf(cc.Out, "dedup     %s\n", num("%.1f%%", saved))
	}
	return nil
}
