package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "serdi").
		WithSynopsis("serdi [opts] command [opts] [files]").
		WithDescription("serdi inspects RDF terms through an interning node store.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fmt.Errorf("%w: expected a command", cli.ErrUsage)
		}).
		WithSubs(
			StatsCommand(cfg),
			DumpCommand(cfg))
}

func StatsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &StatsConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("stats").
		WithAliases("s").
		WithSynopsis("stats [files]").
		WithDescription("intern terms, one per line, and report deduplication").
		WithRun(func(cc *cli.Context, args []string) error {
			return stats(cfg, cc, args)
		})
	cfg.Stats = cmd
	return cmd
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	opts := []*cli.Opt{
		{
			Name:        "w",
			Aliases:     []string{"where"},
			Description: "keep only records matching an expression",
			Type:        cli.NamedFuncOpt(cfg.whereOpt, "(expr)"),
		},
	}
	cmd := cli.NewCommand("dump").
		WithAliases("d").
		WithSynopsis("dump [-w expr] [files]").
		WithDescription("intern terms and dump the canonical table as YAML").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
	cfg.Dump = cmd
	return cmd
}
