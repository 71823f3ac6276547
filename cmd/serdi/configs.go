package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='force colored output'"`

	Main *cli.Command
}

// colorize reports whether output to w should be colored: forced by -color,
// otherwise on when w is a terminal.
func (cfg *MainConfig) colorize(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type StatsConfig struct {
	*MainConfig

	Stats *cli.Command
}

type DumpConfig struct {
	*MainConfig

	Where string

	Dump *cli.Command
}

func (cfg *DumpConfig) whereOpt(cc *cli.Context, v string) (any, error) {
	cfg.Where = v
	return v, nil
}
