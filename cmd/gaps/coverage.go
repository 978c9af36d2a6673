package main

import (
	"io"
	"os"

	"github.com/mingzhi/gaps/cov"
	"github.com/mingzhi/gaps/depth"
	"gopkg.in/alecthomas/kingpin.v2"
)

// cmdCoverage prints the coverage statistics at given positions.
type cmdCoverage struct {
	coverage  *[]string
	positions *[]int
}

func (cmd *cmdCoverage) register(app *kingpin.Application) *kingpin.CmdClause {
	c := app.Command("coverage", "print coverage across samples at positions")
	cmd.positions = c.Flag("position", "position to look up, may be repeated").Short('p').Required().Ints()
	cmd.coverage = c.Arg("coverage", "coverage files, optionally gzipped").Required().Strings()
	return c
}

func (cmd *cmdCoverage) run() error {
	srcs, err := depth.OpenAll(*cmd.coverage)
	if err != nil {
		return err
	}
	defer depth.CloseAll(srcs)

	rs := make([]io.Reader, len(srcs))
	for i, rc := range srcs {
		rs[i] = rc
	}
	rd := depth.NewReader(rs...)
	found, err := cov.Lookup(rd, *cmd.positions, os.Stdout, logger)
	if err != nil {
		return err
	}
	logger.Infof("found %d of %d positions in %d lines", found, len(*cmd.positions), rd.Line())
	return nil
}
