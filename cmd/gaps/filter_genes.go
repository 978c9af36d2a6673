package main

import (
	"os"

	"github.com/mingzhi/gaps/genes"
	"gopkg.in/alecthomas/kingpin.v2"
)

// cmdFilterGenes keeps the region lines of stdin labelled with a listed gene.
type cmdFilterGenes struct {
	geneFile *string
}

func (cmd *cmdFilterGenes) register(app *kingpin.Application) *kingpin.CmdClause {
	c := app.Command("filter-genes", "filter regions on stdin by a gene list")
	cmd.geneFile = c.Arg("genes", "gene list, one per line").Required().String()
	return c
}

func (cmd *cmdFilterGenes) run() error {
	f, err := os.Open(*cmd.geneFile)
	if err != nil {
		return err
	}
	s, err := genes.ReadSet(f)
	f.Close()
	if err != nil {
		return err
	}
	logger.Infof("%d genes", len(s))

	_, _, err = genes.Filter(s, os.Stdin, os.Stdout, logger)
	return err
}
