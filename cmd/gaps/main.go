package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

// logger writes the diagnostic channel to stderr.
var logger = logrus.New()

func main() {
	app := kingpin.New("gaps", "Find regions of low coverage across multiple samples")
	app.Version("v0.1")
	verbose := app.Flag("verbose", "show debug messages").Bool()
	quiet := app.Flag("quiet", "only show warnings and errors").Bool()

	find := &cmdFind{}
	findCmd := find.register(app)
	coverage := &cmdCoverage{}
	coverageCmd := coverage.register(app)
	filter := &cmdFilterGenes{}
	filterCmd := filter.register(app)

	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	registerLogger(*verbose, *quiet)
	logger.Info("starting...")

	var err error
	switch command {
	case findCmd.FullCommand():
		err = find.run()
	case coverageCmd.FullCommand():
		err = coverage.run()
	case filterCmd.FullCommand():
		err = filter.run()
	}
	if err != nil {
		logger.Fatal(err)
	}
}

func registerLogger(verbose, quiet bool) {
	logger.Out = os.Stderr
	logger.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	switch {
	case quiet:
		logger.Level = logrus.WarnLevel
	case verbose:
		logger.Level = logrus.DebugLevel
	default:
		logger.Level = logrus.InfoLevel
	}
}
