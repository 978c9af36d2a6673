package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mingzhi/gaps/depth"
	"github.com/mingzhi/gaps/gap"
	"github.com/mingzhi/gaps/mask"
	"github.com/pkg/profile"
	"github.com/spf13/viper"
	"gopkg.in/alecthomas/kingpin.v2"
	"gopkg.in/cheggaaa/pb.v1"
)

// cmdFind finds gaps in coverage across samples.
type cmdFind struct {
	cfg *cmdConfig

	coverage      *[]string
	threshold     *int
	sd            *float64
	minWidth      *float64
	stability     *bool
	maxLines      *int
	filter        *string
	out           *string
	summary       *string
	plot          *string
	progressEvery *int
	progress      *bool
	profile       *string
}

func (cmd *cmdFind) register(app *kingpin.Application) *kingpin.CmdClause {
	c := app.Command("find", "find gaps in coverage across samples")
	cmd.cfg = newCmdConfig(c)
	cmd.coverage = c.Arg("coverage", "coverage files, optionally gzipped").Strings()

	cfg := cmd.cfg
	cmd.threshold = cfg.flag(c, keyThreshold, "consider a gap if mean coverage falls below this").Int()
	cmd.sd = cfg.flag(c, keySD, "standard deviations added to the mean before the threshold").Float64()
	cmd.minWidth = cfg.flag(c, keyMinWidth, "minimum number of bases of a reported gap").Float64()
	cmd.stability = cfg.flag(c, keyStability, "calculate stability as samples are added").Bool()
	cmd.maxLines = cfg.flag(c, keyMaxLines, "maximum number of lines to read").Int()
	cmd.filter = cfg.flag(c, keyFilter, "exclude regions in this file (chrom, start, end)").String()
	cmd.out = cfg.flag(c, keyOut, "write gaps to this file, stdout if empty (.gz is bgzf)").String()
	cmd.summary = cfg.flag(c, keySummary, "write a YAML summary to this file").String()
	cmd.plot = cfg.flag(c, keyPlot, "plot the gap length histogram to this file").String()
	cmd.progressEvery = cfg.flag(c, keyProgressEvery, "log progress every this many lines").Int()
	cmd.progress = cfg.flag(c, keyProgress, "show a progress bar").Bool()
	cmd.profile = cfg.flag(c, keyProfile, "write a CPU profile to this directory").String()

	cfg.bind(keyThreshold, func() interface{} { return *cmd.threshold })
	cfg.bind(keySD, func() interface{} { return *cmd.sd })
	cfg.bind(keyMinWidth, func() interface{} { return *cmd.minWidth })
	cfg.bind(keyStability, func() interface{} { return *cmd.stability })
	cfg.bind(keyMaxLines, func() interface{} { return *cmd.maxLines })
	cfg.bind(keyFilter, func() interface{} { return *cmd.filter })
	cfg.bind(keyOut, func() interface{} { return *cmd.out })
	cfg.bind(keySummary, func() interface{} { return *cmd.summary })
	cfg.bind(keyPlot, func() interface{} { return *cmd.plot })
	cfg.bind(keyProgressEvery, func() interface{} { return *cmd.progressEvery })
	cfg.bind(keyProgress, func() interface{} { return *cmd.progress })
	cfg.bind(keyProfile, func() interface{} { return *cmd.profile })
	return c
}

func (cmd *cmdFind) run() error {
	v, err := cmd.cfg.parse()
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	if len(*cmd.coverage) > 0 {
		v.Set(keyCoverage, *cmd.coverage)
	}

	names := v.GetStringSlice(keyCoverage)
	if len(names) == 0 {
		return errors.New("no coverage files")
	}

	if dir := v.GetString(keyProfile); dir != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(dir)).Stop()
	}

	f, err := newFinder(v)
	if err != nil {
		return err
	}

	srcs, bar, err := openSources(names, v.GetBool(keyProgress))
	if err != nil {
		return err
	}
	defer depth.CloseAll(srcs)

	w, closeOut, err := createOut(v.GetString(keyOut))
	if err != nil {
		return err
	}

	rs := make([]io.Reader, len(srcs))
	for i, rc := range srcs {
		rs[i] = rc
	}
	rd := depth.NewReader(rs...)
	res, err := f.Run(rd, w)
	if bar != nil {
		bar.Finish()
	}
	logger.Infof("read %d lines from %d samples", rd.Line(), rd.Samples())
	// gaps written before an error are kept.
	if cerr := closeOut(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	fmt.Fprint(os.Stderr, res.String())

	if name := v.GetString(keySummary); name != "" {
		if err := writeSummary(res, name); err != nil {
			return err
		}
	}
	if name := v.GetString(keyPlot); name != "" {
		if err := gap.PlotLengths(res.Stats, name); err != nil {
			return fmt.Errorf("plotting %s: %w", name, err)
		}
	}
	return nil
}

func newFinder(v *viper.Viper) (*gap.Finder, error) {
	f := gap.NewFinder()
	f.Threshold = v.GetInt(keyThreshold)
	f.SDOffset = v.GetFloat64(keySD)
	f.MinWidth = v.GetFloat64(keyMinWidth)
	f.Stability = v.GetBool(keyStability)
	f.MaxLines = v.GetInt(keyMaxLines)
	f.ProgressEvery = v.GetInt(keyProgressEvery)
	f.Log = logger

	logger.Infof("threshold: %d, sd: %g, min width: %g", f.Threshold, f.SDOffset, f.MinWidth)

	if name := v.GetString(keyFilter); name != "" {
		m, err := readMask(name)
		if err != nil {
			return nil, err
		}
		f.Mask = m
	}
	return f, nil
}

func readMask(name string) (*mask.Mask, error) {
	rc, err := depth.Open(name, nil)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	m, err := mask.Build(rc, logger)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	logger.Infof("%d regions filtered", m.Len())
	return m, nil
}

// openSources opens the coverage files. With progress, a bar follows
// the bytes read from the first file, which decides the end of the run.
func openSources(names []string, progress bool) ([]io.ReadCloser, *pb.ProgressBar, error) {
	if !progress {
		rcs, err := depth.OpenAll(names)
		return rcs, nil, err
	}

	fi, err := os.Stat(names[0])
	if err != nil {
		return nil, nil, err
	}
	bar := pb.New64(fi.Size()).SetUnits(pb.U_BYTES)
	bar.Output = os.Stderr

	first, err := depth.Open(names[0], func(r io.Reader) io.Reader {
		return bar.NewProxyReader(r)
	})
	if err != nil {
		return nil, nil, err
	}
	rest, err := depth.OpenAll(names[1:])
	if err != nil {
		first.Close()
		return nil, nil, err
	}

	bar.Start()
	return append([]io.ReadCloser{first}, rest...), bar, nil
}

type gapWriter interface {
	gap.Writer
	Flush() error
}

func createOut(name string) (gapWriter, func() error, error) {
	if name == "" {
		w := gap.NewTSVWriter(os.Stdout)
		return w, w.Flush, nil
	}
	w, err := gap.Create(name)
	if err != nil {
		return nil, nil, err
	}
	return w, w.Close, nil
}

func writeSummary(res *gap.Result, name string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := res.Summary().Write(f); err != nil {
		return fmt.Errorf("writing summary %s: %w", name, err)
	}
	return f.Close()
}
