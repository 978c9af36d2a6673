package gap

import (
	"io"

	"github.com/mingzhi/gaps/cov"
	"github.com/mingzhi/gaps/depth"
	"github.com/mingzhi/gaps/mask"
	"github.com/sirupsen/logrus"
)

// DefaultMaxLines is the default cap on the number of records read.
const DefaultMaxLines = 1000000000

// Source yields aligned records of a fixed number of samples until io.EOF.
type Source interface {
	Read() (depth.Record, error)
	Samples() int
}

// Finder runs gap detection over a Source in a single forward pass.
type Finder struct {
	Options
	Mask          *mask.Mask         // excluded positions, may be nil.
	Stability     bool               // calculate stability as samples are added.
	MaxLines      int                // stop after this many records, no limit if <= 0.
	ProgressEvery int                // log progress every this many records, never if <= 0.
	Log           logrus.FieldLogger // defaults to the standard logger.
}

// NewFinder returns a Finder with default options.
func NewFinder() *Finder {
	return &Finder{
		Options:       DefaultOptions(),
		MaxLines:      DefaultMaxLines,
		ProgressEvery: 10000,
	}
}

// Run reads src to the end, or until MaxLines records, writing gaps to w.
// On a read error, gaps written so far are correct, but the open gap is
// dropped.
func (f *Finder) Run(src Source, w Writer) (*Result, error) {
	log := f.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	log.Infof("%d samples", src.Samples())

	d := NewDetector(f.Options, f.Mask, w)
	res := &Result{Options: f.Options, Stats: d.Stats()}
	if f.Stability {
		res.Stability = NewStability(f.Options, src.Samples())
	}

	for {
		rec, err := src.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return res, err
		}

		mean, sd := cov.MeanSD(rec.Depths)
		if err := d.Process(rec, mean, sd); err != nil {
			return res, err
		}
		if res.Stability != nil {
			res.Stability.Observe(rec.Depths)
		}

		total := res.Stats.Total
		if f.MaxLines > 0 && total >= f.MaxLines {
			log.Infof("stopped after %d lines.", total)
			break
		}
		if f.ProgressEvery > 0 && total%f.ProgressEvery == 0 {
			log.Infof("processed %d lines. %d gaps.", total, res.Stats.Count)
		}
	}

	if err := d.Flush(); err != nil {
		return res, err
	}
	return res, nil
}
