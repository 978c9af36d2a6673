// Package gap finds regions where the depth aggregated across samples
// persistently falls below a coverage threshold.
package gap

import (
	"github.com/mingzhi/gaps/depth"
	"github.com/mingzhi/gaps/mask"
)

// Options control how positions are classified and which gaps are reported.
type Options struct {
	Threshold int     // a position is a gap if its adjusted mean depth falls below this.
	SDOffset  float64 // the mean is adjusted by this multiple of the standard deviation.
	MinWidth  float64 // only report gaps at least this long.
}

// DefaultOptions returns the default threshold 15, sd offset -1 and min width 1.
func DefaultOptions() Options {
	return Options{Threshold: 15, SDOffset: -1, MinWidth: 1}
}

// IsGap classifies a position by its mean depth and standard deviation.
func (o Options) IsGap(mean, sd float64) bool {
	return mean+sd*o.SDOffset < float64(o.Threshold)
}

// Writer receives finalized gaps in position order.
type Writer interface {
	Write(g Gap) error
}

// Detector merges adjacent gap positions into gaps.
// It is either outside a gap or holds the Accumulator of the open gap;
// finalize is the only way out of an open gap.
type Detector struct {
	opts  Options
	mask  *mask.Mask
	w     Writer
	stats *Stats
	acc   *Accumulator
}

// NewDetector returns a Detector writing gaps to w.
// Positions contained in m are never gaps; m may be nil.
func NewDetector(opts Options, m *mask.Mask, w Writer) *Detector {
	return &Detector{
		opts:  opts,
		mask:  m,
		w:     w,
		stats: NewStats(),
	}
}

// Process consumes the record of the next position with its cross-sample
// mean depth and standard deviation.
func (d *Detector) Process(rec depth.Record, mean, sd float64) error {
	d.stats.Total++

	if !d.opts.IsGap(mean, sd) || d.mask.Contains(rec.Chrom, rec.Pos) {
		return d.finalize()
	}

	if d.acc != nil && d.acc.Adjacent(rec.Chrom, rec.Pos) {
		d.acc.Append(mean)
		return nil
	}

	if err := d.finalize(); err != nil {
		return err
	}
	d.acc = newAccumulator(rec.Chrom, rec.Pos, mean)
	return nil
}

// Flush finalizes the open gap, if any.
func (d *Detector) Flush() error {
	return d.finalize()
}

// InGap reports whether a gap is open.
func (d *Detector) InGap() bool {
	return d.acc != nil
}

// Stats returns the statistics of the gaps written so far.
func (d *Detector) Stats() *Stats {
	return d.stats
}

// finalize closes the open gap, writing it if it is wide enough.
func (d *Detector) finalize() error {
	if d.acc == nil {
		return nil
	}
	acc := d.acc
	d.acc = nil

	if float64(acc.Len()) < d.opts.MinWidth {
		return nil
	}

	g := acc.Gap()
	if err := d.w.Write(g); err != nil {
		return err
	}
	d.stats.Add(g.Len())
	return nil
}
