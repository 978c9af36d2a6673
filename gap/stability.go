package gap

import (
	"github.com/mingzhi/gaps/cov"
)

// Stability counts, for every number of samples k, the positions whose
// classification using the first k samples differs from the one using the
// first k-1 samples. The exclusion mask is not applied.
type Stability struct {
	opts    Options
	toGap   []int // indexed by k-1.
	toNoGap []int
}

// Instability is the share of positions, in percent, whose classification
// changed when the k-th sample was added.
type Instability struct {
	Samples  int     `yaml:"samples"`
	Combined float64 `yaml:"combined"`
	Gap      float64 `yaml:"gap"`
	NoGap    float64 `yaml:"no_gap"`
}

// NewStability returns a Stability for the given number of samples.
func NewStability(opts Options, samples int) *Stability {
	return &Stability{
		opts:    opts,
		toGap:   make([]int, samples),
		toNoGap: make([]int, samples),
	}
}

// Observe classifies the depths of one position for every prefix size
// 2..len(depths). The position is taken as no gap before the second sample.
func (s *Stability) Observe(depths []int) {
	wasGap := false
	cov.Prefixes(depths, func(k int, mv cov.MeanVar) {
		isGap := s.opts.IsGap(mv.Mean, mv.SD)
		if isGap != wasGap {
			if isGap {
				s.toGap[k-1]++
			} else {
				s.toNoGap[k-1]++
			}
		}
		wasGap = isGap
	})
}

// Counts returns the transitions into and out of a gap for k samples.
func (s *Stability) Counts(k int) (toGap, toNoGap int) {
	return s.toGap[k-1], s.toNoGap[k-1]
}

// Instability returns the percentages for k = 2..samples relative to total
// positions.
func (s *Stability) Instability(total int) []Instability {
	var res []Instability
	for k := 2; k <= len(s.toGap); k++ {
		g, n := s.Counts(k)
		res = append(res, Instability{
			Samples:  k,
			Combined: percent(g+n, total),
			Gap:      percent(g, total),
			NoGap:    percent(n, total),
		})
	}
	return res
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(n) / float64(total)
}
