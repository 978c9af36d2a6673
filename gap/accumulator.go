package gap

import "math/big"

// Gap is a finalized run of adjacent gap positions, [Start, End).
type Gap struct {
	Chrom     string
	Start     int
	End       int
	MeanDepth float64 // mean of the per-position mean depths.
}

// Len returns the number of positions in g.
func (g Gap) Len() int {
	return g.End - g.Start
}

// Accumulator collects the mean depths of a gap while it is open.
type Accumulator struct {
	Chrom string
	Start int
	means []float64
}

func newAccumulator(chrom string, pos int, mean float64) *Accumulator {
	return &Accumulator{Chrom: chrom, Start: pos, means: []float64{mean}}
}

// Len returns the current width of the gap.
func (a *Accumulator) Len() int {
	return len(a.means)
}

// End returns the position following the last one appended.
func (a *Accumulator) End() int {
	return a.Start + len(a.means)
}

// Adjacent reports whether pos on chrom directly extends the gap.
func (a *Accumulator) Adjacent(chrom string, pos int) bool {
	return chrom == a.Chrom && pos == a.End()
}

// Append extends the gap by one position.
func (a *Accumulator) Append(mean float64) {
	a.means = append(a.means, mean)
}

// Gap returns the finalized gap. The means are summed exactly, so a mean
// ending in 5 at the second decimal is not nudged up by rounding error.
func (a *Accumulator) Gap() Gap {
	sum := new(big.Rat)
	for _, m := range a.means {
		sum.Add(sum, new(big.Rat).SetFloat64(m))
	}
	mean, _ := sum.Quo(sum, new(big.Rat).SetInt64(int64(len(a.means)))).Float64()
	return Gap{
		Chrom:     a.Chrom,
		Start:     a.Start,
		End:       a.End(),
		MeanDepth: mean,
	}
}
