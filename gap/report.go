package gap

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v2"
)

// Result is the outcome of a run.
type Result struct {
	Options
	Stats     *Stats
	Stability *Stability // nil when stability was not calculated.
}

// String renders the statistics block written at the end of a run.
func (r *Result) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Statistics\n==========\n")
	fmt.Fprintf(&b, "Threshold: %d\n", r.Threshold)
	fmt.Fprintf(&b, "SD: %g\n", r.SDOffset)
	fmt.Fprintf(&b, "Bases considered: %d\n", r.Stats.Total)
	fmt.Fprintf(&b, "Bases in gap: %d\n", r.Stats.Bases)
	fmt.Fprintf(&b, "Gap count: %d\n", r.Stats.Count)
	fmt.Fprintf(&b, "Min gap length: %d\n", r.Stats.Min)
	fmt.Fprintf(&b, "Max gap length: %d\n", r.Stats.Max)

	combined, gap, nogap := "not calculated", "not calculated", "not calculated"
	if r.Stability != nil {
		var cs, gs, ns []string
		for _, in := range r.Stability.Instability(r.Stats.Total) {
			cs = append(cs, fmt.Sprintf("%.1f%%", in.Combined))
			gs = append(gs, fmt.Sprintf("%.1f%%", in.Gap))
			ns = append(ns, fmt.Sprintf("%.1f%%", in.NoGap))
		}
		combined, gap, nogap = strings.Join(cs, " "), strings.Join(gs, " "), strings.Join(ns, " ")
	}
	fmt.Fprintf(&b, "Instability gap: %s\n", gap)
	fmt.Fprintf(&b, "Instability no gap: %s\n", nogap)
	fmt.Fprintf(&b, "Instability: %s\n", combined)

	var lengths []string
	for _, l := range r.Stats.SortedLengths() {
		lengths = append(lengths, fmt.Sprintf("%d:%d", l, r.Stats.Lengths[l]))
	}
	fmt.Fprintf(&b, "Gap lengths: %s\n", strings.Join(lengths, " "))

	return b.String()
}

// Summary is the machine-readable form of a Result.
type Summary struct {
	Threshold    int           `yaml:"threshold"`
	SDOffset     float64       `yaml:"sd_offset"`
	MinWidth     float64       `yaml:"min_width"`
	Positions    int           `yaml:"positions"`
	GapBases     int           `yaml:"gap_bases"`
	GapCount     int           `yaml:"gap_count"`
	MinGapLength int           `yaml:"min_gap_length"`
	MaxGapLength int           `yaml:"max_gap_length"`
	GapLengths   map[int]int   `yaml:"gap_lengths"`
	Instability  []Instability `yaml:"instability,omitempty"`
}

// Summary returns the Summary of r.
func (r *Result) Summary() Summary {
	s := Summary{
		Threshold:    r.Threshold,
		SDOffset:     r.SDOffset,
		MinWidth:     r.MinWidth,
		Positions:    r.Stats.Total,
		GapBases:     r.Stats.Bases,
		GapCount:     r.Stats.Count,
		MinGapLength: r.Stats.Min,
		MaxGapLength: r.Stats.Max,
		GapLengths:   r.Stats.Lengths,
	}
	if r.Stability != nil {
		s.Instability = r.Stability.Instability(r.Stats.Total)
	}
	return s
}

// Write encodes s as YAML.
func (s Summary) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}
