// Package depth reads per-base sequencing depth produced for a set of target
// regions, one file per sample, and aligns the samples position by position.
package depth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Errors returned when reading depth sources.
var (
	ErrMalformed  = errors.New("malformed depth line")
	ErrMisaligned = errors.New("sources are not aligned")
	ErrTruncated  = errors.New("source ended before the first source")
)

// Number of tab-separated fields in a depth line.
const numFields = 6

// Line is a single depth line of one sample, e.g.
//
//	chr1	12099	12227	DDX11L1	1	141
//
// holding chromosome, region start, region end, label,
// 1-based ordinal within the region and depth.
type Line struct {
	Chrom   string // chromosome.
	Start   int    // region start.
	Label   string // region label, usually a gene name.
	Ordinal int    // 1-based ordinal within the region.
	Depth   int    // sequencing depth.
}

// Pos returns the 0-based reference position of the line.
func (l Line) Pos() int {
	return l.Start + l.Ordinal - 1
}

// Record is one reference position with the depths of all samples,
// in source order.
type Record struct {
	Chrom  string
	Pos    int
	Depths []int
}

// ParseLine parses a tab-delimited depth line.
// Trailing fields beyond the sixth are ignored.
func ParseLine(s string) (l Line, err error) {
	terms := strings.Split(strings.TrimRight(s, "\r\n"), "\t")
	if len(terms) < numFields {
		return l, fmt.Errorf("%w: %d fields, want %d", ErrMalformed, len(terms), numFields)
	}

	l.Chrom = terms[0]
	l.Label = terms[3]
	if l.Start, err = atoi(terms[1]); err != nil {
		return l, err
	}
	if l.Ordinal, err = atoi(terms[4]); err != nil {
		return l, err
	}
	if l.Depth, err = atoi(terms[5]); err != nil {
		return l, err
	}
	return l, nil
}

func atoi(s string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return i, nil
}
