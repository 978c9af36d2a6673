package depth

import (
	"bufio"
	"fmt"
	"io"
)

// Reader advances a set of depth sources in lockstep.
// Each call to Read consumes exactly one line from every source.
type Reader struct {
	srcs []*bufio.Reader
	line int
}

// NewReader returns a Reader over the given sources.
// The index of a source is its sample index in every Record.
func NewReader(rs ...io.Reader) *Reader {
	r := &Reader{}
	for _, s := range rs {
		r.srcs = append(r.srcs, bufio.NewReader(s))
	}
	return r
}

// Samples returns the number of sources.
func (r *Reader) Samples() int {
	return len(r.srcs)
}

// Line returns the number of aligned records read so far.
func (r *Reader) Line() int {
	return r.line
}

// Read returns the next aligned record, or io.EOF when the first source is
// exhausted. Lines left in the other sources at that point are ignored.
//
// Every source must describe the same chromosome and position as the first
// one; otherwise Read fails with ErrMisaligned.
func (r *Reader) Read() (rec Record, err error) {
	if len(r.srcs) == 0 {
		return rec, io.EOF
	}

	s, err := readLine(r.srcs[0])
	if err != nil {
		if err == io.EOF {
			return rec, io.EOF
		}
		return rec, fmt.Errorf("source 0: %w", err)
	}
	r.line++

	first, err := ParseLine(s)
	if err != nil {
		return rec, fmt.Errorf("source 0 line %d: %w", r.line, err)
	}
	rec.Chrom = first.Chrom
	rec.Pos = first.Pos()
	rec.Depths = make([]int, len(r.srcs))
	rec.Depths[0] = first.Depth

	for i := 1; i < len(r.srcs); i++ {
		s, err := readLine(r.srcs[i])
		if err != nil {
			if err == io.EOF {
				return rec, fmt.Errorf("source %d line %d: %w", i, r.line, ErrTruncated)
			}
			return rec, fmt.Errorf("source %d: %w", i, err)
		}
		l, err := ParseLine(s)
		if err != nil {
			return rec, fmt.Errorf("source %d line %d: %w", i, r.line, err)
		}
		if l.Chrom != rec.Chrom || l.Pos() != rec.Pos {
			return rec, fmt.Errorf("source %d line %d: %w: %s:%d, want %s:%d",
				i, r.line, ErrMisaligned, l.Chrom, l.Pos(), rec.Chrom, rec.Pos)
		}
		rec.Depths[i] = l.Depth
	}

	return rec, nil
}

// readLine reads a line, treating a final line without newline as a line.
func readLine(rd *bufio.Reader) (string, error) {
	l, err := rd.ReadString('\n')
	if err == io.EOF && len(l) > 0 {
		return l, nil
	}
	return l, err
}
