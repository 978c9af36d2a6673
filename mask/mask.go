// Package mask holds genomic regions excluded from gap calling.
package mask

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/biogo/store/interval"
	"github.com/sirupsen/logrus"
)

// ErrMalformed is returned for region lines with non-integer coordinates.
var ErrMalformed = errors.New("malformed region line")

// region is a half-open [Start, End) interval on a chromosome.
type region struct {
	Start, End int
	id         uintptr
}

// Overlap returns whether r overlaps b.
func (r region) Overlap(b interval.IntRange) bool {
	return r.End > b.Start && r.Start < b.End
}
func (r region) ID() uintptr              { return r.id }
func (r region) Range() interval.IntRange { return interval.IntRange{Start: r.Start, End: r.End} }

// point is a query for a single position.
type point int

func (p point) Overlap(b interval.IntRange) bool {
	return b.End > int(p) && b.Start <= int(p)
}

// Mask maps chromosome names to their excluded positions.
// It is not modified after Build returns; a nil Mask excludes nothing.
type Mask struct {
	trees map[string]*interval.IntTree
	n     int
}

// Build reads tab-separated regions (chromosome, start, end, ...) from r.
// Lines with fewer than three fields are ignored.
func Build(r io.Reader, log logrus.FieldLogger) (*Mask, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	log.Info("building master gap filter...")

	m := &Mask{trees: make(map[string]*interval.IntTree)}
	rd := bufio.NewReader(r)
	for idx := 0; ; idx++ {
		line, err := rd.ReadString('\n')
		if err != nil && (err != io.EOF || len(line) == 0) {
			if err != io.EOF {
				return nil, err
			}
			break
		}

		terms := strings.Split(strings.TrimRight(line, "\r\n"), "\t")
		if len(terms) >= 3 {
			start, err1 := strconv.Atoi(strings.TrimSpace(terms[1]))
			end, err2 := strconv.Atoi(strings.TrimSpace(terms[2]))
			if err1 != nil || err2 != nil {
				return nil, fmt.Errorf("line %d: %w: %q", idx+1, ErrMalformed, strings.TrimSpace(line))
			}
			if err := m.insert(terms[0], start, end); err != nil {
				return nil, fmt.Errorf("line %d: %w", idx+1, err)
			}
		}

		if idx%10000 == 0 {
			log.Infof("processed %d lines.", idx)
		}
	}

	for _, t := range m.trees {
		t.AdjustRanges()
	}
	log.Infof("building master gap filter: done. %d regions on %d chromosomes.", m.n, len(m.trees))

	return m, nil
}

func (m *Mask) insert(chrom string, start, end int) error {
	if end <= start {
		// An empty range excludes nothing.
		return nil
	}
	t, ok := m.trees[chrom]
	if !ok {
		t = &interval.IntTree{}
		m.trees[chrom] = t
	}
	m.n++
	return t.Insert(region{Start: start, End: end, id: uintptr(m.n)}, true)
}

// Contains reports whether pos is excluded on chrom.
func (m *Mask) Contains(chrom string, pos int) bool {
	if m == nil {
		return false
	}
	t, ok := m.trees[chrom]
	if !ok {
		return false
	}
	return len(t.Get(point(pos))) > 0
}

// Len returns the number of regions.
func (m *Mask) Len() int {
	if m == nil {
		return 0
	}
	return m.n
}
