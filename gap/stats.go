package gap

import "sort"

// Stats accumulates the statistics of a run.
type Stats struct {
	Total   int         // positions processed.
	Bases   int         // positions in written gaps.
	Count   int         // written gaps.
	Min     int         // shortest written gap, 0 if none.
	Max     int         // longest written gap.
	Lengths map[int]int // gap length to number of gaps.
}

// NewStats returns empty Stats.
func NewStats() *Stats {
	return &Stats{Lengths: make(map[int]int)}
}

// Add records a written gap of the given length.
func (s *Stats) Add(length int) {
	if s.Count == 0 || length < s.Min {
		s.Min = length
	}
	if length > s.Max {
		s.Max = length
	}
	s.Bases += length
	s.Count++
	s.Lengths[length]++
}

// SortedLengths returns the distinct gap lengths in increasing order.
func (s *Stats) SortedLengths() []int {
	lengths := make([]int, 0, len(s.Lengths))
	for l := range s.Lengths {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)
	return lengths
}
