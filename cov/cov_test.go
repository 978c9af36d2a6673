package cov

import (
	"bytes"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/mingzhi/gaps/depth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeanSD(t *testing.T) {
	testCases := []struct {
		depths   []int
		mean, sd float64
	}{
		{[]int{7}, 7, 0},
		{[]int{10, 10, 10}, 10, 0},
		{[]int{12, 11, 13}, 12, 1},
		{[]int{2, 4, 4, 4, 5, 5, 7, 9}, 5, math.Sqrt(32.0 / 7)},
	}

	for _, tc := range testCases {
		mean, sd := MeanSD(tc.depths)
		assert.InDelta(t, tc.mean, mean, 1e-9, "%v", tc.depths)
		assert.InDelta(t, tc.sd, sd, 1e-9, "%v", tc.depths)
	}
}

func TestPrefixMeanSD(t *testing.T) {
	depths := []int{20, 10, 30}
	mean, sd := PrefixMeanSD(depths, 1)
	assert.Equal(t, 20.0, mean)
	assert.Equal(t, 0.0, sd)

	mean, sd = PrefixMeanSD(depths, 2)
	assert.InDelta(t, 15, mean, 1e-9)
	assert.InDelta(t, math.Sqrt(50), sd, 1e-9)

	var ks []int
	Prefixes(depths, func(k int, mv MeanVar) {
		ks = append(ks, k)
		m, s := PrefixMeanSD(depths, k)
		assert.InDelta(t, m, mv.Mean, 1e-9)
		assert.InDelta(t, s, mv.SD, 1e-9)
		assert.Equal(t, k, mv.N)
	})
	assert.Equal(t, []int{2, 3}, ks)
}

type records []depth.Record

func (rs *records) Read() (depth.Record, error) {
	if len(*rs) == 0 {
		return depth.Record{}, io.EOF
	}
	r := (*rs)[0]
	*rs = (*rs)[1:]
	return r, nil
}

func TestLookup(t *testing.T) {
	rs := &records{
		{Chrom: "chr1", Pos: 100, Depths: []int{10, 12}},
		{Chrom: "chr1", Pos: 101, Depths: []int{5, 5}},
		{Chrom: "chr1", Pos: 102, Depths: []int{1, 2}},
		{Chrom: "chr1", Pos: 103, Depths: []int{8, 8}},
	}

	var out bytes.Buffer
	found, err := Lookup(rs, []int{101, 102}, &out, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, found)
	assert.Equal(t, strings.Join([]string{
		LookupHeader,
		"101\t2\t5.00\t0.00\t2\t5,5",
		"102\t3\t1.50\t0.71\t2\t1,2",
		"",
	}, "\n"), out.String())
	// Stops as soon as every position was found.
	assert.Len(t, *rs, 1)
}

func TestLookupMissing(t *testing.T) {
	rs := &records{{Chrom: "chr1", Pos: 1, Depths: []int{3}}}
	var out bytes.Buffer
	found, err := Lookup(rs, []int{50}, &out, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, found)
	assert.Equal(t, LookupHeader+"\n", out.String())
}
