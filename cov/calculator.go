// Package cov calculates cross-sample coverage statistics.
package cov

import (
	"gonum.org/v1/gonum/stat"
)

// MeanVar holds the mean and the sample standard deviation
// of the depths at one position.
type MeanVar struct {
	Mean float64
	SD   float64
	N    int
}

// MeanSD returns the mean and the sample (N-1) standard deviation of depths.
// The standard deviation of a single value is 0.
func MeanSD(depths []int) (mean, sd float64) {
	return meanSD(floats(depths))
}

// PrefixMeanSD is MeanSD over the first k depths.
func PrefixMeanSD(depths []int, k int) (mean, sd float64) {
	return meanSD(floats(depths[:k]))
}

// Calc returns the MeanVar of depths.
func Calc(depths []int) MeanVar {
	mean, sd := MeanSD(depths)
	return MeanVar{Mean: mean, SD: sd, N: len(depths)}
}

// Prefixes calls fn for k = 2..len(depths) with the MeanVar of depths[:k],
// in increasing order of k.
func Prefixes(depths []int, fn func(k int, mv MeanVar)) {
	for k := 2; k <= len(depths); k++ {
		mean, sd := PrefixMeanSD(depths, k)
		fn(k, MeanVar{Mean: mean, SD: sd, N: k})
	}
}

func meanSD(xs []float64) (mean, sd float64) {
	switch len(xs) {
	case 0:
		return 0, 0
	case 1:
		return xs[0], 0
	}
	return stat.MeanStdDev(xs, nil)
}

func floats(depths []int) []float64 {
	xs := make([]float64, len(depths))
	for i, d := range depths {
		xs[i] = float64(d)
	}
	return xs
}
