package cov

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mingzhi/gaps/depth"
	"github.com/sirupsen/logrus"
)

// RecordReader yields aligned depth records until io.EOF.
type RecordReader interface {
	Read() (depth.Record, error)
}

// LookupHeader is the first line written by Lookup.
const LookupHeader = "pos\tline\tmean\tsd\tn\tcoverages"

// Lookup streams records from r and writes the cross-sample statistics of
// every record whose position is one of positions. It stops as soon as every
// position has been found, or at the end of input, and returns the number of
// distinct positions found.
func Lookup(r RecordReader, positions []int, w io.Writer, log logrus.FieldLogger) (found int, err error) {
	if log == nil {
		log = logrus.StandardLogger()
	}

	targets := make(map[int]bool)
	for _, p := range positions {
		targets[p] = true
	}

	bw := bufio.NewWriter(w)
	defer func() {
		if e := bw.Flush(); e != nil && err == nil {
			err = e
		}
	}()

	if _, err = fmt.Fprintln(bw, LookupHeader); err != nil {
		return 0, err
	}
	if len(targets) == 0 {
		return 0, nil
	}

	seen := make(map[int]bool)
	total := 0
	for {
		rec, err := r.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return len(seen), err
		}
		total++

		if targets[rec.Pos] {
			mv := Calc(rec.Depths)
			seen[rec.Pos] = true
			_, err := fmt.Fprintf(bw, "%d\t%d\t%.2f\t%.2f\t%d\t%s\n",
				rec.Pos, total, mv.Mean, mv.SD, mv.N, joinInts(rec.Depths))
			if err != nil {
				return len(seen), err
			}
		}

		if total%10000 == 0 {
			log.Infof("processed %d lines. %d of %d positions found.", total, len(seen), len(targets))
		}

		if len(seen) >= len(targets) {
			break
		}
	}

	return len(seen), nil
}

func joinInts(xs []int) string {
	ss := make([]string, len(xs))
	for i, x := range xs {
		ss[i] = strconv.Itoa(x)
	}
	return strings.Join(ss, ",")
}
