// Package genes keeps the lines of a region file whose label is in a gene list.
package genes

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// ErrMalformed is returned for region lines without a label field.
var ErrMalformed = errors.New("malformed region line")

// labelField is the index of the gene label in a region line.
const labelField = 3

// Set is a set of gene names.
type Set map[string]bool

// ReadSet reads gene names, one per line, from the first tab-separated field.
func ReadSet(r io.Reader) (Set, error) {
	s := make(Set)
	rd := bufio.NewReader(r)
	for {
		line, err := rd.ReadString('\n')
		if len(line) > 0 {
			gene := strings.Split(strings.TrimRight(line, "\r\n"), "\t")[0]
			s[gene] = true
		}
		if err != nil {
			if err != io.EOF {
				return nil, err
			}
			break
		}
	}
	return s, nil
}

// Filter copies the lines of in whose fourth field is in s to out.
// It returns the number of lines copied and read.
func Filter(s Set, in io.Reader, out io.Writer, log logrus.FieldLogger) (included, total int, err error) {
	if log == nil {
		log = logrus.StandardLogger()
	}

	rd := bufio.NewReader(in)
	bw := bufio.NewWriter(out)
	defer func() {
		if e := bw.Flush(); e != nil && err == nil {
			err = e
		}
	}()

	for {
		line, rerr := rd.ReadString('\n')
		if len(line) > 0 {
			total++
			terms := strings.Split(strings.TrimRight(line, "\r\n"), "\t")
			if len(terms) <= labelField {
				return included, total, fmt.Errorf("line %d: %w", total, ErrMalformed)
			}
			if s[terms[labelField]] {
				if _, err := bw.WriteString(line); err != nil {
					return included, total, err
				}
				included++
			}
			if total%1000000 == 0 {
				log.Infof("included %d of %d", included, total)
			}
		}
		if rerr != nil {
			if rerr != io.EOF {
				return included, total, rerr
			}
			break
		}
	}

	log.Infof("included %d of %d", included, total)
	return included, total, nil
}
