package gap

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/biogo/hts/bgzf"
)

// TSVWriter writes gaps as tab-separated chromosome, start, end
// and mean depth with one decimal.
type TSVWriter struct {
	w *bufio.Writer
}

// NewTSVWriter returns a TSVWriter buffering writes to w.
func NewTSVWriter(w io.Writer) *TSVWriter {
	return &TSVWriter{w: bufio.NewWriter(w)}
}

// Write writes a gap.
func (t *TSVWriter) Write(g Gap) error {
	_, err := fmt.Fprintf(t.w, "%s\t%d\t%d\t%.1f\n", g.Chrom, g.Start, g.End, g.MeanDepth)
	return err
}

// Flush writes any buffered gaps.
func (t *TSVWriter) Flush() error {
	return t.w.Flush()
}

// FileWriter is a TSVWriter to a file.
type FileWriter struct {
	*TSVWriter
	closers []io.Closer
}

// Create creates the named file for gaps.
// Names ending in ".gz" are BGZF compressed.
func Create(name string) (*FileWriter, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}

	fw := &FileWriter{closers: []io.Closer{f}}
	var w io.Writer = f
	if strings.HasSuffix(name, ".gz") {
		bw := bgzf.NewWriter(f, 1)
		fw.closers = append(fw.closers, bw)
		w = bw
	}
	fw.TSVWriter = NewTSVWriter(w)
	return fw, nil
}

// Close flushes buffered gaps and closes the file.
func (fw *FileWriter) Close() error {
	err := fw.Flush()
	for i := len(fw.closers) - 1; i >= 0; i-- {
		if e := fw.closers[i].Close(); e != nil && err == nil {
			err = e
		}
	}
	return err
}
