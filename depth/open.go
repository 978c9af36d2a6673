package depth

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

var gzipMagic = []byte{0x1f, 0x8b}

type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (rc *readCloser) Close() (err error) {
	for i := len(rc.closers) - 1; i >= 0; i-- {
		if e := rc.closers[i].Close(); e != nil && err == nil {
			err = e
		}
	}
	return
}

// Decompress returns the decompressed content of r when it is gzip
// compressed (BGZF included), and r unchanged otherwise.
func Decompress(r io.Reader) (io.ReadCloser, error) {
	br := bufio.NewReader(r)
	magic, _ := br.Peek(len(gzipMagic))
	if !bytes.Equal(magic, gzipMagic) {
		return io.NopCloser(br), nil
	}
	return gzip.NewReader(br)
}

// Open opens the named file for reading and decompresses it if needed.
// When wrap is not nil, it is applied to the raw file before decompression,
// e.g. to count the bytes read.
func Open(name string, wrap func(io.Reader) io.Reader) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	var raw io.Reader = f
	if wrap != nil {
		raw = wrap(f)
	}
	dr, err := Decompress(raw)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return &readCloser{Reader: dr, closers: []io.Closer{f, dr}}, nil
}

// OpenAll opens every named file. If any file cannot be opened, the ones
// already opened are closed.
func OpenAll(names []string) (rcs []io.ReadCloser, err error) {
	for _, name := range names {
		rc, err := Open(name, nil)
		if err != nil {
			CloseAll(rcs)
			return nil, err
		}
		rcs = append(rcs, rc)
	}
	return rcs, nil
}

// CloseAll closes every source and returns the first error.
func CloseAll(rcs []io.ReadCloser) (err error) {
	for _, rc := range rcs {
		if e := rc.Close(); e != nil && err == nil {
			err = e
		}
	}
	return
}
