package depth

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	l, err := ParseLine("chr1\t12099\t12227\tDDX11L1\t3\t145\n")
	require.NoError(t, err)
	assert.Equal(t, Line{Chrom: "chr1", Start: 12099, Label: "DDX11L1", Ordinal: 3, Depth: 145}, l)
	assert.Equal(t, 12101, l.Pos())

	l, err = ParseLine("chr2\t10\t20\tX\t1\t7\textra\r\n")
	require.NoError(t, err)
	assert.Equal(t, 7, l.Depth)

	_, err = ParseLine("chr1\t12099\t12227\tDDX11L1\t3")
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = ParseLine("chr1\t12099\t12227\tDDX11L1\t3\tlots")
	assert.ErrorIs(t, err, ErrMalformed)
}

func lines(rows ...string) io.Reader {
	return strings.NewReader(strings.Join(rows, "\n") + "\n")
}

func TestReaderLockstep(t *testing.T) {
	a := lines("chr1\t100\t105\tG\t1\t10", "chr1\t100\t105\tG\t2\t12")
	b := lines("chr1\t100\t105\tG\t1\t11", "chr1\t100\t105\tG\t2\t13")
	r := NewReader(a, b)
	assert.Equal(t, 2, r.Samples())

	rec, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, Record{Chrom: "chr1", Pos: 100, Depths: []int{10, 11}}, rec)

	rec, err = r.Read()
	require.NoError(t, err)
	assert.Equal(t, Record{Chrom: "chr1", Pos: 101, Depths: []int{12, 13}}, rec)
	assert.Equal(t, 2, r.Line())

	_, err = r.Read()
	assert.Equal(t, io.EOF, err)
}

func TestReaderFirstSourceDecidesEnd(t *testing.T) {
	a := strings.NewReader("chr1\t0\t5\tG\t1\t4") // no trailing newline
	b := lines("chr1\t0\t5\tG\t1\t6", "chr1\t0\t5\tG\t2\t6")
	r := NewReader(a, b)

	rec, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, []int{4, 6}, rec.Depths)

	_, err = r.Read()
	assert.Equal(t, io.EOF, err)
}

func TestReaderErrors(t *testing.T) {
	r := NewReader(lines("chr1\t0\t5\tG\t1\t4", "chr1\t0\t5\tG\t2\t4"), lines("chr1\t0\t5\tG\t1\t6"))
	_, err := r.Read()
	require.NoError(t, err)
	_, err = r.Read()
	assert.ErrorIs(t, err, ErrTruncated)

	r = NewReader(lines("chr1\t0\t5\tG\t1\t4"), lines("chr1\t0\t5\tG\t2\t4"))
	_, err = r.Read()
	assert.ErrorIs(t, err, ErrMisaligned)

	r = NewReader(lines("chr1\t0\t5\tG\t1\t4"), lines("chr2\t0\t5\tG\t1\t4"))
	_, err = r.Read()
	assert.ErrorIs(t, err, ErrMisaligned)

	r = NewReader(lines("chr1\t0\t5"))
	_, err = r.Read()
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestOpenCompressedAndPlain(t *testing.T) {
	dir := t.TempDir()
	content := "chr1\t0\t5\tG\t1\t4\n"

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	gz := filepath.Join(dir, "a.cov.gz")
	require.NoError(t, os.WriteFile(gz, buf.Bytes(), 0644))

	plain := filepath.Join(dir, "b.cov")
	require.NoError(t, os.WriteFile(plain, []byte(content), 0644))

	var counted int
	rc, err := Open(gz, func(r io.Reader) io.Reader {
		return readerFunc(func(p []byte) (int, error) {
			n, err := r.Read(p)
			counted += n
			return n, err
		})
	})
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
	assert.Equal(t, buf.Len(), counted)
	require.NoError(t, rc.Close())

	rcs, err := OpenAll([]string{plain})
	require.NoError(t, err)
	data, err = io.ReadAll(rcs[0])
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
	require.NoError(t, CloseAll(rcs))

	_, err = OpenAll([]string{plain, filepath.Join(dir, "missing.gz")})
	assert.Error(t, err)
}

type readerFunc func(p []byte) (int, error)

func (f readerFunc) Read(p []byte) (int, error) { return f(p) }
