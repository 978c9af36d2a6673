package mask

import (
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAndContains(t *testing.T) {
	bed := strings.Join([]string{
		"chr1\t100\t103\tgapA",
		"chr1\t200\t201",
		"chr2\t5\t10\tx\ty",
		"chr3\t7",      // too few fields, ignored
		"chr3\t50\t50", // empty
		"",
	}, "\n")

	m, err := Build(strings.NewReader(bed), nil)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Len())

	testCases := []struct {
		chrom string
		pos   int
		want  bool
	}{
		{"chr1", 99, false},
		{"chr1", 100, true},
		{"chr1", 102, true},
		{"chr1", 103, false},
		{"chr1", 200, true},
		{"chr1", 201, false},
		{"chr2", 5, true},
		{"chr2", 9, true},
		{"chr2", 10, false},
		{"chr3", 7, false},
		{"chr3", 50, false},
		{"chrX", 100, false},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, m.Contains(tc.chrom, tc.pos), "%s:%d", tc.chrom, tc.pos)
	}
}

func TestOverlappingRegions(t *testing.T) {
	m, err := Build(strings.NewReader("chr1\t0\t10\nchr1\t5\t20\nchr1\t30\t40"), nil)
	require.NoError(t, err)
	for pos := 0; pos < 20; pos++ {
		assert.True(t, m.Contains("chr1", pos), "%d", pos)
	}
	assert.False(t, m.Contains("chr1", 25))
	assert.True(t, m.Contains("chr1", 39))
}

func TestNilMask(t *testing.T) {
	var m *Mask
	assert.False(t, m.Contains("chr1", 1))
	assert.Equal(t, 0, m.Len())
}

func TestMalformed(t *testing.T) {
	_, err := Build(strings.NewReader("chr1\tabc\t10\n"), nil)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestBuildLogsProgress(t *testing.T) {
	log, hook := test.NewNullLogger()
	_, err := Build(strings.NewReader("chr1\t0\t10\n"), log)
	require.NoError(t, err)

	var progress []string
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.InfoLevel {
			progress = append(progress, e.Message)
		}
	}
	assert.Contains(t, progress, "processed 0 lines.")
}
