package render

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

func TestFillBinaryRGBA(t *testing.T) {
	buf := make([]byte, 8)
	fillBinaryRGBA(buf, []uint8{1, 0}, color.White, color.Black)
	require.Equal(t, []byte{255, 255, 255, 255, 0, 0, 0, 255}, buf)
}

func TestWriteGlyphsGolden(t *testing.T) {
	rows := [][]uint8{
		{0, 0, 0, 1, 0, 0, 0, 0},
		{0, 0, 1, 0, 1, 0, 0, 0},
		{0, 1, 0, 0, 0, 1, 0, 0},
		{1, 0, 1, 0, 1, 0, 1, 0},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteGlyphs(&buf, rows, '_', '*'))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "rule90", buf.Bytes())
}

func TestWriteGlyphsEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteGlyphs(&buf, nil, '_', '*'))
	require.Empty(t, buf.String())
}
