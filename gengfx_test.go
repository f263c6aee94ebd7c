package gengfx

import (
	"image"
	"image/color"
	"image/png"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gengfx/gengfx/tile"
)

func testConverter() *Converter {
	return New(log.New(ioutil.Discard, "", 0), 0)
}

func solid(w, h int, c color.RGBA) *image.RGBA {
	m := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.SetRGBA(x, y, c)
		}
	}
	return m
}

func TestConvertSolidColor(t *testing.T) {
	c := color.RGBA{0x40, 0x80, 0xc0, 0xff}

	d, err := testConverter().Convert(solid(8, 8, c))
	require.NoError(t, err)

	assert.Equal(t, 1, d.TilesX)
	assert.Equal(t, 1, d.TilesY)
	require.Len(t, d.Tiles, 1)

	// The sole color lands at palette index 0, encoded from its top
	// three bits per channel.
	assert.Equal(t, tile.EncodeColor(c), d.Palette[0])
	for _, b := range d.Tiles[0] {
		assert.Equal(t, byte(0x00), b)
	}
}

func TestConvertTwoTiles(t *testing.T) {
	m := solid(16, 8, color.RGBA{0xff, 0x00, 0x00, 0xff})
	for y := 0; y < 8; y++ {
		for x := 8; x < 16; x++ {
			m.SetRGBA(x, y, color.RGBA{0x00, 0x00, 0xff, 0xff})
		}
	}

	d, err := testConverter().Convert(m)
	require.NoError(t, err)

	assert.Equal(t, 2, d.TilesX)
	assert.Equal(t, 1, d.TilesY)
	require.Len(t, d.Tiles, 2)

	// Left tile then right tile, each uniform but with different
	// palette indices.
	left, right := d.Tiles[0].Unpack(), d.Tiles[1].Unpack()
	for i := 1; i < tile.Pixels; i++ {
		assert.Equal(t, left[0], left[i])
		assert.Equal(t, right[0], right[i])
	}
	assert.NotEqual(t, left[0], right[0])
}

func TestConvertPadsToTileGrid(t *testing.T) {
	d, err := testConverter().Convert(solid(1, 1, color.RGBA{0xff, 0xff, 0xff, 0xff}))
	require.NoError(t, err)

	assert.Equal(t, 1, d.TilesX)
	assert.Equal(t, 1, d.TilesY)
	require.Len(t, d.Tiles, 1)
}

func TestConvertEmptyImage(t *testing.T) {
	_, err := testConverter().Convert(image.NewRGBA(image.Rect(0, 0, 0, 0)))
	assert.Equal(t, ErrEmptyImage, err)
}

func TestEncodeDecodeFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "gengfx")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	src := filepath.Join(dir, "in.png")
	f, err := os.Create(src)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, solid(16, 16, color.RGBA{0x20, 0xff, 0x20, 0xff})))
	require.NoError(t, f.Close())

	out := filepath.Join(dir, "out.asm")
	c := testConverter()
	require.NoError(t, c.EncodeFile(src, out))

	bmpOut := filepath.Join(dir, "out.bmp")
	require.NoError(t, c.DecodeFile(out, bmpOut))

	info, err := os.Stat(bmpOut)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestEncodeFileUnreadable(t *testing.T) {
	dir, err := ioutil.TempDir("", "gengfx")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	src := filepath.Join(dir, "bad.png")
	require.NoError(t, ioutil.WriteFile(src, []byte("not an image"), 0666))

	dst := filepath.Join(dir, "bad.asm")
	assert.Error(t, testConverter().EncodeFile(src, dst))

	// A failed conversion must not leave a partial output file.
	_, err = os.Stat(dst)
	assert.True(t, os.IsNotExist(err))
}

func TestScan(t *testing.T) {
	dir, err := ioutil.TempDir("", "gengfx")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	for _, name := range []string{"a.png", "b.png"} {
		f, err := os.Create(filepath.Join(dir, name))
		require.NoError(t, err)
		require.NoError(t, png.Encode(f, solid(8, 8, color.RGBA{0x80, 0x40, 0x20, 0xff})))
		require.NoError(t, f.Close())
	}

	require.NoError(t, testConverter().Scan(dir))

	for _, name := range []string{"a.asm", "b.asm"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err)
	}
}
