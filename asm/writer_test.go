package asm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gengfx/gengfx/tile"
)

func testData() *Data {
	d := &Data{
		TilesX: 1,
		TilesY: 1,
	}
	d.Palette[0] = 0x0e00
	d.Palette[1] = 0x00e0
	d.Palette[2] = 0x000e

	var p tile.Packed
	for i := range p {
		p[i] = 0x01
	}
	d.Tiles = []tile.Packed{p}

	return d
}

func TestEncode(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, Encode(&b, testData()))

	want := `; Genesis Palette Data (16 colors)
palette_data:
    dc.w $0E00, $00E0, $000E, $0000, $0000, $0000, $0000, $0000
    dc.w $0000, $0000, $0000, $0000, $0000, $0000, $0000, $0000

; Genesis Tile Data
; 1 tiles (1x1)
tile_data:
    dc.b $01, $01, $01, $01, $01, $01, $01, $01, $01, $01, $01, $01, $01, $01, $01, $01
    dc.b $01, $01, $01, $01, $01, $01, $01, $01, $01, $01, $01, $01, $01, $01, $01, $01
`

	assert.Equal(t, want, b.String())
}

func TestEncodeOrder(t *testing.T) {
	d := testData()

	var second tile.Packed
	for i := range second {
		second[i] = byte(i)
	}
	d.Tiles = append(d.Tiles, second)
	d.TilesX = 2

	var b bytes.Buffer
	require.NoError(t, Encode(&b, d))

	// Tile bytes must appear in traversal order with no reordering.
	s := b.String()
	assert.Less(t, strings.Index(s, "$01, $01"), strings.Index(s, "$00, $01, $02"))
}
