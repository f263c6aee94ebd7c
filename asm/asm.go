/*
Package asm reads and writes Mega Drive graphics data as assembly
source.

The layout is the common homebrew convention: a palette_data label
followed by sixteen dc.w color words, eight per line, then a tile_data
label followed by the packed tile bytes as dc.b directives, sixteen per
line. A comment above the tile data records the tile grid dimensions so
the data can be decoded back into an image without any out-of-band
information.
*/
package asm

import (
	"image"
	"image/color"

	"github.com/gengfx/gengfx/tile"
)

// Data is the converted form of one image: a hardware palette and the
// packed tiles in raster order. The tile at grid position (row, col)
// is Tiles[row*TilesX+col].
type Data struct {
	Palette [16]uint16
	Tiles   []tile.Packed
	TilesX  int
	TilesY  int
}

// Image reconstructs a paletted image from the palette words and packed
// tiles.
func (d *Data) Image() *image.Paletted {
	p := make(color.Palette, len(d.Palette))
	for i, w := range d.Palette {
		p[i] = tile.DecodeColor(w)
	}

	m := image.NewPaletted(image.Rect(0, 0, d.TilesX*tile.Width, d.TilesY*tile.Height), p)
	for i := range d.Tiles {
		tx, ty := i%d.TilesX, i/d.TilesX
		px := d.Tiles[i].Unpack()
		for y := 0; y < tile.Height; y++ {
			for x := 0; x < tile.Width; x++ {
				m.SetColorIndex(tx*tile.Width+x, ty*tile.Height+y, px[y*tile.Width+x])
			}
		}
	}
	return m
}
