/*
Package gengfx converts bitmap images into Mega Drive graphics data: a
16 color hardware palette and 8 by 8 tiles of packed 4-bit palette
indices, emitted as assembly source.
*/
package gengfx

import (
	"errors"
	"image"
	"log"

	"github.com/gengfx/gengfx/asm"
	"github.com/gengfx/gengfx/quantize"
	"github.com/gengfx/gengfx/tile"
)

// ErrEmptyImage is returned for a source image with zero width or
// height.
var ErrEmptyImage = errors.New("gengfx: image has no pixels")

type Converter struct {
	logger *log.Logger
	width  int
}

// New returns a Converter logging progress to logger. A non-zero width
// resizes each source image to that width, preserving aspect ratio,
// before conversion.
func New(logger *log.Logger, width int) *Converter {
	return &Converter{
		logger: logger,
		width:  width,
	}
}

// Convert runs the conversion pipeline on m: quantize down to a 16
// color palette, pad the image to the tile grid, map every pixel to its
// nearest palette entry and pack the tiles. Each stage consumes its
// input fully before the next begins; nothing is shared or mutated
// across stages.
func (c *Converter) Convert(m image.Image) (*asm.Data, error) {
	b := m.Bounds()
	if b.Dx() < 1 || b.Dy() < 1 {
		return nil, ErrEmptyImage
	}

	var q quantize.MedianCutQuantizer
	p := q.Quantize(m)

	padded := tile.Pad(m)
	tiles := tile.Extract(padded, p)

	d := &asm.Data{
		Tiles:  make([]tile.Packed, 0, len(tiles)),
		TilesX: padded.Bounds().Dx() / tile.Width,
		TilesY: padded.Bounds().Dy() / tile.Height,
	}
	for i, col := range p {
		d.Palette[i] = tile.EncodeColor(col)
	}
	for i := range tiles {
		d.Tiles = append(d.Tiles, tiles[i].Pack())
	}

	c.logger.Printf("converted %dx%d image to %d tiles (%dx%d)\n", b.Dx(), b.Dy(), len(d.Tiles), d.TilesX, d.TilesY)

	return d, nil
}
