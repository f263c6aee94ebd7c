/*
Package tile converts images to the Mega Drive tile format.

The hardware addresses graphics as 8 by 8 pixel tiles, each pixel a
4-bit index into a 16 color palette. A tile serializes to 32 bytes, two
pixels per byte with the leftmost pixel in the high nibble. Palette
colors are 9-bit, 3 bits per channel, stored as 0000BBB0GGG0RRR0 words.
*/
package tile

import (
	"image"
	"image/color"
)

const (
	// Width and Height are the fixed tile dimensions.
	Width  = 8
	Height = Width

	// Pixels is the number of pixels in one tile.
	Pixels = Width * Height

	// PackedBytes is the serialized size of one tile.
	PackedBytes = Pixels >> 1

	colorsPerPalette = 16
)

// Tile is an 8 by 8 block of palette indices together with its position
// in the tile grid of the source image.
type Tile struct {
	Row, Col int
	Pixels   [Pixels]uint8
}

// Packed is the serialized form of a Tile.
type Packed [PackedBytes]byte

// Pack serializes the tile's indices in raster order, two per byte with
// the first index in the high nibble.
func (t *Tile) Pack() Packed {
	var p Packed
	for i := range p {
		// Masking off any high bits leaves a 0-15 value
		p[i] = t.Pixels[i<<1]&0x0f<<4 | t.Pixels[i<<1+1]&0x0f
	}
	return p
}

// Unpack reverses Pack, returning the 64 palette indices in raster
// order.
func (p Packed) Unpack() [Pixels]uint8 {
	var px [Pixels]uint8
	for i, b := range p {
		px[i<<1] = b >> 4
		px[i<<1+1] = b & 0x0f
	}
	return px
}

// Pad returns a copy of m grown to the next multiple of the tile size
// in each direction. Added pixels replicate the nearest edge pixel, so
// padding never introduces a color the source does not contain. The
// result always has its origin at (0, 0).
func Pad(m image.Image) *image.RGBA {
	b := m.Bounds()
	w := (b.Dx() + Width - 1) / Width * Width
	h := (b.Dy() + Height - 1) / Height * Height

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		sy := b.Min.Y + clamp(y, b.Dy()-1)
		for x := 0; x < w; x++ {
			sx := b.Min.X + clamp(x, b.Dx()-1)
			dst.Set(x, y, m.At(sx, sy))
		}
	}
	return dst
}

func clamp(v, max int) int {
	if v > max {
		return max
	}
	return v
}

// Extract partitions m into tiles in raster order, left to right then
// top to bottom, mapping every pixel to its nearest palette entry. The
// image dimensions must already be multiples of the tile size; use Pad
// first. The palette must not hold more than 16 entries.
func Extract(m image.Image, p color.Palette) []Tile {
	b := m.Bounds()
	tileX, tileY := b.Dx()/Width, b.Dy()/Height

	tiles := make([]Tile, 0, tileX*tileY)
	for ty := 0; ty < tileY; ty++ {
		for tx := 0; tx < tileX; tx++ {
			t := Tile{Row: ty, Col: tx}
			for y := 0; y < Height; y++ {
				for x := 0; x < Width; x++ {
					dx := b.Min.X + tx*Width + x
					dy := b.Min.Y + ty*Height + y
					t.Pixels[y*Width+x] = nearest(p, m.At(dx, dy))
				}
			}
			tiles = append(tiles, t)
		}
	}
	return tiles
}

// Copied from color.sqDiff
func sqDiff(x, y uint32) uint32 {
	d := x - y
	return (d * d) >> 2
}

// nearest returns the palette index minimizing squared distance in RGB
// space; alpha is ignored. Ties go to the lowest index.
func nearest(p color.Palette, c color.Color) uint8 {
	r, g, b, _ := c.RGBA()
	best, bestSum := 0, uint32(1<<32-1)
	for i, pc := range p {
		pr, pg, pb, _ := pc.RGBA()
		sum := sqDiff(r, pr) + sqDiff(g, pg) + sqDiff(b, pb)
		if sum < bestSum {
			best, bestSum = i, sum
		}
	}
	return uint8(best)
}
