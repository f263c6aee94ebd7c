/*
Package quantize implements median-cut color quantization targeting the
16 color palettes used by the Mega Drive hardware.

The quantizer keeps an explicit work list of buckets, each holding a
multiset of pixel colors. Starting from a single bucket containing every
pixel, the most populous splittable bucket is divided at the median of
its widest channel until there are 16 buckets or nothing is left to
split. All tie-breaks are deterministic so identical input always
produces an identical palette: the lowest-indexed bucket wins, and
channels are compared in red, green, blue order. Each final bucket
contributes the rounded arithmetic mean of its members, and the palette
is padded to exactly 16 entries with opaque black.
*/
package quantize

import (
	"image"
	"image/color"
	"sort"
)

// PaletteSize is the number of colors in a Mega Drive palette.
const PaletteSize = 16

type pixel struct {
	r, g, b uint8
}

// channel selects red, green or blue for c equal to 0, 1 or 2.
func (p pixel) channel(c int) uint8 {
	switch c {
	case 0:
		return p.r
	case 1:
		return p.g
	}
	return p.b
}

type bucket []pixel

// widest returns the channel with the greatest numeric range across the
// bucket, and that range. On equal ranges the earlier channel wins.
func (b bucket) widest() (int, int) {
	channel, span := 0, 0
	for c := 0; c < 3; c++ {
		min, max := 255, 0
		for _, p := range b {
			v := int(p.channel(c))
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
		if max-min > span {
			channel, span = c, max-min
		}
	}
	return channel, span
}

// mean returns the arithmetic mean of the bucket's members, rounded to
// the nearest integer per channel.
func (b bucket) mean() color.RGBA {
	var r, g, bl int
	for _, p := range b {
		r += int(p.r)
		g += int(p.g)
		bl += int(p.b)
	}
	n := len(b)
	return color.RGBA{
		R: uint8((r + n/2) / n),
		G: uint8((g + n/2) / n),
		B: uint8((bl + n/2) / n),
		A: 0xff,
	}
}

// MedianCutQuantizer reduces images to PaletteSize representative
// colors. The zero value is ready to use.
type MedianCutQuantizer struct{}

// Quantize returns a palette of exactly PaletteSize colors representing
// the color distribution of m. The image must contain at least one
// pixel.
func (q MedianCutQuantizer) Quantize(m image.Image) color.Palette {
	buckets := []bucket{pixels(m)}

	for len(buckets) < PaletteSize {
		i := splittable(buckets)
		if i < 0 {
			break
		}

		b := buckets[i]
		c, _ := b.widest()
		sort.SliceStable(b, func(x, y int) bool {
			return b[x].channel(c) < b[y].channel(c)
		})

		mid := len(b) / 2
		left, right := b[:mid:mid], b[mid:]

		// Replace the split bucket in place so the work list order,
		// and with it the palette order, stays reproducible.
		buckets = append(buckets, nil)
		copy(buckets[i+2:], buckets[i+1:])
		buckets[i], buckets[i+1] = left, right
	}

	p := make(color.Palette, 0, PaletteSize)
	for _, b := range buckets {
		p = append(p, b.mean())
	}
	for len(p) < PaletteSize {
		p = append(p, color.RGBA{A: 0xff})
	}
	return p
}

// splittable returns the index of the most populous bucket that can
// still be split, or -1 if none can. A bucket of a single repeated
// color has zero range in every channel and is never split.
func splittable(buckets []bucket) int {
	best, population := -1, 1
	for i, b := range buckets {
		if len(b) <= population {
			continue
		}
		if _, span := b.widest(); span == 0 {
			continue
		}
		best, population = i, len(b)
	}
	return best
}

func pixels(m image.Image) bucket {
	bounds := m.Bounds()
	b := make(bucket, 0, bounds.Dx()*bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, bl, _ := m.At(x, y).RGBA()
			b = append(b, pixel{uint8(r >> 8), uint8(g >> 8), uint8(bl >> 8)})
		}
	}
	return b
}
