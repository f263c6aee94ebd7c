package tile

import "image/color"

// EncodeColor packs c into the 9-bit hardware color word, laid out as
// 0000BBB0GGG0RRR0. Each channel keeps the top three bits of its 8-bit
// value, so an 8-bit channel v maps to v>>5.
func EncodeColor(c color.Color) uint16 {
	r, g, b, _ := c.RGBA()

	// RGBA returns 16-bit channels; the top three bits of the 8-bit
	// value are bits 13-15 here.
	return uint16(b>>13)<<9 | uint16(g>>13)<<5 | uint16(r>>13)<<1
}

// DecodeColor expands a hardware color word back to 24-bit RGB, each
// 3-bit channel shifted up five bits to mirror the truncation done by
// EncodeColor.
func DecodeColor(w uint16) color.RGBA {
	return color.RGBA{
		R: uint8(w>>1&0x07) << 5,
		G: uint8(w>>5&0x07) << 5,
		B: uint8(w>>9&0x07) << 5,
		A: 0xff,
	}
}
