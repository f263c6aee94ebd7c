package asm

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	wordsPerLine = 8
	bytesPerLine = 16
)

// Encode writes d to w as assembly source: the 16 palette words in
// index order, then every packed tile byte in tile traversal order.
func Encode(w io.Writer, d *Data) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "; Genesis Palette Data (16 colors)")
	fmt.Fprintln(bw, "palette_data:")
	for i := 0; i < len(d.Palette); i += wordsPerLine {
		words := make([]string, wordsPerLine)
		for j := range words {
			words[j] = fmt.Sprintf("$%04X", d.Palette[i+j])
		}
		fmt.Fprintf(bw, "    dc.w %s\n", strings.Join(words, ", "))
	}

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "; Genesis Tile Data")
	fmt.Fprintf(bw, "; %d tiles (%dx%d)\n", len(d.Tiles), d.TilesX, d.TilesY)
	fmt.Fprintln(bw, "tile_data:")

	line := make([]string, 0, bytesPerLine)
	for _, t := range d.Tiles {
		for _, b := range t {
			line = append(line, fmt.Sprintf("$%02X", b))
			if len(line) == bytesPerLine {
				fmt.Fprintf(bw, "    dc.b %s\n", strings.Join(line, ", "))
				line = line[:0]
			}
		}
	}
	if len(line) > 0 {
		fmt.Fprintf(bw, "    dc.b %s\n", strings.Join(line, ", "))
	}

	return bw.Flush()
}
