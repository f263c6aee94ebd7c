package asm

import (
	"bufio"
	"errors"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/gengfx/gengfx/tile"
)

var (
	errShortPalette = errors.New("asm: palette holds fewer than 16 words")
	errNoTiles      = errors.New("asm: no tile data")
	errShortTile    = errors.New("asm: tile data is not a whole number of tiles")
	errGridMismatch = errors.New("asm: tile grid does not match tile count")
)

var (
	valueRE = regexp.MustCompile(`\$([0-9A-Fa-f]+)`)
	gridRE  = regexp.MustCompile(`^; ([0-9]+) tiles \(([0-9]+)x([0-9]+)\)$`)
)

// Decode parses assembly source previously produced by Encode. Only the
// two data labels, their dc.w/dc.b values and the tile grid comment
// matter; everything else is ignored. Without a grid comment the tiles
// decode as a single row.
func Decode(r io.Reader) (*Data, error) {
	d := &Data{}

	var (
		section string
		words   int
		bytes   []byte
	)

	s := bufio.NewScanner(r)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())

		switch {
		case strings.HasPrefix(line, "palette_data"):
			section = "palette"
			continue
		case strings.HasPrefix(line, "tile_data"):
			section = "tile"
			continue
		}

		if m := gridRE.FindStringSubmatch(line); m != nil {
			// The count capture is redundant with the grid, ignore it
			d.TilesX, _ = strconv.Atoi(m[2])
			d.TilesY, _ = strconv.Atoi(m[3])
			continue
		}

		if section == "" || strings.HasPrefix(line, ";") {
			continue
		}

		for _, m := range valueRE.FindAllStringSubmatch(line, -1) {
			v, err := strconv.ParseUint(m[1], 16, 16)
			if err != nil {
				return nil, err
			}
			switch section {
			case "palette":
				if words < len(d.Palette) {
					d.Palette[words] = uint16(v)
					words++
				}
			case "tile":
				bytes = append(bytes, byte(v))
			}
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	if words < len(d.Palette) {
		return nil, errShortPalette
	}
	if len(bytes) == 0 {
		return nil, errNoTiles
	}
	if len(bytes)%tile.PackedBytes != 0 {
		return nil, errShortTile
	}

	for i := 0; i < len(bytes); i += tile.PackedBytes {
		var p tile.Packed
		copy(p[:], bytes[i:i+tile.PackedBytes])
		d.Tiles = append(d.Tiles, p)
	}

	if d.TilesX == 0 && d.TilesY == 0 {
		d.TilesX, d.TilesY = len(d.Tiles), 1
	}
	if d.TilesX*d.TilesY != len(d.Tiles) {
		return nil, errGridMismatch
	}

	return d, nil
}
