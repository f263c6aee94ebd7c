package gengfx

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/ioutil"
	"os"

	"github.com/disintegration/gift"
	"golang.org/x/image/bmp"

	"github.com/gengfx/gengfx/asm"
)

// EncodeFile converts the image at src and writes the assembly source
// to dst. The output is built in memory first so a conversion error
// never leaves a partial file behind.
func (c *Converter) EncodeFile(src, dst string) error {
	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("gengfx: unreadable image %s: %w", src, err)
	}

	if c.width > 0 && m.Bounds().Dx() != c.width {
		g := gift.New(gift.Resize(c.width, 0, gift.LanczosResampling))
		resized := image.NewRGBA(g.Bounds(m.Bounds()))
		g.Draw(resized, m)
		m = resized
	}

	d, err := c.Convert(m)
	if err != nil {
		return err
	}

	var b bytes.Buffer
	if err := asm.Encode(&b, d); err != nil {
		return err
	}

	return ioutil.WriteFile(dst, b.Bytes(), 0666)
}

// DecodeFile parses the assembly source at src and writes the
// reconstructed image to dst as a BMP.
func (c *Converter) DecodeFile(src, dst string) error {
	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	d, err := asm.Decode(f)
	if err != nil {
		return err
	}

	var b bytes.Buffer
	if err := bmp.Encode(&b, d.Image()); err != nil {
		return err
	}

	c.logger.Printf("decoded %d tiles (%dx%d) from %s\n", len(d.Tiles), d.TilesX, d.TilesY, src)

	return ioutil.WriteFile(dst, b.Bytes(), 0666)
}
