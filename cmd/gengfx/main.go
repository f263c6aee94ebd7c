package main

import (
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gengfx/gengfx"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newConverter(c *cli.Context) *gengfx.Converter {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return gengfx.New(logger, c.Int("width"))
}

func outputFilename(input, ext string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ext
}

func main() {
	app := cli.NewApp()

	app.Name = "gengfx"
	app.Usage = "Mega Drive graphics converter"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "encode",
			Usage:       "Convert an image to palette and tile data",
			Description: "Quantizes the image to 16 colors and emits assembly source.",
			ArgsUsage:   "FILE [OUTPUT]",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "width",
					Usage: "resize the image to this width first",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				input := c.Args().First()
				output := c.Args().Get(1)
				if output == "" {
					output = outputFilename(input, ".asm")
				}

				if err := newConverter(c).EncodeFile(input, output); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "decode",
			Usage:       "Convert palette and tile data back to an image",
			Description: "Parses assembly source produced by encode and writes a BMP.",
			ArgsUsage:   "FILE [OUTPUT]",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				input := c.Args().First()
				output := c.Args().Get(1)
				if output == "" {
					output = outputFilename(input, ".bmp")
				}

				if err := newConverter(c).DecodeFile(input, output); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "scan",
			Usage:       "Convert every image under a directory",
			Description: "Walks the directory tree and writes an .asm file next to each image.",
			ArgsUsage:   "DIRECTORY",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				if err := newConverter(c).Scan(c.Args().First()); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
