// Package imagewriter assembles a row-major RGB8 pixel buffer into a
// PNG file (spec.md §4.8, the "external encoder" collaborator).
package imagewriter

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/nfractal/newtongen/newton"
)

// Write encodes a width×height row-major (R,G,B) byte buffer as a PNG
// and writes it to w. len(pixels) must equal width*height*3.
func Write(w io.Writer, pixels []byte, width, height int) error {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			k := (i*width + j) * 3
			img.SetRGBA(j, i, color.RGBA{R: pixels[k], G: pixels[k+1], B: pixels[k+2], A: 0xff})
		}
	}
	if err := png.Encode(w, img); err != nil {
		return newton.Wrap(newton.Io, err)
	}
	return nil
}

// WriteFile encodes a row-major RGB8 pixel buffer as a PNG at path,
// creating or truncating the file.
func WriteFile(path string, pixels []byte, width, height int) error {
	f, err := os.Create(path)
	if err != nil {
		return newton.Wrap(newton.Io, err)
	}

	if err := Write(f, pixels, width, height); err != nil {
		f.Close()
		return err
	}
	return newton.Wrap(newton.Io, f.Close())
}
