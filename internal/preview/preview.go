// Package preview renders a BGRA pixel buffer to PNG so the effect result
// can be eyeballed without flashing the asset onto a device.
package preview

import (
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"github.com/davesmith10/iconpolish/internal/effects"
)

// Image converts a BGRA pixel buffer into an NRGBA image.
func Image(pixels []byte, width, height int) (*image.NRGBA, error) {
	if len(pixels) != width*height*4 {
		return nil, &effects.SizeError{Got: len(pixels), Width: width, Height: height}
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < len(pixels); i += 4 {
		img.Pix[i+0] = pixels[i+2] // r
		img.Pix[i+1] = pixels[i+1] // g
		img.Pix[i+2] = pixels[i+0] // b
		img.Pix[i+3] = pixels[i+3] // a
	}

	return img, nil
}

// WritePNG encodes the buffer as PNG. A scale factor above 1 upscales with
// nearest-neighbor so individual pixels stay crisp in the preview.
func WritePNG(w io.Writer, pixels []byte, width, height, scale int) error {
	img, err := Image(pixels, width, height)
	if err != nil {
		return err
	}

	var out image.Image = img
	if scale > 1 {
		dst := image.NewNRGBA(image.Rect(0, 0, width*scale, height*scale))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
		out = dst
	}

	return png.Encode(w, out)
}
