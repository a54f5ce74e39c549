// Package effects applies cosmetic per-pixel transforms to a 4-channel BGRA
// pixel buffer: rounded-corner alpha masking and a bottom shadow gradient.
package effects

import (
	"fmt"
	"math"
)

// Defaults match the 112x112 LVGL app icons this tool was built for.
const (
	DefaultWidth  = 112
	DefaultHeight = 112
	DefaultRadius = 28.0
	DefaultShadow = 0.20
)

// antialiasBand is the width in pixels of the corner fade zone.
const antialiasBand = 1.5

// Options controls the transform. Radius should not exceed half the smaller
// dimension; that is the caller's responsibility and is not enforced.
type Options struct {
	Width  int     // image width in pixels
	Height int     // image height in pixels
	Radius float64 // corner radius in pixels
	Shadow float64 // maximum bottom darkening factor, 0.0-1.0
}

// SizeError reports a pixel buffer whose length does not match the declared
// image dimensions.
type SizeError struct {
	Got    int
	Width  int
	Height int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("pixel count %d does not match dimensions %dx%d (expected %d bytes)",
		e.Got, e.Width, e.Height, e.Width*e.Height*4)
}

// CornerDistance measures how far the pixel at (x, y) lies outside the
// rounded-rectangle silhouette: 0 fully inside, 1 fully outside, with a
// linear anti-aliasing band in between. Only the four corner zones are
// affected; edge and interior pixels always return 0.
func CornerDistance(x, y, width, height int, radius float64) float64 {
	leftX, rightX := radius, float64(width)-radius-1
	topY, bottomY := radius, float64(height)-radius-1

	corners := [4][2]float64{
		{leftX, topY},
		{rightX, topY},
		{leftX, bottomY},
		{rightX, bottomY},
	}

	fx, fy := float64(x), float64(y)
	for _, c := range corners {
		cx, cy := c[0], c[1]
		inX := (fx < radius && cx == leftX) || (fx > rightX && cx == rightX)
		inY := (fy < radius && cy == topY) || (fy > bottomY && cy == bottomY)
		if !inX || !inY {
			continue
		}

		dist := math.Hypot(fx-cx, fy-cy)
		if dist > radius {
			return 1.0
		}
		if dist > radius-antialiasBand {
			return (dist - (radius - antialiasBand)) / antialiasBand
		}
	}

	return 0.0
}

// ShadowFactor returns the color multiplier for row y. Rows above 70% of the
// image height are untouched (1.0); below that the factor falls linearly to
// 1.0-maxShadow at the last row.
func ShadowFactor(y, height int, maxShadow float64) float64 {
	start := int(float64(height) * 0.7)
	if y < start {
		return 1.0
	}

	progress := float64(y-start) / float64(height-start)
	return 1.0 - progress*maxShadow
}

// Apply runs the corner and shadow effects over a BGRA pixel buffer and
// returns a new buffer of the same length. Pixels fully outside a corner are
// cleared to transparent black; pixels in the anti-aliasing band keep their
// color and fade only their alpha; everything else gets the row's shadow
// darkening on the color channels. Channel scaling truncates, never rounds.
func Apply(pixels []byte, opts Options) ([]byte, error) {
	if len(pixels) != opts.Width*opts.Height*4 {
		return nil, &SizeError{Got: len(pixels), Width: opts.Width, Height: opts.Height}
	}

	out := make([]byte, len(pixels))
	copy(out, pixels)

	for y := 0; y < opts.Height; y++ {
		shadow := ShadowFactor(y, opts.Height, opts.Shadow)

		for x := 0; x < opts.Width; x++ {
			i := (y*opts.Width + x) * 4

			d := CornerDistance(x, y, opts.Width, opts.Height, opts.Radius)
			switch {
			case d >= 1.0:
				out[i], out[i+1], out[i+2], out[i+3] = 0, 0, 0, 0
			case d > 0:
				out[i+3] = byte(float64(out[i+3]) * (1.0 - d))
			default:
				// Shadow only where the corner mask is a no-op.
				if shadow < 1.0 {
					out[i] = byte(float64(out[i]) * shadow)
					out[i+1] = byte(float64(out[i+1]) * shadow)
					out[i+2] = byte(float64(out[i+2]) * shadow)
				}
			}
		}
	}

	return out, nil
}
