// Package pipeline wires the container codec and the pixel effects into the
// full icon post-processing run.
package pipeline

import (
	"fmt"

	"github.com/davesmith10/iconpolish/internal/carray"
	"github.com/davesmith10/iconpolish/internal/effects"
)

// Options controls the full extract → transform → splice pipeline.
type Options struct {
	Width  int     // image width in pixels
	Height int     // image height in pixels
	Radius float64 // corner radius in pixels
	Shadow float64 // maximum bottom darkening factor, 0.0-1.0
}

// Result holds the output of a pipeline run.
type Result struct {
	Content    string // full source text with the rewritten array body
	Pixels     []byte // transformed pixel bytes
	Name       string // identifier of the processed array
	ByteCount  int
	PixelCount int
}

// Run executes the full pipeline over a C source text: extract the byte
// array, apply the corner and shadow effects, and splice the re-rendered
// array back into the text. Nothing is produced unless every stage succeeds.
func Run(content string, opts Options) (*Result, error) {
	// 1. Extract the pixel array
	decl, err := carray.Extract(content)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}

	// 2. Apply corner rounding and shadow
	pixels, err := effects.Apply(decl.Bytes, effects.Options{
		Width:  opts.Width,
		Height: opts.Height,
		Radius: opts.Radius,
		Shadow: opts.Shadow,
	})
	if err != nil {
		return nil, fmt.Errorf("transform: %w", err)
	}

	// 3. Serialize back into the source text
	newContent, err := carray.Splice(content, carray.Render(pixels, opts.Width))
	if err != nil {
		return nil, fmt.Errorf("serialize: %w", err)
	}

	return &Result{
		Content:    newContent,
		Pixels:     pixels,
		Name:       decl.Name,
		ByteCount:  len(decl.Bytes),
		PixelCount: len(decl.Bytes) / 4,
	}, nil
}
