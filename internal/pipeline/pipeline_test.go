package pipeline

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/davesmith10/iconpolish/internal/carray"
	"github.com/davesmith10/iconpolish/internal/effects"
)

const fixture = `#include "lvgl.h"

const uint8_t app_icon_map[] = {
  0xc8, 0xc8, 0xc8, 0xff, 0xc8, 0xc8, 0xc8, 0xff, 0xc8, 0xc8, 0xc8, 0xff, 0xc8, 0xc8, 0xc8, 0xff,
};

const lv_image_dsc_t app_icon = {
  .header.w = 1,
  .header.h = 4,
  .data = app_icon_map,
};
`

func TestRunIdentity(t *testing.T) {
	// Radius 0 and shadow 0: bytes survive unchanged, only the array
	// body is re-wrapped at the requested width.
	result, err := Run(fixture, Options{Width: 2, Height: 2, Radius: 0, Shadow: 0})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.Name != "app_icon_map" {
		t.Errorf("name = %q, want app_icon_map", result.Name)
	}
	if result.ByteCount != 16 || result.PixelCount != 4 {
		t.Errorf("counts = %d bytes / %d pixels, want 16 / 4", result.ByteCount, result.PixelCount)
	}
	if !bytes.Equal(result.Pixels, bytes.Repeat([]byte{0xc8, 0xc8, 0xc8, 0xff}, 4)) {
		t.Errorf("pixels changed: % x", result.Pixels)
	}
	if !strings.Contains(result.Content, "  0xc8, 0xc8, 0xc8, 0xff, 0xc8, 0xc8, 0xc8, 0xff,\n") {
		t.Errorf("body not re-wrapped at 2 pixels per line:\n%s", result.Content)
	}
	if !strings.Contains(result.Content, ".data = app_icon_map,") {
		t.Error("descriptor struct damaged")
	}
}

func TestRunAppliesShadow(t *testing.T) {
	// 1x4 column, shadow 0.5: rows 0-2 stay, the last row darkens to
	// floor(200 * 0.75) = 150 = 0x96.
	result, err := Run(fixture, Options{Width: 1, Height: 4, Radius: 0, Shadow: 0.5})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []byte{
		0xc8, 0xc8, 0xc8, 0xff,
		0xc8, 0xc8, 0xc8, 0xff,
		0xc8, 0xc8, 0xc8, 0xff,
		0x96, 0x96, 0x96, 0xff,
	}
	if !bytes.Equal(result.Pixels, want) {
		t.Errorf("pixels = % x, want % x", result.Pixels, want)
	}
	if !strings.Contains(result.Content, "  0x96, 0x96, 0x96, 0xff,") {
		t.Errorf("darkened row missing from output:\n%s", result.Content)
	}
}

func TestRunStableAcrossRepeatedRuns(t *testing.T) {
	opts := Options{Width: 2, Height: 2, Radius: 1, Shadow: 0.2}

	first, err := Run(fixture, opts)
	if err != nil {
		t.Fatalf("first Run: %v", err)
	}
	second, err := Run(first.Content, opts)
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}
	if second.Content != first.Content {
		t.Errorf("second run changed the file\nfirst:\n%s\nsecond:\n%s", first.Content, second.Content)
	}
}

func TestRunNoArray(t *testing.T) {
	_, err := Run("static int x = 1;\n", Options{Width: 1, Height: 1})
	if !errors.Is(err, carray.ErrNoArray) {
		t.Fatalf("expected ErrNoArray, got %v", err)
	}
}

func TestRunDimensionMismatch(t *testing.T) {
	_, err := Run(fixture, Options{Width: 3, Height: 3, Radius: 1, Shadow: 0.2})
	var sizeErr *effects.SizeError
	if !errors.As(err, &sizeErr) {
		t.Fatalf("expected *effects.SizeError, got %v", err)
	}
	if sizeErr.Got != 16 || sizeErr.Width != 3 || sizeErr.Height != 3 {
		t.Errorf("unexpected error fields: %+v", sizeErr)
	}
}
