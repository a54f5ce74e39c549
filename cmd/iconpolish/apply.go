package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/davesmith10/iconpolish/internal/effects"
	"github.com/davesmith10/iconpolish/internal/pipeline"
	"github.com/davesmith10/iconpolish/internal/preview"
)

func init() {
	rootCmd.Flags().StringP("output", "o", "", "Output file path (default: overwrite input)")
	rootCmd.Flags().Int("width", effects.DefaultWidth, "Image width in pixels")
	rootCmd.Flags().Int("height", effects.DefaultHeight, "Image height in pixels")
	rootCmd.Flags().Float64("radius", effects.DefaultRadius, "Corner radius in pixels")
	rootCmd.Flags().Float64("shadow", effects.DefaultShadow, "Maximum shadow darkening factor (0.0-1.0)")
	rootCmd.Flags().Bool("backup", false, "Keep a .bak copy when overwriting the input")
	rootCmd.Flags().String("preview", "", "Also write a PNG preview of the result")
	rootCmd.Flags().Int("preview-scale", 1, "Integer upscale factor for the preview")
}

func runApply(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	outputPath, _ := cmd.Flags().GetString("output")
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	radius, _ := cmd.Flags().GetFloat64("radius")
	shadow, _ := cmd.Flags().GetFloat64("shadow")
	backup, _ := cmd.Flags().GetBool("backup")
	previewPath, _ := cmd.Flags().GetString("preview")
	previewScale, _ := cmd.Flags().GetInt("preview-scale")

	if outputPath == "" {
		outputPath = inputPath
	}

	original, err := os.ReadFile(inputPath)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("input file '%s' not found", inputPath)
	}
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	fmt.Printf("Processing %s...\n", inputPath)

	result, err := pipeline.Run(string(original), pipeline.Options{
		Width:  width,
		Height: height,
		Radius: radius,
		Shadow: shadow,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Found array: %s\n", result.Name)
	fmt.Printf("Read %d bytes (%d pixels)\n", result.ByteCount, result.PixelCount)
	fmt.Println("Applied rounded corners and shadow effect.")

	// All computation has succeeded; only now touch the filesystem.
	if backup && outputPath == inputPath {
		bakPath := inputPath + ".bak"
		if err := os.WriteFile(bakPath, original, 0644); err != nil {
			return fmt.Errorf("writing backup: %w", err)
		}
		fmt.Printf("Backup created: %s\n", bakPath)
	}

	if err := os.WriteFile(outputPath, []byte(result.Content), 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if previewPath != "" {
		if err := writePreview(previewPath, result.Pixels, width, height, previewScale); err != nil {
			return err
		}
		fmt.Printf("Preview written: %s\n", previewPath)
	}

	fmt.Printf("Successfully wrote to %s\n", outputPath)
	return nil
}

func writePreview(path string, pixels []byte, width, height, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating preview: %w", err)
	}

	if err := preview.WritePNG(f, pixels, width, height, scale); err != nil {
		f.Close()
		return fmt.Errorf("writing preview: %w", err)
	}
	return f.Close()
}
