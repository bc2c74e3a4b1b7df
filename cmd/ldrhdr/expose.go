package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/drwalton/LDRHDRImageWriter/internal/pipeline"
	"github.com/drwalton/LDRHDRImageWriter/internal/tga"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var exposeCmd = &cobra.Command{
	Use:   "expose",
	Short: "Write one TGA per exposure value from a Plain PPM",
	RunE:  runExpose,
}

func init() {
	exposeCmd.Flags().StringP("input", "i", "input.ppm", "Input Plain PPM file")
	exposeCmd.Flags().StringP("out-dir", "o", ".", "Directory for the output TGA files")
	exposeCmd.Flags().StringSlice("exposures", []string{"0.25", "0.5", "1", "2", "4"}, "Exposure values, one output each")
	exposeCmd.Flags().String("format", "rgb", "TGA pixel format (rgb, rgba)")
	exposeCmd.Flags().Bool("flip", false, "Flip rows so the origin is the bottom-left corner")
	exposeCmd.Flags().Bool("flip-horizontal", false, "Mirror every row left to right")
	exposeCmd.Flags().String("manifest", "", "Write a JSON sidecar describing the outputs")
	rootCmd.AddCommand(exposeCmd)
}

type exposeManifest struct {
	Input    string           `json:"input"`
	Width    int              `json:"width"`
	Height   int              `json:"height"`
	MaxVal   int              `json:"maxVal"`
	Format   string           `json:"format"`
	Flipped  bool             `json:"flipped"`
	Mirrored bool             `json:"mirrored"`
	Outputs  []manifestOutput `json:"outputs"`
}

type manifestOutput struct {
	Exposure float64 `json:"exposure"`
	File     string  `json:"file"`
	Bytes    int     `json:"bytes"`
}

func runExpose(cmd *cobra.Command, args []string) error {
	inputPath := viper.GetString("input")
	outDir := viper.GetString("out-dir")
	flip := viper.GetBool("flip")
	mirror := viper.GetBool("flip-horizontal")
	manifestPath := viper.GetString("manifest")

	format, err := tga.ParseFormat(viper.GetString("format"))
	if err != nil {
		return err
	}

	exposures, err := parseExposures(viper.GetStringSlice("exposures"))
	if err != nil {
		return err
	}

	inputData, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	result, err := pipeline.Run(inputData, pipeline.Options{
		Exposures:        exposures,
		Format:           format,
		FlipVertically:   flip,
		FlipHorizontally: mirror,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", inputPath, err)
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	meta := exposeManifest{
		Input:    inputPath,
		Width:    result.SrcWidth,
		Height:   result.SrcHeight,
		MaxVal:   result.MaxVal,
		Format:   format.String(),
		Flipped:  flip,
		Mirrored: mirror,
	}

	fmt.Printf("Input:  %s (%dx%d, maxVal %d)\n", inputPath, result.SrcWidth, result.SrcHeight, result.MaxVal)
	for _, out := range result.Outputs {
		outputPath := filepath.Join(outDir, out.Name)
		if err := os.WriteFile(outputPath, out.Data, 0644); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		fmt.Printf("Exposure %-6v → %s (%d bytes)\n", out.Exposure, outputPath, len(out.Data))

		meta.Outputs = append(meta.Outputs, manifestOutput{
			Exposure: out.Exposure,
			File:     outputPath,
			Bytes:    len(out.Data),
		})
	}

	if manifestPath != "" {
		if err := writeManifest(manifestPath, meta); err != nil {
			return err
		}
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	return nil
}

func writeManifest(path string, meta exposeManifest) error {
	metaJSON, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	if err := os.WriteFile(path, metaJSON, 0644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}

// parseExposures accepts values split across flag repetitions, commas or
// whitespace, as they arrive from flags, environment and config files.
func parseExposures(raw []string) ([]float64, error) {
	var exposures []float64
	for _, s := range raw {
		for _, field := range strings.FieldsFunc(s, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '[' || r == ']'
		}) {
			ev, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid exposure %q: %w", field, err)
			}
			exposures = append(exposures, ev)
		}
	}
	if len(exposures) == 0 {
		return nil, fmt.Errorf("no exposure values given")
	}
	return exposures, nil
}
