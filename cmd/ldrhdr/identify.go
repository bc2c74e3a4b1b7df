package main

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/drwalton/LDRHDRImageWriter/internal/ppm"
	"github.com/drwalton/LDRHDRImageWriter/internal/tga"
	_ "github.com/jbuchbinder/gopnm"
	"github.com/spf13/cobra"
)

var identifyCmd = &cobra.Command{
	Use:   "identify [file]",
	Short: "Inspect a TGA or Netpbm image",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentify,
}

func init() {
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	fmt.Printf("File:       %s\n", path)
	fmt.Printf("File size:  %d bytes\n", len(data))

	switch {
	case strings.EqualFold(filepath.Ext(path), ".tga"):
		info, err := tga.GetInfo(data)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
		fmt.Printf("Format:     TGA (uncompressed true-color)\n")
		fmt.Printf("Dimensions: %d x %d\n", info.Width, info.Height)
		fmt.Printf("Depth:      %d bpp (%d alpha bits)\n", info.BitsPerPixel, info.AlphaBits)
		fmt.Printf("Origin:     %s\n", info.Origin)
		fmt.Printf("Pixel data: %d bytes\n", info.PixelBytes)

	case bytes.HasPrefix(data, []byte(ppm.Magic)):
		r, err := ppm.Decode(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
		fmt.Printf("Format:     Plain PPM (%s)\n", ppm.Magic)
		fmt.Printf("Dimensions: %d x %d\n", r.Width, r.Height)
		fmt.Printf("Max value:  %d\n", r.MaxVal)

	default:
		// Other Netpbm variants (P1, P2, P4-P6) are read by gopnm.
		cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
		fmt.Printf("Format:     %s\n", format)
		fmt.Printf("Dimensions: %d x %d\n", cfg.Width, cfg.Height)
	}

	return nil
}
