package main

import (
	"fmt"

	"github.com/drwalton/LDRHDRImageWriter/internal/ppm"
	"github.com/drwalton/LDRHDRImageWriter/internal/testcard"
	"github.com/drwalton/LDRHDRImageWriter/internal/tga"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Write a marker TGA and a gradient PPM for checking viewers",
	RunE:  runSample,
}

func init() {
	sampleCmd.Flags().String("tga", "output.tga", "Output marker TGA file")
	sampleCmd.Flags().String("ppm", "output.ppm", "Output gradient PPM file")
	rootCmd.AddCommand(sampleCmd)
}

func runSample(cmd *cobra.Command, args []string) error {
	tgaPath := viper.GetString("tga")
	ppmPath := viper.GetString("ppm")

	red := tga.NewColor(255, 0, 0, 255)

	marker, err := testcard.Marker(100, 100, 52, 41, red)
	if err != nil {
		return err
	}
	// Row 0 becomes the bottom of the picture.
	marker.FlipVertically()
	if err := tga.WriteFile(tgaPath, marker); err != nil {
		return err
	}
	fmt.Printf("Marker:   %s (%dx%d)\n", tgaPath, marker.Width, marker.Height)

	gradient, err := testcard.Gradient(256, 256)
	if err != nil {
		return err
	}
	if err := ppm.EncodeFile(ppmPath, gradient); err != nil {
		return err
	}
	fmt.Printf("Gradient: %s (%dx%d)\n", ppmPath, gradient.Width, gradient.Height)

	return nil
}
