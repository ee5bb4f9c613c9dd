package main

import (
	"fmt"

	"github.com/ajroetker/go-highway/hwy"
	"github.com/cespare/xxhash/v2"
	"github.com/spf13/cobra"

	"github.com/vearutop/hdrpix"
)

var infoCmd = &cobra.Command{
	Use:   "info <image>",
	Short: "Show image dimensions, pixel format and a pixel digest",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(_ *cobra.Command, args []string) error {
	hdrBmp, sdrBmp, err := loadImage(args[0])
	if err != nil {
		return err
	}

	var raw hdrpix.RawImage
	if hdrBmp != nil {
		raw = hdrBmp.Raw()
		fmt.Printf("Colorspace: %s\n", raw.Colorspace)
	} else {
		raw = sdrBmp.Raw()
	}
	fmt.Printf("Format:     %s\n", raw.Format)
	fmt.Printf("Size:       %dx%d\n", raw.Width, raw.Height)
	fmt.Printf("Mip levels: %d\n", hdrpix.MipCount(raw.Width, raw.Height))
	fmt.Printf("Digest:     %016x\n", xxhash.Sum64(raw.Data))
	fmt.Printf("SIMD:       %s\n", hwy.CurrentName())
	return nil
}
