package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vearutop/hdrpix"
)

var tonemapFlags struct {
	out          string
	operator     string
	assumeBT2020 bool
}

var tonemapCmd = &cobra.Command{
	Use:   "tonemap <image.hdr>",
	Short: "Tone map an HDR image to an 8-bit sRGB PNG",
	Args:  cobra.ExactArgs(1),
	RunE:  runTonemap,
}

func init() {
	tonemapCmd.Flags().StringVarP(&tonemapFlags.out, "out", "o", "", "output PNG path")
	tonemapCmd.Flags().StringVar(&tonemapFlags.operator, "operator", "pbr-neutral",
		"tone mapping operator (pbr-neutral, clip)")
	tonemapCmd.Flags().BoolVar(&tonemapFlags.assumeBT2020, "assume-bt2020", false,
		"treat input pixels as BT.2020 and convert to BT.709 first")
	rootCmd.AddCommand(tonemapCmd)
}

func tonemapOperator() hdrpix.ToneMapOperator {
	if tonemapFlags.operator == "clip" {
		return hdrpix.ToneMapClip
	}
	return hdrpix.ToneMapPbrNeutral
}

func runTonemap(_ *cobra.Command, args []string) error {
	if tonemapFlags.out == "" {
		return errors.New("tonemap requires --out")
	}
	switch tonemapFlags.operator {
	case "pbr-neutral", "clip":
	default:
		return fmt.Errorf("unknown operator %q", tonemapFlags.operator)
	}

	hdrBmp, _, err := loadImage(args[0])
	if err != nil {
		return err
	}
	if hdrBmp == nil {
		return errors.New("input has no HDR pixel data")
	}

	td := newDispatch()
	defer td.Close()

	if tonemapFlags.assumeBT2020 {
		// Decoders tag untagged input BT.709; retag before converting.
		wide := hdrpix.NewBitmapHdr(hdrBmp.Width(), hdrBmp.Height(), hdrpix.ColorspaceBT2020)
		copy(wide.Pix(), hdrBmp.Pix())
		if err := wide.SetColorspace(hdrpix.ColorspaceBT709, td); err != nil {
			return err
		}
		hdrBmp = wide
	}

	out, err := hdrBmp.Tonemap(tonemapOperator(), td)
	if err != nil {
		return err
	}
	return savePNG(tonemapFlags.out, out)
}
