package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/vearutop/hdrpix"
)

var (
	version = "0.1.0"
	workers int
)

var rootCmd = &cobra.Command{
	Use:   "hdrpixtool",
	Short: "Inspect, resize and tone map SDR/HDR images",
	Long: `hdrpixtool runs images through the hdrpix pipeline: orientation
normalization, colorspace conversion, high-quality resampling and HDR tone
mapping. Radiance HDR and PFM inputs are processed in linear float,
everything else as 8-bit sRGB.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&workers, "workers", "j", 0,
		"worker goroutines (0 = CPUs-1, 1 = serial)")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"hdrpixtool %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// newDispatch builds the worker pool per the --workers flag. A single
// worker still goes through the pool so the parallel code path is always
// exercised.
func newDispatch() *hdrpix.TaskDispatch {
	n := workers
	if n <= 0 {
		n = runtime.NumCPU() - 1
		if n < 1 {
			n = 1
		}
	}
	return hdrpix.NewTaskDispatch(n)
}
