package hdrpix

import "github.com/ajroetker/go-highway/hwy"

// Bulk numeric conversion between the two HDR sample types. The hwy
// converters implement IEEE 754 round-to-nearest-even with full denormal,
// infinity and NaN handling, so a plain loop already matches what a packed
// hardware conversion would produce.

func halfToFloat(src []hwy.Float16, dst []float32) {
	for i, v := range src {
		dst[i] = hwy.Float16ToFloat32(v)
	}
}

func floatToHalf(src []float32, dst []hwy.Float16) {
	for i, v := range src {
		dst[i] = hwy.Float32ToFloat16(v)
	}
}
