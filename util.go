package hdrpix

import (
	"fmt"
	"math"
)

func srgbInvOetf(v float32) float32 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return float32(math.Pow(float64((v+0.055)/1.055), 2.4))
}

func srgbOetf(v float32) float32 {
	if v <= 0.0031308 {
		return 12.92 * v
	}
	return 1.055*float32(math.Pow(float64(v), 1.0/2.4)) - 0.055
}

// srgbDecodeLUT maps an 8-bit sRGB sample to linear light.
var srgbDecodeLUT = func() (t [256]float32) {
	for i := range t {
		t[i] = srgbInvOetf(float32(i) / 255)
	}
	return t
}()

// encodeSRGB8 maps a linear-light sample to an 8-bit sRGB-encoded one.
func encodeSRGB8(v float32) uint8 {
	return uint8(srgbOetf(clamp01(v))*255 + 0.5)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampToByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

func errExtendShrink(width, height, curW, curH int) error {
	return fmt.Errorf("extend to %dx%d below current %dx%d", width, height, curW, curH)
}

func checkDimensions(width, height int) {
	if width <= 0 || height <= 0 {
		panic("hdrpix: bitmap dimensions must be positive")
	}
}
