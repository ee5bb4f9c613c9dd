package hdrpix

import "fmt"

// ToneMapOperator selects how HDR values above 1.0 are compressed into the
// displayable range.
type ToneMapOperator int

const (
	// ToneMapPbrNeutral is the Khronos PBR Neutral operator. It keeps
	// colors below the compression knee untouched and desaturates
	// highlights toward white instead of skewing hue.
	ToneMapPbrNeutral ToneMapOperator = iota
	// ToneMapClip clamps each channel to [0, 1] independently.
	ToneMapClip
)

func (op ToneMapOperator) String() string {
	switch op {
	case ToneMapPbrNeutral:
		return "pbr-neutral"
	case ToneMapClip:
		return "clip"
	default:
		return fmt.Sprintf("ToneMapOperator(%d)", int(op))
	}
}

// Khronos PBR Neutral constants, https://github.com/KhronosGroup/ToneMapping.
const (
	pbrStartCompression = 0.8 - 0.04
	pbrDesaturation     = 0.15
)

// pbrNeutral compresses one linear RGB triple. Alpha is handled by the
// caller.
func pbrNeutral(r, g, b float32) (float32, float32, float32) {
	x := r
	if g < x {
		x = g
	}
	if b < x {
		x = b
	}

	var offset float32
	if x < 0.08 {
		offset = x - 6.25*x*x
	} else {
		offset = 0.04
	}
	r -= offset
	g -= offset
	b -= offset

	peak := r
	if g > peak {
		peak = g
	}
	if b > peak {
		peak = b
	}
	if peak < pbrStartCompression {
		return r, g, b
	}

	const d = 1 - pbrStartCompression
	newPeak := 1 - d*d/(peak+d-pbrStartCompression)
	scale := newPeak / peak
	r *= scale
	g *= scale
	b *= scale

	f := 1 / (pbrDesaturation*(peak-newPeak) + 1)
	r = f*r + (1-f)*newPeak
	g = f*g + (1-f)*newPeak
	b = f*b + (1-f)*newPeak
	return r, g, b
}

// tonemapChunk compresses src linear RGBA samples through op and writes
// sRGB-encoded bytes to dst. Both slices cover the same pixel range.
func tonemapChunk(op ToneMapOperator, dst []uint8, src []float32) {
	for i := 0; i+3 < len(src); i += 4 {
		r, g, b, a := src[i], src[i+1], src[i+2], src[i+3]
		if op == ToneMapPbrNeutral {
			r, g, b = pbrNeutral(r, g, b)
		}
		dst[i] = encodeSRGB8(r)
		dst[i+1] = encodeSRGB8(g)
		dst[i+2] = encodeSRGB8(b)
		dst[i+3] = uint8(clamp01(a)*255 + 0.5)
	}
}
