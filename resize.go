package hdrpix

import (
	"math"
	"sync"

	"github.com/ajroetker/go-highway/hwy"
)

// The resampler is separable: a horizontal pass into a float32 temp plane,
// then a vertical pass into the output. Both passes use precomputed,
// normalized per-axis weights (Mitchell-Netravali kernel, taps widened for
// downscale). Filtering happens on premultiplied linear-light RGBA so that
// transparent pixels cannot contaminate color channels; callers premultiply
// on the way in and unpremultiply on the way out.
//
// With a dispatcher each pass is partitioned into NumWorkers()+1 contiguous
// row splits joined before the next pass starts. Every output row is
// computed from the same inputs with the same float32 operations in either
// mode, so parallel and serial execution produce bit-identical planes.

type resampleWeights struct {
	coeffs       []float32
	start        []int
	filterLength int
}

type weightsKey struct {
	src, dst int
}

var weightsCache sync.Map

const mitchellTaps = 4

func mitchellNetravaliKernel(in float64) float64 {
	in = math.Abs(in)
	if in <= 1 {
		return (7.0*in*in*in - 12.0*in*in + 5.33333333333) * 0.16666666666
	}
	if in <= 2 {
		return (-2.33333333333*in*in*in + 12.0*in*in - 20.0*in + 10.6666666667) * 0.16666666666
	}
	return 0
}

func getWeights(src, dst int) resampleWeights {
	key := weightsKey{src: src, dst: dst}
	if cached, ok := weightsCache.Load(key); ok {
		return cached.(resampleWeights)
	}
	scale := float64(src) / float64(dst)
	filterLength := mitchellTaps * int(math.Max(math.Ceil(scale), 1))
	filterFactor := math.Min(1.0/scale, 1.0)
	coeffs := make([]float32, dst*filterLength)
	start := make([]int, dst)
	for d := 0; d < dst; d++ {
		center := scale*(float64(d)+0.5) - 0.5
		start[d] = int(center) - filterLength/2 + 1
		center -= float64(start[d])
		base := d * filterLength
		var sum float64
		for i := 0; i < filterLength; i++ {
			w := mitchellNetravaliKernel((center - float64(i)) * filterFactor)
			coeffs[base+i] = float32(w)
			sum += w
		}
		if sum != 0 {
			inv := float32(1.0 / sum)
			for i := 0; i < filterLength; i++ {
				coeffs[base+i] *= inv
			}
		}
	}
	weights := resampleWeights{coeffs: coeffs, start: start, filterLength: filterLength}
	weightsCache.Store(key, weights)
	return weights
}

// resampleRGBA filters a premultiplied float32 RGBA plane to the target
// size.
func resampleRGBA(src []float32, srcW, srcH, dstW, dstH int, td Dispatcher) []float32 {
	wx := getWeights(srcW, dstW)
	wy := getWeights(srcH, dstH)

	temp := make([]float32, dstW*srcH*4)
	splitRows(srcH, td, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			row := src[y*srcW*4:]
			outRow := temp[y*dstW*4:]
			for x := 0; x < dstW; x++ {
				s := wx.start[x]
				base := x * wx.filterLength
				var r, g, b, a float32
				for i := 0; i < wx.filterLength; i++ {
					xi := s + i
					if xi < 0 {
						xi = 0
					} else if xi >= srcW {
						xi = srcW - 1
					}
					off := xi * 4
					w := wx.coeffs[base+i]
					r += row[off+0] * w
					g += row[off+1] * w
					b += row[off+2] * w
					a += row[off+3] * w
				}
				off := x * 4
				outRow[off+0] = r
				outRow[off+1] = g
				outRow[off+2] = b
				outRow[off+3] = a
			}
		}
	})

	out := make([]float32, dstW*dstH*4)
	splitRows(dstH, td, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			s := wy.start[y]
			base := y * wy.filterLength
			row := out[y*dstW*4:]
			for x := 0; x < dstW; x++ {
				var r, g, b, a float32
				for i := 0; i < wy.filterLength; i++ {
					yi := s + i
					if yi < 0 {
						yi = 0
					} else if yi >= srcH {
						yi = srcH - 1
					}
					off := (yi*dstW + x) * 4
					w := wy.coeffs[base+i]
					r += temp[off+0] * w
					g += temp[off+1] * w
					b += temp[off+2] * w
					a += temp[off+3] * w
				}
				off := x * 4
				row[off+0] = r
				row[off+1] = g
				row[off+2] = b
				row[off+3] = a
			}
		}
	})

	return out
}

// resampleLinear resizes a non-premultiplied linear-light float32 plane.
func resampleLinear(src []float32, srcW, srcH, dstW, dstH int, td Dispatcher) []float32 {
	pm := make([]float32, len(src))
	for i := 0; i < len(src); i += 4 {
		a := src[i+3]
		pm[i+0] = src[i+0] * a
		pm[i+1] = src[i+1] * a
		pm[i+2] = src[i+2] * a
		pm[i+3] = a
	}
	out := resampleRGBA(pm, srcW, srcH, dstW, dstH, td)
	unpremultiply(out)
	return out
}

// resampleSRGB resizes an 8-bit sRGB-encoded plane, filtering in linear
// light.
func resampleSRGB(src []uint8, srcW, srcH, dstW, dstH int, td Dispatcher) []uint8 {
	lin := make([]float32, len(src))
	for i := 0; i < len(src); i += 4 {
		a := float32(src[i+3]) * (1.0 / 255)
		lin[i+0] = srgbDecodeLUT[src[i+0]] * a
		lin[i+1] = srgbDecodeLUT[src[i+1]] * a
		lin[i+2] = srgbDecodeLUT[src[i+2]] * a
		lin[i+3] = a
	}
	out := resampleRGBA(lin, srcW, srcH, dstW, dstH, td)
	unpremultiply(out)
	pix := make([]uint8, dstW*dstH*4)
	for i := 0; i < len(out); i += 4 {
		pix[i+0] = encodeSRGB8(out[i+0])
		pix[i+1] = encodeSRGB8(out[i+1])
		pix[i+2] = encodeSRGB8(out[i+2])
		pix[i+3] = clampToByte(out[i+3] * 255)
	}
	return pix
}

// resampleHalf resizes a non-premultiplied half-float plane through float32.
func resampleHalf(src []hwy.Float16, srcW, srcH, dstW, dstH int, td Dispatcher) []hwy.Float16 {
	lin := make([]float32, len(src))
	halfToFloat(src, lin)
	for i := 0; i < len(lin); i += 4 {
		a := lin[i+3]
		lin[i+0] *= a
		lin[i+1] *= a
		lin[i+2] *= a
	}
	out := resampleRGBA(lin, srcW, srcH, dstW, dstH, td)
	unpremultiply(out)
	pix := make([]hwy.Float16, dstW*dstH*4)
	floatToHalf(out, pix)
	return pix
}

func unpremultiply(pix []float32) {
	for i := 0; i < len(pix); i += 4 {
		if a := pix[i+3]; a != 0 {
			inv := 1 / a
			pix[i+0] *= inv
			pix[i+1] *= inv
			pix[i+2] *= inv
		} else {
			pix[i+0] = 0
			pix[i+1] = 0
			pix[i+2] = 0
		}
	}
}
