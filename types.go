package hdrpix

import "errors"

// Colorspace identifies the RGB primaries a linear-light HDR bitmap is
// expressed in. SDR bitmaps are always sRGB-encoded and carry no tag.
type Colorspace int

const (
	// ColorspaceBT709 is ITU-R BT.709 primaries with D65 white.
	ColorspaceBT709 Colorspace = iota
	// ColorspaceBT2020 is ITU-R BT.2020 wide-gamut primaries with D65 white.
	ColorspaceBT2020
)

func (c Colorspace) String() string {
	switch c {
	case ColorspaceBT709:
		return "BT.709"
	case ColorspaceBT2020:
		return "BT.2020"
	default:
		return "unknown"
	}
}

// PixelFormat tags the element layout of an exported pixel array.
type PixelFormat int

const (
	// FormatRGBA8 is interleaved 8-bit sRGB-encoded RGBA.
	FormatRGBA8 PixelFormat = iota
	// FormatRGBA32F is interleaved 32-bit float linear RGBA.
	FormatRGBA32F
	// FormatRGBA16F is interleaved 16-bit half-float linear RGBA.
	FormatRGBA16F
)

func (f PixelFormat) String() string {
	switch f {
	case FormatRGBA8:
		return "rgba8"
	case FormatRGBA32F:
		return "rgba32f"
	case FormatRGBA16F:
		return "rgba16f"
	default:
		return "unknown"
	}
}

// Orientation codes follow the EXIF convention. Zero means a decoder did not
// report an orientation and is treated the same as 1 (already upright).
const (
	OrientationIdentity         = 1
	OrientationMirrorHorizontal = 2
	OrientationRotate180        = 3
	OrientationMirrorVertical   = 4
	OrientationTranspose        = 5
	OrientationRotate90         = 6
	OrientationTransverse       = 7
	OrientationRotate270        = 8
)

var (
	// ErrInvalidOrientation reports an orientation code outside 1..8.
	ErrInvalidOrientation = errors.New("invalid orientation value")
	// ErrUnsupportedColorspace reports a colorspace pair other than
	// BT.709<->BT.2020.
	ErrUnsupportedColorspace = errors.New("unsupported colorspace conversion")
	// ErrTonemapColorspace reports a tone mapping request on a bitmap that
	// has not been converted to BT.709 first.
	ErrTonemapColorspace = errors.New("tone mapping requires BT.709 input")
	// ErrInvalidDimensions reports a zero or negative target size.
	ErrInvalidDimensions = errors.New("invalid target dimensions")
)
