package hdrpix

import (
	"github.com/ajroetker/go-highway/hwy"
)

// BitmapHdrHalf is a half-float RGBA pixel buffer, the compact counterpart
// of BitmapHdr for texture upload paths. Same layout rules: row-major, no
// padding, exactly width*height*4 samples.
type BitmapHdrHalf struct {
	width, height int
	pix           []hwy.Float16
	colorspace    Colorspace
	orientation   int
}

// NewBitmapHdrHalf allocates a zeroed half-float bitmap. Non-positive
// dimensions panic.
func NewBitmapHdrHalf(width, height int, colorspace Colorspace) *BitmapHdrHalf {
	checkDimensions(width, height)
	return &BitmapHdrHalf{
		width:      width,
		height:     height,
		pix:        make([]hwy.Float16, width*height*4),
		colorspace: colorspace,
	}
}

// NewBitmapHdrHalfOriented allocates a zeroed half-float bitmap carrying a
// raw EXIF-style orientation code.
func NewBitmapHdrHalfOriented(width, height int, colorspace Colorspace, orientation int) *BitmapHdrHalf {
	b := NewBitmapHdrHalf(width, height, colorspace)
	b.orientation = orientation
	return b
}

// Width reports the bitmap width in pixels.
func (b *BitmapHdrHalf) Width() int { return b.width }

// Height reports the bitmap height in pixels.
func (b *BitmapHdrHalf) Height() int { return b.height }

// Orientation reports the pending EXIF-style orientation code.
func (b *BitmapHdrHalf) Orientation() int { return b.orientation }

// Colorspace reports the colorspace the pixel values are expressed in.
func (b *BitmapHdrHalf) Colorspace() Colorspace { return b.colorspace }

// Pix exposes the backing samples.
func (b *BitmapHdrHalf) Pix() []hwy.Float16 { return b.pix }

// Format reports FormatRGBA16F.
func (b *BitmapHdrHalf) Format() PixelFormat { return FormatRGBA16F }

// SetColorspace converts the pixel values into the target colorspace and
// retags the bitmap. Each pixel is widened to float32 for the matrix
// multiply and narrowed back. Converting to the current colorspace logs a
// warning and leaves the pixels untouched.
func (b *BitmapHdrHalf) SetColorspace(target Colorspace, td Dispatcher) error {
	if target == b.colorspace {
		warnNoopColorspace()
		return nil
	}
	m, err := conversionMatrix(b.colorspace, target)
	if err != nil {
		return err
	}
	forEachChunk(b.width*b.height, td, func(start, end int) {
		transformChunkHalf(m, b.pix[start*4:end*4])
	})
	b.colorspace = target
	return nil
}

// Resize resamples the bitmap in place, filtering premultiplied linear
// values at float32 precision.
func (b *BitmapHdrHalf) Resize(width, height int, td Dispatcher) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidDimensions
	}
	b.pix = resampleHalf(b.pix, b.width, b.height, width, height, td)
	b.width, b.height = width, height
	return nil
}

// ResizeNew resamples into a freshly allocated bitmap, leaving the receiver
// untouched.
func (b *BitmapHdrHalf) ResizeNew(width, height int, td Dispatcher) (*BitmapHdrHalf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	pix := resampleHalf(b.pix, b.width, b.height, width, height, td)
	return &BitmapHdrHalf{width: width, height: height, pix: pix, colorspace: b.colorspace}, nil
}

// Extend grows the canvas, keeping the image top-left and zero-filling the
// new margins.
func (b *BitmapHdrHalf) Extend(width, height int) error {
	if width < b.width || height < b.height {
		return errExtendShrink(width, height, b.width, b.height)
	}
	pix := make([]hwy.Float16, width*height*4)
	for y := 0; y < b.height; y++ {
		copy(pix[y*width*4:], b.pix[y*b.width*4:(y+1)*b.width*4])
	}
	b.pix = pix
	b.width, b.height = width, height
	return nil
}

// SetAlpha overwrites every pixel's alpha sample with the half-float
// encoding of alpha, leaving RGB untouched.
func (b *BitmapHdrHalf) SetAlpha(alpha float32) {
	h := hwy.Float32ToFloat16(alpha)
	for i := 3; i < len(b.pix); i += 4 {
		b.pix[i] = h
	}
}

// FlipVertical mirrors the image top-to-bottom in place.
func (b *BitmapHdrHalf) FlipVertical() { flipVertical(b.pix, b.width, b.height) }

// FlipHorizontal mirrors the image left-to-right in place.
func (b *BitmapHdrHalf) FlipHorizontal() { flipHorizontal(b.pix, b.width, b.height) }

// Rotate90 rotates the image 90 degrees clockwise, swapping dimensions.
func (b *BitmapHdrHalf) Rotate90() {
	b.pix = rotate90(b.pix, b.width, b.height)
	b.width, b.height = b.height, b.width
}

// Rotate180 rotates the image 180 degrees in place.
func (b *BitmapHdrHalf) Rotate180() { rotate180(b.pix, b.width, b.height) }

// Rotate270 rotates the image 90 degrees counter-clockwise, swapping
// dimensions.
func (b *BitmapHdrHalf) Rotate270() {
	b.pix = rotate270(b.pix, b.width, b.height)
	b.width, b.height = b.height, b.width
}

// NormalizeOrientation applies the pending orientation code and resets it to
// upright.
func (b *BitmapHdrHalf) NormalizeOrientation() error {
	pix, w, h, err := normalizeOrientation(b.pix, b.width, b.height, b.orientation)
	if err != nil {
		return err
	}
	b.pix, b.width, b.height = pix, w, h
	b.orientation = 1
	return nil
}
