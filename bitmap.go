package hdrpix

import "fmt"

// Bitmap is an 8-bit sRGB-encoded RGBA pixel buffer. Rows are stored
// top-down with no padding: the backing slice is always exactly
// width*height*4 samples. A Bitmap exclusively owns its storage; share the
// pointer, not copies of the struct.
type Bitmap struct {
	width, height int
	pix           []uint8
	orientation   int
}

// NewBitmap allocates a zeroed bitmap. Non-positive dimensions panic.
func NewBitmap(width, height int) *Bitmap {
	return NewBitmapOriented(width, height, 0)
}

// NewBitmapOriented allocates a zeroed bitmap carrying a raw EXIF-style
// orientation code reported by a decoder.
func NewBitmapOriented(width, height, orientation int) *Bitmap {
	checkDimensions(width, height)
	return &Bitmap{
		width:       width,
		height:      height,
		pix:         make([]uint8, width*height*4),
		orientation: orientation,
	}
}

// NewBitmapFromPix adopts a decoder-produced pixel slice. The slice length
// must be exactly width*height*4.
func NewBitmapFromPix(pix []uint8, width, height, orientation int) (*Bitmap, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(pix) != width*height*4 {
		return nil, fmt.Errorf("pixel slice length %d does not match %dx%d RGBA", len(pix), width, height)
	}
	return &Bitmap{width: width, height: height, pix: pix, orientation: orientation}, nil
}

// Width reports the bitmap width in pixels.
func (b *Bitmap) Width() int { return b.width }

// Height reports the bitmap height in pixels.
func (b *Bitmap) Height() int { return b.height }

// Orientation reports the pending EXIF-style orientation code. Zero and one
// both mean upright.
func (b *Bitmap) Orientation() int { return b.orientation }

// Pix exposes the backing samples for decoders and encoders.
func (b *Bitmap) Pix() []uint8 { return b.pix }

// Format reports FormatRGBA8.
func (b *Bitmap) Format() PixelFormat { return FormatRGBA8 }

// Resize resamples the bitmap in place. The old storage is replaced only
// after the new plane is fully built.
func (b *Bitmap) Resize(width, height int, td Dispatcher) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidDimensions
	}
	b.pix = resampleSRGB(b.pix, b.width, b.height, width, height, td)
	b.width, b.height = width, height
	return nil
}

// ResizeNew resamples into a freshly allocated bitmap, leaving the receiver
// untouched.
func (b *Bitmap) ResizeNew(width, height int, td Dispatcher) (*Bitmap, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	pix := resampleSRGB(b.pix, b.width, b.height, width, height, td)
	return &Bitmap{width: width, height: height, pix: pix}, nil
}

// Extend grows the canvas to the given size, keeping the image in the
// top-left corner and zero-filling the new right and bottom margins.
func (b *Bitmap) Extend(width, height int) error {
	if width < b.width || height < b.height {
		return errExtendShrink(width, height, b.width, b.height)
	}
	pix := make([]uint8, width*height*4)
	for y := 0; y < b.height; y++ {
		copy(pix[y*width*4:], b.pix[y*b.width*4:(y+1)*b.width*4])
	}
	b.pix = pix
	b.width, b.height = width, height
	return nil
}

// SetAlpha overwrites every pixel's alpha sample, leaving RGB untouched.
func (b *Bitmap) SetAlpha(alpha uint8) {
	for i := 3; i < len(b.pix); i += 4 {
		b.pix[i] = alpha
	}
}

// FlipVertical mirrors the image top-to-bottom in place.
func (b *Bitmap) FlipVertical() { flipVertical(b.pix, b.width, b.height) }

// FlipHorizontal mirrors the image left-to-right in place.
func (b *Bitmap) FlipHorizontal() { flipHorizontal(b.pix, b.width, b.height) }

// Rotate90 rotates the image 90 degrees clockwise, swapping dimensions.
func (b *Bitmap) Rotate90() {
	b.pix = rotate90(b.pix, b.width, b.height)
	b.width, b.height = b.height, b.width
}

// Rotate180 rotates the image 180 degrees in place.
func (b *Bitmap) Rotate180() { rotate180(b.pix, b.width, b.height) }

// Rotate270 rotates the image 90 degrees counter-clockwise, swapping
// dimensions.
func (b *Bitmap) Rotate270() {
	b.pix = rotate270(b.pix, b.width, b.height)
	b.width, b.height = b.height, b.width
}

// NormalizeOrientation applies the pending orientation code and resets it to
// upright. Codes outside 1..8 (other than 0) are an error and leave the
// bitmap unmodified.
func (b *Bitmap) NormalizeOrientation() error {
	pix, w, h, err := normalizeOrientation(b.pix, b.width, b.height, b.orientation)
	if err != nil {
		return err
	}
	b.pix, b.width, b.height = pix, w, h
	b.orientation = 1
	return nil
}
