package hdrpix

// BitmapHdr is a float32 RGBA pixel buffer holding linear-light values in a
// tagged colorspace. Layout matches Bitmap: row-major, no padding, exactly
// width*height*4 samples.
type BitmapHdr struct {
	width, height int
	pix           []float32
	colorspace    Colorspace
	orientation   int
}

// NewBitmapHdr allocates a zeroed HDR bitmap. Non-positive dimensions panic.
func NewBitmapHdr(width, height int, colorspace Colorspace) *BitmapHdr {
	checkDimensions(width, height)
	return &BitmapHdr{
		width:      width,
		height:     height,
		pix:        make([]float32, width*height*4),
		colorspace: colorspace,
	}
}

// NewBitmapHdrOriented allocates a zeroed HDR bitmap carrying a raw
// EXIF-style orientation code.
func NewBitmapHdrOriented(width, height int, colorspace Colorspace, orientation int) *BitmapHdr {
	b := NewBitmapHdr(width, height, colorspace)
	b.orientation = orientation
	return b
}

// NewBitmapHdrFromHalf widens a half-float bitmap into a new float32 bitmap
// with the same dimensions and colorspace tag.
func NewBitmapHdrFromHalf(src *BitmapHdrHalf) *BitmapHdr {
	b := NewBitmapHdr(src.width, src.height, src.colorspace)
	halfToFloat(src.pix, b.pix)
	b.orientation = src.orientation
	return b
}

// Width reports the bitmap width in pixels.
func (b *BitmapHdr) Width() int { return b.width }

// Height reports the bitmap height in pixels.
func (b *BitmapHdr) Height() int { return b.height }

// Orientation reports the pending EXIF-style orientation code.
func (b *BitmapHdr) Orientation() int { return b.orientation }

// Colorspace reports the colorspace the pixel values are expressed in.
func (b *BitmapHdr) Colorspace() Colorspace { return b.colorspace }

// Pix exposes the backing samples.
func (b *BitmapHdr) Pix() []float32 { return b.pix }

// Format reports FormatRGBA32F.
func (b *BitmapHdr) Format() PixelFormat { return FormatRGBA32F }

// SetColorspace converts the pixel values into the target colorspace and
// retags the bitmap. Converting to the current colorspace logs a warning and
// leaves the pixels untouched. Alpha passes through bit-exact.
func (b *BitmapHdr) SetColorspace(target Colorspace, td Dispatcher) error {
	if target == b.colorspace {
		warnNoopColorspace()
		return nil
	}
	m, err := conversionMatrix(b.colorspace, target)
	if err != nil {
		return err
	}
	forEachChunk(b.width*b.height, td, func(start, end int) {
		transformChunk(m, b.pix[start*4:end*4])
	})
	b.colorspace = target
	return nil
}

// Tonemap compresses the HDR values through the given operator and encodes
// the result as a new sRGB bitmap. The source must be in BT.709; convert
// first with SetColorspace.
func (b *BitmapHdr) Tonemap(op ToneMapOperator, td Dispatcher) (*Bitmap, error) {
	if b.colorspace != ColorspaceBT709 {
		return nil, ErrTonemapColorspace
	}
	out := NewBitmap(b.width, b.height)
	forEachChunk(b.width*b.height, td, func(start, end int) {
		tonemapChunk(op, out.pix[start*4:end*4], b.pix[start*4:end*4])
	})
	out.orientation = b.orientation
	return out, nil
}

// Resize resamples the bitmap in place, filtering premultiplied linear
// values.
func (b *BitmapHdr) Resize(width, height int, td Dispatcher) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidDimensions
	}
	b.pix = resampleLinear(b.pix, b.width, b.height, width, height, td)
	b.width, b.height = width, height
	return nil
}

// ResizeNew resamples into a freshly allocated bitmap, leaving the receiver
// untouched.
func (b *BitmapHdr) ResizeNew(width, height int, td Dispatcher) (*BitmapHdr, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	pix := resampleLinear(b.pix, b.width, b.height, width, height, td)
	return &BitmapHdr{width: width, height: height, pix: pix, colorspace: b.colorspace}, nil
}

// Extend grows the canvas, keeping the image top-left and zero-filling the
// new margins.
func (b *BitmapHdr) Extend(width, height int) error {
	if width < b.width || height < b.height {
		return errExtendShrink(width, height, b.width, b.height)
	}
	pix := make([]float32, width*height*4)
	for y := 0; y < b.height; y++ {
		copy(pix[y*width*4:], b.pix[y*b.width*4:(y+1)*b.width*4])
	}
	b.pix = pix
	b.width, b.height = width, height
	return nil
}

// SetAlpha overwrites every pixel's alpha sample, leaving RGB untouched.
func (b *BitmapHdr) SetAlpha(alpha float32) {
	for i := 3; i < len(b.pix); i += 4 {
		b.pix[i] = alpha
	}
}

// FlipVertical mirrors the image top-to-bottom in place.
func (b *BitmapHdr) FlipVertical() { flipVertical(b.pix, b.width, b.height) }

// FlipHorizontal mirrors the image left-to-right in place.
func (b *BitmapHdr) FlipHorizontal() { flipHorizontal(b.pix, b.width, b.height) }

// Rotate90 rotates the image 90 degrees clockwise, swapping dimensions.
func (b *BitmapHdr) Rotate90() {
	b.pix = rotate90(b.pix, b.width, b.height)
	b.width, b.height = b.height, b.width
}

// Rotate180 rotates the image 180 degrees in place.
func (b *BitmapHdr) Rotate180() { rotate180(b.pix, b.width, b.height) }

// Rotate270 rotates the image 90 degrees counter-clockwise, swapping
// dimensions.
func (b *BitmapHdr) Rotate270() {
	b.pix = rotate270(b.pix, b.width, b.height)
	b.width, b.height = b.height, b.width
}

// NormalizeOrientation applies the pending orientation code and resets it to
// upright.
func (b *BitmapHdr) NormalizeOrientation() error {
	pix, w, h, err := normalizeOrientation(b.pix, b.width, b.height, b.orientation)
	if err != nil {
		return err
	}
	b.pix, b.width, b.height = pix, w, h
	b.orientation = 1
	return nil
}

// Half narrows the bitmap into a new half-float bitmap with the same
// dimensions and colorspace tag.
func (b *BitmapHdr) Half() *BitmapHdrHalf {
	out := NewBitmapHdrHalf(b.width, b.height, b.colorspace)
	floatToHalf(b.pix, out.pix)
	out.orientation = b.orientation
	return out
}
