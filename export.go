package hdrpix

import (
	"unsafe"

	"github.com/ajroetker/go-highway/hwy"
)

// RawImage is a flat description of a pixel plane for texture upload or raw
// serialization. Data aliases the bitmap's storage without copying; it stays
// valid only as long as the bitmap is not resized or reoriented.
type RawImage struct {
	Format     PixelFormat
	Width      int
	Height     int
	Colorspace Colorspace
	Data       []byte
}

// Raw returns an upload descriptor aliasing the bitmap's pixels.
func (b *Bitmap) Raw() RawImage {
	return RawImage{
		Format:     FormatRGBA8,
		Width:      b.width,
		Height:     b.height,
		Colorspace: ColorspaceBT709,
		Data:       b.pix,
	}
}

// Raw returns an upload descriptor aliasing the bitmap's pixels as bytes in
// native endianness.
func (b *BitmapHdr) Raw() RawImage {
	return RawImage{
		Format:     FormatRGBA32F,
		Width:      b.width,
		Height:     b.height,
		Colorspace: b.colorspace,
		Data:       unsafe.Slice((*byte)(unsafe.Pointer(&b.pix[0])), len(b.pix)*4),
	}
}

// Raw returns an upload descriptor aliasing the bitmap's pixels as bytes in
// native endianness.
func (b *BitmapHdrHalf) Raw() RawImage {
	return RawImage{
		Format:     FormatRGBA16F,
		Width:      b.width,
		Height:     b.height,
		Colorspace: b.colorspace,
		Data:       unsafe.Slice((*byte)(unsafe.Pointer(&b.pix[0])), len(b.pix)*int(unsafe.Sizeof(hwy.Float16(0)))),
	}
}
