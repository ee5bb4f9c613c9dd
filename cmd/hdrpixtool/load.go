package main

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"

	"github.com/mdouchement/hdr"
	_ "github.com/mdouchement/hdr/codec/pfm"
	_ "github.com/mdouchement/hdr/codec/rgbe"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/vearutop/hdrpix"
)

// loadImage decodes path into exactly one of an HDR or SDR bitmap and
// applies any decoder-reported orientation so later transforms always see
// an upright image. Radiance HDR and PFM files come back as linear float
// tagged BT.709; everything else as 8-bit sRGB.
func loadImage(path string) (*hdrpix.BitmapHdr, *hdrpix.Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if hi, ok := img.(hdr.Image); ok {
		b := hdrBitmap(hi)
		if err := b.NormalizeOrientation(); err != nil {
			return nil, nil, fmt.Errorf("orient %s: %w", path, err)
		}
		return b, nil, nil
	}
	b := sdrBitmap(img)
	if err := b.NormalizeOrientation(); err != nil {
		return nil, nil, fmt.Errorf("orient %s: %w", path, err)
	}
	return nil, b, nil
}

// hdrBitmap copies a decoded linear-light image into a BitmapHdr. The
// Radiance and PFM codecs carry no embedded primaries, so pixels are
// assumed BT.709.
func hdrBitmap(img hdr.Image) *hdrpix.BitmapHdr {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := hdrpix.NewBitmapHdr(w, h, hdrpix.ColorspaceBT709)
	pix := out.Pix()
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.HDRAt(x, y).HDRRGBA()
			pix[i] = float32(r)
			pix[i+1] = float32(g)
			pix[i+2] = float32(b)
			pix[i+3] = 1
			i += 4
		}
	}
	return out
}

// sdrBitmap copies a decoded 8-bit image into a Bitmap.
func sdrBitmap(img image.Image) *hdrpix.Bitmap {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Stride != w*4 || !bounds.Min.Eq(image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)
	}
	out, err := hdrpix.NewBitmapFromPix(nrgba.Pix, w, h, 0)
	if err != nil {
		panic(err) // stride checked above
	}
	return out
}

// savePNG writes an SDR bitmap as a PNG file.
func savePNG(path string, b *hdrpix.Bitmap) error {
	img := &image.NRGBA{
		Pix:    b.Pix(),
		Stride: b.Width() * 4,
		Rect:   image.Rect(0, 0, b.Width(), b.Height()),
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
