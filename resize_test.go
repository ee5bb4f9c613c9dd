package hdrpix

import (
	"math"
	"testing"

	"github.com/ajroetker/go-highway/hwy"
)

func TestGetWeightsNormalized(t *testing.T) {
	for _, tc := range []struct{ src, dst int }{
		{100, 50}, {50, 100}, {640, 480}, {3, 7}, {1, 1},
	} {
		w := getWeights(tc.src, tc.dst)
		if len(w.start) != tc.dst {
			t.Fatalf("%d->%d: %d start offsets", tc.src, tc.dst, len(w.start))
		}
		for d := 0; d < tc.dst; d++ {
			var sum float64
			for i := 0; i < w.filterLength; i++ {
				sum += float64(w.coeffs[d*w.filterLength+i])
			}
			if math.Abs(sum-1) > 1e-5 {
				t.Fatalf("%d->%d: weights for output %d sum to %v", tc.src, tc.dst, d, sum)
			}
		}
	}
}

func TestResizeConstantStaysConstant(t *testing.T) {
	// A flat opaque image must survive resampling without ringing.
	b := NewBitmap(40, 30)
	pix := b.Pix()
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = 180, 90, 45, 255
	}

	if err := b.Resize(17, 11, nil); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < len(b.Pix()); i += 4 {
		got := b.Pix()[i : i+4]
		if got[0] != 180 || got[1] != 90 || got[2] != 45 || got[3] != 255 {
			t.Fatalf("pixel %d: %v", i/4, got)
		}
	}
}

func TestResizeHdrConstantStaysConstant(t *testing.T) {
	b := NewBitmapHdr(16, 16, ColorspaceBT709)
	pix := b.Pix()
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = 2.5, 0.5, 0.125, 1
	}

	out, err := b.ResizeNew(8, 8, nil)
	if err != nil {
		t.Fatal(err)
	}
	if out.Colorspace() != ColorspaceBT709 {
		t.Fatalf("colorspace lost: %v", out.Colorspace())
	}
	for i := 0; i < len(out.Pix()); i += 4 {
		for c, want := range []float32{2.5, 0.5, 0.125, 1} {
			if got := out.Pix()[i+c]; math.Abs(float64(got-want)) > 1e-5 {
				t.Fatalf("pixel %d channel %d: got %v want %v", i/4, c, got, want)
			}
		}
	}
	// Source untouched by ResizeNew.
	if b.Width() != 16 || b.Pix()[0] != 2.5 {
		t.Fatal("ResizeNew modified the source")
	}
}

func gradientHdr(w, h int) *BitmapHdr {
	b := NewBitmapHdr(w, h, ColorspaceBT709)
	pix := b.Pix()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * 4
			pix[i] = float32(x) / float32(w)
			pix[i+1] = float32(y) / float32(h)
			pix[i+2] = float32(x+y) * 0.01
			pix[i+3] = 1 - float32(x)*0.002
		}
	}
	return b
}

func TestResizeParallelMatchesSerial(t *testing.T) {
	td := NewTaskDispatch(4)
	defer td.Close()

	serial, err := gradientHdr(100, 100).ResizeNew(50, 50, nil)
	if err != nil {
		t.Fatal(err)
	}
	parallel, err := gradientHdr(100, 100).ResizeNew(50, 50, td)
	if err != nil {
		t.Fatal(err)
	}

	sp, pp := serial.Pix(), parallel.Pix()
	for i := range sp {
		if sp[i] != pp[i] {
			t.Fatalf("sample %d differs: serial %v parallel %v", i, sp[i], pp[i])
		}
	}
}

func TestResizeSRGBParallelMatchesSerial(t *testing.T) {
	td := NewTaskDispatch(3)
	defer td.Close()

	mk := func() *Bitmap {
		b := NewBitmap(64, 48)
		pix := b.Pix()
		for i := range pix {
			pix[i] = uint8(i * 7)
		}
		return b
	}

	serial := mk()
	if err := serial.Resize(31, 23, nil); err != nil {
		t.Fatal(err)
	}
	parallel := mk()
	if err := parallel.Resize(31, 23, td); err != nil {
		t.Fatal(err)
	}

	sp, pp := serial.Pix(), parallel.Pix()
	for i := range sp {
		if sp[i] != pp[i] {
			t.Fatalf("byte %d differs: serial %d parallel %d", i, sp[i], pp[i])
		}
	}
}

func TestResizeHalf(t *testing.T) {
	b := NewBitmapHdrHalf(8, 8, ColorspaceBT709)
	pix := b.Pix()
	one := hwy.Float32ToFloat16(1)
	quarter := hwy.Float32ToFloat16(0.25)
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = quarter, quarter, quarter, one
	}

	if err := b.Resize(4, 4, nil); err != nil {
		t.Fatal(err)
	}
	if b.Width() != 4 || b.Height() != 4 || len(b.Pix()) != 4*4*4 {
		t.Fatalf("dims after resize: %dx%d len %d", b.Width(), b.Height(), len(b.Pix()))
	}
	if got := hwy.Float16ToFloat32(b.Pix()[0]); math.Abs(float64(got-0.25)) > 1e-3 {
		t.Fatalf("constant plane drifted: %v", got)
	}
}

func TestResizeFullyTransparentZeroes(t *testing.T) {
	// Zero alpha pixels must not leak color after unpremultiplication.
	b := NewBitmapHdr(4, 4, ColorspaceBT709)
	pix := b.Pix()
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = 5, 5, 5, 0
	}

	if err := b.Resize(2, 2, nil); err != nil {
		t.Fatal(err)
	}
	for i, v := range b.Pix() {
		if v != 0 {
			t.Fatalf("sample %d: %v", i, v)
		}
	}
}
