package hdrpix

import (
	"bytes"
	"errors"
	"testing"
)

// gradientPix builds an asymmetric w x h test image where every pixel is
// uniquely identifiable by its RGBA bytes.
func gradientPix(w, h int) []uint8 {
	pix := make([]uint8, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * 4
			pix[i] = uint8(x)
			pix[i+1] = uint8(y)
			pix[i+2] = uint8(x + y)
			pix[i+3] = uint8(255 - x)
		}
	}
	return pix
}

func TestFlipsAreInvolutions(t *testing.T) {
	const w, h = 5, 3

	orig := gradientPix(w, h)

	pix := append([]uint8(nil), orig...)
	flipVertical(pix, w, h)
	if bytes.Equal(pix, orig) {
		t.Fatal("flipVertical did nothing")
	}
	flipVertical(pix, w, h)
	if !bytes.Equal(pix, orig) {
		t.Fatal("double flipVertical is not identity")
	}

	pix = append([]uint8(nil), orig...)
	flipHorizontal(pix, w, h)
	flipHorizontal(pix, w, h)
	if !bytes.Equal(pix, orig) {
		t.Fatal("double flipHorizontal is not identity")
	}

	pix = append([]uint8(nil), orig...)
	rotate180(pix, w, h)
	rotate180(pix, w, h)
	if !bytes.Equal(pix, orig) {
		t.Fatal("double rotate180 is not identity")
	}
}

func TestRotate90Then270IsIdentity(t *testing.T) {
	const w, h = 4, 7

	orig := gradientPix(w, h)
	turned := rotate90(append([]uint8(nil), orig...), w, h)
	back := rotate270(turned, h, w)
	if !bytes.Equal(back, orig) {
		t.Fatal("rotate90 followed by rotate270 is not identity")
	}
}

func TestRotate90Mapping(t *testing.T) {
	// 2x3 image: after a clockwise quarter turn the bottom-left source
	// pixel becomes the top-left destination pixel.
	const w, h = 2, 3

	pix := gradientPix(w, h)
	out := rotate90(pix, w, h)
	// dst is 3x2. dst(0,0) must be src(0, h-1).
	srcI := ((h-1)*w + 0) * 4
	if !bytes.Equal(out[0:4], pix[srcI:srcI+4]) {
		t.Fatalf("rotate90 top-left: got %v want %v", out[0:4], pix[srcI:srcI+4])
	}
	// dst(h-1, 0) must be src(0, 0).
	dstI := (h - 1) * 4
	if !bytes.Equal(out[dstI:dstI+4], pix[0:4]) {
		t.Fatalf("rotate90 top-right: got %v want %v", out[dstI:dstI+4], pix[0:4])
	}
}

func TestNormalizeOrientationAllCodes(t *testing.T) {
	const w, h = 4, 6

	swapped := map[int]bool{5: true, 6: true, 7: true, 8: true}

	for code := 0; code <= 8; code++ {
		pix := gradientPix(w, h)
		out, ow, oh, err := normalizeOrientation(pix, w, h, code)
		if err != nil {
			t.Fatalf("code %d: %v", code, err)
		}
		wantW, wantH := w, h
		if swapped[code] {
			wantW, wantH = h, w
		}
		if ow != wantW || oh != wantH {
			t.Fatalf("code %d: got %dx%d want %dx%d", code, ow, oh, wantW, wantH)
		}
		if len(out) != len(pix) {
			t.Fatalf("code %d: pixel count changed", code)
		}
	}
}

// misorient builds the stored layout a capture with the given orientation
// code would have, i.e. the inverse of what normalization applies.
func misorient(pix []uint8, w, h, code int) ([]uint8, int, int) {
	out := append([]uint8(nil), pix...)
	switch code {
	case 2:
		flipHorizontal(out, w, h)
	case 3:
		rotate180(out, w, h)
	case 4:
		flipVertical(out, w, h)
	case 5:
		flipVertical(out, w, h)
		out = rotate90(out, w, h)
		w, h = h, w
	case 6:
		out = rotate270(out, w, h)
		w, h = h, w
	case 7:
		flipVertical(out, w, h)
		out = rotate270(out, w, h)
		w, h = h, w
	case 8:
		out = rotate90(out, w, h)
		w, h = h, w
	}
	return out, w, h
}

func TestNormalizeOrientationRoundTrip(t *testing.T) {
	const w, h = 2, 3

	upright := gradientPix(w, h)

	for code := 1; code <= 8; code++ {
		pix, sw, sh := misorient(upright, w, h, code)

		out, ow, oh, err := normalizeOrientation(pix, sw, sh, code)
		if err != nil {
			t.Fatalf("code %d: %v", code, err)
		}
		if ow != w || oh != h {
			t.Fatalf("code %d: normalized to %dx%d, want %dx%d", code, ow, oh, w, h)
		}
		if !bytes.Equal(out, upright) {
			t.Fatalf("code %d: normalized pixels differ from upright layout", code)
		}
	}
}

func TestNormalizeOrientationRotate90Code(t *testing.T) {
	const w, h = 2, 2

	// Code 6 means the capture was rotated 90 degrees CCW, so normalizing
	// rotates CW: src(0,1) lands at dst(0,0).
	pix := gradientPix(w, h)
	out, ow, oh, err := normalizeOrientation(append([]uint8(nil), pix...), w, h, OrientationRotate90)
	if err != nil {
		t.Fatal(err)
	}
	if ow != h || oh != w {
		t.Fatalf("dims not swapped: %dx%d", ow, oh)
	}
	srcI := (1*w + 0) * 4
	if !bytes.Equal(out[0:4], pix[srcI:srcI+4]) {
		t.Fatalf("code 6 mapping wrong: got %v want %v", out[0:4], pix[srcI:srcI+4])
	}
}

func TestNormalizeOrientationInvalidCode(t *testing.T) {
	for _, code := range []int{-1, 9, 42} {
		_, _, _, err := normalizeOrientation(gradientPix(2, 2), 2, 2, code)
		if !errors.Is(err, ErrInvalidOrientation) {
			t.Fatalf("code %d: got %v want ErrInvalidOrientation", code, err)
		}
	}
}
