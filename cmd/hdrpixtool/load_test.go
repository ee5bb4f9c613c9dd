package main

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/vearutop/hdrpix"
)

func writeTestPNG(t *testing.T, w, h int) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = uint8(i * 3)
	}

	path := filepath.Join(t.TempDir(), "in.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadImageNormalizesOrientation(t *testing.T) {
	path := writeTestPNG(t, 5, 3)

	hdrBmp, sdrBmp, err := loadImage(path)
	if err != nil {
		t.Fatal(err)
	}
	if hdrBmp != nil {
		t.Fatal("PNG classified as HDR")
	}
	if sdrBmp.Width() != 5 || sdrBmp.Height() != 3 {
		t.Fatalf("loaded dims: %dx%d", sdrBmp.Width(), sdrBmp.Height())
	}
	if sdrBmp.Orientation() != hdrpix.OrientationIdentity {
		t.Fatalf("orientation not normalized on load: %d", sdrBmp.Orientation())
	}
}

func TestLoadImageRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.bin")
	if err := os.WriteFile(path, []byte("not an image"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := loadImage(path); err == nil {
		t.Fatal("expected decode error")
	}
}
