package hdrpix

import "fmt"

// element covers the three sample types a pixel buffer can hold: uint8 for
// SDR, float32 for HDR, and hwy.Float16 (underlying uint16) for half HDR.
type element interface {
	~uint8 | ~uint16 | ~float32
}

// The geometric primitives never interpret channel values. They move whole
// pixels, four interleaved elements at a time, so one implementation serves
// all three buffer representations.

// flipVertical reverses row order in place, swapping row pairs from the
// outside in through a single scratch row.
func flipVertical[T element](pix []T, w, h int) {
	rowLen := w * 4
	tmp := make([]T, rowLen)
	top := 0
	bottom := (h - 1) * rowLen
	for y := 0; y < h/2; y++ {
		copy(tmp, pix[top:top+rowLen])
		copy(pix[top:top+rowLen], pix[bottom:bottom+rowLen])
		copy(pix[bottom:bottom+rowLen], tmp)
		top += rowLen
		bottom -= rowLen
	}
}

// flipHorizontal reverses column order within every row in place.
func flipHorizontal[T element](pix []T, w, h int) {
	for y := 0; y < h; y++ {
		row := pix[y*w*4 : (y+1)*w*4]
		i := 0
		j := (w - 1) * 4
		for x := 0; x < w/2; x++ {
			row[i], row[j] = row[j], row[i]
			row[i+1], row[j+1] = row[j+1], row[i+1]
			row[i+2], row[j+2] = row[j+2], row[i+2]
			row[i+3], row[j+3] = row[j+3], row[i+3]
			i += 4
			j -= 4
		}
	}
}

// rotate180 swaps pixel pairs from both ends of the flat array inward.
func rotate180[T element](pix []T, w, h int) {
	i := 0
	j := (w*h - 1) * 4
	for n := 0; n < w*h/2; n++ {
		pix[i], pix[j] = pix[j], pix[i]
		pix[i+1], pix[j+1] = pix[j+1], pix[i+1]
		pix[i+2], pix[j+2] = pix[j+2], pix[i+2]
		pix[i+3], pix[j+3] = pix[j+3], pix[i+3]
		i += 4
		j -= 4
	}
}

// rotate90 returns a new buffer with the image rotated 90 degrees clockwise.
// The caller swaps width and height.
func rotate90[T element](pix []T, w, h int) []T {
	out := make([]T, len(pix))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			src := (y*w + x) * 4
			dst := (x*h + h - y - 1) * 4
			copy(out[dst:dst+4], pix[src:src+4])
		}
	}
	return out
}

// rotate270 returns a new buffer with the image rotated 90 degrees
// counter-clockwise. The caller swaps width and height.
func rotate270[T element](pix []T, w, h int) []T {
	out := make([]T, len(pix))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			src := (y*w + x) * 4
			dst := ((w-x-1)*h + y) * 4
			copy(out[dst:dst+4], pix[src:src+4])
		}
	}
	return out
}

// normalizeOrientation applies the geometric correction implied by an EXIF
// orientation code and returns the (possibly reallocated) buffer with its
// new dimensions. Codes 0 and 1 are no-ops; anything outside 1..8 is an
// error.
func normalizeOrientation[T element](pix []T, w, h, orientation int) ([]T, int, int, error) {
	switch orientation {
	case 0, 1:
	case 2:
		flipHorizontal(pix, w, h)
	case 3:
		rotate180(pix, w, h)
	case 4:
		flipVertical(pix, w, h)
	case 5:
		pix = rotate270(pix, w, h)
		w, h = h, w
		flipVertical(pix, w, h)
	case 6:
		pix = rotate90(pix, w, h)
		w, h = h, w
	case 7:
		pix = rotate90(pix, w, h)
		w, h = h, w
		flipVertical(pix, w, h)
	case 8:
		pix = rotate270(pix, w, h)
		w, h = h, w
	default:
		return nil, 0, 0, fmt.Errorf("%w: %d", ErrInvalidOrientation, orientation)
	}
	return pix, w, h, nil
}
