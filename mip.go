package hdrpix

import "math/bits"

// mippable is any bitmap kind that can produce a resampled copy of itself.
type mippable[T any] interface {
	Width() int
	Height() int
	ResizeNew(width, height int, td Dispatcher) (T, error)
}

// MipCount reports how many mip levels a width x height image has, the base
// level included, halving down to 1x1.
func MipCount(width, height int) int {
	m := width
	if height > m {
		m = height
	}
	if m <= 0 {
		return 0
	}
	return bits.Len(uint(m))
}

// MipChain builds the full mip pyramid for base. Level 0 is base itself,
// each following level halves both dimensions (rounding down, floor 1) until
// 1x1. Every level past the base is resampled from the one before it.
func MipChain[T mippable[T]](base T, td Dispatcher) ([]T, error) {
	levels := make([]T, 0, MipCount(base.Width(), base.Height()))
	levels = append(levels, base)
	w, h := base.Width(), base.Height()
	for w > 1 || h > 1 {
		w /= 2
		if w < 1 {
			w = 1
		}
		h /= 2
		if h < 1 {
			h = 1
		}
		next, err := levels[len(levels)-1].ResizeNew(w, h, td)
		if err != nil {
			return nil, err
		}
		levels = append(levels, next)
	}
	return levels, nil
}
