// Package hdrpix implements the in-memory HDR/SDR bitmap pipeline of an
// image viewer: 8-bit sRGB, 32-bit float and 16-bit half-float RGBA pixel
// buffers, the numeric conversions between them, and the color-management,
// resampling and orientation-normalization transforms applied to them.
//
// Decoders, encoders and the GPU upload path are external collaborators:
// they produce or consume buffers through the raw-data contract (see
// RawImage) and are out of scope here. Parallelism is likewise injected:
// operations that can be chunked accept a Dispatcher and fall back to the
// calling goroutine when none is supplied, with identical results.
package hdrpix
