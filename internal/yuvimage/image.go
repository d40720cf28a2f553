package yuvimage

import "errors"

// ErrUnsupportedGeometry is returned when the image's width or height is not
// divisible by the chosen tile side N for every plane.
var ErrUnsupportedGeometry = errors.New("yuvimage: width/height not divisible by tile size")

// Allocator matches the injected allocator contract: given a byte count, it
// returns an owned buffer of at least that length.
type Allocator func(size int) []byte

// Image owns a packed YUV 4:2:0 byte buffer (Y, then Cb, then Cr) plus a
// transient float shadow buffer used only during transform/quantize.
type Image struct {
	Width, Height int
	Bytes         []byte
	shadow        []float32
}

// NewImage allocates an Image of the given size via alloc, which must
// return at least TotalSize(w,h) bytes.
func NewImage(w, h int, alloc Allocator) *Image {
	return &Image{Width: w, Height: h, Bytes: alloc(TotalSize(w, h))[:TotalSize(w, h)]}
}

// checkGeometry validates that every plane's width and height divide evenly
// by tileSize.
func checkGeometry(w, h, tileSize int) error {
	for _, p := range [...]Plane{Luma, ChromaBlue, ChromaRed} {
		if p.Width(w)%tileSize != 0 || p.Height(h)%tileSize != 0 {
			return ErrUnsupportedGeometry
		}
	}
	return nil
}
