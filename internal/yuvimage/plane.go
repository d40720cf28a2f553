// Package yuvimage implements the YUV 4:2:0 planar image pipeline: plane
// geometry, the per-plane project/transform/quantize/pack encode sequence,
// and its decode inverse, fanned out across Y/Cb/Cr with a completion
// barrier before the caller's serial entropy stage.
package yuvimage

import "github.com/subav/owlvision/internal/dsp"

// Plane identifies one of the three YUV 4:2:0 planes.
type Plane int

const (
	Luma Plane = iota
	ChromaBlue
	ChromaRed
)

// Width returns the plane's width in samples for an image of size W×H.
func (p Plane) Width(w int) int {
	if p == Luma {
		return w
	}
	return w / 2
}

// Height returns the plane's height in samples for an image of size W×H.
func (p Plane) Height(h int) int {
	if p == Luma {
		return h
	}
	return h / 2
}

// Size returns the plane's sample count for an image of size W×H.
func (p Plane) Size(w, h int) int {
	return p.Width(w) * p.Height(h)
}

// Offset returns the plane's byte offset within the packed W*H*3/2 buffer.
func (p Plane) Offset(w, h int) int {
	switch p {
	case Luma:
		return 0
	case ChromaBlue:
		return w * h
	default: // ChromaRed
		return w*h + (w*h)/4
	}
}

// QuantClass returns which canonical quantization table a plane uses.
func (p Plane) QuantClass() dsp.PlaneClass {
	if p == Luma {
		return dsp.Luma
	}
	return dsp.Chroma
}

// TotalSize returns W*H*3/2, the full packed image buffer size.
func TotalSize(w, h int) int {
	return w*h + 2*(w*h)/4
}
