package yuvimage

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/subav/owlvision/internal/dsp"
)

// Encode runs the project -> transform+quantize -> pack pipeline over img
// in place, fanning the three planes out across worker goroutines with a
// completion barrier (via errgroup) before returning.
func Encode(img *Image, opts Options) error {
	if !opts.valid() {
		return ErrUnsupportedGeometry
	}
	if err := checkGeometry(img.Width, img.Height, opts.TileSize); err != nil {
		return err
	}
	if img.shadow == nil {
		img.shadow = make([]float32, len(img.Bytes))
	}

	g, _ := errgroup.WithContext(context.Background())
	for _, p := range [...]Plane{Luma, ChromaBlue, ChromaRed} {
		p := p
		g.Go(func() error {
			encodePlane(img, p, opts.TileSize)
			return nil
		})
	}
	return g.Wait()
}

// Decode runs the unpack -> dequantize+inverse transform -> restore
// pipeline over img in place, with the same per-plane fan-out as Encode.
func Decode(img *Image, opts Options) error {
	if !opts.valid() {
		return ErrUnsupportedGeometry
	}
	if err := checkGeometry(img.Width, img.Height, opts.TileSize); err != nil {
		return err
	}
	if img.shadow == nil {
		img.shadow = make([]float32, len(img.Bytes))
	}

	g, _ := errgroup.WithContext(context.Background())
	for _, p := range [...]Plane{Luma, ChromaBlue, ChromaRed} {
		p := p
		g.Go(func() error {
			decodePlane(img, p, opts.TileSize)
			return nil
		})
	}
	return g.Wait()
}

// encodePlane projects, transforms+quantizes, and packs one plane. It only
// ever touches img.Bytes[offset:offset+size] and img.shadow[offset:offset+size],
// a disjoint range per plane, so no synchronization is needed across the
// three goroutines Encode starts.
func encodePlane(img *Image, p Plane, n int) {
	w, h := p.Width(img.Width), p.Height(img.Height)
	offset := p.Offset(img.Width, img.Height)
	bytes := img.Bytes[offset : offset+w*h]
	shadow := img.shadow[offset : offset+w*h]

	for i, b := range bytes {
		shadow[i] = float32(b) - 128.0
	}

	table := dsp.QuantTable(p.QuantClass(), n)
	for ty := 0; ty < h; ty += n {
		for tx := 0; tx < w; tx += n {
			base := ty*w + tx
			dsp.Forward2D(n, shadow, base, w)
			dsp.QuantizeBlock(n, shadow, base, w, table)
		}
	}

	for i, v := range shadow {
		bytes[i] = byte(int8(clampRound(v, -128, 127)))
	}
}

// decodePlane unpacks, dequantizes+inverse transforms, and restores one
// plane. Same disjoint-range contract as encodePlane.
func decodePlane(img *Image, p Plane, n int) {
	w, h := p.Width(img.Width), p.Height(img.Height)
	offset := p.Offset(img.Width, img.Height)
	bytes := img.Bytes[offset : offset+w*h]
	shadow := img.shadow[offset : offset+w*h]

	for i, b := range bytes {
		shadow[i] = float32(int8(b))
	}

	table := dsp.QuantTable(p.QuantClass(), n)
	for ty := 0; ty < h; ty += n {
		for tx := 0; tx < w; tx += n {
			base := ty*w + tx
			dsp.DequantizeBlock(n, shadow, base, w, table)
			dsp.Inverse2D(n, shadow, base, w)
		}
	}

	for i, v := range shadow {
		bytes[i] = byte(clampRound(v+128.0, 0, 255))
	}
}

// clampRound rounds v to the nearest integer and clamps it to [lo, hi].
func clampRound(v float32, lo, hi int) int {
	r := int(math.Round(float64(v)))
	if r < lo {
		return lo
	}
	if r > hi {
		return hi
	}
	return r
}
