package dsp

// Forward2D applies the forward 2-D DCT to an N×N tile: every row is
// transformed, then every column, over the same backing memory (the
// separable DCT is exact applied in either row-then-column or
// column-then-row order).
//
// data holds the full plane; base is the offset of the tile's top-left
// sample and stride is the plane's row width in samples.
func Forward2D(n int, data []float32, base, stride int) {
	for row := 0; row < n; row++ {
		Forward1D(n, View{Data: data, Base: base + row*stride, Stride: 1})
	}
	for col := 0; col < n; col++ {
		Forward1D(n, View{Data: data, Base: base + col, Stride: stride})
	}
}

// Inverse2D applies the inverse 2-D DCT to an N×N tile, reversing Forward2D.
func Inverse2D(n int, data []float32, base, stride int) {
	for col := 0; col < n; col++ {
		Inverse1D(n, View{Data: data, Base: base + col, Stride: stride})
	}
	for row := 0; row < n; row++ {
		Inverse1D(n, View{Data: data, Base: base + row*stride, Stride: 1})
	}
}
