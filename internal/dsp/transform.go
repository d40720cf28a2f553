package dsp

// View addresses N strided float32 samples inside a larger buffer (a tile
// row or column). Forward1D/Inverse1D operate on a View in place.
type View struct {
	Data   []float32
	Base   int
	Stride int
}

// Get returns the i-th sample of the view.
func (v View) Get(i int) float32 {
	return v.Data[v.Base+i*v.Stride]
}

// Set writes the i-th sample of the view.
func (v View) Set(i int, val float32) {
	v.Data[v.Base+i*v.Stride] = val
}

// toSlice copies the view into a contiguous scratch slice, sized n.
func (v View) toSlice(n int) []float32 {
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		out[i] = v.Get(i)
	}
	return out
}

// fromSlice writes a contiguous scratch slice back into the view.
func (v View) fromSlice(s []float32) {
	for i, val := range s {
		v.Set(i, val)
	}
}

// Forward1D applies the in-place forward DCT-II of length N (4, 8, 16 or 32)
// to view, which must address exactly N strided samples.
func Forward1D(n int, v View) {
	switch n {
	case 4:
		forward4(v)
	case 8:
		forward8(v)
	case 16, 32:
		s := v.toSlice(n)
		leeForward(s)
		v.fromSlice(s)
	default:
		panic("dsp: unsupported transform length")
	}
}

// Inverse1D applies the in-place inverse DCT-II of length N (4, 8, 16 or 32)
// to view, which must address exactly N strided samples.
func Inverse1D(n int, v View) {
	switch n {
	case 4:
		inverse4(v)
	case 8:
		inverse8(v)
	case 16, 32:
		s := v.toSlice(n)
		leeInverse(s)
		v.fromSlice(s)
	default:
		panic("dsp: unsupported transform length")
	}
}
