package dsp

// Length-4 rotator constants, derived analytically from the orthonormal
// DCT-II definition (no N=4 variant survives in the reference source).
// See DESIGN.md for the derivation.
const (
	dct4Half = 0.5
	dct4S    = 0.2705980501
	dct4C    = 0.6532814824
)

// forward4 computes the in-place forward length-4 DCT-II over a strided view.
func forward4(v View) {
	x0, x1, x2, x3 := v.Get(0), v.Get(1), v.Get(2), v.Get(3)

	a0, a1 := pam(x0, x3)
	a2, a3 := pam(x1, x2)

	x0out, x2out := pamk(a0, a2, dct4Half)
	x1out, x3out := rotate2d(dct4C, dct4S, a1, -a3)

	v.Set(0, x0out)
	v.Set(1, x1out)
	v.Set(2, x2out)
	v.Set(3, x3out)
}

// inverse4 computes the in-place inverse length-4 DCT-II over a strided view.
func inverse4(v View) {
	x0, x1, x2, x3 := v.Get(0), v.Get(1), v.Get(2), v.Get(3)

	p, q := pamk(x0, x2, dct4Half)
	t, r := rotate2d(dct4C, dct4S, x1, -x3)

	out0, out3 := pam(p, t)
	out1, out2 := pam(q, r)

	v.Set(0, out0)
	v.Set(1, out1)
	v.Set(2, out2)
	v.Set(3, out3)
}
