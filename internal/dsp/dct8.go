package dsp

// Length-8 rotator constants, published JPEG fast-DCT values. a = sqrt(1/8).
const (
	dct8A = 0.3535533905
	dct8B = 0.4903926402
	dct8C = 0.4157348061
	dct8D = 0.4619397662
	dct8b = 0.0975451610 // uppercase B in spec.md, renamed to avoid clashing with dct8B
	dct8c = 0.2777851165
	dct8d = 0.1913417161
)

// forward8 computes the in-place forward length-8 DCT-II over a strided view.
func forward8(v View) {
	src0, src1, src2, src3 := v.Get(0), v.Get(1), v.Get(2), v.Get(3)
	src4, src5, src6, src7 := v.Get(4), v.Get(5), v.Get(6), v.Get(7)

	s0, s1 := pam(src0, src7)
	s2, s3 := pam(src1, src6)
	s4, s5 := pam(src2, src5)
	s6, s7 := pam(src3, src4)

	v.Set(0, dct8A*(s0+s6+s2+s4))
	v.Set(4, dct8A*(s0+s6-s2-s4))

	r00, r01 := rotate2d(dct8B, dct8b, s7, s1)
	r10, r11 := rotate2d(dct8C, dct8c, s5, s3)
	v.Set(1, r01+r11)
	v.Set(7, r10-r00)

	g0, g1 := rotate2d(dct8D, dct8d, s2-s4, s0-s6)
	v.Set(2, g1)
	v.Set(6, -g0)

	t00, t01 := rotate2d(dct8C, dct8c, s1, s7)
	t10, t11 := rotate2d(dct8B, dct8b, s3, s5)
	v.Set(3, t00-t11)
	v.Set(5, t01-t10)
}

// inverse8 computes the in-place inverse length-8 DCT-II over a strided view.
func inverse8(v View) {
	src0, src1, src2, src3 := v.Get(0), v.Get(1), v.Get(2), v.Get(3)
	src4, src5, src6, src7 := v.Get(4), v.Get(5), v.Get(6), v.Get(7)

	s0, s3 := pamk(src0, src4, dct8A)
	s2, s1 := rotate2d(dct8d, dct8D, src2, src6)

	g0, g1 := rotate2d(dct8b, dct8B, src1, src7)
	g2, g3 := rotate2d(dct8B, dct8b, src3, src5)
	g4, g5 := rotate2d(dct8C, dct8c, src1, src7)
	g6, g7 := rotate2d(dct8c, dct8C, src3, src5)

	t0 := g1 + g7
	t1 := g3 - g4
	t2 := g2 - g5
	t3 := g0 - g6

	k0, k1 := pam(s0, s1)
	k2, k3 := pam(s3, s2)

	v.Set(0, k0+t0)
	v.Set(7, k0-t0)
	v.Set(1, k2-t1)
	v.Set(6, k2+t1)
	v.Set(2, k3-t2)
	v.Set(5, k3+t2)
	v.Set(3, k1+t3)
	v.Set(4, k1-t3)
}
