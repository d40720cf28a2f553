package dsp

import "math"

// leeSplitFactors holds, for a given transform length N, the N/2 values
// 0.5/cos(pi*(2i+1)/(2N)) used by the radix-2 Lee decomposition's butterfly
// split. These are computed once at package init so that the recursive
// split/merge steps themselves never call a transcendental function.
var leeSplitFactors = map[int][]float32{
	2:  buildLeeSplitFactors(2),
	4:  buildLeeSplitFactors(4),
	8:  buildLeeSplitFactors(8),
	16: buildLeeSplitFactors(16),
	32: buildLeeSplitFactors(32),
}

func buildLeeSplitFactors(n int) []float32 {
	factors := make([]float32, n/2)
	for i := 0; i < n/2; i++ {
		factors[i] = float32(0.5 / math.Cos(math.Pi*float64(2*i+1)/float64(2*n)))
	}
	return factors
}

// leeButterflySplitForward halves x (length n) into tmp (length n), ready for
// two independent length-n/2 recursive calls.
func leeButterflySplitForward(x, tmp []float32, factors []float32) {
	n := len(x)
	half := n / 2
	for i := 0; i < half; i++ {
		tmp[i] = x[i] + x[n-1-i]
		tmp[i+half] = (x[i] - x[n-1-i]) * factors[i]
	}
}

// leeForwardRecursive implements forward_transform_recursive_part<N>: split,
// recurse on each half, then merge the even/odd streams back into x.
func leeForwardRecursive(x []float32, factors []float32) {
	n := len(x)
	if n == 1 {
		return
	}
	tmp := make([]float32, n)
	leeButterflySplitForward(x, tmp, factors)

	half := n / 2
	if half > 1 {
		childFactors := leeSplitFactors[half]
		leeForwardRecursive(tmp[:half], childFactors)
		leeForwardRecursive(tmp[half:], childFactors)
	}

	for i := 0; i < half-1; i++ {
		x[2*i] = tmp[i]
		x[2*i+1] = tmp[i+half] + tmp[i+half+1]
	}
	x[n-2] = tmp[half-1]
	x[n-1] = tmp[n-1]
}

// makeSequenceOrthogonal scales coefficients so the transform is orthonormal:
// every AC term by sqrt(2/N), the DC term additionally by 1/sqrt(2).
func makeSequenceOrthogonal(x []float32) {
	n := len(x)
	base := float32(math.Sqrt(2.0 / float64(n)))
	for i := range x {
		if i == 0 {
			x[i] *= base / float32(math.Sqrt2)
		} else {
			x[i] *= base
		}
	}
}

// leeForward computes the in-place orthonormal forward DCT-II of x via the
// recursive base-2 Lee decomposition. len(x) must be a power of two >= 2.
func leeForward(x []float32) {
	factors := leeSplitFactors[len(x)]
	leeForwardRecursive(x, factors)
	makeSequenceOrthogonal(x)
}

// leeButterflyMergeInverse reconstructs x (length n) from tmp (length n,
// holding the two synthesized half-length sequences).
func leeButterflyMergeInverse(tmp, x []float32, factors []float32) {
	n := len(x)
	half := n / 2
	for i := 0; i < half; i++ {
		y := tmp[i+half] * factors[i]
		x[i] = tmp[i] + y
		x[n-1-i] = tmp[i] - y
	}
}

// leeInverseRecursive implements inverse_transform_recursive_part<N>: split
// the interleaved x into two half-length streams, recurse, then merge.
func leeInverseRecursive(x []float32, factors []float32) {
	n := len(x)
	if n == 1 {
		return
	}
	half := n / 2
	tmp := make([]float32, n)
	tmp[0] = x[0]
	tmp[half] = x[1]
	for i := 1; i < half; i++ {
		tmp[i] = x[2*i]
		tmp[i+half] = x[2*i-1] + x[2*i+1]
	}
	if half > 1 {
		childFactors := leeSplitFactors[half]
		leeInverseRecursive(tmp[:half], childFactors)
		leeInverseRecursive(tmp[half:], childFactors)
	}
	leeButterflyMergeInverse(tmp, x, factors)
}

// leeInverse computes the in-place orthonormal inverse DCT-II of x via the
// recursive base-2 Lee decomposition. len(x) must be a power of two >= 2.
func leeInverse(x []float32) {
	// The orthogonal scaling is applied before recursive synthesis on the
	// inverse path (mirroring the original: it runs after on forward).
	makeSequenceOrthogonal(x)
	n := len(x)
	factors := leeSplitFactors[n]
	leeInverseRecursive(x, factors)
}
