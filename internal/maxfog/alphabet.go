// Package maxfog implements the MaxFOG entropy codec: a frequency-sorted
// alphabet of non-zero bytes plus a pair-navigation bit grammar that
// specially escapes the zero byte with a single bit. Package ikp.go holds
// the accelerated ("IKP") decode path; it reimplements the identical
// grammar, it does not define a different one.
package maxfog

import "sort"

// BuildAlphabet scans data once and returns the distinct non-zero byte
// values, ordered by descending frequency. Ties are broken by first
// occurrence in data (a deterministic, if arbitrary, choice — the decoder
// only ever needs the alphabet the encoder wrote, so any stable tie-break
// round-trips correctly).
func BuildAlphabet(data []byte) []byte {
	var counts [256]int
	var firstSeen [256]int
	for i := range firstSeen {
		firstSeen[i] = -1
	}
	for i, b := range data {
		if b == 0 {
			continue
		}
		counts[b]++
		if firstSeen[b] < 0 {
			firstSeen[b] = i
		}
	}

	alphabet := make([]byte, 0, 256)
	for v := 1; v < 256; v++ {
		if counts[v] > 0 {
			alphabet = append(alphabet, byte(v))
		}
	}
	sort.SliceStable(alphabet, func(i, j int) bool {
		a, b := alphabet[i], alphabet[j]
		if counts[a] != counts[b] {
			return counts[a] > counts[b]
		}
		return firstSeen[a] < firstSeen[b]
	})
	return alphabet
}

// indexOf returns the position of b within alphabet, or -1 if absent.
func indexOf(alphabet []byte, b byte) int {
	for i, v := range alphabet {
		if v == b {
			return i
		}
	}
	return -1
}
