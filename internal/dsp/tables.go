package dsp

// PlaneClass selects which of the two canonical quantization tables a plane
// uses: luma gets the finer table, chroma the coarser one.
type PlaneClass int

const (
	Luma PlaneClass = iota
	Chroma
)

// quantTablesInv8x8 are the canonical N=8 divisor tables (row-major), luma
// first then chroma, transcribed verbatim from the reference source.
var quantTablesInv8x8 = [2][64]float32{
	{
		16, 11, 10, 16, 24, 40, 51, 61,
		12, 12, 14, 19, 26, 58, 60, 55,
		14, 13, 16, 24, 40, 57, 69, 56,
		14, 17, 22, 29, 51, 87, 80, 62,
		18, 22, 37, 56, 68, 109, 103, 77,
		24, 35, 55, 64, 81, 104, 113, 92,
		49, 64, 78, 87, 103, 121, 120, 101,
		72, 92, 95, 98, 112, 100, 103, 99,
	},
	{
		17, 18, 24, 47, 99, 99, 99, 99,
		18, 21, 26, 66, 99, 99, 99, 99,
		24, 26, 56, 99, 99, 99, 99, 99,
		47, 66, 99, 99, 99, 99, 99, 99,
		99, 99, 99, 99, 99, 99, 99, 99,
		99, 99, 99, 99, 99, 99, 99, 99,
		99, 99, 99, 99, 99, 99, 99, 99,
		99, 99, 99, 99, 99, 99, 99, 99,
	},
}

// quantTables caches the derived N×N tables for every supported N, indexed
// by PlaneClass then N.
var quantTables = map[PlaneClass]map[int][]float32{
	Luma:   {8: quantTablesInv8x8[Luma][:]},
	Chroma: {8: quantTablesInv8x8[Chroma][:]},
}

func init() {
	for _, class := range []PlaneClass{Luma, Chroma} {
		quantTables[class][4] = remapTable(quantTables[class][8], 8, 4)
		quantTables[class][16] = remapTable(quantTables[class][8], 8, 16)
		quantTables[class][32] = remapTable(quantTables[class][8], 8, 32)
	}
}

// remapTable derives an n×n quantization table from an 8x8 source table by
// nearest-neighbor index remapping: table entry (r,c) of the derived table
// takes the value of source entry (r*8/n, c*8/n). This is an Open Question
// decision (DESIGN.md) since no N=4/16/32 table survives in the reference
// source.
func remapTable(src []float32, srcN, n int) []float32 {
	out := make([]float32, n*n)
	for r := 0; r < n; r++ {
		sr := r * srcN / n
		for c := 0; c < n; c++ {
			sc := c * srcN / n
			out[r*n+c] = src[sr*srcN+sc]
		}
	}
	return out
}

// QuantTable returns the N×N divisor table (row-major) for the given plane
// class and tile size.
func QuantTable(class PlaneClass, n int) []float32 {
	return quantTables[class][n]
}
