package maxfog

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/subav/owlvision/internal/bitio"
)

// EncodedBitCount returns the total number of bits Encode would emit for
// data against the given alphabet: one bit per zero byte, and
// 1+symbolBitCost bits per non-zero byte (the escape bit plus the pair
// grammar's navigation cost).
func EncodedBitCount(data []byte, alphabet []byte) uint64 {
	n := len(alphabet)
	var index [256]int
	for i := range index {
		index[i] = -1
	}
	for i, b := range alphabet {
		index[b] = i
	}

	var total uint64
	for _, b := range data {
		if b == 0 {
			total++
			continue
		}
		total += 1 + uint64(symbolBitCost(n, index[b]))
	}
	return total
}

// Encode writes the full MaxFOG block for data to w: the bit count header,
// the frequency-sorted alphabet, and the entropy-coded payload.
func Encode(w io.Writer, data []byte) error {
	alphabet := BuildAlphabet(data)
	n := len(alphabet)
	if n > 255 {
		return fmt.Errorf("maxfog: alphabet size %d exceeds 255", n)
	}

	var index [256]int
	for i := range index {
		index[i] = -1
	}
	for i, b := range alphabet {
		index[b] = i
	}

	bitCount := EncodedBitCount(data, alphabet)

	// The stream's capacity covers every bit, so nothing reaches payload
	// before the final Flush.
	var payload bytes.Buffer
	bits := bitio.NewOutputBitStream(&payload, int(bitCount))
	emit := func(bit int) {
		bits.Put(bit) // writes into payload cannot fail
	}
	for _, b := range data {
		if b == 0 {
			emit(0)
			continue
		}
		emit(1)
		encodeSymbolBits(n, index[b], emit)
	}
	if err := bits.Flush(); err != nil {
		return fmt.Errorf("maxfog: packing payload: %w", err)
	}

	var header [9]byte
	binary.LittleEndian.PutUint64(header[0:8], bitCount)
	header[8] = byte(n)
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("maxfog: writing header: %w", err)
	}
	if _, err := w.Write(alphabet); err != nil {
		return fmt.Errorf("maxfog: writing alphabet: %w", err)
	}
	if _, err := w.Write(payload.Bytes()); err != nil {
		return fmt.Errorf("maxfog: writing payload: %w", err)
	}
	return nil
}
