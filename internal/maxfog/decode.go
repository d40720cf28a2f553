package maxfog

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/subav/owlvision/internal/bitio"
)

// Decode reads a MaxFOG block from r and reconstructs exactly outLen bytes.
// The bit-walking itself is delegated to the IKP table-driven decoder
// (ikp.go); this function only owns the container framing (header,
// alphabet, payload length).
func Decode(r io.Reader, outLen int) ([]byte, error) {
	var header [9]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("maxfog: reading header: %w", err)
	}
	bitCount := binary.LittleEndian.Uint64(header[0:8])
	n := int(header[8])

	alphabet := make([]byte, n)
	if n > 0 {
		if _, err := io.ReadFull(r, alphabet); err != nil {
			return nil, fmt.Errorf("maxfog: reading alphabet: %w", err)
		}
	}

	payloadBytes := int((bitCount + 7) / 8)
	raw := make([]byte, payloadBytes)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, fmt.Errorf("maxfog: reading payload: %w", err)
	}

	buf := bitio.NewBitBuffer(payloadBytes * 8)
	buf.LoadBytes(raw)

	consumed := 0
	next := func() (int, bool) {
		if consumed >= int(bitCount) {
			return 0, false
		}
		bit := buf.GetBit(consumed)
		consumed++
		return bit, true
	}

	table := buildIKPTable(alphabet)
	out, err := ikpDecodeBytes(table, outLen, next)
	if err != nil {
		return nil, err
	}
	return out, nil
}
