package container

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// MMCMagic is the 8-byte signature of the MacaqueMixture sequence container.
const MMCMagic = "SBAV-MMC"

const mmcHeaderSize = 8 + 8 + 8 + 4 // magic + width + height + frame_rate

// MMCHeader holds the parsed fixed-size header of an MMC sequence: frames
// are not per-frame entropy coded, so everything after this header is a
// concatenation of raw YUV420p frames of size Width*Height*3/2.
type MMCHeader struct {
	Width, Height int
	FrameRateNum  uint16
	FrameRateDen  uint16
}

// PackFrameRate packs a (num, den) pair into the 32-bit wire representation
// (num<<16 | den).
func PackFrameRate(num, den uint16) uint32 {
	return uint32(num)<<16 | uint32(den)
}

// WriteMMCHeader writes the 28-byte MMC header to w.
func WriteMMCHeader(w io.Writer, h MMCHeader) error {
	var hdr [mmcHeaderSize]byte
	copy(hdr[0:8], MMCMagic)
	binary.LittleEndian.PutUint64(hdr[8:16], uint64(h.Width))
	binary.LittleEndian.PutUint64(hdr[16:24], uint64(h.Height))
	binary.LittleEndian.PutUint32(hdr[24:28], PackFrameRate(h.FrameRateNum, h.FrameRateDen))
	if _, err := w.Write(hdr[:]); err != nil {
		return fmt.Errorf("container: writing MMC header: %w", err)
	}
	return nil
}

// ReadMMCHeader reads and validates the 28-byte MMC header from r. Returns
// ErrInvalidFormat if the magic does not match.
func ReadMMCHeader(r io.Reader) (MMCHeader, error) {
	var hdr [mmcHeaderSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return MMCHeader{}, fmt.Errorf("container: reading MMC header: %w", err)
	}
	if !bytes.Equal(hdr[0:8], []byte(MMCMagic)) {
		return MMCHeader{}, ErrInvalidFormat
	}
	frameRate := binary.LittleEndian.Uint32(hdr[24:28])
	return MMCHeader{
		Width:        int(binary.LittleEndian.Uint64(hdr[8:16])),
		Height:       int(binary.LittleEndian.Uint64(hdr[16:24])),
		FrameRateNum: uint16(frameRate >> 16),
		FrameRateDen: uint16(frameRate),
	}, nil
}
