package container

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/subav/owlvision/internal/maxfog"
	"github.com/subav/owlvision/internal/yuvimage"
)

// OVCMagic is the 8-byte signature of the OwlVision still-image container.
const OVCMagic = "SBAV-OVC"

const ovcHeaderSize = 8 + 8 + 8 // magic + width + height

// WriteOVC runs the encode pipeline over img, then writes the OVC header
// followed by the MaxFOG-encoded packed buffer to w.
func WriteOVC(w io.Writer, img *yuvimage.Image, opts yuvimage.Options) error {
	if err := yuvimage.Encode(img, opts); err != nil {
		return err
	}

	var hdr [ovcHeaderSize]byte
	copy(hdr[0:8], OVCMagic)
	binary.LittleEndian.PutUint64(hdr[8:16], uint64(img.Width))
	binary.LittleEndian.PutUint64(hdr[16:24], uint64(img.Height))
	if _, err := w.Write(hdr[:]); err != nil {
		return fmt.Errorf("container: writing OVC header: %w", err)
	}

	if err := maxfog.Encode(w, img.Bytes); err != nil {
		return fmt.Errorf("container: encoding OVC payload: %w", err)
	}
	return nil
}

// ReadOVC verifies the OVC magic, reads the image dimensions, allocates an
// Image via alloc, decodes the MaxFOG payload into it, and runs the decode
// pipeline. Returns ErrInvalidFormat if the magic does not match.
func ReadOVC(r io.Reader, alloc yuvimage.Allocator, opts yuvimage.Options) (*yuvimage.Image, error) {
	var hdr [ovcHeaderSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("container: reading OVC header: %w", err)
	}
	if !bytes.Equal(hdr[0:8], []byte(OVCMagic)) {
		return nil, ErrInvalidFormat
	}
	w := int(binary.LittleEndian.Uint64(hdr[8:16]))
	h := int(binary.LittleEndian.Uint64(hdr[16:24]))

	img := yuvimage.NewImage(w, h, alloc)
	data, err := maxfog.Decode(r, len(img.Bytes))
	if err != nil {
		return nil, fmt.Errorf("container: decoding OVC payload: %w", err)
	}
	copy(img.Bytes, data)

	if err := yuvimage.Decode(img, opts); err != nil {
		return nil, err
	}
	return img, nil
}
