package container

import (
	"bytes"
	"errors"
	"testing"

	"github.com/subav/owlvision/internal/yuvimage"
)

func alloc(size int) []byte {
	return make([]byte, size)
}

func TestOVCRoundTrip(t *testing.T) {
	const w, h = 16, 16
	img := yuvimage.NewImage(w, h, alloc)
	for i := range img.Bytes {
		img.Bytes[i] = byte((i*5 + 3) % 256)
	}
	opts := yuvimage.Options{TileSize: 8}

	var buf bytes.Buffer
	if err := WriteOVC(&buf, img, opts); err != nil {
		t.Fatalf("WriteOVC: %v", err)
	}

	got, err := ReadOVC(&buf, alloc, opts)
	if err != nil {
		t.Fatalf("ReadOVC: %v", err)
	}
	if got.Width != w || got.Height != h {
		t.Fatalf("dimensions = %dx%d, want %dx%d", got.Width, got.Height, w, h)
	}
}

// TestS6BadMagic checks spec S6: a file starting with "SBAD-OVC" (one letter
// different) yields InvalidFormat from the reader.
func TestS6BadMagic(t *testing.T) {
	data := []byte("SBAD-OVC" + "\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00")
	_, err := ReadOVC(bytes.NewReader(data), alloc, yuvimage.DefaultOptions())
	if !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("got %v, want ErrInvalidFormat", err)
	}
}

func TestMMCHeaderRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	want := MMCHeader{Width: 320, Height: 240, FrameRateNum: 30, FrameRateDen: 1}
	if err := WriteMMCHeader(&buf, want); err != nil {
		t.Fatalf("WriteMMCHeader: %v", err)
	}
	got, err := ReadMMCHeader(&buf)
	if err != nil {
		t.Fatalf("ReadMMCHeader: %v", err)
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestMMCBadMagic(t *testing.T) {
	data := bytes.Repeat([]byte{0}, mmcHeaderSize)
	copy(data, "SBAD-MMC")
	_, err := ReadMMCHeader(bytes.NewReader(data))
	if !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("got %v, want ErrInvalidFormat", err)
	}
}
