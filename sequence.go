package owlvision

import (
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/subav/owlvision/internal/container"
	"github.com/subav/owlvision/internal/yuvimage"
)

// Sequence is a decoded MacaqueMixture frame sequence: a fixed width/height,
// a frame rate, and a flat buffer of concatenated raw YUV420p frames. Unlike
// OVC still images, MMC frames are not MaxFOG entropy coded.
type Sequence struct {
	Width, Height int
	frameRateNum  uint16
	frameRateDen  uint16
	raw           []byte
	frameSize     int
}

// Frequency returns the sequence's frame rate in frames per second, as
// SbMacaqueMixtureCoreSequence::GetFrequency does in the reference design.
func (s *Sequence) Frequency() float64 {
	if s.frameRateDen == 0 {
		return 0
	}
	return float64(s.frameRateNum) / float64(s.frameRateDen)
}

// FramePeriod returns the time duration between two consecutive frames, the
// inverse of Frequency.
func (s *Sequence) FramePeriod() time.Duration {
	freq := s.Frequency()
	if freq == 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / freq)
}

// FrameCount returns the number of complete frames held by the sequence.
func (s *Sequence) FrameCount() int {
	if s.frameSize == 0 {
		return 0
	}
	return len(s.raw) / s.frameSize
}

// DecodeSequence reads an MMC container from r: the fixed header followed by
// a concatenation of raw YUV420p frames. The frame payload is buffered in
// memory since MMC carries no per-frame length prefix; callers needing
// streaming decode should read frames directly via ReadMMCHeader and
// yuvimage instead.
func DecodeSequence(r io.Reader) (*Sequence, error) {
	hdr, err := container.ReadMMCHeader(r)
	if err != nil {
		return nil, wrapIOError("decoding MMC header", err)
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, wrapIOError("reading MMC frame data", err)
	}
	frameSize := yuvimage.TotalSize(hdr.Width, hdr.Height)
	return &Sequence{
		Width:        hdr.Width,
		Height:       hdr.Height,
		frameRateNum: hdr.FrameRateNum,
		frameRateDen: hdr.FrameRateDen,
		raw:          raw,
		frameSize:    frameSize,
	}, nil
}

// EncodeSequence writes an MMC header followed by the raw bytes of each
// frame in frames, in order. Every frame must have the given width/height.
func EncodeSequence(w io.Writer, frames []*Image, width, height int, frameRateNum, frameRateDen uint16) error {
	hdr := container.MMCHeader{
		Width:        width,
		Height:       height,
		FrameRateNum: frameRateNum,
		FrameRateDen: frameRateDen,
	}
	if err := container.WriteMMCHeader(w, hdr); err != nil {
		return wrapIOError("encoding MMC header", err)
	}
	want := yuvimage.TotalSize(width, height)
	for i, f := range frames {
		if len(f.Bytes) != want {
			return fmt.Errorf("owlvision: frame %d has %d bytes, want %d", i, len(f.Bytes), want)
		}
		if _, err := w.Write(f.Bytes); err != nil {
			return wrapIOError("writing MMC frame", err)
		}
	}
	return nil
}

// Frames decodes every frame in the sequence into an Image, allocating each
// via alloc (nil defaults to internal/pool). Frames are independent raw
// buffers, so decoding fans out one goroutine per frame with an errgroup
// completion barrier.
func (s *Sequence) Frames(alloc Allocator) ([]*Image, error) {
	alloc = defaultAllocator(alloc)
	n := s.FrameCount()
	if len(s.raw)%s.frameSize != 0 {
		return nil, fmt.Errorf("owlvision: %w: frame data length %d not a multiple of frame size %d",
			ErrCorruptPayload, len(s.raw), s.frameSize)
	}

	images := make([]*Image, n)
	var g errgroup.Group
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			img := yuvimage.NewImage(s.Width, s.Height, alloc)
			copy(img.Bytes, s.raw[i*s.frameSize:(i+1)*s.frameSize])
			images[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return images, nil
}
