package owlvision

import (
	"bytes"
	"testing"
	"time"
)

func TestSequenceRoundTrip(t *testing.T) {
	const w, h = 16, 16
	const frameCount = 4

	frames := make([]*Image, frameCount)
	for i := range frames {
		img := NewImage(w, h, nil)
		for j := range img.Bytes {
			img.Bytes[j] = byte((i*31 + j) % 256)
		}
		frames[i] = img
	}

	var buf bytes.Buffer
	if err := EncodeSequence(&buf, frames, w, h, 30, 1); err != nil {
		t.Fatalf("EncodeSequence: %v", err)
	}

	seq, err := DecodeSequence(&buf)
	if err != nil {
		t.Fatalf("DecodeSequence: %v", err)
	}
	if seq.Width != w || seq.Height != h {
		t.Fatalf("dimensions = %dx%d, want %dx%d", seq.Width, seq.Height, w, h)
	}
	if seq.FrameCount() != frameCount {
		t.Fatalf("FrameCount = %d, want %d", seq.FrameCount(), frameCount)
	}
	if got, want := seq.Frequency(), 30.0; got != want {
		t.Fatalf("Frequency = %v, want %v", got, want)
	}
	if got, want := seq.FramePeriod(), time.Second/30; got != want {
		t.Fatalf("FramePeriod = %v, want %v", got, want)
	}

	decoded, err := seq.Frames(nil)
	if err != nil {
		t.Fatalf("Frames: %v", err)
	}
	if len(decoded) != frameCount {
		t.Fatalf("decoded %d frames, want %d", len(decoded), frameCount)
	}
	for i, f := range decoded {
		if !bytes.Equal(f.Bytes, frames[i].Bytes) {
			t.Fatalf("frame %d mismatch", i)
		}
	}
}

func TestSequenceZeroFrequencyGuards(t *testing.T) {
	s := &Sequence{Width: 4, Height: 4, frameRateNum: 0, frameRateDen: 0}
	if got := s.Frequency(); got != 0 {
		t.Fatalf("Frequency = %v, want 0", got)
	}
	if got := s.FramePeriod(); got != 0 {
		t.Fatalf("FramePeriod = %v, want 0", got)
	}
}
