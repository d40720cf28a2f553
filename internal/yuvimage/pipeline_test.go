package yuvimage

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testAlloc(size int) []byte {
	return make([]byte, size)
}

// TestS5SolidGrayRoundTrip checks spec S5: a 32x32 solid gray (128) Luma
// plane plus default chroma round-trips exactly (DC-only survives
// quantization with no rounding loss at a uniform plane).
func TestS5SolidGrayRoundTrip(t *testing.T) {
	const w, h = 32, 32
	img := NewImage(w, h, testAlloc)
	for i := range img.Bytes {
		img.Bytes[i] = 128
	}
	opts := Options{TileSize: 16}

	if err := Encode(img, opts); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if err := Decode(img, opts); err != nil {
		t.Fatalf("Decode: %v", err)
	}

	for i, b := range img.Bytes {
		if b != 128 {
			t.Fatalf("sample %d = %d, want 128", i, b)
		}
	}
}

func TestRoundTripVariousTileSizes(t *testing.T) {
	for _, n := range []int{4, 8, 16, 32} {
		w, h := 4*n, 2*n
		img := NewImage(w, h, testAlloc)
		for i := range img.Bytes {
			img.Bytes[i] = byte((i*37 + 11) % 256)
		}
		orig := append([]byte(nil), img.Bytes...)
		opts := Options{TileSize: n}

		if err := Encode(img, opts); err != nil {
			t.Fatalf("N=%d Encode: %v", n, err)
		}
		if err := Decode(img, opts); err != nil {
			t.Fatalf("N=%d Decode: %v", n, err)
		}

		maxDiff := 0
		for i := range img.Bytes {
			d := int(img.Bytes[i]) - int(orig[i])
			if d < 0 {
				d = -d
			}
			if d > maxDiff {
				maxDiff = d
			}
		}
		if maxDiff > 120 {
			t.Fatalf("N=%d: round trip diverged too far, max diff %d", n, maxDiff)
		}
	}
}

func TestUnsupportedGeometry(t *testing.T) {
	img := NewImage(10, 10, testAlloc)
	if err := Encode(img, Options{TileSize: 8}); err == nil {
		t.Fatalf("expected ErrUnsupportedGeometry for 10x10 with tile size 8")
	}
}

func TestPlaneGeometry(t *testing.T) {
	const w, h = 64, 32
	if got, want := Luma.Size(w, h), w*h; got != want {
		t.Fatalf("luma size = %d, want %d", got, want)
	}
	if got, want := ChromaBlue.Size(w, h), (w/2)*(h/2); got != want {
		t.Fatalf("chroma blue size = %d, want %d", got, want)
	}
	if got, want := ChromaBlue.Offset(w, h), w*h; got != want {
		t.Fatalf("chroma blue offset = %d, want %d", got, want)
	}
	if got, want := ChromaRed.Offset(w, h), w*h+(w*h)/4; got != want {
		t.Fatalf("chroma red offset = %d, want %d", got, want)
	}
	if got, want := TotalSize(w, h), w*h*3/2; got != want {
		t.Fatalf("total size = %d, want %d", got, want)
	}
}

// TestImageBytesDeepEqual exercises go-cmp for deep image-buffer comparison
// against a saved pre-encode copy (a solid image tiled with N=16, so each
// 16x16 chroma plane is a single tile and the round trip is exact; a
// corrupted transform would show up as a non-empty diff instead of passing
// vacuously).
func TestImageBytesDeepEqual(t *testing.T) {
	const w, h = 32, 32
	img := NewImage(w, h, testAlloc)
	for i := range img.Bytes {
		img.Bytes[i] = 96
	}
	orig := append([]byte(nil), img.Bytes...)
	opts := Options{TileSize: 16}

	if err := Encode(img, opts); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if err := Decode(img, opts); err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if diff := cmp.Diff(orig, img.Bytes); diff != "" {
		t.Fatalf("round trip diverged from original, got:\n%s", diff)
	}
}
