package owlvision

import (
	"io"

	"github.com/subav/owlvision/internal/container"
	"github.com/subav/owlvision/internal/pool"
	"github.com/subav/owlvision/internal/yuvimage"
)

// Allocator matches the injected-allocator contract: given a byte count, it
// returns an owned buffer of at least that length. A nil Allocator passed to
// any function in this package defaults to internal/pool's bucketed
// sync.Pool allocator.
type Allocator = yuvimage.Allocator

// Deallocator returns a buffer obtained from an Allocator back to its pool.
// A nil Deallocator passed to Release defaults to internal/pool's Put.
type Deallocator func([]byte)

// Options configures the tile size used by the encode/decode pipeline.
type Options = yuvimage.Options

// DefaultOptions returns the reference design's default 8x8 tiling.
func DefaultOptions() Options {
	return yuvimage.DefaultOptions()
}

// Image is a packed YUV 4:2:0 still image.
type Image = yuvimage.Image

func defaultAllocator(alloc Allocator) Allocator {
	if alloc != nil {
		return alloc
	}
	return pool.Get
}

func defaultDeallocator(dealloc Deallocator) Deallocator {
	if dealloc != nil {
		return dealloc
	}
	return pool.Put
}

// NewImage allocates an Image of the given pixel size via alloc. A nil alloc
// defaults to internal/pool.
func NewImage(w, h int, alloc Allocator) *Image {
	return yuvimage.NewImage(w, h, defaultAllocator(alloc))
}

// Release returns an Image's backing buffer to dealloc. A nil dealloc
// defaults to internal/pool.Put.
func Release(img *Image, dealloc Deallocator) {
	defaultDeallocator(dealloc)(img.Bytes)
}

// Encode runs the OwlVision DCT/quantize/MaxFOG pipeline over img and writes
// the resulting OVC container to w.
func Encode(w io.Writer, img *Image, opts Options) error {
	if err := container.WriteOVC(w, img, opts); err != nil {
		return wrapIOError("encoding OVC", err)
	}
	return nil
}

// Decode reads an OVC container from r, allocating the resulting Image via
// alloc (nil defaults to internal/pool).
func Decode(r io.Reader, alloc Allocator, opts Options) (*Image, error) {
	img, err := container.ReadOVC(r, defaultAllocator(alloc), opts)
	if err != nil {
		return nil, wrapIOError("decoding OVC", err)
	}
	return img, nil
}
