package owlvision

import (
	"errors"
	"fmt"

	"github.com/subav/owlvision/internal/container"
	"github.com/subav/owlvision/internal/maxfog"
	"github.com/subav/owlvision/internal/yuvimage"
)

// Errors returned by the top-level encode/decode operations. Each is the
// corresponding internal package's sentinel value itself, so errors.Is works
// against either the public or internal name.
var (
	// ErrInvalidFormat is returned when a container's magic bytes do not
	// match the expected OVC/MMC signature.
	ErrInvalidFormat = container.ErrInvalidFormat

	// ErrCorruptPayload is returned when a MaxFOG payload's bits run out
	// before the grammar yields the expected number of bytes. A truncated
	// header, alphabet or payload is reported as the wrapped reader error
	// (for example io.ErrUnexpectedEOF) instead.
	ErrCorruptPayload = maxfog.ErrCorruptPayload

	// ErrUnsupportedGeometry is returned when an image's width or height is
	// not divisible by the chosen tile size for every plane.
	ErrUnsupportedGeometry = yuvimage.ErrUnsupportedGeometry

	// ErrAllocation names the case of an injected Allocator returning a
	// buffer smaller than requested. No function in this package returns
	// it: NewImage slices the allocator's buffer to the requested size and
	// panics if the buffer is shorter.
	ErrAllocation = errors.New("owlvision: allocator returned undersized buffer")
)

// wrapIOError wraps an underlying reader/writer error with context. It does
// not introduce a new sentinel: callers use errors.Is against the wrapped
// io.EOF/io.ErrUnexpectedEOF/etc. cause, matching the design notes' stance
// that "IOError" is really "whatever the underlying stream returned."
func wrapIOError(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("owlvision: %s: %w", op, err)
}
