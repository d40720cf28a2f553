// Package container implements the OVC (still image) and MMC (sequence)
// header framing: magic validation, little-endian size fields, and wiring
// the yuvimage pipeline and MaxFOG codec into end-to-end encode/decode.
package container

import "errors"

// ErrInvalidFormat is returned when a container's magic bytes do not match
// the expected signature.
var ErrInvalidFormat = errors.New("container: invalid magic")
