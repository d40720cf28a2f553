package maxfog

import "errors"

// ErrCorruptPayload is returned when the bit grammar cannot be parsed before
// the declared encoded_bit_count or output length is reached.
var ErrCorruptPayload = errors.New("maxfog: corrupt payload")
