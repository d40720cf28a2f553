// Package owlvision implements the OwlVision still-image codec and its
// MacaqueMixture video-sequence counterpart: a block-transform DCT pipeline
// over 4:2:0 planar YUV, quantized per plane class, and entropy packed with
// the MaxFOG byte coder.
//
// The package supports:
//   - Still-image encode/decode (OVC container)
//   - Raw YUV420p frame-sequence encode/decode (MMC container)
//   - Injectable byte allocators for both paths
//
// Basic usage for still images:
//
//	img, err := owlvision.Decode(reader, nil, owlvision.DefaultOptions())
//	err := owlvision.Encode(writer, img, owlvision.DefaultOptions())
//
// Basic usage for sequences:
//
//	seq, err := owlvision.DecodeSequence(reader)
//	frames, err := seq.Frames(nil)
package owlvision
