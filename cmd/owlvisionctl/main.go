// Command owlvisionctl encodes and decodes OwlVision still images and
// MacaqueMixture frame sequences from the command line.
//
// Usage:
//
//	owlvisionctl encode [options] <input.yuv>      raw YUV420p → OVC
//	owlvisionctl decode [options] <input.ovc>       OVC → raw YUV420p
//	owlvisionctl seq-encode [options] <input.yuv>   raw YUV420p frames → MMC
//	owlvisionctl seq-decode [options] <input.mmc>   MMC → raw YUV420p frames
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/subav/owlvision"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "encode":
		err = runEncode(os.Args[2:])
	case "decode":
		err = runDecode(os.Args[2:])
	case "seq-encode":
		err = runSeqEncode(os.Args[2:])
	case "seq-decode":
		err = runSeqDecode(os.Args[2:])
	case "-h", "-help", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "owlvisionctl: unknown command %q\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "owlvisionctl: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage:
  owlvisionctl encode -w W -h H [options] <input.yuv>      raw YUV420p → OVC
  owlvisionctl decode [options] <input.ovc>                 OVC → raw YUV420p
  owlvisionctl seq-encode -w W -h H [options] <input.yuv>   raw frames → MMC
  owlvisionctl seq-decode [options] <input.mmc>             MMC → raw frames

Use "-" as input to read from stdin, "-o -" to write to stdout.
`)
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" || path == "" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func runEncode(args []string) error {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	width := fs.Int("w", 0, "image width in pixels")
	height := fs.Int("h", 0, "image height in pixels")
	tile := fs.Int("tile", 8, "tile size (4, 8, 16, or 32)")
	output := fs.String("o", "", `output path ("-" for stdout)`)

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("encode: missing input file")
	}
	if *width <= 0 || *height <= 0 {
		return fmt.Errorf("encode: -w and -h are required")
	}

	in, err := openInput(fs.Arg(0))
	if err != nil {
		return err
	}
	defer in.Close()

	img := owlvision.NewImage(*width, *height, nil)
	if _, err := io.ReadFull(in, img.Bytes); err != nil {
		return fmt.Errorf("encode: reading raw frame: %w", err)
	}

	out, err := openOutput(*output)
	if err != nil {
		return err
	}
	if err := owlvision.Encode(out, img, owlvision.Options{TileSize: *tile}); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func runDecode(args []string) error {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	tile := fs.Int("tile", 8, "tile size (4, 8, 16, or 32)")
	output := fs.String("o", "", `output path ("-" for stdout)`)

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("decode: missing input file")
	}

	in, err := openInput(fs.Arg(0))
	if err != nil {
		return err
	}
	defer in.Close()

	img, err := owlvision.Decode(in, nil, owlvision.Options{TileSize: *tile})
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	out, err := openOutput(*output)
	if err != nil {
		return err
	}
	if _, err := out.Write(img.Bytes); err != nil {
		out.Close()
		return fmt.Errorf("decode: writing raw frame: %w", err)
	}
	return out.Close()
}

func runSeqEncode(args []string) error {
	fs := flag.NewFlagSet("seq-encode", flag.ContinueOnError)
	width := fs.Int("w", 0, "frame width in pixels")
	height := fs.Int("h", 0, "frame height in pixels")
	num := fs.Int("fps-num", 30, "frame rate numerator")
	den := fs.Int("fps-den", 1, "frame rate denominator")
	output := fs.String("o", "", `output path ("-" for stdout)`)

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("seq-encode: missing input file")
	}
	if *width <= 0 || *height <= 0 {
		return fmt.Errorf("seq-encode: -w and -h are required")
	}

	in, err := openInput(fs.Arg(0))
	if err != nil {
		return err
	}
	defer in.Close()

	var frames []*owlvision.Image
	for {
		img := owlvision.NewImage(*width, *height, nil)
		if _, err := io.ReadFull(in, img.Bytes); err != nil {
			if err == io.EOF {
				break
			}
			return fmt.Errorf("seq-encode: reading frame %d: %w", len(frames), err)
		}
		frames = append(frames, img)
	}

	out, err := openOutput(*output)
	if err != nil {
		return err
	}
	if err := owlvision.EncodeSequence(out, frames, *width, *height, uint16(*num), uint16(*den)); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func runSeqDecode(args []string) error {
	fs := flag.NewFlagSet("seq-decode", flag.ContinueOnError)
	output := fs.String("o", "", `output path ("-" for stdout)`)

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("seq-decode: missing input file")
	}

	in, err := openInput(fs.Arg(0))
	if err != nil {
		return err
	}
	defer in.Close()

	seq, err := owlvision.DecodeSequence(in)
	if err != nil {
		return fmt.Errorf("seq-decode: %w", err)
	}
	frames, err := seq.Frames(nil)
	if err != nil {
		return fmt.Errorf("seq-decode: %w", err)
	}

	out, err := openOutput(*output)
	if err != nil {
		return err
	}
	for i, f := range frames {
		if _, err := out.Write(f.Bytes); err != nil {
			out.Close()
			return fmt.Errorf("seq-decode: writing frame %d: %w", i, err)
		}
	}
	return out.Close()
}
