package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/subav/owlvision"
)

func writeRawFrame(t *testing.T, dir string, name string, w, h int, fill func(i int) byte) string {
	t.Helper()
	img := owlvision.NewImage(w, h, nil)
	for i := range img.Bytes {
		img.Bytes[i] = fill(i)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, img.Bytes, 0o644); err != nil {
		t.Fatalf("writing raw frame: %v", err)
	}
	return path
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	dir := t.TempDir()
	rawPath := writeRawFrame(t, dir, "in.yuv", 16, 16, func(i int) byte { return byte(i) })
	ovcPath := filepath.Join(dir, "out.ovc")

	if err := runEncode([]string{"-w", "16", "-h", "16", "-o", ovcPath, rawPath}); err != nil {
		t.Fatalf("runEncode: %v", err)
	}

	rawOutPath := filepath.Join(dir, "out.yuv")
	if err := runDecode([]string{"-o", rawOutPath, ovcPath}); err != nil {
		t.Fatalf("runDecode: %v", err)
	}

	want, err := os.ReadFile(rawPath)
	if err != nil {
		t.Fatalf("reading original: %v", err)
	}
	got, err := os.ReadFile(rawOutPath)
	if err != nil {
		t.Fatalf("reading decoded: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("decoded frame does not match original")
	}
}

func TestSeqEncodeDecodeRoundTrip(t *testing.T) {
	dir := t.TempDir()
	const w, h = 8, 8

	img1 := owlvision.NewImage(w, h, nil)
	img2 := owlvision.NewImage(w, h, nil)
	for i := range img1.Bytes {
		img1.Bytes[i] = byte(i)
		img2.Bytes[i] = byte(255 - i)
	}
	rawPath := filepath.Join(dir, "frames.yuv")
	var raw bytes.Buffer
	raw.Write(img1.Bytes)
	raw.Write(img2.Bytes)
	if err := os.WriteFile(rawPath, raw.Bytes(), 0o644); err != nil {
		t.Fatalf("writing frames: %v", err)
	}

	mmcPath := filepath.Join(dir, "out.mmc")
	if err := runSeqEncode([]string{"-w", "8", "-h", "8", "-fps-num", "24", "-fps-den", "1", "-o", mmcPath, rawPath}); err != nil {
		t.Fatalf("runSeqEncode: %v", err)
	}

	outPath := filepath.Join(dir, "out.yuv")
	if err := runSeqDecode([]string{"-o", outPath, mmcPath}); err != nil {
		t.Fatalf("runSeqDecode: %v", err)
	}

	got, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading decoded frames: %v", err)
	}
	if !bytes.Equal(got, raw.Bytes()) {
		t.Fatalf("decoded frame sequence does not match original")
	}
}

func TestEncodeMissingDimensions(t *testing.T) {
	dir := t.TempDir()
	rawPath := writeRawFrame(t, dir, "in.yuv", 8, 8, func(i int) byte { return 0 })
	if err := runEncode([]string{rawPath}); err == nil {
		t.Fatalf("expected error when -w/-h are omitted")
	}
}
