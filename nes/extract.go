package nes

import (
	"fmt"
	"io"
)

// Extract copies one part of an iNES file to the sink, returning the
// number of bytes written. The header is decoded and the layout validated
// before any byte is copied, so a bad file never produces partial output.
// PRG-ROM and CHR-ROM are collapsed to their minimal non-redundant prefix
// first; the header and trainer always copy at their declared length.
func Extract(source io.ReaderAt, size int64, kind Region, sink io.Writer) (int64, error) {
	if size < HeaderSize {
		return 0, &SizeMismatchError{Actual: size, Expected: HeaderSize}
	}
	var raw [HeaderSize]byte
	if _, err := source.ReadAt(raw[:], 0); err != nil {
		return 0, fmt.Errorf("couldn't read iNES header: %w", err)
	}
	header, _, err := ParseHeader(raw[:])
	if err != nil {
		return 0, err
	}
	layout, err := ResolveLayout(header, size)
	if err != nil {
		return 0, err
	}
	offset, length := layout.Region(kind)
	if length == 0 {
		return 0, &RegionNotFoundError{Kind: kind}
	}
	if kind == RegionPrg || kind == RegionChr {
		length, err = MinimalLength(source, offset, length)
		if err != nil {
			return 0, err
		}
	}
	return copyRange(source, offset, length, sink)
}

// copyRange streams length bytes starting at offset into the sink, in
// chunks of at most FileBufferMaxSize. The final chunk is clipped to the
// remaining byte count. Any read or write error aborts immediately.
func copyRange(source io.ReaderAt, offset, length int64, sink io.Writer) (int64, error) {
	bufsize := length
	if bufsize > FileBufferMaxSize {
		bufsize = FileBufferMaxSize
	}
	buf := make([]byte, bufsize)
	var written int64
	for written < length {
		chunk := length - written
		if chunk > bufsize {
			chunk = bufsize
		}
		if _, err := source.ReadAt(buf[:chunk], offset+written); err != nil {
			return written, fmt.Errorf("read failed at %d: %w", offset+written, err)
		}
		n, err := sink.Write(buf[:chunk])
		written += int64(n)
		if err != nil {
			return written, fmt.Errorf("write failed: %w", err)
		}
	}
	return written, nil
}
