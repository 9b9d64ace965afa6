package nes

import (
	"bytes"
	"fmt"
	"io"
)

// Some ROMs pad PRG or CHR out to a bank boundary by repeating a smaller
// chunk over and over; a range like that carries no information past the
// first copy. A range is "splittable" when its length is a power of two
// and its two halves are byte-identical.
const (
	minSplitExponent = 5  // 32 bytes, two CHR tiles
	maxSplitExponent = 21 // 2 MiB, maximum PRG size
)

// splittable reports whether the range can be cut in half without losing
// data. Halves are compared in synchronized chunks of at most
// FileBufferMaxSize bytes so huge parts never get loaded whole, and the
// scan stops at the first differing chunk.
func splittable(source io.ReaderAt, start, length int64) (bool, error) {
	if length < 1<<minSplitExponent || length > 1<<maxSplitExponent {
		return false, nil
	}
	if length&(length-1) != 0 {
		return false, nil
	}
	half := length / 2
	bufsize := half
	if bufsize > FileBufferMaxSize {
		bufsize = FileBufferMaxSize
	}
	first := make([]byte, bufsize)
	second := make([]byte, bufsize)
	for done := int64(0); done < half; done += bufsize {
		chunk := half - done
		if chunk > bufsize {
			chunk = bufsize
		}
		if _, err := source.ReadAt(first[:chunk], start+done); err != nil {
			return false, fmt.Errorf("read failed at %d: %w", start+done, err)
		}
		if _, err := source.ReadAt(second[:chunk], start+half+done); err != nil {
			return false, fmt.Errorf("read failed at %d: %w", start+half+done, err)
		}
		if !bytes.Equal(first[:chunk], second[:chunk]) {
			return false, nil
		}
	}
	return true, nil
}

// MinimalLength halves the range for as long as it stays splittable and
// returns the final length: the minimal non-redundant prefix. Lengths that
// were never splittable come back unchanged, so the function is idempotent
// and never grows its input.
func MinimalLength(source io.ReaderAt, start, length int64) (int64, error) {
	for {
		ok, err := splittable(source, start, length)
		if err != nil {
			return 0, err
		}
		if !ok {
			return length, nil
		}
		length /= 2
	}
}
