package nes

import "fmt"

// SignatureError means the first four bytes were not the iNES identifier.
// Nothing else in the file can be trusted after this.
type SignatureError struct {
	Found []byte
}

func (e *SignatureError) Error() string {
	return fmt.Sprintf("invalid iNES identifier: % X", e.Found)
}

// SizeMismatchError means the part sizes declared in the header don't add
// up to the actual file size. Carries both so callers can report them.
type SizeMismatchError struct {
	Actual   int64
	Expected int64
	Trainer  int64
	Prg      int64
	Chr      int64
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf(
		"file is %d bytes; according to the header, it should be %d bytes (= header %d + trainer %d + PRG-ROM %d + CHR-ROM %d)",
		e.Actual, e.Expected, int64(HeaderSize), e.Trainer, e.Prg, e.Chr)
}

// RegionNotFoundError means a requested part has length zero in this file
// (no trainer flag, or a zero bank count).
type RegionNotFoundError struct {
	Kind Region
}

func (e *RegionNotFoundError) Error() string {
	return fmt.Sprintf("no %s in file", e.Kind)
}
