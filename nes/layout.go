package nes

// Layout maps every part of an iNES file to its absolute byte range. It is
// derived once from a parsed header plus the file's total size and is
// read-only afterwards. Parts are contiguous in fixed order: header,
// trainer, PRG-ROM, CHR-ROM, with no gaps or padding.
type Layout struct {
	trainer int64
	prg     int64
	chr     int64
}

// ResolveLayout validates the header's declared sizes against the actual
// file size and returns the resulting layout. A mismatch fails with
// *SizeMismatchError; extraction cannot proceed on an inconsistent file.
func ResolveLayout(header *Header, fileSize int64) (*Layout, error) {
	layout := &Layout{
		trainer: header.TrainerLength(),
		prg:     header.PrgLength(),
		chr:     header.ChrLength(),
	}
	expected := layout.TotalSize()
	if fileSize != expected {
		return nil, &SizeMismatchError{
			Actual:   fileSize,
			Expected: expected,
			Trainer:  layout.trainer,
			Prg:      layout.prg,
			Chr:      layout.chr,
		}
	}
	return layout, nil
}

// Region returns the absolute offset and length of the given part. A zero
// length means the part is not present in this file.
func (l *Layout) Region(kind Region) (int64, int64) {
	switch kind {
	case RegionHeader:
		return 0, HeaderSize
	case RegionTrainer:
		return HeaderSize, l.trainer
	case RegionPrg:
		return HeaderSize + l.trainer, l.prg
	case RegionChr:
		return HeaderSize + l.trainer + l.prg, l.chr
	}
	return 0, 0
}

func (l *Layout) TotalSize() int64 {
	return HeaderSize + l.trainer + l.prg + l.chr
}
