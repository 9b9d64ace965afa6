package nes

import (
	"errors"
	"testing"
)

func mustLayout(t *testing.T, rom []byte) *Layout {
	header, _, err := ParseHeader(rom[:HeaderSize])
	if err != nil {
		t.Fatalf("Error parsing header: %s", err)
	}
	layout, err := ResolveLayout(header, int64(len(rom)))
	if err != nil {
		t.Fatalf("Error resolving layout: %s", err)
	}
	return layout
}

func checkRegion(t *testing.T, layout *Layout, kind Region, offset, length int64) {
	gotOffset, gotLength := layout.Region(kind)
	if gotOffset != offset || gotLength != length {
		t.Fatalf("%s: expected (%d, %d), got (%d, %d)", kind, offset, length, gotOffset, gotLength)
	}
}

func TestResolveLayout_Offsets(t *testing.T) {
	rom := makeRom(2, 1, true)
	layout := mustLayout(t, rom)
	checkRegion(t, layout, RegionHeader, 0, HeaderSize)
	checkRegion(t, layout, RegionTrainer, HeaderSize, TrainerSize)
	checkRegion(t, layout, RegionPrg, HeaderSize+TrainerSize, 2*PrgBankSize)
	checkRegion(t, layout, RegionChr, HeaderSize+TrainerSize+2*PrgBankSize, ChrBankSize)
	if layout.TotalSize() != int64(len(rom)) {
		t.Fatalf("Expected total size %d, got %d", len(rom), layout.TotalSize())
	}
}

func TestResolveLayout_NoTrainer(t *testing.T) {
	rom := makeRom(1, 1, false)
	layout := mustLayout(t, rom)
	checkRegion(t, layout, RegionTrainer, HeaderSize, 0)
	checkRegion(t, layout, RegionPrg, HeaderSize, PrgBankSize)
	checkRegion(t, layout, RegionChr, HeaderSize+PrgBankSize, ChrBankSize)
}

func TestResolveLayout_SizeMismatch(t *testing.T) {
	rom := makeRom(1, 1, false)
	header, _, err := ParseHeader(rom[:HeaderSize])
	if err != nil {
		t.Fatalf("Error parsing header: %s", err)
	}
	for _, size := range []int64{int64(len(rom)) - 1, int64(len(rom)) + 1, HeaderSize} {
		_, err = ResolveLayout(header, size)
		var mismatch *SizeMismatchError
		if !errors.As(err, &mismatch) {
			t.Fatalf("Expected SizeMismatchError for size %d, got %v", size, err)
		}
		if mismatch.Actual != size {
			t.Fatalf("Expected actual size %d in error, got %d", size, mismatch.Actual)
		}
		if mismatch.Expected != int64(len(rom)) {
			t.Fatalf("Expected expected size %d in error, got %d", len(rom), mismatch.Expected)
		}
	}
}
