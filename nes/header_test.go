package nes

import (
	"errors"
	"testing"
)

func TestParseHeader_Valid(t *testing.T) {
	rom := makeRom(2, 1, true)
	header, warnings, err := ParseHeader(rom[:HeaderSize])
	if err != nil {
		t.Fatalf("Expected no error, got %s", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("Expected no warnings, got %v", warnings)
	}
	if header.PrgBanks != 2 {
		t.Fatalf("Expected 2 PRG banks, got %d", header.PrgBanks)
	}
	if header.ChrBanks != 1 {
		t.Fatalf("Expected 1 CHR bank, got %d", header.ChrBanks)
	}
	if !header.Trainer {
		t.Fatalf("Expected trainer flag set")
	}
	if header.PrgLength() != 2*PrgBankSize {
		t.Fatalf("Expected PRG length %d, got %d", 2*PrgBankSize, header.PrgLength())
	}
	if header.ChrLength() != ChrBankSize {
		t.Fatalf("Expected CHR length %d, got %d", ChrBankSize, header.ChrLength())
	}
	if header.TrainerLength() != TrainerSize {
		t.Fatalf("Expected trainer length %d, got %d", TrainerSize, header.TrainerLength())
	}
}

func TestParseHeader_BadMagic(t *testing.T) {
	rom := makeRom(1, 1, false)
	rom[3] = 0x00
	_, _, err := ParseHeader(rom[:HeaderSize])
	var sigerr *SignatureError
	if !errors.As(err, &sigerr) {
		t.Fatalf("Expected SignatureError, got %v", err)
	}
	// The other 12 bytes can't save a bad identifier
	_, _, err = ParseHeader(make([]byte, HeaderSize))
	if !errors.As(err, &sigerr) {
		t.Fatalf("Expected SignatureError for all zero header, got %v", err)
	}
}

func TestParseHeader_WrongLength(t *testing.T) {
	_, _, err := ParseHeader(make([]byte, HeaderSize-1))
	if err == nil {
		t.Fatalf("Expected error for short header")
	}
	_, _, err = ParseHeader(makeRom(1, 0, false))
	if err == nil {
		t.Fatalf("Expected error for overlong header input")
	}
}

func TestParseHeader_ReservedWarnings(t *testing.T) {
	rom := makeRom(1, 1, false)
	rom[7] = 0x0F
	_, warnings, err := ParseHeader(rom[:HeaderSize])
	if err != nil {
		t.Fatalf("Reserved flag bits must not be fatal, got %s", err)
	}
	if len(warnings) != 1 {
		t.Fatalf("Expected one warning for reserved flag bits, got %v", warnings)
	}
	rom = makeRom(1, 1, false)
	rom[12] = 1
	_, warnings, err = ParseHeader(rom[:HeaderSize])
	if err != nil {
		t.Fatalf("Reserved trailing bytes must not be fatal, got %s", err)
	}
	if len(warnings) != 1 {
		t.Fatalf("Expected one warning for reserved trailing bytes, got %v", warnings)
	}
}

func TestParseHeader_ZeroPrgWarns(t *testing.T) {
	rom := makeRom(0, 1, false)
	header, warnings, err := ParseHeader(rom[:HeaderSize])
	if err != nil {
		t.Fatalf("Zero PRG banks must only warn at decode, got %s", err)
	}
	if len(warnings) != 1 {
		t.Fatalf("Expected one warning for zero PRG banks, got %v", warnings)
	}
	if header.PrgLength() != 0 {
		t.Fatalf("Expected zero PRG length, got %d", header.PrgLength())
	}
}
