package main

import (
	"testing"

	"github.com/randomouscrap98/nesgotools/nes"
)

func testHeader(prgBanks, chrBanks uint8) []byte {
	header := make([]byte, nes.HeaderSize)
	copy(header, nes.HeaderMagic)
	header[4] = prgBanks
	header[5] = chrBanks
	return header
}

func TestScanHeaders(t *testing.T) {
	junk := make([]byte, 100)
	for i := range junk {
		junk[i] = 0xEE
	}
	data := make([]byte, 0, 300)
	data = append(data, junk...)
	data = append(data, testHeader(1, 1)...)
	data = append(data, junk...)
	data = append(data, testHeader(2, 0)...)
	data = append(data, junk...)

	offsets := scanHeaders(data)
	if len(offsets) != 2 {
		t.Fatalf("Expected 2 headers, got %d (%v)", len(offsets), offsets)
	}
	if offsets[0] != 100 {
		t.Fatalf("Expected first header at 100, got %d", offsets[0])
	}
	if offsets[1] != 216 {
		t.Fatalf("Expected second header at 216, got %d", offsets[1])
	}
}

func TestScanHeaders_NoneAndTruncated(t *testing.T) {
	if offsets := scanHeaders([]byte("no magic anywhere in here")); len(offsets) != 0 {
		t.Fatalf("Expected no headers in plain text, got %v", offsets)
	}
	// A magic right at the end with no room for a full header doesn't count
	data := append(make([]byte, 50), nes.HeaderMagic...)
	if offsets := scanHeaders(data); len(offsets) != 0 {
		t.Fatalf("Expected no headers for truncated match, got %v", offsets)
	}
}
