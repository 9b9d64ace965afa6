package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/randomouscrap98/nesgotools/nes"
)

// Scan any binary blob (disk image, archive dump, whatever) for embedded
// iNES headers and report what was found at each offset.

// scanHeaders returns the offset of every parseable iNES header in data.
// Matches too close to the end to hold a full header don't count.
func scanHeaders(data []byte) []int {
	var found []int
	offset := 0
	for {
		next := bytes.Index(data[offset:], nes.HeaderMagic)
		if next < 0 {
			break
		}
		offset += next
		if offset+nes.HeaderSize > len(data) {
			break
		}
		if _, _, err := nes.ParseHeader(data[offset : offset+nes.HeaderSize]); err == nil {
			found = append(found, offset)
		}
		offset++
	}
	return found
}

func main() {
	if len(os.Args) != 2 {
		fmt.Println("Usage: findroms <filename>")
		return
	}

	filename := os.Args[1]
	data, err := os.ReadFile(filename)
	if err != nil {
		fmt.Println("Error reading file:", err)
		return
	}

	offsets := scanHeaders(data)
	for _, offset := range offsets {
		header, warnings, err := nes.ParseHeader(data[offset : offset+nes.HeaderSize])
		if err != nil {
			continue
		}
		expected := nes.HeaderSize + header.TrainerLength() + header.PrgLength() + header.ChrLength()
		fmt.Printf("Offset 0x%08X: PRG %d banks, CHR %d banks, trainer %v, total %d bytes\n",
			offset, header.PrgBanks, header.ChrBanks, header.Trainer, expected)
		for _, w := range warnings {
			fmt.Printf("  (warning: %s)\n", w)
		}
	}

	fmt.Printf("Found %d iNES headers in %s\n", len(offsets), filename)
}
