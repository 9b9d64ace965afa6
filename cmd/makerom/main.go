package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/randomouscrap98/nesgotools/nes"
)

// Write a syntactically valid iNES file with obvious patterned bank data,
// for exercising the extraction tools.

func main() {
	if len(os.Args) != 4 {
		fmt.Println("Usage: makerom <filename> <prgBanks> <chrBanks>")
		return
	}

	prgBanks, err := strconv.Atoi(os.Args[2])
	if err != nil || prgBanks < 0 || prgBanks > 255 {
		fmt.Println("Error: prgBanks must be a number from 0 to 255")
		return
	}
	chrBanks, err := strconv.Atoi(os.Args[3])
	if err != nil || chrBanks < 0 || chrBanks > 255 {
		fmt.Println("Error: chrBanks must be a number from 0 to 255")
		return
	}

	filename := os.Args[1]
	file, err := os.Create(filename)
	if err != nil {
		fmt.Println("Error opening file:", err)
		return
	}
	defer file.Close()

	header := make([]byte, nes.HeaderSize)
	copy(header, nes.HeaderMagic)
	header[4] = uint8(prgBanks)
	header[5] = uint8(chrBanks)

	body := make([]byte, prgBanks*nes.PrgBankSize+chrBanks*nes.ChrBankSize)
	// Period 65536 so no bank ever looks like two identical halves
	for i := range body {
		body[i] = uint8(i) ^ uint8(i>>8)
	}

	if _, err = file.Write(header); err == nil {
		_, err = file.Write(body)
	}
	if err != nil {
		fmt.Println("Error writing file:", err)
		return
	}

	fmt.Printf("Wrote %d bytes to %s\n", len(header)+len(body), filename)
}
