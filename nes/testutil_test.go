package nes

// Test ROMs are built in memory; a bytes.Reader stands in for the source
// file everywhere an io.ReaderAt is needed.

// Fill with a pattern whose period is 65536, so no bank-sized range ever
// looks like two identical halves by accident.
func patternFill(data []byte) {
	for i := range data {
		data[i] = uint8(i) ^ uint8(i>>8)
	}
}

// makeRom builds a syntactically valid iNES image with patterned body data.
func makeRom(prgBanks, chrBanks uint8, trainer bool) []byte {
	header := make([]byte, HeaderSize)
	copy(header, HeaderMagic)
	header[4] = prgBanks
	header[5] = chrBanks
	if trainer {
		header[6] |= 0x04
	}
	bodySize := int(prgBanks)*PrgBankSize + int(chrBanks)*ChrBankSize
	if trainer {
		bodySize += TrainerSize
	}
	body := make([]byte, bodySize)
	patternFill(body)
	return append(header, body...)
}
