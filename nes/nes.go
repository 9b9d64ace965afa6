package nes

import (
	"crypto/md5"
	"encoding/hex"
)

const (
	HeaderSize  = 16
	TrainerSize = 512 // if present
	PrgBankSize = 16 * 1024
	ChrBankSize = 8 * 1024

	// maximum size of buffer when reading or writing file data, in bytes
	FileBufferMaxSize = 1 << 20
)

// The iNES identifier: "NES" followed by an EOF character
var HeaderMagic = []byte{0x4E, 0x45, 0x53, 0x1A}

// One of the four extractable parts of an iNES file, in file order
type Region int

const (
	RegionHeader Region = iota
	RegionTrainer
	RegionPrg
	RegionChr
)

func (r Region) String() string {
	switch r {
	case RegionHeader:
		return "header"
	case RegionTrainer:
		return "Trainer"
	case RegionPrg:
		return "PRG-ROM"
	case RegionChr:
		return "CHR-ROM"
	}
	return "unknown"
}

// Produce an md5 string from given data (a simple shortcut)
func Md5String(data []byte) string {
	hash := md5.Sum(data)
	return hex.EncodeToString(hash[:])
}
