package nes

import (
	"bytes"
	"fmt"
)

// Header holds the decoded fields of the 16 byte iNES header.
type Header struct {
	PrgBanks uint8 // 16 KiB units
	ChrBanks uint8 // 8 KiB units
	Trainer  bool
}

func (h *Header) TrainerLength() int64 {
	if h.Trainer {
		return TrainerSize
	}
	return 0
}

func (h *Header) PrgLength() int64 {
	return int64(h.PrgBanks) * PrgBankSize
}

func (h *Header) ChrLength() int64 {
	return int64(h.ChrBanks) * ChrBankSize
}

// ParseHeader decodes an iNES header from exactly HeaderSize bytes. The
// second return value is a list of non-fatal warnings: reserved bits set,
// or a zero PRG bank count. A bad identifier is the only fatal condition;
// a zero bank count only becomes an error later, when that part is
// actually requested for extraction.
func ParseHeader(raw []byte) (*Header, []string, error) {
	if len(raw) != HeaderSize {
		return nil, nil, fmt.Errorf("iNES header must be %d bytes, got %d", HeaderSize, len(raw))
	}
	if !bytes.Equal(raw[:4], HeaderMagic) {
		return nil, nil, &SignatureError{Found: append([]byte(nil), raw[:4]...)}
	}
	header := &Header{
		PrgBanks: raw[4],
		ChrBanks: raw[5],
		Trainer:  raw[6]&0x04 == 0x04,
	}
	var warnings []string
	reserved := raw[7]&0x0F != 0
	for _, b := range raw[8:HeaderSize] {
		if b != 0 {
			reserved = true
			break
		}
	}
	if reserved {
		warnings = append(warnings, "reserved header bits are nonzero")
	}
	if header.PrgBanks == 0 {
		warnings = append(warnings, "header declares no PRG-ROM")
	}
	return header, warnings, nil
}
