package nes

import (
	"fmt"
	"image/color"
	"os"

	"github.com/mazznoer/csscolorparser"
	"github.com/pelletier/go-toml"
)

// CHR pixels only ever take palette indexes 0-3, so a render palette is
// always exactly four colors.
const PaletteColors = 4

// Default render palette: a plain grayscale ramp from dark to light
var DefaultPalette = color.Palette{
	color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF},
	color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xFF},
	color.RGBA{R: 0xAA, G: 0xAA, B: 0xAA, A: 0xFF},
	color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
}

// ParsePalette turns four CSS color strings (names, hex, rgb(), etc) into
// a render palette, index 0 first.
func ParsePalette(specs []string) (color.Palette, error) {
	if len(specs) != PaletteColors {
		return nil, fmt.Errorf("render palette needs exactly %d colors, got %d", PaletteColors, len(specs))
	}
	palette := make(color.Palette, 0, PaletteColors)
	for _, spec := range specs {
		parsed, err := csscolorparser.Parse(spec)
		if err != nil {
			return nil, fmt.Errorf("couldn't parse color %q: %w", spec, err)
		}
		r, g, b, a := parsed.RGBA255()
		palette = append(palette, color.RGBA{R: r, G: g, B: b, A: a})
	}
	return palette, nil
}

type paletteConfig struct {
	Colors []string `toml:"colors"`
}

// LoadPaletteToml reads a render palette from a toml file with a single
// "colors" array of four CSS color strings.
func LoadPaletteToml(filename string) (color.Palette, error) {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var config paletteConfig
	if err := toml.Unmarshal(raw, &config); err != nil {
		return nil, fmt.Errorf("couldn't parse palette file %s: %w", filename, err)
	}
	return ParsePalette(config.Colors)
}
