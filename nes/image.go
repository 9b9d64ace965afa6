package nes

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

/*
CHR
	each tile is 8x8 pixels and 16 bytes long
	first 8 bytes are bit plane 0, one byte per row
	second 8 bytes are bit plane 1
	the two plane bits of a pixel combine into a palette index 0-3
	bit 7 of a row byte is the leftmost pixel
*/

const (
	TileSize    = 16 // bytes per tile
	TilesPerRow = 16 // sheet width when rendering
)

// ChrToImage decodes raw CHR data into an indexed tile sheet, 16 tiles per
// row. The data must be a whole number of tiles.
func ChrToImage(chr []byte, palette color.Palette) (*image.Paletted, error) {
	if len(chr) == 0 || len(chr)%TileSize != 0 {
		return nil, fmt.Errorf("CHR data must be a positive multiple of %d bytes, got %d", TileSize, len(chr))
	}
	tiles := len(chr) / TileSize
	rows := (tiles + TilesPerRow - 1) / TilesPerRow
	img := image.NewPaletted(image.Rect(0, 0, TilesPerRow*8, rows*8), palette)
	for t := 0; t < tiles; t++ {
		tx := (t % TilesPerRow) * 8
		ty := (t / TilesPerRow) * 8
		planeA := chr[t*TileSize : t*TileSize+8]
		planeB := chr[t*TileSize+8 : (t+1)*TileSize]
		for row := 0; row < 8; row++ {
			for col := 0; col < 8; col++ {
				bit := uint(7 - col)
				index := (planeA[row]>>bit)&1 | ((planeB[row]>>bit)&1)<<1
				img.SetColorIndex(tx+col, ty+row, index)
			}
		}
	}
	return img, nil
}

// ImageFormatKnown reports whether RenderChr can encode the given format
// name or file extension.
func ImageFormatKnown(format string) bool {
	_, err := imaging.FormatFromExtension(format)
	return err == nil
}

// RenderChr decodes CHR data, optionally upscales the sheet by an integer
// factor (nearest neighbor, pixels stay square), and encodes it to out in
// the given image format ("png", "bmp", "gif", ...).
func RenderChr(chr []byte, palette color.Palette, scale int, format string, out io.Writer) error {
	img, err := ChrToImage(chr, palette)
	if err != nil {
		return err
	}
	var final image.Image = img
	if scale > 1 {
		bounds := img.Bounds()
		final = resize.Resize(uint(bounds.Dx()*scale), uint(bounds.Dy()*scale), img, resize.NearestNeighbor)
	}
	outformat, err := imaging.FormatFromExtension(format)
	if err != nil {
		return fmt.Errorf("unknown image format %s: %w", format, err)
	}
	return imaging.Encode(out, final, outformat)
}
