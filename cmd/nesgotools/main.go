package main

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/randomouscrap98/nesgotools/nes"
)

const (
	AppVersion = "0.1.0"
)

// Exit status per failure reason, so scripts can tell them apart
const (
	ExitOk            = 0
	ExitRegionMissing = 1
	ExitBadContainer  = 2
	ExitIOFailure     = 3
	ExitBadArguments  = 4
)

// Errors in how the tool was invoked, as opposed to problems with the ROM
// file itself or the underlying io.
type usageError struct {
	reason string
}

func (e *usageError) Error() string {
	return e.reason
}

func exitCode(err error) int {
	var usage *usageError
	var missing *nes.RegionNotFoundError
	var signature *nes.SignatureError
	var size *nes.SizeMismatchError
	switch {
	case err == nil:
		return ExitOk
	case errors.As(err, &usage):
		return ExitBadArguments
	case errors.As(err, &missing):
		return ExitRegionMissing
	case errors.As(err, &signature), errors.As(err, &size):
		return ExitBadContainer
	}
	return ExitIOFailure
}

// Most commands need this, so... yeah
func PrintJson(obj interface{}) {
	rawjson, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		log.Fatalln("Couldn't serialize json: ", err)
	}
	fmt.Println(string(rawjson))
}

// Refuse to overwrite anything, and require the parent directory to exist,
// before any extraction work begins.
func validateOutputFile(fp string) error {
	if _, err := os.Stat(fp); err == nil {
		return &usageError{fmt.Sprintf("file already exists: %s", fp)}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("couldn't check output file %s: %w", fp, err)
	}
	dir := filepath.Dir(fp)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return &usageError{fmt.Sprintf("directory does not exist: %s", dir)}
	}
	return nil
}

func openSource(fp string) (*os.File, int64, error) {
	file, err := os.Open(fp)
	if err != nil {
		return nil, 0, fmt.Errorf("couldn't open %s: %w", fp, err)
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, 0, fmt.Errorf("couldn't stat %s: %w", fp, err)
	}
	return file, info.Size(), nil
}

// Warnings never stop anything, but they always print, even when a fatal
// error aborts the run right after.
func printWarnings(warnings []string, fp string) {
	for _, w := range warnings {
		log.Printf("Warning: %s: %s\n", w, fp)
	}
}

// Decode and validate the source once, up front. Warnings come back for
// the caller to print; only identifier and size problems are fatal.
func decodeSource(source *os.File, size int64) (*nes.Header, *nes.Layout, []string, error) {
	if size < nes.HeaderSize {
		return nil, nil, nil, &nes.SizeMismatchError{Actual: size, Expected: nes.HeaderSize}
	}
	var raw [nes.HeaderSize]byte
	if _, err := source.ReadAt(raw[:], 0); err != nil {
		return nil, nil, nil, fmt.Errorf("couldn't read iNES header: %w", err)
	}
	header, warnings, err := nes.ParseHeader(raw[:])
	if err != nil {
		return nil, nil, nil, err
	}
	layout, err := nes.ResolveLayout(header, size)
	if err != nil {
		return nil, nil, warnings, err
	}
	return header, layout, warnings, nil
}

// **********************************
// *        ROM COMMANDS            *
// **********************************

// Json keys for each part, in file order
var regionNames = []struct {
	name string
	kind nes.Region
}{
	{"Header", nes.RegionHeader},
	{"Trainer", nes.RegionTrainer},
	{"PrgRom", nes.RegionPrg},
	{"ChrRom", nes.RegionChr},
}

// Rom info command
type RomInfoCmd struct {
	Infiles []string `arg:"" type:"existingfile" help:"iNES ROM files to inspect"`
}

func (c *RomInfoCmd) Run() error {
	results := make([]map[string]interface{}, 0, len(c.Infiles))
	for _, fp := range c.Infiles {
		source, size, err := openSource(fp)
		if err != nil {
			return err
		}
		header, layout, warnings, err := decodeSource(source, size)
		source.Close()
		printWarnings(warnings, fp)
		if err != nil {
			return fmt.Errorf("%s: %w", fp, err)
		}
		result := make(map[string]interface{})
		result["Filename"] = fp
		result["FileSize"] = size
		result["PrgBanks"] = header.PrgBanks
		result["ChrBanks"] = header.ChrBanks
		result["HasTrainer"] = header.Trainer
		result["Warnings"] = warnings
		regions := make(map[string]interface{})
		for _, r := range regionNames {
			offset, length := layout.Region(r.kind)
			regions[r.name] = map[string]int64{"Offset": offset, "Length": length}
		}
		result["Regions"] = regions
		results = append(results, result)
	}
	PrintJson(results)
	return nil
}

// Rom extract command
type RomExtractCmd struct {
	Header  string `type:"path" help:"Output file for the 16 byte header"`
	Trainer string `type:"path" short:"t" help:"Output file for the Trainer (512 bytes)"`
	Prg     string `type:"path" short:"p" help:"Output file for the PRG-ROM"`
	Chr     string `type:"path" short:"c" help:"Output file for the CHR-ROM"`
	Infile  string `arg:"" type:"existingfile" help:"iNES ROM file to read"`
}

func (c *RomExtractCmd) Run() error {
	outfiles := []string{c.Header, c.Trainer, c.Prg, c.Chr}
	// Check every output path before doing any real work
	requested := 0
	for _, outfile := range outfiles {
		if outfile == "" {
			continue
		}
		requested++
		if err := validateOutputFile(outfile); err != nil {
			return err
		}
	}
	if requested == 0 {
		return &usageError{"nothing to do: no output files were requested"}
	}
	source, size, err := openSource(c.Infile)
	if err != nil {
		return err
	}
	defer source.Close()
	// Validate the container once, eagerly, before any output file exists
	_, layout, warnings, err := decodeSource(source, size)
	printWarnings(warnings, c.Infile)
	if err != nil {
		return fmt.Errorf("%s: %w", c.Infile, err)
	}
	var missing error
	result := make(map[string]interface{})
	result["Source"] = c.Infile
	for i, r := range regionNames {
		outfile := outfiles[i]
		if outfile == "" {
			continue
		}
		// An absent part doesn't block the other requested parts, but it
		// does set the final exit status. No output file gets created.
		if _, length := layout.Region(r.kind); length == 0 {
			err := &nes.RegionNotFoundError{Kind: r.kind}
			log.Printf("Warning: %s: %s\n", err, c.Infile)
			if missing == nil {
				missing = err
			}
			continue
		}
		written, md5sum, err := extractToFile(source, size, r.kind, outfile)
		if err != nil {
			return err
		}
		log.Printf("Wrote %d bytes of %s to %s\n", written, r.kind, outfile)
		result[r.name] = map[string]interface{}{
			"Filename": outfile,
			"Length":   written,
			"MD5":      md5sum,
		}
	}
	PrintJson(result)
	return missing
}

// extractToFile creates the output file (never overwriting) and streams
// one part of the ROM into it, hashing along the way.
func extractToFile(source *os.File, size int64, kind nes.Region, outfile string) (int64, string, error) {
	target, err := os.OpenFile(outfile, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0666)
	if err != nil {
		return 0, "", fmt.Errorf("couldn't create %s: %w", outfile, err)
	}
	defer target.Close()
	hasher := md5.New()
	written, err := nes.Extract(source, size, kind, io.MultiWriter(target, hasher))
	if err != nil {
		return written, "", err
	}
	return written, hex.EncodeToString(hasher.Sum(nil)), nil
}

// **********************************
// *        CHR COMMANDS            *
// **********************************

// Chr render command
type ChrRenderCmd struct {
	Colors  []string `help:"Four CSS colors for palette indexes 0-3"`
	Palette string   `type:"existingfile" help:"Toml file with a 'colors' array of four CSS colors"`
	Scale   int      `default:"1" help:"Integer upscale factor for the tile sheet"`
	Format  string   `help:"Image format (png, bmp, gif); defaults to the output extension"`
	Outfile string   `type:"path" short:"o" required:"" help:"Image file to write"`
	Infile  string   `arg:"" type:"existingfile" help:"iNES ROM file to read"`
}

func (c *ChrRenderCmd) Run() error {
	if c.Scale < 1 {
		return &usageError{"scale must be at least 1"}
	}
	if len(c.Colors) > 0 && c.Palette != "" {
		return &usageError{"give either --colors or --palette, not both"}
	}
	palette := nes.DefaultPalette
	var err error
	if c.Palette != "" {
		palette, err = nes.LoadPaletteToml(c.Palette)
	} else if len(c.Colors) > 0 {
		palette, err = nes.ParsePalette(c.Colors)
	}
	if err != nil {
		return &usageError{err.Error()}
	}
	if err := validateOutputFile(c.Outfile); err != nil {
		return err
	}
	format := c.Format
	if format == "" {
		format = filepath.Ext(c.Outfile)
	}
	// A bad format is an invocation problem; catch it before any file work
	if !nes.ImageFormatKnown(format) {
		return &usageError{fmt.Sprintf("unknown image format %q: give --format or a known output extension", format)}
	}
	source, size, err := openSource(c.Infile)
	if err != nil {
		return err
	}
	defer source.Close()
	_, _, warnings, err := decodeSource(source, size)
	printWarnings(warnings, c.Infile)
	if err != nil {
		return fmt.Errorf("%s: %w", c.Infile, err)
	}
	// CHR random access is needed for tile decoding, so pull the collapsed
	// part into memory (at most 2 MiB)
	var chr bytes.Buffer
	if _, err := nes.Extract(source, size, nes.RegionChr, &chr); err != nil {
		return fmt.Errorf("%s: %w", c.Infile, err)
	}
	target, err := os.OpenFile(c.Outfile, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0666)
	if err != nil {
		return fmt.Errorf("couldn't create %s: %w", c.Outfile, err)
	}
	defer target.Close()
	if err := nes.RenderChr(chr.Bytes(), palette, c.Scale, format, target); err != nil {
		return err
	}
	tiles := chr.Len() / nes.TileSize
	log.Printf("Rendered %d CHR tiles to %s\n", tiles, c.Outfile)
	result := make(map[string]interface{})
	result["Source"] = c.Infile
	result["Outfile"] = c.Outfile
	result["ChrLength"] = chr.Len()
	result["Tiles"] = tiles
	result["ChrMD5"] = nes.Md5String(chr.Bytes())
	PrintJson(result)
	return nil
}

// **********************************
// *      ALL TOGETHER NOW          *
// **********************************

var cli struct {
	Rom struct {
		Info    RomInfoCmd    `cmd:"" help:"Parse and validate ROM headers, printing a json summary"`
		Extract RomExtractCmd `cmd:"" help:"Copy the header, Trainer, PRG-ROM or CHR-ROM to new files"`
	} `cmd:"" help:"Commands which work on whole iNES ROM files"`
	Chr struct {
		Render ChrRenderCmd `cmd:"" help:"Render the CHR-ROM as a tile sheet image for inspection"`
	} `cmd:"" help:"Commands which work on the graphics portion of a ROM"`
	Version kong.VersionFlag `help:"Show version information"`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("nesgotools"),
		kong.ShortUsageOnError(),
		kong.Description("A set of tools for picking apart iNES ROM files"),
		kong.Vars{
			"version": AppVersion,
		},
		kong.Exit(func(code int) {
			// kong exits nonzero for bad command lines; fold those into the
			// argument error status. Help and version still exit 0.
			if code != 0 {
				code = ExitBadArguments
			}
			os.Exit(code)
		}),
	)
	err := ctx.Run()
	if err != nil {
		log.Printf("Error: %s\n", err)
	}
	os.Exit(exitCode(err))
}
