// Command scifont renders text with an SCI bitmap font.
//
// Fonts are read from patch files (font.NNN or NNN.fon) in a directory.
// Font -1 selects the embedded system font on SCI2 and later.
//
//	scifont -dir game -font 4 -text "Hello" -output hello.png
//	scifont -font -1 -version SCI2 -dump
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/gogpu/bitfont"
	"github.com/gogpu/bitfont/resource"
	"github.com/gogpu/bitfont/surface"
)

// config holds the command-line settings.
type config struct {
	dir       string
	fontID    int
	version   string
	bigEndian bool
	text      string
	colorIdx  int
	greyed    bool
	mode      string
	output    string
	dump      bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.dir, "dir", ".", "directory with font patch files")
	flag.IntVar(&cfg.fontID, "font", 0, "font resource number (-1 = system font)")
	flag.StringVar(&cfg.version, "version", "SCI1.1", "interpreter version (SCI0 .. SCI3)")
	flag.BoolVar(&cfg.bigEndian, "bigendian", false, "resources come from a big-endian build")
	flag.StringVar(&cfg.text, "text", "The quick brown fox", "text to render")
	flag.IntVar(&cfg.colorIdx, "color", 15, "palette index of the text")
	flag.BoolVar(&cfg.greyed, "greyed", false, "render greyed out")
	flag.StringVar(&cfg.mode, "mode", "lowres", "screen mode: "+strings.Join(surface.List(), ", "))
	flag.StringVar(&cfg.output, "output", "text.png", "output file (.png or .bmp)")
	flag.BoolVar(&cfg.dump, "dump", false, "print every glyph as ASCII art instead of rendering")
	verbose := flag.Bool("v", false, "log font diagnostics")
	flag.Parse()

	if *verbose {
		bitfont.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(cfg, resource.NewManager(), os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// run loads the font into resMan and renders or dumps it. The font is
// closed before run returns, on success and on error.
func run(cfg config, resMan *resource.Manager, stdout io.Writer) (err error) {
	v, err := bitfont.ParseVersion(cfg.version)
	if err != nil {
		return err
	}

	if cfg.fontID != int(bitfont.SystemFontID) {
		n, err := resource.LoadPatches(os.DirFS(cfg.dir), resMan)
		if err != nil {
			return fmt.Errorf("failed to load patches: %w", err)
		}
		log.Printf("Loaded %d patch files from %s", n, cfg.dir)
	}

	screen, err := surface.NewScreenByName(cfg.mode)
	if err != nil {
		return err
	}

	f, err := bitfont.New(resMan, screen, resource.ID(cfg.fontID),
		bitfont.WithVersion(v),
		bitfont.WithBigEndian(cfg.bigEndian))
	if err != nil {
		return fmt.Errorf("failed to open font: %w", err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	if cfg.dump {
		dumpGlyphs(stdout, f)
		return nil
	}

	f.DrawString(cfg.text, 4, 4, uint8(cfg.colorIdx), cfg.greyed)

	if err := save(cfg.output, screen.Image()); err != nil {
		return fmt.Errorf("failed to save: %w", err)
	}
	log.Printf("Text saved to %s (%dx%d)", cfg.output, screen.DisplayWidth(), screen.DisplayHeight())
	return nil
}

// save encodes img as PNG or BMP depending on the file extension.
func save(path string, img image.Image) (err error) {
	var encode func(io.Writer, image.Image) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		encode = png.Encode
	case ".bmp":
		encode = bmp.Encode
	default:
		return fmt.Errorf("unsupported output format %q", filepath.Ext(path))
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, file.Close())
	}()
	return encode(file, img)
}

// dumpGlyphs prints the font header and every glyph.
func dumpGlyphs(w io.Writer, f *bitfont.Font) {
	fmt.Fprintf(w, "%s: %d glyphs, height %d\n", f.Name(), f.NumGlyphs(), f.Height())
	for g := 0; g < f.NumGlyphs(); g++ {
		glyph := uint16(g)
		fmt.Fprintf(w, "\nglyph %d (%dx%d)\n", g, f.CharWidth(glyph), f.CharHeight(glyph))
		fmt.Fprint(w, glyphArt(f, glyph))
	}
}

// glyphArt renders a glyph with '#' for set and '.' for clear pixels.
func glyphArt(f *bitfont.Font, glyph uint16) string {
	w, h := f.CharWidth(glyph), f.CharHeight(glyph)
	if w == 0 || h == 0 {
		return ""
	}
	buf := make([]byte, w*h)
	f.DrawToBuffer(glyph, 0, 0, 1, false, buf, w, h)

	var sb strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if buf[y*w+x] != 0 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
