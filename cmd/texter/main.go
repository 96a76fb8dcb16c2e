// Command texter builds a glyph atlas, replays an edit script through the
// editor and writes the atlas texture, its manifest and a preview.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/texter"
	"github.com/gogpu/texter/script"
	"github.com/gogpu/texter/text"
	"github.com/gogpu/texter/text/atlas"
)

type options struct {
	configPath   string
	fontPath     string
	scriptPath   string
	atlasPath    string
	manifestPath string
	previewPath  string
	inPath       string
	outPath      string
	verbose      bool
}

func main() {
	var o options
	flag.StringVar(&o.configPath, "config", "", "TOML configuration file")
	flag.StringVar(&o.fontPath, "font", "", "TTF/OTF font file (default Go Regular)")
	flag.StringVar(&o.scriptPath, "script", "", "edit script to replay")
	flag.StringVar(&o.atlasPath, "atlas", "atlas.png", "atlas texture output (PNG)")
	flag.StringVar(&o.manifestPath, "manifest", "", "atlas manifest output (JSON)")
	flag.StringVar(&o.previewPath, "preview", "", "laid out text preview output (PNG)")
	flag.StringVar(&o.inPath, "in", "", "document to load before replaying the script")
	flag.StringVar(&o.outPath, "out", "", "document to save after replaying the script")
	flag.BoolVar(&o.verbose, "v", false, "debug logging")
	flag.Parse()

	if o.verbose {
		texter.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := run(o, os.Stdout); err != nil {
		log.Fatalf("texter: %v", err)
	}
}

func run(o options, stdout io.Writer) error {
	cfg, err := loadConfig(o.configPath)
	if err != nil {
		return err
	}

	data := goregular.TTF
	if o.fontPath != "" {
		if data, err = os.ReadFile(o.fontPath); err != nil {
			return fmt.Errorf("reading font: %w", err)
		}
	}

	faceOpts, err := cfg.faceOptions()
	if err != nil {
		return fmt.Errorf("font config: %w", err)
	}
	face, err := text.NewFace(data, faceOpts...)
	if err != nil {
		return err
	}
	defer face.Close()

	a, err := atlas.Build(face, rune(cfg.Atlas.Start), cfg.Atlas.Count, cfg.atlasOptions()...)
	if err != nil {
		return fmt.Errorf("building atlas: %w", err)
	}

	kerner, err := cfg.kerner(face, data)
	if err != nil {
		return fmt.Errorf("layout config: %w", err)
	}
	editorOpts, err := cfg.editorOptions(kerner)
	if err != nil {
		return fmt.Errorf("layout config: %w", err)
	}
	ed := texter.NewEditor(a, editorOpts...)

	if o.inPath != "" {
		if err := loadDocument(ed, o.inPath); err != nil {
			return err
		}
	}
	if o.scriptPath != "" {
		if err := replay(ed, o.scriptPath); err != nil {
			return err
		}
	}

	if o.atlasPath != "" {
		if err := writePNG(o.atlasPath, a.Image()); err != nil {
			return fmt.Errorf("writing atlas: %w", err)
		}
	}
	if o.manifestPath != "" {
		m, err := a.Manifest()
		if err != nil {
			return err
		}
		if err := os.WriteFile(o.manifestPath, m, 0o644); err != nil {
			return fmt.Errorf("writing manifest: %w", err)
		}
	}
	if o.previewPath != "" {
		img := renderPreview(a, ed.Result(), cfg.origin(), cfg.Layout.BoxWidth, ed.CursorPosition())
		if err := writePNG(o.previewPath, img); err != nil {
			return fmt.Errorf("writing preview: %w", err)
		}
	}
	if o.outPath != "" {
		if err := saveDocument(ed, o.outPath); err != nil {
			return err
		}
	}

	printInstances(stdout, ed)
	return nil
}

func replay(ed *texter.Editor, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening script %s: %w", path, err)
	}
	defer f.Close()

	s, err := script.Parse(f)
	if err != nil {
		return fmt.Errorf("parsing script %s: %w", path, err)
	}
	if err := ed.TypeCodes(s.Codes()); err != nil {
		return fmt.Errorf("replaying script %s: %w", path, err)
	}
	return nil
}

func loadDocument(ed *texter.Editor, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening document %s: %w", path, err)
	}
	defer f.Close()
	return ed.Load(f)
}

func saveDocument(ed *texter.Editor, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating document %s: %w", path, err)
	}
	if err := ed.Save(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printInstances(w io.Writer, ed *texter.Editor) {
	res := ed.Result()
	fmt.Fprintf(w, "%d codes, %d instances, %d lines, cursor %d\n", ed.Len(), len(res.Instances), res.Lines, ed.Cursor())
	for i, inst := range res.Instances {
		fmt.Fprintf(w, "%4d slot %3d at (%.2f, %.2f)\n", i, inst.Slot, inst.Position.X, inst.Position.Y)
	}
}
