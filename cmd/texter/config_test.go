package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/texter/text"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg != defaultConfig() {
		t.Errorf("loadConfig(\"\") = %+v, want defaults", cfg)
	}
}

func TestParseConfig(t *testing.T) {
	data := []byte(`
[font]
size = 16.5
hinting = "none"

[atlas]
start = 97
count = 26

[layout]
box_width = 120.0
origin_y = -4.0
wrap = "wordchar"
kerning = "sfnt"

[document]
charmap = "windows-1252"
`)
	cfg, err := parseConfig("test.toml", data)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Font.Size != 16.5 || cfg.Font.Hinting != "none" {
		t.Errorf("Font = %+v", cfg.Font)
	}
	if cfg.Font.DPI != 72 {
		t.Errorf("Font.DPI = %v, want default 72", cfg.Font.DPI)
	}
	if cfg.Atlas.Start != 'a' || cfg.Atlas.Count != 26 || cfg.Atlas.Padding != 1 {
		t.Errorf("Atlas = %+v", cfg.Atlas)
	}
	if cfg.Layout.BoxWidth != 120 || cfg.Layout.OriginY != -4 || cfg.Layout.Wrap != "wordchar" {
		t.Errorf("Layout = %+v", cfg.Layout)
	}
	if cfg.Document.Charmap != "windows-1252" {
		t.Errorf("Document.Charmap = %q", cfg.Document.Charmap)
	}
	if _, err := cfg.editorOptions(text.NoKerning); err != nil {
		t.Errorf("editorOptions() error = %v", err)
	}
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", "[font\nsize = 1"},
		{"type", "[font]\nsize = \"big\""},
		{"unknown key", "[layout]\nbox = 10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseConfig("bad.toml", []byte(tt.data))
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("parseConfig() error = %v, want *ParseError", err)
			}
			if perr.Path != "bad.toml" {
				t.Errorf("Path = %q, want bad.toml", perr.Path)
			}
			if !strings.Contains(err.Error(), "bad.toml") {
				t.Errorf("Error() = %q, want path", err.Error())
			}
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("loadConfig() error = %v, want os.ErrNotExist", err)
	}
}

func TestParseHinting(t *testing.T) {
	tests := []struct {
		in      string
		want    font.Hinting
		wantErr bool
	}{
		{"", font.HintingNone, false},
		{"none", font.HintingNone, false},
		{"Vertical", font.HintingVertical, false},
		{"full", font.HintingFull, false},
		{"slight", font.HintingNone, true},
	}
	for _, tt := range tests {
		got, err := parseHinting(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("parseHinting(%q) = %v, %v, want %v, err %v", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestConfigKerner(t *testing.T) {
	face, err := text.NewFace(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	defer face.Close()

	for _, src := range []string{"none", "sfnt", "shaped"} {
		cfg := defaultConfig()
		cfg.Layout.Kerning = src
		k, err := cfg.kerner(face, goregular.TTF)
		if err != nil || k == nil {
			t.Errorf("kerner(%q) = %v, %v", src, k, err)
		}
	}

	cfg := defaultConfig()
	cfg.Layout.Kerning = "gpos"
	if _, err := cfg.kerner(face, goregular.TTF); err == nil {
		t.Error("kerner(\"gpos\") error = nil, want error")
	}
}

func TestConfigEditorOptions_Errors(t *testing.T) {
	cfg := defaultConfig()
	cfg.Layout.Wrap = "hyphen"
	if _, err := cfg.editorOptions(text.NoKerning); err == nil {
		t.Error("editorOptions() with bad wrap mode: error = nil")
	}

	cfg = defaultConfig()
	cfg.Document.Charmap = "utf-8"
	if _, err := cfg.editorOptions(text.NoKerning); err == nil {
		t.Error("editorOptions() with multi-byte charmap: error = nil")
	}
}
