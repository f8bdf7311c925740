package theme

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/gonewx/cursorfx/pkg/config"
)

const sampleThemes = `
themes:
  - name: violet
    pixelColor: "#8b5cf6"
    pixelSize: "[3 8]"
    sparkColors: ["#a78bfa", "#f472b6"]
  - name: ember
    pixelColor: "#f97316"
    pixelSize: "6"
    pixelLifeMs: 500
    sparkSpeed: 3.5
    cursorDotShape: crosshair
`

// TestParse tests parsing of a theme file with multiple themes
func TestParse(t *testing.T) {
	themes, err := Parse([]byte(sampleThemes))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(themes) != 2 {
		t.Fatalf("got %d themes, want 2", len(themes))
	}
	if themes[0].Name != "violet" || themes[1].Name != "ember" {
		t.Errorf("theme names = %s, %s", themes[0].Name, themes[1].Name)
	}
	if themes[1].SparkSpeed != 3.5 {
		t.Errorf("ember sparkSpeed = %v, want 3.5", themes[1].SparkSpeed)
	}
}

// TestParse_UnnamedTheme tests rejection of themes without names
func TestParse_UnnamedTheme(t *testing.T) {
	if _, err := Parse([]byte("themes:\n  - pixelSize: \"5\"\n")); err == nil {
		t.Error("expected error for unnamed theme")
	}
}

// TestParse_DuplicateNames keeps the first entry for duplicate names
func TestParse_DuplicateNames(t *testing.T) {
	data := []byte(`
themes:
  - name: dup
    pixelLifeMs: 100
  - name: dup
    pixelLifeMs: 200
`)
	themes, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(themes) != 1 {
		t.Fatalf("got %d themes, want 1", len(themes))
	}
	if themes[0].PixelLifeMs != 100 {
		t.Errorf("kept pixelLifeMs = %v, want first entry's 100", themes[0].PixelLifeMs)
	}
}

// TestLoad tests reading a theme file from disk
func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "themes.yaml")
	if err := os.WriteFile(path, []byte(sampleThemes), 0o644); err != nil {
		t.Fatal(err)
	}

	themes, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(themes) != 2 {
		t.Errorf("got %d themes, want 2", len(themes))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

// TestFind tests theme lookup by name
func TestFind(t *testing.T) {
	themes, err := Parse([]byte(sampleThemes))
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := Find(themes, "ember"); !ok {
		t.Error("ember not found")
	}
	if _, ok := Find(themes, "nope"); ok {
		t.Error("found nonexistent theme")
	}
}

// TestApply overlays theme values onto base options, keeping unset fields
func TestApply(t *testing.T) {
	themes, err := Parse([]byte(sampleThemes))
	if err != nil {
		t.Fatal(err)
	}
	ember, _ := Find(themes, "ember")

	base := config.DefaultOptions()
	opts, err := ember.Apply(base)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if opts.PixelColor != (color.RGBA{R: 0xf9, G: 0x73, B: 0x16, A: 0xff}) {
		t.Errorf("PixelColor = %+v, want #f97316", opts.PixelColor)
	}
	if opts.PixelMinSize != 6 || opts.PixelMaxSize != 6 {
		t.Errorf("pixel size = [%v, %v], want [6, 6]", opts.PixelMinSize, opts.PixelMaxSize)
	}
	if opts.PixelLifeMs != 500 {
		t.Errorf("PixelLifeMs = %v, want 500", opts.PixelLifeMs)
	}
	if opts.SparkSpeed != 3.5 {
		t.Errorf("SparkSpeed = %v, want 3.5", opts.SparkSpeed)
	}
	if opts.CursorDotShape != config.CursorShapeCrosshair {
		t.Errorf("CursorDotShape = %v, want crosshair", opts.CursorDotShape)
	}

	// Unset fields keep base values
	if opts.SparkCount != base.SparkCount {
		t.Errorf("SparkCount = %v, want base %v", opts.SparkCount, base.SparkCount)
	}
	if len(opts.SparkColors) != len(base.SparkColors) {
		t.Errorf("palette overridden though theme sets none")
	}

	// Base options must not be mutated
	if base.PixelLifeMs != 350 {
		t.Errorf("base mutated: PixelLifeMs = %v", base.PixelLifeMs)
	}
}

// TestApply_RangeAndPalette applies a size range and a palette override
func TestApply_RangeAndPalette(t *testing.T) {
	themes, err := Parse([]byte(sampleThemes))
	if err != nil {
		t.Fatal(err)
	}
	violet, _ := Find(themes, "violet")

	opts, err := violet.Apply(config.DefaultOptions())
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if opts.PixelMinSize != 3 || opts.PixelMaxSize != 8 {
		t.Errorf("pixel size = [%v, %v], want [3, 8]", opts.PixelMinSize, opts.PixelMaxSize)
	}
	if len(opts.SparkColors) != 2 {
		t.Errorf("palette size = %d, want 2", len(opts.SparkColors))
	}
}

// TestApply_InvalidValues reports errors with the theme name
func TestApply_InvalidValues(t *testing.T) {
	bad := Theme{Name: "bad", PixelSize: "[1 2 3]"}
	if _, err := bad.Apply(config.DefaultOptions()); err == nil {
		t.Error("expected error for malformed range")
	}

	bad = Theme{Name: "bad", PixelColor: "purple"}
	if _, err := bad.Apply(config.DefaultOptions()); err == nil {
		t.Error("expected error for malformed color")
	}
}
