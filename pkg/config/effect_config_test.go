package config

import (
	"image/color"
	"testing"
)

// TestDefaultOptions 测试默认选项的关键取值
func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if opts == nil {
		t.Fatal("DefaultOptions() returned nil")
	}
	if opts.Enabled != nil {
		t.Error("Enabled: want nil (auto-detected)")
	}
	if opts.PixelMinSize != 3 || opts.PixelMaxSize != 8 {
		t.Errorf("pixel size range: got [%v, %v], want [3, 8]", opts.PixelMinSize, opts.PixelMaxSize)
	}
	if opts.PixelLifeMs != 350 {
		t.Errorf("PixelLifeMs: got %v, want 350", opts.PixelLifeMs)
	}
	if opts.PixelPerMove != 3 {
		t.Errorf("PixelPerMove: got %v, want 3", opts.PixelPerMove)
	}
	if len(opts.SparkColors) != 4 {
		t.Errorf("SparkColors: got %d colors, want 4", len(opts.SparkColors))
	}
	if opts.SparkCount != 14 {
		t.Errorf("SparkCount: got %v, want 14", opts.SparkCount)
	}
	if opts.SparkLifeMs != 550 {
		t.Errorf("SparkLifeMs: got %v, want 550", opts.SparkLifeMs)
	}
	if opts.SparkSpeed != 2.2 {
		t.Errorf("SparkSpeed: got %v, want 2.2", opts.SparkSpeed)
	}
	if opts.HideSystemCursor {
		t.Error("HideSystemCursor: got true, want false")
	}
	if opts.ShowCursorDot {
		t.Error("ShowCursorDot: got true, want false")
	}
	if opts.CursorDotSize != 8 {
		t.Errorf("CursorDotSize: got %v, want 8", opts.CursorDotSize)
	}
	if opts.CursorDotShape != CursorShapeSquare {
		t.Errorf("CursorDotShape: got %v, want square", opts.CursorDotShape)
	}
	if opts.CrosshairSize != 8 || opts.CrosshairThickness != 2 || opts.CrosshairGap != 2 {
		t.Errorf("crosshair geometry: got %v/%v/%v, want 8/2/2",
			opts.CrosshairSize, opts.CrosshairThickness, opts.CrosshairGap)
	}
	if opts.MaxDeviceScale != 2 {
		t.Errorf("MaxDeviceScale: got %v, want 2", opts.MaxDeviceScale)
	}
}

// TestParseOptions 测试 YAML 选项解析与默认值保留
func TestParseOptions(t *testing.T) {
	data := []byte(`
enabled: true
pixelColor: "#ff0000"
pixelLifeMs: 500
sparkColors: ["#00ff00", "#0000ff"]
cursorDotShape: crosshair
`)

	opts, err := ParseOptions(data)
	if err != nil {
		t.Fatalf("ParseOptions failed: %v", err)
	}

	if opts.Enabled == nil || !*opts.Enabled {
		t.Error("Enabled: want forced true")
	}
	if opts.PixelColor != (color.RGBA{R: 0xff, A: 0xff}) {
		t.Errorf("PixelColor: got %+v, want red", opts.PixelColor)
	}
	if opts.PixelLifeMs != 500 {
		t.Errorf("PixelLifeMs: got %v, want 500", opts.PixelLifeMs)
	}
	if len(opts.SparkColors) != 2 {
		t.Fatalf("SparkColors: got %d, want 2", len(opts.SparkColors))
	}
	if opts.SparkColors[0] != (color.RGBA{G: 0xff, A: 0xff}) {
		t.Errorf("SparkColors[0]: got %+v, want green", opts.SparkColors[0])
	}
	if opts.CursorDotShape != CursorShapeCrosshair {
		t.Errorf("CursorDotShape: got %v, want crosshair", opts.CursorDotShape)
	}

	// 未出现的字段保留默认值
	if opts.PixelPerMove != 3 {
		t.Errorf("PixelPerMove: got %v, want default 3", opts.PixelPerMove)
	}
	if opts.SparkCount != 14 {
		t.Errorf("SparkCount: got %v, want default 14", opts.SparkCount)
	}
}

// TestParseOptions_InvalidColor 非法颜色报错
func TestParseOptions_InvalidColor(t *testing.T) {
	if _, err := ParseOptions([]byte(`pixelColor: "red"`)); err == nil {
		t.Error("expected error for non-hex color")
	}
	if _, err := ParseOptions([]byte(`sparkColors: ["#12345"]`)); err == nil {
		t.Error("expected error for malformed hex color")
	}
}

// TestNormalize 越界取值钳制为零效果，而不是报错
func TestNormalize(t *testing.T) {
	opts := DefaultOptions()
	opts.PixelMinSize = -5
	opts.PixelMaxSize = -10
	opts.PixelPerMove = -3
	opts.SparkCount = -1
	opts.SparkLifeMs = -100
	opts.SparkSpeed = -2
	opts.CursorDotShape = "hexagon"
	opts.SparkColors = nil
	opts.MaxDeviceScale = 0.5

	opts.Normalize()

	if opts.PixelMinSize != 0 || opts.PixelMaxSize != 0 {
		t.Errorf("pixel sizes: got [%v, %v], want [0, 0]", opts.PixelMinSize, opts.PixelMaxSize)
	}
	if opts.PixelPerMove != 0 {
		t.Errorf("PixelPerMove: got %v, want 0", opts.PixelPerMove)
	}
	if opts.SparkCount != 0 {
		t.Errorf("SparkCount: got %v, want 0", opts.SparkCount)
	}
	if opts.SparkLifeMs != 0 {
		t.Errorf("SparkLifeMs: got %v, want 0", opts.SparkLifeMs)
	}
	if opts.SparkSpeed != 0 {
		t.Errorf("SparkSpeed: got %v, want 0", opts.SparkSpeed)
	}
	if opts.CursorDotShape != CursorShapeSquare {
		t.Errorf("CursorDotShape: got %v, want fallback square", opts.CursorDotShape)
	}
	if len(opts.SparkColors) == 0 {
		t.Error("empty palette not replaced with defaults")
	}
	if opts.MaxDeviceScale != DefaultMaxDeviceScale {
		t.Errorf("MaxDeviceScale: got %v, want default", opts.MaxDeviceScale)
	}
}

// TestParseHexColor 测试颜色字符串解析
func TestParseHexColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    color.RGBA
		wantErr bool
	}{
		{"Six digit", "#8b5cf6", color.RGBA{R: 0x8b, G: 0x5c, B: 0xf6, A: 0xff}, false},
		{"Uppercase", "#FFAA00", color.RGBA{R: 0xff, G: 0xaa, B: 0x00, A: 0xff}, false},
		{"Three digit", "#abc", color.RGBA{R: 0xaa, G: 0xbb, B: 0xcc, A: 0xff}, false},
		{"Missing hash", "8b5cf6", color.RGBA{}, true},
		{"Wrong length", "#12345", color.RGBA{}, true},
		{"Non-hex digits", "#gg0000", color.RGBA{}, true},
		{"Empty", "", color.RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHexColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHexColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseHexColor(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}
