package theme

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gonewx/cursorfx/pkg/config"
)

// Load reads and parses a theme configuration file.
func Load(path string) ([]Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}
	return Parse(data)
}

// Parse parses theme configuration data.
// Themes without a name are rejected; duplicate names keep the first entry.
func Parse(data []byte) ([]Theme, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse theme data: %w", err)
	}

	seen := make(map[string]bool, len(file.Themes))
	themes := make([]Theme, 0, len(file.Themes))
	for i, t := range file.Themes {
		if t.Name == "" {
			return nil, fmt.Errorf("theme #%d has no name", i)
		}
		if seen[t.Name] {
			continue
		}
		seen[t.Name] = true
		themes = append(themes, t)
	}
	return themes, nil
}

// Find returns the theme with the given name.
func Find(themes []Theme, name string) (Theme, bool) {
	for _, t := range themes {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// Apply overlays the theme onto a copy of the base options and returns it.
// Unset theme fields keep the base value. The result is normalized.
func (t Theme) Apply(base *config.EffectOptions) (*config.EffectOptions, error) {
	opts := *base

	if t.PixelColor != "" {
		c, err := config.ParseHexColor(t.PixelColor)
		if err != nil {
			return nil, fmt.Errorf("theme %s: pixelColor: %w", t.Name, err)
		}
		opts.PixelColor = c
	}
	if t.PixelSize != "" {
		min, max, err := ParseRange(t.PixelSize)
		if err != nil {
			return nil, fmt.Errorf("theme %s: pixelSize: %w", t.Name, err)
		}
		opts.PixelMinSize, opts.PixelMaxSize = min, max
	}
	if t.PixelLifeMs != 0 {
		opts.PixelLifeMs = t.PixelLifeMs
	}
	if t.PixelPerMove != 0 {
		opts.PixelPerMove = t.PixelPerMove
	}

	if len(t.SparkColors) > 0 {
		palette := make([]color.RGBA, 0, len(t.SparkColors))
		for _, s := range t.SparkColors {
			c, err := config.ParseHexColor(s)
			if err != nil {
				return nil, fmt.Errorf("theme %s: sparkColors: %w", t.Name, err)
			}
			palette = append(palette, c)
		}
		opts.SparkColors = palette
	}
	if t.SparkCount != 0 {
		opts.SparkCount = t.SparkCount
	}
	if t.SparkLifeMs != 0 {
		opts.SparkLifeMs = t.SparkLifeMs
	}
	if t.SparkSpeed != 0 {
		opts.SparkSpeed = t.SparkSpeed
	}
	if t.SparkSize != "" {
		min, max, err := ParseRange(t.SparkSize)
		if err != nil {
			return nil, fmt.Errorf("theme %s: sparkSize: %w", t.Name, err)
		}
		opts.SparkMinSize, opts.SparkMaxSize = min, max
	}

	if t.CursorDotShape != "" {
		opts.CursorDotShape = config.CursorShape(t.CursorDotShape)
	}
	if t.CursorDotSize != 0 {
		opts.CursorDotSize = t.CursorDotSize
	}
	if t.CursorDotColor != "" {
		c, err := config.ParseHexColor(t.CursorDotColor)
		if err != nil {
			return nil, fmt.Errorf("theme %s: cursorDotColor: %w", t.Name, err)
		}
		opts.CursorDotColor = c
	}

	opts.Normalize()
	return &opts, nil
}
