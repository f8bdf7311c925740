// Package theme provides data structures and parsing functionality for
// cursor-effect theme configurations.
//
// A theme is a named bundle of effect options loaded from a YAML file.
// Numeric size and speed values may use the range string format "[min max]"
// to request per-particle randomization between the two bounds.
package theme

// File represents the root structure of a theme configuration file.
type File struct {
	Themes []Theme `yaml:"themes"`
}

// Theme represents a single named effect theme.
//
// String-typed fields preserve the on-disk value format, which may contain:
//   - Fixed values: "5"
//   - Ranges: "[3 8]" (random value between min and max per particle)
//
// Zero values mean "not set"; Apply keeps the base option in that case.
type Theme struct {
	// Name is the unique identifier for this theme
	Name string `yaml:"name"`

	// Trail particle properties
	PixelColor   string  `yaml:"pixelColor,omitempty"`   // Fill color "#rrggbb"
	PixelSize    string  `yaml:"pixelSize,omitempty"`    // Size or size range
	PixelLifeMs  float64 `yaml:"pixelLifeMs,omitempty"`  // Lifetime in milliseconds
	PixelPerMove int     `yaml:"pixelPerMove,omitempty"` // Particles per move sample

	// Burst particle properties
	SparkColors []string `yaml:"sparkColors,omitempty"` // Palette, "#rrggbb" each
	SparkCount  int      `yaml:"sparkCount,omitempty"`  // Particles per click
	SparkLifeMs float64  `yaml:"sparkLifeMs,omitempty"` // Lifetime in milliseconds
	SparkSpeed  float64  `yaml:"sparkSpeed,omitempty"`  // Base launch speed
	SparkSize   string   `yaml:"sparkSize,omitempty"`   // Size or size range

	// Cursor overlay properties
	CursorDotShape string  `yaml:"cursorDotShape,omitempty"` // square | circle | crosshair
	CursorDotSize  float64 `yaml:"cursorDotSize,omitempty"`
	CursorDotColor string  `yaml:"cursorDotColor,omitempty"`
}
