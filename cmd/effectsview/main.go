// Package main provides an effect viewer tool for testing and tuning
// cursor-effect themes.
//
// Usage:
//
//	go run cmd/effectsview/main.go [flags]
//
// Flags:
//
//	--themes <path>     Theme YAML file to load (optional)
//	--theme <name>      Start with specific theme (e.g., --theme=violet)
//	--verbose           Enable verbose logging (default off)
//
// Controls:
//
//	Mouse Move        - Spawn trail particles
//	Mouse Click       - Spawn burst at cursor position
//	Left/Right Arrow  - Switch to previous/next theme
//	Space             - Spawn burst at screen center
//	C                 - Cycle cursor glyph shape
//	D                 - Toggle cursor glyph
//	R                 - Clear all active particles (remounts the engine)
//	Q/Escape          - Quit
package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/cursorfx/internal/theme"
	"github.com/gonewx/cursorfx/pkg/config"
	"github.com/gonewx/cursorfx/pkg/effects"
)

const (
	screenWidth  = 1024
	screenHeight = 768
)

var (
	themesFlag  = flag.String("themes", "", "Theme YAML file to load")
	themeFlag   = flag.String("theme", "", "Start with specific theme name")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
)

var shapes = []config.CursorShape{
	config.CursorShapeSquare,
	config.CursorShapeCircle,
	config.CursorShapeCrosshair,
}

// ViewerGame implements ebiten.Game interface for the effect viewer
type ViewerGame struct {
	themes       []theme.Theme
	currentIndex int // -1 = built-in defaults

	showDot    bool
	shapeIndex int

	engine *effects.Engine
}

// NewViewerGame creates a new viewer game instance
func NewViewerGame() (*ViewerGame, error) {
	g := &ViewerGame{currentIndex: -1}

	if *themesFlag != "" {
		themes, err := theme.Load(*themesFlag)
		if err != nil {
			return nil, fmt.Errorf("failed to load themes: %w", err)
		}
		g.themes = themes
		log.Printf("[Viewer] Loaded %d themes from %s", len(themes), *themesFlag)
	}

	if *themeFlag != "" {
		found := false
		for i, t := range g.themes {
			if t.Name == *themeFlag {
				g.currentIndex = i
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("theme not found: %s", *themeFlag)
		}
	}

	g.mount()
	return g, nil
}

// currentOptions resolves the options for the selected theme
func (g *ViewerGame) currentOptions() (*config.EffectOptions, error) {
	opts := config.DefaultOptions()
	if g.currentIndex >= 0 {
		var err error
		opts, err = g.themes[g.currentIndex].Apply(opts)
		if err != nil {
			return nil, err
		}
	}
	enabled := true
	opts.Enabled = &enabled // 查看器始终强制开启，跳过特性检测
	opts.ShowCursorDot = g.showDot
	opts.CursorDotShape = shapes[g.shapeIndex]
	return opts, nil
}

// mount creates a fresh engine for the current theme selection
func (g *ViewerGame) mount() {
	if g.engine != nil {
		g.engine.Teardown()
	}
	opts, err := g.currentOptions()
	if err != nil {
		log.Printf("[Viewer] theme error: %v (falling back to defaults)", err)
		opts = config.DefaultOptions()
		enabled := true
		opts.Enabled = &enabled
	}
	g.engine = effects.NewEngine(opts, effects.Environment{FinePointer: true})
	g.engine.HandleResize(screenWidth, screenHeight, ebiten.Monitor().DeviceScaleFactor())
}

// currentThemeName returns the display name of the active theme
func (g *ViewerGame) currentThemeName() string {
	if g.currentIndex < 0 {
		return "(defaults)"
	}
	return g.themes[g.currentIndex].Name
}

// Update handles input and advances the simulation one tick
func (g *ViewerGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.engine.Teardown()
		return ebiten.Termination
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.cycleTheme(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.cycleTheme(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.shapeIndex = (g.shapeIndex + 1) % len(shapes)
		g.mount()
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		g.showDot = !g.showDot
		g.mount()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.mount()
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.engine.HandleClick(screenWidth/2, screenHeight/2)
	}

	g.engine.HandleResize(screenWidth, screenHeight, ebiten.Monitor().DeviceScaleFactor())
	g.engine.PollInput()
	g.engine.Tick()
	return nil
}

// cycleTheme switches to the previous/next theme (wrapping through defaults)
func (g *ViewerGame) cycleTheme(dir int) {
	if len(g.themes) == 0 {
		return
	}
	// 索引空间：-1（默认） .. len-1
	n := len(g.themes) + 1
	idx := (g.currentIndex + 1 + dir + n) % n
	g.currentIndex = idx - 1
	g.mount()
}

// Draw renders the viewer HUD and the effect overlay
func (g *ViewerGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x10, G: 0x14, B: 0x18, A: 0xff})

	ebitenutil.DebugPrintAt(screen,
		"move: trail  click: burst  space: center burst\n"+
			"arrows: theme  C: shape  D: dot  R: clear  Q: quit", 16, 16)
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("theme: %s   particles: %d", g.currentThemeName(), g.engine.ParticleCount()),
		16, 64)

	g.engine.Draw(screen)
}

// Layout returns the viewer's logical screen size
func (g *ViewerGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	flag.Parse()

	if !*verboseFlag {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	game, err := NewViewerGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "effectsview: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("cursorfx - effect viewer")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
