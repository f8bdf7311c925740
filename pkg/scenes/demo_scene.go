// Package scenes 实现应用的各个场景
package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/cursorfx/pkg/config"
	"github.com/gonewx/cursorfx/pkg/effects"
	"github.com/gonewx/cursorfx/pkg/game"
)

// demoBackground 演示页面底色（深色，便于观察特效）
var demoBackground = color.RGBA{R: 0x12, G: 0x12, B: 0x1a, A: 0xff}

// cursorShapeOrder C 键循环切换形状的顺序
var cursorShapeOrder = []config.CursorShape{
	config.CursorShapeSquare,
	config.CursorShapeCircle,
	config.CursorShapeCrosshair,
}

// DemoScene 特效演示场景
//
// 在简单的页面内容上挂载光标特效引擎，并通过按键切换各项偏好。
// 任何偏好变化都走"teardown + 重新挂载"的完整重挂载路径：
// 引擎的启用判定只在挂载时求值一次，挂载期间不会变。
type DemoScene struct {
	baseOpts *config.EffectOptions // 文件/主题解析出的基准选项
	settings *game.SettingsManager
	engine   *effects.Engine
}

// NewDemoScene 创建演示场景并完成首次引擎挂载
func NewDemoScene(baseOpts *config.EffectOptions, settings *game.SettingsManager) *DemoScene {
	s := &DemoScene{
		baseOpts: baseOpts,
		settings: settings,
	}
	s.mountEngine()
	return s
}

// mountEngine 用"基准选项 + 用户偏好"组装最终选项并创建引擎
func (s *DemoScene) mountEngine() {
	st := s.settings.GetSettings()

	opts := *s.baseOpts
	if st.EffectsEnabled != nil {
		opts.Enabled = st.EffectsEnabled
	}
	opts.HideSystemCursor = st.HideSystemCursor
	opts.ShowCursorDot = st.ShowCursorDot
	if st.CursorDotShape != "" {
		opts.CursorDotShape = config.CursorShape(st.CursorDotShape)
	}
	opts.Normalize()

	env := effects.DetectEnvironment(st.ReducedMotion)
	s.engine = effects.NewEngine(&opts, env)
}

// remountEngine 完整重挂载：释放旧引擎，重新判定并挂载新引擎
func (s *DemoScene) remountEngine() {
	if s.engine != nil {
		s.engine.Teardown()
	}
	s.mountEngine()
}

// Update 处理按键、输入采样与粒子步进
func (s *DemoScene) Update(deltaTime float64) {
	s.handleKeys()

	// 视口尺寸与设备像素比可能随时变化，每帧重算
	// SurfaceManager 在尺寸未变时直接返回，这里不需要去抖
	w, h := ebiten.WindowSize()
	if ebiten.IsFullscreen() {
		w, h = ebiten.Monitor().Size()
	}
	s.engine.HandleResize(w, h, ebiten.Monitor().DeviceScaleFactor())

	s.engine.PollInput()
	s.engine.Tick()
}

// handleKeys 处理偏好切换按键，每次变化持久化并重挂载引擎
func (s *DemoScene) handleKeys() {
	st := s.settings.GetSettings()
	changed := false

	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		// 在 自动 → 强制开 → 强制关 之间循环
		switch {
		case st.EffectsEnabled == nil:
			v := true
			s.settings.SetEffectsEnabled(&v)
		case *st.EffectsEnabled:
			v := false
			s.settings.SetEffectsEnabled(&v)
		default:
			s.settings.SetEffectsEnabled(nil)
		}
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		s.settings.SetShowCursorDot(!st.ShowCursorDot)
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		s.settings.SetCursorDotShape(string(nextCursorShape(st.CursorDotShape)))
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		s.settings.SetHideSystemCursor(!st.HideSystemCursor)
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		s.settings.SetReducedMotion(!st.ReducedMotion)
		changed = true
	}

	if changed {
		if err := s.settings.Save(); err != nil {
			log.Printf("[DemoScene] Warning: failed to save settings: %v", err)
		}
		s.remountEngine()
	}
}

// Draw 绘制页面内容，再把特效合成在最上层
func (s *DemoScene) Draw(screen *ebiten.Image) {
	screen.Fill(demoBackground)

	ebitenutil.DebugPrintAt(screen, "cursorfx demo", 16, 16)
	ebitenutil.DebugPrintAt(screen,
		"move: trail   click: burst\n"+
			"E: effects auto/on/off   D: cursor dot   C: shape\n"+
			"H: hide system cursor    M: reduced motion   F11: fullscreen",
		16, 40)

	st := s.settings.GetSettings()
	status := fmt.Sprintf("state: %s   particles: %d   shape: %s",
		s.engine.State(), s.engine.ParticleCount(), st.CursorDotShape)
	ebitenutil.DebugPrintAt(screen, status, 16, 100)

	s.engine.Draw(screen)
}

// Teardown 释放引擎资源（场景切换或应用退出时调用）
func (s *DemoScene) Teardown() {
	if s.engine != nil {
		s.engine.Teardown()
	}
}

// nextCursorShape 返回循环顺序中的下一个形状
func nextCursorShape(current string) config.CursorShape {
	for i, shape := range cursorShapeOrder {
		if string(shape) == current {
			return cursorShapeOrder[(i+1)%len(cursorShapeOrder)]
		}
	}
	return cursorShapeOrder[0]
}
