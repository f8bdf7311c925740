package effects

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/cursorfx/pkg/config"
)

// SurfaceState 绘图表面的像素尺寸状态
//
// 由 SurfaceManager 独占持有，启动时与每次 resize 时重新计算
type SurfaceState struct {
	LogicalWidth  int     // 逻辑（缩放前）宽度
	LogicalHeight int     // 逻辑高度
	DeviceWidth   int     // 设备像素宽度 = 逻辑宽度 × Scale
	DeviceHeight  int     // 设备像素高度
	Scale         float64 // 钳制后的设备像素比
}

// SurfaceManager 持有绘图表面的唯一句柄并负责每帧重绘
//
// 表面按设备像素分配，绘制时施加缩放变换，
// 使上层始终以逻辑坐标提交绘制。副作用仅限于所持表面。
type SurfaceManager struct {
	opts    *config.EffectOptions
	state   SurfaceState
	surface *ebiten.Image // 延迟分配；尺寸变化时重建
}

// NewSurfaceManager 创建表面管理器，表面在首次渲染时分配
func NewSurfaceManager(opts *config.EffectOptions) *SurfaceManager {
	return &SurfaceManager{opts: opts}
}

// ClampScale 将原始设备像素比钳制到 [1, max]
//
// 上限是性能/内存边界而非正确性要求，默认 2，可经选项调整
func ClampScale(raw, max float64) float64 {
	if raw < config.MinDeviceScale {
		return config.MinDeviceScale
	}
	if raw > max {
		return max
	}
	return raw
}

// DeviceSize 由逻辑尺寸和缩放系数计算设备像素尺寸（四舍五入）
func DeviceSize(logical int, scale float64) int {
	return int(math.Round(float64(logical) * scale))
}

// Resize 读取宿主视口尺寸并重新计算设备像素尺寸
//
// 尺寸未变化时不做任何事；变化时丢弃旧表面，下一帧重新分配。
// 快速连续的 resize 只会造成冗余计算，不影响正确性，无需合并。
func (m *SurfaceManager) Resize(logicalW, logicalH int, rawScale float64) {
	scale := ClampScale(rawScale, m.opts.MaxDeviceScale)
	next := SurfaceState{
		LogicalWidth:  logicalW,
		LogicalHeight: logicalH,
		DeviceWidth:   DeviceSize(logicalW, scale),
		DeviceHeight:  DeviceSize(logicalH, scale),
		Scale:         scale,
	}
	if next == m.state {
		return
	}
	m.state = next
	m.release()
}

// State 返回当前表面状态快照
func (m *SurfaceManager) State() SurfaceState {
	return m.state
}

// RenderFrame 清空整个表面并重绘所有存活粒子
//
// 先绘制轨迹粒子再绘制爆裂粒子，均为实心方块（方块比圆便宜，
// 也正是预期的像素风观感），逐粒子施加当前不透明度与尺寸。
func (m *SurfaceManager) RenderFrame(store *Store, now float64) {
	if !m.acquire() {
		return
	}
	m.surface.Clear()

	s := m.state.Scale
	for i := range store.Trails {
		p := &store.Trails[i]
		a := p.Opacity(now)
		if a <= 0 {
			continue
		}
		d := p.DrawSize(now) * s
		vector.DrawFilledRect(m.surface,
			float32(p.X*s-d/2), float32(p.Y*s-d/2),
			float32(d), float32(d),
			scaleAlpha(m.opts.PixelColor, a), false)
	}
	for i := range store.Bursts {
		p := &store.Bursts[i]
		a := p.Opacity(now)
		if a <= 0 {
			continue
		}
		d := p.DrawSize(now) * s
		vector.DrawFilledRect(m.surface,
			float32(p.X*s-d/2), float32(p.Y*s-d/2),
			float32(d), float32(d),
			scaleAlpha(p.Color, a), false)
	}
}

// Draw 把离屏表面合成到宿主屏幕（逻辑坐标系）
func (m *SurfaceManager) Draw(screen *ebiten.Image) {
	if m.surface == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(1/m.state.Scale, 1/m.state.Scale)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(m.surface, op)
}

// Release 释放离屏表面，teardown 时调用
func (m *SurfaceManager) Release() {
	m.release()
}

// acquire 确保离屏表面已按当前设备像素尺寸分配
// 尺寸非法（视口尚未就绪）时返回 false，本帧跳过渲染
func (m *SurfaceManager) acquire() bool {
	if m.state.DeviceWidth <= 0 || m.state.DeviceHeight <= 0 {
		return false
	}
	if m.surface == nil {
		m.surface = ebiten.NewImage(m.state.DeviceWidth, m.state.DeviceHeight)
	}
	return true
}

func (m *SurfaceManager) release() {
	if m.surface != nil {
		m.surface.Deallocate()
		m.surface = nil
	}
}

// scaleAlpha 按不透明度缩放颜色（ebiten 使用预乘 alpha）
func scaleAlpha(c color.RGBA, a float64) color.RGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(255 * a),
	}
}
