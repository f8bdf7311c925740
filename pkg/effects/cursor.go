package effects

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/cursorfx/pkg/config"
)

// CursorOverlay 光标替代图形的同步器
//
// 只持有图形位置状态，与粒子表面完全独立；
// 两条渲染路径之间唯一共享的数据是最新的指针坐标（双方只读）。
// dot（方/圆）与 crosshair 互斥，由配置决定其一。
type CursorOverlay struct {
	opts *config.EffectOptions
	x, y float64
	seen bool // 首次指针采样前不绘制
}

// NewCursorOverlay 创建光标图形同步器
func NewCursorOverlay(opts *config.EffectOptions) *CursorOverlay {
	return &CursorOverlay{opts: opts}
}

// SetPosition 更新图形位置，每次指针移动采样时调用
func (c *CursorOverlay) SetPosition(x, y float64) {
	c.x = x
	c.y = y
	c.seen = true
}

// Position 返回最近一次指针采样位置
func (c *CursorOverlay) Position() (x, y float64) {
	return c.x, c.y
}

// Draw 将光标图形绘制到宿主屏幕
func (c *CursorOverlay) Draw(screen *ebiten.Image) {
	if !c.opts.ShowCursorDot || !c.seen {
		return
	}

	switch c.opts.CursorDotShape {
	case config.CursorShapeCircle:
		vector.DrawFilledCircle(screen,
			float32(c.x), float32(c.y),
			float32(c.opts.CursorDotSize/2),
			c.opts.CursorDotColor, true)

	case config.CursorShapeCrosshair:
		bars := crosshairBars(c.x, c.y,
			c.opts.CrosshairSize, c.opts.CrosshairThickness, c.opts.CrosshairGap)
		for _, b := range bars {
			vector.DrawFilledRect(screen,
				float32(b.X), float32(b.Y), float32(b.W), float32(b.H),
				c.opts.CursorDotColor, false)
		}

	default: // 方形
		s := c.opts.CursorDotSize
		vector.DrawFilledRect(screen,
			float32(c.x-s/2), float32(c.y-s/2), float32(s), float32(s),
			c.opts.CursorDotColor, false)
	}
}

// bar 一条十字准星臂的矩形区域（逻辑坐标）
type bar struct {
	X, Y, W, H float64
}

// crosshairBars 计算十字准星的四条臂
//
// 每轴两条，从指针中心向外偏移 gap，长 size、粗 thickness，
// 形成中心镂空的十字而不是实心加号
func crosshairBars(cx, cy, size, thickness, gap float64) [4]bar {
	return [4]bar{
		// 左、右
		{X: cx - gap - size, Y: cy - thickness/2, W: size, H: thickness},
		{X: cx + gap, Y: cy - thickness/2, W: size, H: thickness},
		// 上、下
		{X: cx - thickness/2, Y: cy - gap - size, W: thickness, H: size},
		{X: cx - thickness/2, Y: cy + gap, W: thickness, H: size},
	}
}
