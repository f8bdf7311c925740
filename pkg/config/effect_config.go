// Package config 提供光标特效引擎的配置常量与选项结构
package config

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"
)

// 特效引擎行为常量
// 这些值来自对原站观感的实测调参，属于经验值而非推导值
const (
	// MoveThrottleMs 指针移动事件的节流窗口（毫秒）
	// 两次移动事件间隔小于该值时，第二次事件的生成数量减半
	MoveThrottleMs = 8.0

	// MoveJitter 轨迹粒子围绕指针位置的随机抖动范围（±逻辑像素）
	MoveJitter = 2.0

	// TrailOpacityPeak 轨迹粒子的不透明度峰值
	TrailOpacityPeak = 0.9

	// BurstDrag 爆裂粒子每帧速度衰减系数
	BurstDrag = 0.985

	// BurstGravity 爆裂粒子每帧垂直方向的重力偏置
	BurstGravity = 0.03

	// MinDeviceScale 设备像素比下限
	MinDeviceScale = 1.0

	// DefaultMaxDeviceScale 设备像素比上限默认值
	// 高密度屏幕上限制离屏表面的内存与填充开销；可通过选项调整
	DefaultMaxDeviceScale = 2.0
)

// CursorShape 光标替代图形的形状
type CursorShape string

const (
	CursorShapeSquare    CursorShape = "square"
	CursorShapeCircle    CursorShape = "circle"
	CursorShapeCrosshair CursorShape = "crosshair"
)

// EffectOptions 光标特效引擎的完整选项快照
//
// 启动时解析一次，之后在所有组件间按引用共享，初始化后不再修改。
// 所有字段均有默认值，未识别的取值不报错（见 Normalize 的钳制规则）。
type EffectOptions struct {
	// Enabled 强制开关，nil 表示由特性检测决定
	Enabled *bool `yaml:"enabled,omitempty"`

	// 轨迹粒子（指针移动产生）
	PixelColor   color.RGBA `yaml:"-"`
	PixelMinSize float64    `yaml:"pixelMinSize"`
	PixelMaxSize float64    `yaml:"pixelMaxSize"`
	PixelLifeMs  float64    `yaml:"pixelLifeMs"`
	PixelPerMove int        `yaml:"pixelPerMove"`

	// 爆裂粒子（点击产生）
	SparkColors  []color.RGBA `yaml:"-"`
	SparkCount   int          `yaml:"sparkCount"`
	SparkLifeMs  float64      `yaml:"sparkLifeMs"`
	SparkSpeed   float64      `yaml:"sparkSpeed"`
	SparkMinSize float64      `yaml:"sparkMinSize"`
	SparkMaxSize float64      `yaml:"sparkMaxSize"`

	// 光标图形覆盖层
	HideSystemCursor   bool        `yaml:"hideSystemCursor"`
	ShowCursorDot      bool        `yaml:"showCursorDot"`
	CursorDotSize      float64     `yaml:"cursorDotSize"`
	CursorDotColor     color.RGBA  `yaml:"-"`
	CursorDotShape     CursorShape `yaml:"cursorDotShape"`
	CrosshairSize      float64     `yaml:"crosshairSize"`
	CrosshairThickness float64     `yaml:"crosshairThickness"`
	CrosshairGap       float64     `yaml:"crosshairGap"`

	// MaxDeviceScale 设备像素比上限（性能边界，非正确性要求）
	MaxDeviceScale float64 `yaml:"maxDeviceScale"`
}

// optionsFile 是 YAML 选项文件的中间结构
// 颜色在文件中以 "#rrggbb" 字符串表示，解析后填入 EffectOptions
type optionsFile struct {
	EffectOptions `yaml:",inline"`

	PixelColor     string   `yaml:"pixelColor"`
	SparkColors    []string `yaml:"sparkColors"`
	CursorDotColor string   `yaml:"cursorDotColor"`
}

// DefaultOptions 返回默认选项
//
// 默认调色板为四色组合（紫/粉/蓝/黄），轨迹粒子默认紫色
func DefaultOptions() *EffectOptions {
	return &EffectOptions{
		Enabled:      nil,
		PixelColor:   color.RGBA{R: 0x8b, G: 0x5c, B: 0xf6, A: 0xff},
		PixelMinSize: 3,
		PixelMaxSize: 8,
		PixelLifeMs:  350,
		PixelPerMove: 3,
		SparkColors: []color.RGBA{
			{R: 0xa7, G: 0x8b, B: 0xfa, A: 0xff},
			{R: 0xf4, G: 0x72, B: 0xb6, A: 0xff},
			{R: 0x60, G: 0xa5, B: 0xfa, A: 0xff},
			{R: 0xfa, G: 0xcc, B: 0x15, A: 0xff},
		},
		SparkCount:         14,
		SparkLifeMs:        550,
		SparkSpeed:         2.2,
		SparkMinSize:       2,
		SparkMaxSize:       5,
		HideSystemCursor:   false,
		ShowCursorDot:      false,
		CursorDotSize:      8,
		CursorDotColor:     color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		CursorDotShape:     CursorShapeSquare,
		CrosshairSize:      8,
		CrosshairThickness: 2,
		CrosshairGap:       2,
		MaxDeviceScale:     DefaultMaxDeviceScale,
	}
}

// LoadOptionsFile 从 YAML 文件加载选项，未出现的字段保留默认值
//
// 返回的选项已经过 Normalize 处理
func LoadOptionsFile(path string) (*EffectOptions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取选项文件失败: %w", err)
	}
	return ParseOptions(data)
}

// ParseOptions 解析 YAML 选项数据
func ParseOptions(data []byte) (*EffectOptions, error) {
	file := optionsFile{EffectOptions: *DefaultOptions()}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("选项解析失败: %w", err)
	}

	opts := file.EffectOptions
	opts.PixelColor = DefaultOptions().PixelColor
	opts.SparkColors = DefaultOptions().SparkColors
	opts.CursorDotColor = DefaultOptions().CursorDotColor

	if file.PixelColor != "" {
		c, err := ParseHexColor(file.PixelColor)
		if err != nil {
			return nil, fmt.Errorf("pixelColor: %w", err)
		}
		opts.PixelColor = c
	}
	if len(file.SparkColors) > 0 {
		palette := make([]color.RGBA, 0, len(file.SparkColors))
		for _, s := range file.SparkColors {
			c, err := ParseHexColor(s)
			if err != nil {
				return nil, fmt.Errorf("sparkColors: %w", err)
			}
			palette = append(palette, c)
		}
		opts.SparkColors = palette
	}
	if file.CursorDotColor != "" {
		c, err := ParseHexColor(file.CursorDotColor)
		if err != nil {
			return nil, fmt.Errorf("cursorDotColor: %w", err)
		}
		opts.CursorDotColor = c
	}

	opts.Normalize()
	return &opts, nil
}

// Normalize 将越界取值钳制为"零效果"而不是报错
//
// 装饰性子系统绝不能破坏页面：负的尺寸/数量/寿命一律钳到 0，
// 非法形状回退为方形，调色板为空时回退默认调色板
func (o *EffectOptions) Normalize() {
	if o.PixelMinSize < 0 {
		o.PixelMinSize = 0
	}
	if o.PixelMaxSize < o.PixelMinSize {
		o.PixelMaxSize = o.PixelMinSize
	}
	if o.PixelLifeMs < 0 {
		o.PixelLifeMs = 0
	}
	if o.PixelPerMove < 0 {
		o.PixelPerMove = 0
	}
	if o.SparkCount < 0 {
		o.SparkCount = 0
	}
	if o.SparkLifeMs < 0 {
		o.SparkLifeMs = 0
	}
	if o.SparkSpeed < 0 {
		o.SparkSpeed = 0
	}
	if o.SparkMinSize < 0 {
		o.SparkMinSize = 0
	}
	if o.SparkMaxSize < o.SparkMinSize {
		o.SparkMaxSize = o.SparkMinSize
	}
	if len(o.SparkColors) == 0 {
		o.SparkColors = DefaultOptions().SparkColors
	}
	switch o.CursorDotShape {
	case CursorShapeSquare, CursorShapeCircle, CursorShapeCrosshair:
	default:
		o.CursorDotShape = CursorShapeSquare
	}
	if o.CursorDotSize < 0 {
		o.CursorDotSize = 0
	}
	if o.CrosshairSize < 0 {
		o.CrosshairSize = 0
	}
	if o.CrosshairThickness < 0 {
		o.CrosshairThickness = 0
	}
	if o.CrosshairGap < 0 {
		o.CrosshairGap = 0
	}
	if o.MaxDeviceScale < MinDeviceScale {
		o.MaxDeviceScale = DefaultMaxDeviceScale
	}
}

// ParseHexColor 解析 "#rrggbb" 或 "#rgb" 格式的颜色字符串
func ParseHexColor(s string) (color.RGBA, error) {
	if len(s) == 0 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("无效的颜色格式: %q", s)
	}
	hex := s[1:]

	parse := func(b string) (uint8, bool) {
		var v uint8
		for i := 0; i < len(b); i++ {
			c := b[i]
			var d uint8
			switch {
			case c >= '0' && c <= '9':
				d = c - '0'
			case c >= 'a' && c <= 'f':
				d = c - 'a' + 10
			case c >= 'A' && c <= 'F':
				d = c - 'A' + 10
			default:
				return 0, false
			}
			v = v<<4 | d
		}
		return v, true
	}

	switch len(hex) {
	case 6:
		r, ok1 := parse(hex[0:2])
		g, ok2 := parse(hex[2:4])
		b, ok3 := parse(hex[4:6])
		if !ok1 || !ok2 || !ok3 {
			return color.RGBA{}, fmt.Errorf("无效的颜色格式: %q", s)
		}
		return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
	case 3:
		r, ok1 := parse(hex[0:1])
		g, ok2 := parse(hex[1:2])
		b, ok3 := parse(hex[2:3])
		if !ok1 || !ok2 || !ok3 {
			return color.RGBA{}, fmt.Errorf("无效的颜色格式: %q", s)
		}
		// "#abc" 等价于 "#aabbcc"
		return color.RGBA{R: r*16 + r, G: g*16 + g, B: b*16 + b, A: 0xff}, nil
	default:
		return color.RGBA{}, fmt.Errorf("无效的颜色格式: %q", s)
	}
}
