package effects

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/cursorfx/pkg/config"
	"github.com/gonewx/cursorfx/pkg/utils"
)

// State 引擎生命周期状态
//
// Disabled → Active → TornDown，TornDown 为终态：
// 一旦 teardown，引擎不能复用，必须重新初始化一个新实例
type State int

const (
	StateDisabled State = iota
	StateActive
	StateTornDown
)

// String 返回状态名，用于日志
func (s State) String() string {
	switch s {
	case StateDisabled:
		return "Disabled"
	case StateActive:
		return "Active"
	case StateTornDown:
		return "TornDown"
	default:
		return "Unknown"
	}
}

// Environment 特性检测的三个输入信号
type Environment struct {
	FinePointer   bool // 指针是否为精确设备（鼠标/触控板）
	TouchCapable  bool // 是否具备触摸能力
	ReducedMotion bool // 用户是否偏好减少动效
}

// allow 返回特性检测的综合判定（带覆盖的逻辑与）
func (env Environment) allow() bool {
	return env.FinePointer && !env.TouchCapable && !env.ReducedMotion
}

// surfaceSupported 报告绘图表面是否可用
// Ebitengine 下总是可用；测试通过替换它验证静默降级路径
var surfaceSupported = func() bool { return true }

// Engine 光标特效引擎的生命周期控制器
//
// 负责启用判定、各组件的装配以及 teardown 时所有资源的确定性释放。
// 每帧由宿主依次调用 PollInput → Tick → Draw；
// 事件入口（HandlePointerMove/HandleClick）只向粒子存储追加，
// 老化与重绘只发生在帧回调里，两者运行于同一协作线程，无需加锁。
type Engine struct {
	opts    *config.EffectOptions
	state   State
	store   *Store
	spawner *Spawner
	surface *SurfaceManager
	cursor  *CursorOverlay

	// clock 返回单调毫秒时间戳，测试时可替换
	clock func() float64

	hidCursor    bool
	lastX, lastY float64
	hasPointer   bool
}

// NewEngine 创建引擎并完成一次性的启用判定
//
// enabled = 显式覆盖（如有），否则（精确指针 且 非触摸 且 非减少动效）。
// 判定为关闭、或绘图表面不可用时，引擎以 Disabled 状态存在：
// 不获取任何资源，整个挂载期保持惰性，特效静默缺席，页面其余部分不受影响。
func NewEngine(opts *config.EffectOptions, env Environment) *Engine {
	e := &Engine{
		opts:  opts,
		state: StateDisabled,
		clock: monotonicClock(),
	}

	enabled := env.allow()
	if opts.Enabled != nil {
		enabled = *opts.Enabled
	}
	if !enabled {
		log.Printf("[Engine] disabled (override=%v, fine=%v, touch=%v, reducedMotion=%v)",
			opts.Enabled != nil, env.FinePointer, env.TouchCapable, env.ReducedMotion)
		return e
	}

	// 环境不支持：降级为 Disabled，不报错、不日志刷屏
	if !surfaceSupported() {
		log.Printf("[Engine] drawing surface unavailable, effects disabled")
		return e
	}

	e.store = NewStore()
	e.spawner = NewSpawner(opts, e.store, rand.New(rand.NewSource(time.Now().UnixNano())))
	e.surface = NewSurfaceManager(opts)
	e.cursor = NewCursorOverlay(opts)

	if opts.HideSystemCursor {
		acquireCursorHide()
		e.hidCursor = true
	}

	e.state = StateActive
	log.Printf("[Engine] active")
	return e
}

// State 返回当前生命周期状态
func (e *Engine) State() State {
	return e.state
}

// Active 报告引擎是否在运行
func (e *Engine) Active() bool {
	return e.state == StateActive
}

// ParticleCount 返回当前存活粒子总数（查看器用）
func (e *Engine) ParticleCount() int {
	if e.store == nil {
		return 0
	}
	return e.store.Len()
}

// HandlePointerMove 处理一次指针移动采样
// teardown 之后调用是安全的空操作
func (e *Engine) HandlePointerMove(x, y float64) {
	if e.state != StateActive {
		return
	}
	e.spawner.OnPointerMove(x, y, e.clock())
	e.cursor.SetPosition(x, y)
	e.lastX, e.lastY = x, y
	e.hasPointer = true
}

// HandleClick 处理一次点击事件
func (e *Engine) HandleClick(x, y float64) {
	if e.state != StateActive {
		return
	}
	e.spawner.OnClick(x, y, e.clock())
}

// HandleResize 处理视口尺寸或设备像素比变化
// 立即重算，不做去抖：resize 风暴只是冗余计算，不影响正确性
func (e *Engine) HandleResize(logicalW, logicalH int, rawScale float64) {
	if e.state != StateActive {
		return
	}
	e.surface.Resize(logicalW, logicalH, rawScale)
}

// PollInput 从 Ebitengine 采样指针与点击，每个 tick 调用一次
//
// 指针移动事件由宿主异步投递；这里按 tick 采样等价于
// "最迟下一帧可见" 的投递语义，粒子不保证在生成当帧就被绘制
func (e *Engine) PollInput() {
	if e.state != StateActive {
		return
	}

	x, y := utils.GetPointerPosition()
	fx, fy := float64(x), float64(y)
	if !e.hasPointer || fx != e.lastX || fy != e.lastY {
		e.HandlePointerMove(fx, fy)
	}

	if clicked, cx, cy := utils.IsJustTouchedOrClicked(); clicked {
		e.HandleClick(float64(cx), float64(cy))
	}
}

// Tick 执行一次老化/物理步进，每个动画 tick 调用一次
func (e *Engine) Tick() {
	if e.state != StateActive {
		return
	}
	Step(e.store, e.clock())
}

// Draw 重绘粒子表面并合成到宿主屏幕，最后绘制光标图形
func (e *Engine) Draw(screen *ebiten.Image) {
	if e.state != StateActive {
		return
	}
	e.surface.RenderFrame(e.store, e.clock())
	e.surface.Draw(screen)
	e.cursor.Draw(screen)
}

// Teardown 终止引擎并释放全部已获取的资源
//
// 四项释放（停止帧循环参与、退订事件、移除光标隐藏标记、释放表面）
// 在任何触发路径下都会执行，包括帧中途触发；调用是幂等的。
// teardown 之后状态为 TornDown（终态），后续事件与帧回调均为空操作。
func (e *Engine) Teardown() {
	if e.state == StateTornDown {
		return
	}
	wasActive := e.state == StateActive
	// 先进入终态：帧循环与事件入口立即失效
	e.state = StateTornDown

	if e.hidCursor {
		releaseCursorHide()
		e.hidCursor = false
	}
	if wasActive {
		e.surface.Release()
		e.store.Clear()
	}
	log.Printf("[Engine] torn down")
}

// monotonicClock 返回一个以引擎创建时刻为零点的单调毫秒时钟
func monotonicClock() func() float64 {
	start := time.Now()
	return func() float64 {
		return time.Since(start).Seconds() * 1000
	}
}
