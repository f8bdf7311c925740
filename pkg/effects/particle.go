// Package effects 实现实时光标特效引擎
//
// 引擎在指针移动与点击时生成短命的视觉粒子，随帧老化、运动并退场，
// 与宿主的每帧回调同步重绘。粒子状态不持久化、不对外暴露，
// 整个子系统是纯装饰性的：任何失败都静默降级，绝不影响宿主页面。
package effects

import "image/color"

// TrailParticle 轨迹粒子：指针移动留下的单个方块
//
// 位置在生成时固定，存活期间只有不透明度与绘制尺寸随年龄变化。
// 不变式：存活期间 now-Born ≤ Life；一旦超出，下一次老化扫描即移除，
// 之后不再绘制。
type TrailParticle struct {
	X, Y float64 // 表面逻辑坐标
	Size float64 // 绘制边长峰值
	Born float64 // 出生时间戳（单调毫秒）
	Life float64 // 寿命（毫秒，生成时固定）

	// HueShift 色相偏移（预留给未来的颜色变化，渲染时不生效）
	HueShift int
}

// BurstParticle 爆裂粒子：一次点击爆炸中的单个火花
//
// 速度每帧受阻力衰减并叠加恒定的垂直重力偏置。
// 一批火花在单次点击中原子生成，生成后各自独立过期，无组身份。
type BurstParticle struct {
	X, Y   float64
	VX, VY float64 // 每帧位移
	Size   float64
	Born   float64
	Life   float64
	Color  color.RGBA // 生成时从调色板随机指定
}

// Store 保存两类粒子的有序集合
//
// 纯数据容器，无行为。由引擎独占持有，不对外暴露。
// 同一 tick 内只有一个逻辑角色访问它（事件投递时追加、帧回调时老化+绘制），
// 且二者运行在同一协作式调度线程上，因此无需加锁。
type Store struct {
	Trails []TrailParticle
	Bursts []BurstParticle
}

// NewStore 创建空的粒子存储
func NewStore() *Store {
	return &Store{}
}

// Len 返回当前存活粒子总数
func (s *Store) Len() int {
	return len(s.Trails) + len(s.Bursts)
}

// Clear 清空所有粒子（保留底层容量）
func (s *Store) Clear() {
	s.Trails = s.Trails[:0]
	s.Bursts = s.Bursts[:0]
}
