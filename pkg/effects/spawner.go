package effects

import (
	"math"
	"math/rand"

	"github.com/gonewx/cursorfx/pkg/config"
)

// Spawner 把指针移动与点击事件转换为新粒子
//
// 只向 Store 追加，不绘制、不移除。坐标不做校验：
// 畸形但有限的坐标照常接受，老化步进能容忍任意有限值。
type Spawner struct {
	opts  *config.EffectOptions
	store *Store
	rng   *rand.Rand

	// lastMove 上一次移动事件的时间戳，用于节流判定
	lastMove float64
	hasMove  bool
}

// NewSpawner 创建生成器
//
// rng 由调用方注入，测试时可传入固定种子的随机源
func NewSpawner(opts *config.EffectOptions, store *Store, rng *rand.Rand) *Spawner {
	return &Spawner{
		opts:  opts,
		store: store,
		rng:   rng,
	}
}

// OnPointerMove 处理一次指针移动采样
//
// 追加 N 个轨迹粒子（N = pixelPerMove；与上一次移动间隔 < 8ms 时减半，
// 下限 1），每个粒子围绕 (x,y) 做 ±2 逻辑像素的随机抖动。
func (sp *Spawner) OnPointerMove(x, y, now float64) {
	n := sp.opts.PixelPerMove
	if sp.hasMove && now-sp.lastMove < config.MoveThrottleMs {
		n = n / 2
		if n < 1 {
			n = 1
		}
	}
	sp.lastMove = now
	sp.hasMove = true

	for i := 0; i < n; i++ {
		size := sp.opts.PixelMinSize +
			sp.rng.Float64()*(sp.opts.PixelMaxSize-sp.opts.PixelMinSize)
		sp.store.Trails = append(sp.store.Trails, TrailParticle{
			X:        x + (sp.rng.Float64()*2-1)*config.MoveJitter,
			Y:        y + (sp.rng.Float64()*2-1)*config.MoveJitter,
			Size:     size,
			Born:     now,
			Life:     sp.opts.PixelLifeMs,
			HueShift: sp.rng.Intn(41) - 20,
		})
	}
}

// OnClick 处理一次点击事件
//
// 原子追加 sparkCount 个爆裂粒子：发射角在 [0,2π) 均匀分布，
// 速度为 sparkSpeed×U[0.6,1.4]，颜色从调色板均匀抽取。
func (sp *Spawner) OnClick(x, y, now float64) {
	for i := 0; i < sp.opts.SparkCount; i++ {
		angle := sp.rng.Float64() * 2 * math.Pi
		speed := sp.opts.SparkSpeed * (0.6 + sp.rng.Float64()*0.8)
		size := sp.opts.SparkMinSize +
			sp.rng.Float64()*(sp.opts.SparkMaxSize-sp.opts.SparkMinSize)
		sp.store.Bursts = append(sp.store.Bursts, BurstParticle{
			X:     x,
			Y:     y,
			VX:    math.Cos(angle) * speed,
			VY:    math.Sin(angle) * speed,
			Size:  size,
			Born:  now,
			Life:  sp.opts.SparkLifeMs,
			Color: sp.opts.SparkColors[sp.rng.Intn(len(sp.opts.SparkColors))],
		})
	}
}
