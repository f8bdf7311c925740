package effects

import "github.com/gonewx/cursorfx/pkg/config"

// AgeFraction 返回粒子的归一化年龄 t = (now-Born)/Life
// t ≥ 1 表示已过期；寿命为 0 的粒子视为立即过期
func (p *TrailParticle) AgeFraction(now float64) float64 {
	if p.Life <= 0 {
		return 1
	}
	return (now - p.Born) / p.Life
}

// Opacity 返回当前不透明度 (1-t)×0.9，线性衰减
// 短寿命（300~600ms）下线性淡出在视觉上已足够，无需缓动曲线
func (p *TrailParticle) Opacity(now float64) float64 {
	t := p.AgeFraction(now)
	if t >= 1 {
		return 0
	}
	return (1 - t) * config.TrailOpacityPeak
}

// DrawSize 返回当前绘制边长 Size×(0.8+0.2×(1-t))
func (p *TrailParticle) DrawSize(now float64) float64 {
	t := p.AgeFraction(now)
	if t >= 1 {
		return 0
	}
	return p.Size * (0.8 + 0.2*(1-t))
}

// AgeFraction 返回爆裂粒子的归一化年龄，规则与轨迹粒子相同
func (p *BurstParticle) AgeFraction(now float64) float64 {
	if p.Life <= 0 {
		return 1
	}
	return (now - p.Born) / p.Life
}

// Opacity 返回当前不透明度 1-t
func (p *BurstParticle) Opacity(now float64) float64 {
	t := p.AgeFraction(now)
	if t >= 1 {
		return 0
	}
	return 1 - t
}

// DrawSize 返回当前绘制边长 Size×(0.9+0.1×(1-t))
func (p *BurstParticle) DrawSize(now float64) float64 {
	t := p.AgeFraction(now)
	if t >= 1 {
		return 0
	}
	return p.Size * (0.9 + 0.1*(1-t))
}

// Step 执行一次物理/老化步进，每个动画 tick 调用一次
//
// 轨迹粒子：过期即移除，位置不变。
// 爆裂粒子：过期即移除；否则先施加阻力与重力
// （vx×=0.985，vy=vy×0.985+0.03），再积分位置。
//
// 两个集合在遍历中原地删除，采用倒序索引遍历保证既不跳过也不重复处理。
// 删除顺序无关紧要，粒子之间没有依赖。
func Step(s *Store, now float64) {
	for i := len(s.Trails) - 1; i >= 0; i-- {
		if s.Trails[i].AgeFraction(now) >= 1 {
			s.Trails = append(s.Trails[:i], s.Trails[i+1:]...)
		}
	}

	for i := len(s.Bursts) - 1; i >= 0; i-- {
		p := &s.Bursts[i]
		if p.AgeFraction(now) >= 1 {
			s.Bursts = append(s.Bursts[:i], s.Bursts[i+1:]...)
			continue
		}
		p.VX *= config.BurstDrag
		p.VY = p.VY*config.BurstDrag + config.BurstGravity
		p.X += p.VX
		p.Y += p.VY
	}
}
