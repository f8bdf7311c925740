package effects

import (
	"math"
	"math/rand"
	"testing"

	"github.com/gonewx/cursorfx/pkg/config"
)

func newTestSpawner(opts *config.EffectOptions) (*Spawner, *Store) {
	store := NewStore()
	return NewSpawner(opts, store, rand.New(rand.NewSource(42))), store
}

// TestOnPointerMove_SpawnCount 每次移动生成 pixelPerMove 个轨迹粒子
func TestOnPointerMove_SpawnCount(t *testing.T) {
	opts := config.DefaultOptions()
	sp, store := newTestSpawner(opts)

	sp.OnPointerMove(100, 100, 0)

	if len(store.Trails) != opts.PixelPerMove {
		t.Errorf("spawned %d trails, want %d", len(store.Trails), opts.PixelPerMove)
	}
}

// TestOnPointerMove_Throttle 间隔 <8ms 的第二次移动生成数量减半（下限 1），
// 间隔 ≥8ms 恢复完整数量
func TestOnPointerMove_Throttle(t *testing.T) {
	tests := []struct {
		name       string
		perMove    int
		gap        float64
		wantSecond int
	}{
		{"Within window halved", 4, 5, 2},
		{"Within window floored at 1", 3, 5, 1},
		{"Within window minimum one", 1, 5, 1},
		{"At window full", 4, 8, 4},
		{"Beyond window full", 4, 100, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := config.DefaultOptions()
			opts.PixelPerMove = tt.perMove
			sp, store := newTestSpawner(opts)

			sp.OnPointerMove(0, 0, 0)
			first := len(store.Trails)
			if first != tt.perMove {
				t.Fatalf("first move spawned %d, want %d", first, tt.perMove)
			}

			sp.OnPointerMove(10, 10, tt.gap)
			second := len(store.Trails) - first
			if second != tt.wantSecond {
				t.Errorf("second move after %vms spawned %d, want %d",
					tt.gap, second, tt.wantSecond)
			}
		})
	}
}

// TestOnPointerMove_FirstEventNeverThrottled 首个移动事件不受节流影响
func TestOnPointerMove_FirstEventNeverThrottled(t *testing.T) {
	opts := config.DefaultOptions()
	opts.PixelPerMove = 4
	sp, store := newTestSpawner(opts)

	// 时间戳为 0 的首个事件也要生成完整数量
	sp.OnPointerMove(0, 0, 0)
	if len(store.Trails) != 4 {
		t.Errorf("first move spawned %d, want 4", len(store.Trails))
	}
}

// TestOnPointerMove_Jitter 粒子围绕指针位置做 ±2 的抖动
func TestOnPointerMove_Jitter(t *testing.T) {
	opts := config.DefaultOptions()
	opts.PixelPerMove = 200
	sp, store := newTestSpawner(opts)

	sp.OnPointerMove(50, 80, 0)

	for i, p := range store.Trails {
		if math.Abs(p.X-50) > config.MoveJitter || math.Abs(p.Y-80) > config.MoveJitter {
			t.Fatalf("trail %d at (%v, %v), outside ±%v of (50, 80)",
				i, p.X, p.Y, config.MoveJitter)
		}
	}
}

// TestOnPointerMove_SizeAndLife 尺寸落在配置范围内，寿命与色相偏移按配置固定
func TestOnPointerMove_SizeAndLife(t *testing.T) {
	opts := config.DefaultOptions()
	opts.PixelPerMove = 100
	sp, store := newTestSpawner(opts)

	sp.OnPointerMove(0, 0, 1234)

	for i, p := range store.Trails {
		if p.Size < opts.PixelMinSize || p.Size > opts.PixelMaxSize {
			t.Fatalf("trail %d size %v outside [%v, %v]",
				i, p.Size, opts.PixelMinSize, opts.PixelMaxSize)
		}
		if p.Born != 1234 {
			t.Fatalf("trail %d born %v, want 1234", i, p.Born)
		}
		if p.Life != opts.PixelLifeMs {
			t.Fatalf("trail %d life %v, want %v", i, p.Life, opts.PixelLifeMs)
		}
	}
}

// TestOnClick_SpawnCount 单次点击恰好生成 sparkCount 个爆裂粒子
func TestOnClick_SpawnCount(t *testing.T) {
	opts := config.DefaultOptions()
	sp, store := newTestSpawner(opts)

	sp.OnClick(300, 400, 0)

	if len(store.Bursts) != opts.SparkCount {
		t.Errorf("spawned %d bursts, want %d", len(store.Bursts), opts.SparkCount)
	}
	for i, p := range store.Bursts {
		if p.X != 300 || p.Y != 400 {
			t.Errorf("burst %d at (%v, %v), want (300, 400)", i, p.X, p.Y)
		}
		if p.Life != opts.SparkLifeMs {
			t.Errorf("burst %d life %v, want %v", i, p.Life, opts.SparkLifeMs)
		}
	}
}

// TestOnClick_SpeedRange 发射速度落在 baseSpeed×[0.6, 1.4] 内
func TestOnClick_SpeedRange(t *testing.T) {
	opts := config.DefaultOptions()
	opts.SparkCount = 500
	sp, store := newTestSpawner(opts)

	sp.OnClick(0, 0, 0)

	for i, p := range store.Bursts {
		speed := math.Hypot(p.VX, p.VY)
		lo, hi := opts.SparkSpeed*0.6, opts.SparkSpeed*1.4
		if speed < lo-1e-9 || speed > hi+1e-9 {
			t.Fatalf("burst %d speed %v outside [%v, %v]", i, speed, lo, hi)
		}
	}
}

// TestOnClick_AngleDistribution 发射角在 [0, 2π) 近似均匀：
// 按八个扇区统计，多次点击后每个扇区的占比不应显著偏离 1/8
func TestOnClick_AngleDistribution(t *testing.T) {
	opts := config.DefaultOptions()
	opts.SparkCount = 14
	sp, store := newTestSpawner(opts)

	const trials = 500
	for i := 0; i < trials; i++ {
		sp.OnClick(0, 0, float64(i))
	}

	total := len(store.Bursts)
	if total != trials*opts.SparkCount {
		t.Fatalf("spawned %d bursts, want %d", total, trials*opts.SparkCount)
	}

	var sectors [8]int
	for _, p := range store.Bursts {
		angle := math.Atan2(p.VY, p.VX)
		if angle < 0 {
			angle += 2 * math.Pi
		}
		sectors[int(angle/(2*math.Pi/8))%8]++
	}

	expected := float64(total) / 8
	for i, n := range sectors {
		ratio := float64(n) / expected
		if ratio < 0.85 || ratio > 1.15 {
			t.Errorf("sector %d has %d bursts (%.2f× expected), distribution not uniform",
				i, n, ratio)
		}
	}
}

// TestOnClick_ColorsFromPalette 颜色只来自配置调色板，且多次点击覆盖全部颜色
func TestOnClick_ColorsFromPalette(t *testing.T) {
	opts := config.DefaultOptions()
	opts.SparkCount = 200
	sp, store := newTestSpawner(opts)

	sp.OnClick(0, 0, 0)

	used := make(map[[4]uint8]bool)
	for i, p := range store.Bursts {
		found := false
		for _, c := range opts.SparkColors {
			if p.Color == c {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("burst %d color %v not in palette", i, p.Color)
		}
		used[[4]uint8{p.Color.R, p.Color.G, p.Color.B, p.Color.A}] = true
	}
	if len(used) != len(opts.SparkColors) {
		t.Errorf("only %d of %d palette colors used", len(used), len(opts.SparkColors))
	}
}

// TestSpawner_ZeroCounts 数量被钳为 0 时不生成任何粒子（零效果而非报错）
func TestSpawner_ZeroCounts(t *testing.T) {
	opts := config.DefaultOptions()
	opts.PixelPerMove = 0
	opts.SparkCount = 0
	sp, store := newTestSpawner(opts)

	sp.OnPointerMove(0, 0, 0)
	sp.OnClick(0, 0, 0)

	if store.Len() != 0 {
		t.Errorf("spawned %d particles with zero counts", store.Len())
	}
}
