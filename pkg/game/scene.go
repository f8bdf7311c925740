package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents an application scene (e.g., demo page, settings page).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Teardowner 是一个可选接口，用于支持场景在退出时释放资源
//
// 实现此接口的场景会在以下时机被调用 Teardown()：
//   - 场景被切换走（完整重挂载的前半段）
//   - 应用窗口关闭
//
// 特效引擎等持有进程级状态（如系统光标隐藏标记）的场景必须实现它，
// 保证即使在帧中途退出也能完成全部释放。
type Teardowner interface {
	// Teardown 释放场景持有的所有资源，调用必须幂等
	Teardown()
}
