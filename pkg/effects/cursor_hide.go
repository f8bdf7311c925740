package effects

import "github.com/hajimehoshi/ebiten/v2"

// 隐藏系统光标是进程级状态，带显式生命周期：Active 进入时添加，
// teardown 时移除。用引用计数而不是裸布尔，保证多个引擎实例
// 并存时系统光标恰好恢复一次。
// 引擎运行于单一协作线程，计数无需加锁。
var (
	cursorHideRefs int

	// setCursorMode 测试时可替换
	setCursorMode = ebiten.SetCursorMode
)

// acquireCursorHide 增加一次系统光标隐藏请求
func acquireCursorHide() {
	cursorHideRefs++
	if cursorHideRefs == 1 {
		setCursorMode(ebiten.CursorModeHidden)
	}
}

// releaseCursorHide 释放一次隐藏请求，计数归零时恢复系统光标
func releaseCursorHide() {
	if cursorHideRefs == 0 {
		return
	}
	cursorHideRefs--
	if cursorHideRefs == 0 {
		setCursorMode(ebiten.CursorModeVisible)
	}
}
