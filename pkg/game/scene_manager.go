package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager manages the application's high-level state by controlling
// which scene is active. It ensures only one scene's Update and Draw
// methods are called at any given time.
//
// 切换场景即"完整重挂载"：旧场景先被 Teardown（如实现了 Teardowner），
// 新场景从头初始化。被切换走的场景不可复用。
type SceneManager struct {
	currentScene Scene
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{
		currentScene: nil,
	}
}

// SwitchTo changes the active scene to the provided scene.
// 旧场景如实现了 Teardowner 会先被释放
func (sm *SceneManager) SwitchTo(scene Scene) {
	if td, ok := sm.currentScene.(Teardowner); ok {
		log.Printf("[SceneManager] tearing down current scene")
		td.Teardown()
	}
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景
//
// 用于应用关闭时检查当前场景是否需要释放资源
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Shutdown 在应用退出时释放当前场景
func (sm *SceneManager) Shutdown() {
	if td, ok := sm.currentScene.(Teardowner); ok {
		td.Teardown()
	}
	sm.currentScene = nil
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
