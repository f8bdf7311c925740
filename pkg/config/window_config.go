package config

// 窗口默认参数
const (
	// WindowWidth 窗口默认宽度（逻辑像素）
	WindowWidth = 1280

	// WindowHeight 窗口默认高度（逻辑像素）
	WindowHeight = 720

	// WindowTitle 窗口标题
	WindowTitle = "cursorfx"
)
