// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/cursorfx/internal/theme"
	"github.com/gonewx/cursorfx/pkg/config"
	"github.com/gonewx/cursorfx/pkg/embedded"
	"github.com/gonewx/cursorfx/pkg/game"
	"github.com/gonewx/cursorfx/pkg/scenes"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// OptionsPath 特效选项 YAML 文件路径，为空则使用默认选项
	OptionsPath string
	// ThemePath 主题文件路径，为空则使用嵌入的内置主题
	ThemePath string
	// ThemeName 启动时应用的主题名，为空则使用偏好中记录的主题
	ThemeName string
	// ForceEffects 命令行强制开关（覆盖特性检测与偏好），nil 表示不强制
	ForceEffects *bool
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settingsManager          *game.SettingsManager
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 初始化 gdata 存储（失败降级为仅内存偏好）
	gdataManager, err := gdata.Open(gdata.Config{AppName: "cursorfx"})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable: %v (settings will not persist)", err)
		gdataManager = nil
	}

	settingsManager, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("偏好管理器初始化失败: %w", err)
	}

	// 解析基准选项
	opts := config.DefaultOptions()
	if cfg.OptionsPath != "" {
		opts, err = config.LoadOptionsFile(cfg.OptionsPath)
		if err != nil {
			return nil, fmt.Errorf("选项加载失败: %w", err)
		}
		log.Printf("[App] Options loaded from %s", cfg.OptionsPath)
	}

	// 应用主题（命令行指定优先，其次是偏好中记录的主题）
	themeName := cfg.ThemeName
	if themeName == "" {
		themeName = settingsManager.GetSettings().Theme
	}
	if themeName != "" {
		themes, err := loadThemes(cfg.ThemePath)
		if err != nil {
			return nil, fmt.Errorf("主题加载失败: %w", err)
		}
		t, ok := theme.Find(themes, themeName)
		if !ok {
			return nil, fmt.Errorf("主题不存在: %s", themeName)
		}
		opts, err = t.Apply(opts)
		if err != nil {
			return nil, fmt.Errorf("主题应用失败: %w", err)
		}
		log.Printf("[App] Theme applied: %s", themeName)
	}

	// 命令行强制开关优先级最高
	if cfg.ForceEffects != nil {
		opts.Enabled = cfg.ForceEffects
	}

	// 创建场景管理器并挂载演示场景
	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewDemoScene(opts, settingsManager))

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		verbose:         cfg.Verbose,
	}, nil
}

// loadThemes 加载主题列表
// 指定了路径则从磁盘读取，否则回退到嵌入的内置主题
func loadThemes(path string) ([]theme.Theme, error) {
	if path != "" {
		return theme.Load(path)
	}
	if !embedded.IsInitialized() {
		return nil, fmt.Errorf("no theme file specified and embedded themes unavailable")
	}
	data, err := embedded.ReadFile("data/themes.yaml")
	if err != nil {
		return nil, err
	}
	return theme.Parse(data)
}

// Update 更新应用逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.WindowWidth, config.WindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		isFullscreen := ebiten.IsFullscreen()
		if isFullscreen {
			// 退出全屏
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制应用画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回逻辑屏幕尺寸
// 窗口可缩放，逻辑尺寸跟随外部尺寸（特效表面按视口大小重建）
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth < 1 {
		outsideWidth = 1
	}
	if outsideHeight < 1 {
		outsideHeight = 1
	}
	return outsideWidth, outsideHeight
}

// Shutdown 在应用退出时释放场景资源
func (a *App) Shutdown() {
	a.sceneManager.Shutdown()
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
