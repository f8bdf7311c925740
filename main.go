package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/cursorfx/pkg/app"
	"github.com/gonewx/cursorfx/pkg/config"
	"github.com/gonewx/cursorfx/pkg/embedded"
)

var (
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging")
	optionsFlag = flag.String("options", "", "Path to effect options YAML file")
	themesFlag  = flag.String("themes", "", "Path to theme YAML file")
	themeFlag   = flag.String("theme", "", "Theme name to apply on startup")
	effectsFlag = flag.String("effects", "auto", "Force effects on/off: auto, on, off")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源（内置主题）
	embedded.Init(dataFS)

	// 解析强制开关：auto 交给特性检测
	var force *bool
	switch *effectsFlag {
	case "auto":
	case "on":
		v := true
		force = &v
	case "off":
		v := false
		force = &v
	default:
		fmt.Fprintf(os.Stderr, "invalid --effects value: %s (want auto, on or off)\n", *effectsFlag)
		os.Exit(2)
	}

	cursorApp, err := app.NewApp(app.Config{
		Verbose:      *verboseFlag,
		OptionsPath:  *optionsFlag,
		ThemePath:    *themesFlag,
		ThemeName:    *themeFlag,
		ForceEffects: force,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err = ebiten.RunGame(cursorApp)

	// 无论正常退出还是出错，先释放场景资源（光标隐藏标记、离屏表面）
	cursorApp.Shutdown()

	if err != nil {
		log.Fatal(err)
	}
}
