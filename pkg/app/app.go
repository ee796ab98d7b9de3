// Package app 提供游戏应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/gonewx/oogagoblin/pkg/config"
	"github.com/gonewx/oogagoblin/pkg/game"
	"github.com/gonewx/oogagoblin/pkg/scenes"
	"github.com/gonewx/oogagoblin/pkg/utils"
)

// AppName gdata 存储使用的应用名
const AppName = "oogagoblin"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用 Debug 级别日志
	Verbose bool
	// LogJSON 以 JSON 格式输出日志
	LogJSON bool
	// Seed 随机种子，0 表示使用配置文件或当前时间
	Seed int64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	scene    *scenes.WorldScene
	input    *EbitenInput
	settings *game.SettingsManager
	window   config.WindowConfig

	clearColor               color.RGBA
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数

	log *logrus.Entry
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	configureLogging(cfg)
	log := logrus.WithField("system", "App")

	worldCfg, err := LoadWorldConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("世界配置加载失败: %w", err)
	}

	w, seed, err := BuildWorld(worldCfg)
	if err != nil {
		return nil, fmt.Errorf("世界初始化失败: %w", err)
	}
	log.WithField("seed", seed).Infof("World ready with %d entities", w.Pool.Len())

	storage, err := game.OpenSettingsStorage(AppName)
	if err != nil {
		log.Warnf("%v (settings will not persist)", err)
	}
	settings := game.NewSettingsManager(storage)

	return &App{
		scene:      scenes.NewWorldScene(w, game.NewClock(), settings),
		input:      NewEbitenInput(),
		settings:   settings,
		window:     worldCfg.Window,
		clearColor: config.HexToRGBA(worldCfg.Window.ClearColor),
		log:        log,
	}, nil
}

// ConfigureWindow 应用窗口尺寸、标题、tick 上限和保存的全屏设置
// 移动端没有窗口，只设置 tick 上限
func (a *App) ConfigureWindow() {
	ebiten.SetTPS(a.window.FPSLimit)
	if utils.IsMobile() {
		return
	}
	ebiten.SetWindowSize(a.window.Width, a.window.Height)
	ebiten.SetWindowTitle(a.window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(a.settings.GetSettings().Fullscreen)
}

// Update 更新游戏逻辑
// ESC 在当前 tick 结束后退出；实体池耗尽时返回错误终止游戏
func (a *App) Update() error {
	a.input.BeginTick()

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.window.Width, a.window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	if a.input.IsKeyJustPressed(game.KeyEscape) {
		a.log.Info("Quit requested")
		return ebiten.Termination
	}

	if a.input.IsKeyJustPressed(game.KeyF11) {
		a.toggleFullscreen()
	}
	if a.input.IsKeyJustPressed(game.KeyF3) {
		a.toggleDebugText()
	}

	return a.scene.Update(a.input)
}

// toggleFullscreen F11 切换全屏并保存设置
func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)

	if !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
	}

	a.settings.SetFullscreen(fullscreen)
	if err := a.settings.Save(); err != nil {
		a.log.Warnf("Failed to save settings: %v", err)
	}
	a.log.Infof("Fullscreen: %v", fullscreen)
}

// toggleDebugText F3 切换实体坐标调试文本
func (a *App) toggleDebugText() {
	show := !a.settings.GetSettings().ShowDebugText
	a.settings.SetShowDebugText(show)
	if err := a.settings.Save(); err != nil {
		a.log.Warnf("Failed to save settings: %v", err)
	}
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(a.clearColor)
	a.scene.Draw(screen)
}

// Layout 逻辑屏幕尺寸与窗口尺寸一致，窗口缩放时同步摄像机
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.scene.World().Camera.SetScreenSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Scene 返回世界场景
func (a *App) Scene() *scenes.WorldScene {
	return a.scene
}
