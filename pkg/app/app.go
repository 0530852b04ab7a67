// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phishy-app/phishy-desktop/pkg/config"
	"github.com/phishy-app/phishy-desktop/pkg/game"
	"github.com/phishy-app/phishy-desktop/pkg/scenes"
	"github.com/phishy-app/phishy-desktop/pkg/sim"
	"github.com/quasilyte/gdata/v2"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ReducedMotion 强制静态背景（优先于已保存的设置）
	ReducedMotion bool
	// URL 启动后立即扫描的 URL，为空则停留在主页
	URL string
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	scheduler    *sim.Scheduler
	verbose      bool

	// Last outside size reported by Layout; drives surface resizes.
	outsideWidth  int
	outsideHeight int

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 设置存储：打开失败时降级为仅内存设置
	gdataManager, err := gdata.Open(gdata.Config{AppName: "phishy"})
	if err != nil {
		log.Printf("[App] Warning: settings storage unavailable: %v (settings will not persist)", err)
		gdataManager = nil
	}
	settingsManager, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		log.Printf("[App] Warning: %v", err)
	}

	// 动效偏好在启动时读取一次，决定调度器模式
	reducedMotion := settingsManager.GetSettings().ReducedMotion || cfg.ReducedMotion
	log.Printf("[App] Reduced motion: %v", reducedMotion)

	// 音频上下文与提示音
	audioContext := audio.NewContext(48000)
	audioManager := game.NewAudioManager(audioContext, settingsManager)

	// 背景模拟参数
	simCfg, err := config.LoadSimulationConfig("data/simulation.yaml")
	if err != nil {
		log.Printf("[App] Warning: %v (using defaults)", err)
		simCfg = config.DefaultSimulationConfig()
	}

	// 背景模拟：表面、粒子场、调度器
	surface := &sim.Surface{}
	surface.Configure(config.WindowWidth, config.WindowHeight)
	field := sim.NewField(simCfg, time.Now().UnixNano())
	field.Init(simCfg.ParticleCount, surface)
	scheduler := sim.NewScheduler(surface, field, reducedMotion)

	// 场景管理器与共享上下文
	sceneManager := game.NewSceneManager()
	ctx := &scenes.Context{
		Manager:   sceneManager,
		Scheduler: scheduler,
		Surface:   surface,
		Settings:  settingsManager,
		Audio:     audioManager,
		Rand:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	sceneManager.SetSceneFactory(scenes.NewSceneFactory(ctx))

	sceneManager.Push(game.ViewHome)
	if cfg.URL != "" {
		log.Printf("[App] Starting with immediate scan: %s", cfg.URL)
		ctx.PendingURL = cfg.URL
		sceneManager.Push(game.ViewScan)
	}

	return &App{
		sceneManager: sceneManager,
		scheduler:    scheduler,
		verbose:      cfg.Verbose,
	}, nil
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
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	// 视口尺寸变化：重配置表面并重投影粒子（不重建场）
	if a.outsideWidth > 0 && a.outsideHeight > 0 {
		a.scheduler.Resize(float64(a.outsideWidth), float64(a.outsideHeight))
	}

	// 背景物理步进（静态模式下为空操作）
	a.scheduler.Advance()

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
// 每帧调用一次（活动场景负责先绘制共享背景）
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回逻辑屏幕尺寸
// 窗口可调整大小，逻辑尺寸跟随实际窗口，背景表面在 Update 中同步
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth < 1 {
		outsideWidth = 1
	}
	if outsideHeight < 1 {
		outsideHeight = 1
	}
	a.outsideWidth = outsideWidth
	a.outsideHeight = outsideHeight
	return outsideWidth, outsideHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
