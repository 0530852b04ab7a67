package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phishy-app/phishy-desktop/pkg/app"
	"github.com/phishy-app/phishy-desktop/pkg/config"
	"github.com/phishy-app/phishy-desktop/pkg/embedded"
)

func main() {
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	reducedMotion := flag.Bool("reduced-motion", false, "render a static background instead of the animation")
	url := flag.String("url", "", "scan this URL immediately on startup")
	flag.Parse()

	// 初始化嵌入资源（embed.FS 变量在 embed.go 中声明）
	embedded.Init(dataFS)

	phishyApp, err := app.NewApp(app.Config{
		Verbose:       *verbose,
		ReducedMotion: *reducedMotion,
		URL:           *url,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Phishy - Hybrid Threat Detection")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(phishyApp); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
