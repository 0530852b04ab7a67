// Package main provides a standalone viewer for tuning the ambient
// particle background without launching the full application.
//
// Usage:
//
//	go run cmd/fieldview/main.go [flags]
//
// Flags:
//
//	--count <n>       Particle count (default 70)
//	--threshold <px>  Connection distance threshold (default 110)
//	--speed <v>       Max velocity component per tick (default 0.2)
//	--seed <n>        Random seed (0 = time-based)
//	--static          Render the reduced-motion single frame
//
// Controls (continuous mode):
//
//	Up/Down      - Connection threshold ±10
//	Left/Right   - Particle count ∓10 / ±10 (reseeds the field)
//	R            - Reseed the field
//	Q/Escape     - Quit
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phishy-app/phishy-desktop/pkg/config"
	"github.com/phishy-app/phishy-desktop/pkg/sim"
)

type viewer struct {
	cfg       *config.SimulationConfig
	surface   *sim.Surface
	field     *sim.Field
	scheduler *sim.Scheduler
	seed      int64
	static    bool

	outsideWidth  int
	outsideHeight int
}

func newViewer(cfg *config.SimulationConfig, seed int64, static bool) *viewer {
	surface := &sim.Surface{}
	surface.Configure(config.WindowWidth, config.WindowHeight)
	field := sim.NewField(cfg, seed)
	field.Init(cfg.ParticleCount, surface)
	return &viewer{
		cfg:       cfg,
		surface:   surface,
		field:     field,
		scheduler: sim.NewScheduler(surface, field, static),
		seed:      seed,
		static:    static,
	}
}

func (v *viewer) reseed() {
	v.seed++
	v.field.Init(v.cfg.ParticleCount, v.surface)
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if v.outsideWidth > 0 && v.outsideHeight > 0 {
		v.scheduler.Resize(float64(v.outsideWidth), float64(v.outsideHeight))
	}

	// Live tuning only makes sense while the simulation is running; the
	// static frame is cached and intentionally never re-rendered.
	if !v.static {
		if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
			v.cfg.ConnectionThreshold += 10
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyDown) && v.cfg.ConnectionThreshold > 10 {
			v.cfg.ConnectionThreshold -= 10
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
			v.cfg.ParticleCount += 10
			v.reseed()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyLeft) && v.cfg.ParticleCount > 10 {
			v.cfg.ParticleCount -= 10
			v.reseed()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			v.reseed()
		}
	}

	v.scheduler.Advance()
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	v.scheduler.Frame(screen)

	status := fmt.Sprintf("TPS %.0f | particles %d | threshold %.0f | seed %d",
		ebiten.ActualTPS(), v.field.Count(), v.cfg.ConnectionThreshold, v.seed)
	if v.static {
		status += " | static"
	}
	ebitenutil.DebugPrintAt(screen, status, 8, 8)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth < 1 {
		outsideWidth = 1
	}
	if outsideHeight < 1 {
		outsideHeight = 1
	}
	v.outsideWidth = outsideWidth
	v.outsideHeight = outsideHeight
	return outsideWidth, outsideHeight
}

func main() {
	count := flag.Int("count", 0, "particle count (0 = config default)")
	threshold := flag.Float64("threshold", 0, "connection threshold in pixels (0 = config default)")
	speed := flag.Float64("speed", 0, "max velocity component per tick (0 = config default)")
	seed := flag.Int64("seed", 0, "random seed (0 = time-based)")
	static := flag.Bool("static", false, "render the reduced-motion single frame")
	flag.Parse()

	cfg := config.DefaultSimulationConfig()
	if *count > 0 {
		cfg.ParticleCount = *count
	}
	if *threshold > 0 {
		cfg.ConnectionThreshold = *threshold
	}
	if *speed > 0 {
		cfg.MaxSpeed = *speed
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Phishy Field Viewer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(newViewer(cfg, *seed, *static)); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
