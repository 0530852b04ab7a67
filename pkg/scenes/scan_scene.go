package scenes

import (
	"math"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phishy-app/phishy-desktop/pkg/config"
	"github.com/phishy-app/phishy-desktop/pkg/game"
	"github.com/phishy-app/phishy-desktop/pkg/scanner"
)

// ScanScene shows the simulated scan in progress. The actual "work" is a
// delayed task polled from Update; when it fires, the report is generated
// and the view is replaced by the result screen, so Back from the result
// returns to home rather than a stale progress bar.
type ScanScene struct {
	ctx     *Context
	url     string
	task    *scanner.DelayedTask
	total   time.Duration
	elapsed float64
}

// Simulated scan duration range.
const (
	scanDelayBase   = 2200 * time.Millisecond
	scanDelayJitter = 800 * time.Millisecond
)

// NewScanScene starts the simulated scan for the pending URL.
func NewScanScene(ctx *Context) *ScanScene {
	s := &ScanScene{ctx: ctx, url: ctx.PendingURL}
	s.total = scanDelayBase + time.Duration(ctx.Rand.Int63n(int64(scanDelayJitter)))
	s.task = scanner.NewDelayedTask(s.total, func() {
		ctx.LastReport = scanner.Analyze(ctx.Rand, s.url)
		ctx.Audio.Play(game.CueComplete)
		ctx.Manager.Replace(game.ViewResult)
	})
	return s
}

// Update polls the scan task and handles cancellation.
func (s *ScanScene) Update(deltaTime float64) {
	s.elapsed += deltaTime

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.task.Cancel()
		s.ctx.Manager.Back()
		return
	}

	s.task.Poll(time.Now())
}

// Draw renders the background and the progress display.
func (s *ScanScene) Draw(screen *ebiten.Image) {
	s.ctx.Scheduler.Frame(screen)

	cx := s.ctx.Surface.Width / 2
	cy := s.ctx.Surface.Height / 2

	dots := strings.Repeat(".", int(s.elapsed*2)%4)
	drawTextCentered(screen, "ANALYZING"+dots, 28, cx, cy-90, config.TextColor)
	drawTextCentered(screen, truncate(s.url, 64), 15, cx, cy-40, config.AccentColor)

	// Progress bar driven by elapsed time over the simulated duration.
	progress := math.Min(s.elapsed/s.total.Seconds(), 1)
	barW, barH := 360.0, 8.0
	barX, barY := cx-barW/2, cy+10
	vector.DrawFilledRect(screen, float32(barX), float32(barY), float32(barW), float32(barH),
		config.MutedTextColor, false)
	vector.DrawFilledRect(screen, float32(barX), float32(barY), float32(barW*progress), float32(barH),
		config.AccentColor, false)

	drawTextCentered(screen, "Querying global threat intel and local classifier...",
		13, cx, cy+40, config.MutedTextColor)
	drawTextCentered(screen, "Esc: cancel", 12, cx, s.ctx.Surface.Height-32, config.MutedTextColor)
}
