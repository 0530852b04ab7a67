package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phishy-app/phishy-desktop/pkg/config"
	"github.com/phishy-app/phishy-desktop/pkg/game"
	"github.com/phishy-app/phishy-desktop/pkg/scanner"
)

// ResultScene shows the verdict badge, the risk intensity and the
// feature-impact breakdown of the last scan, with export and re-scan
// actions.
type ResultScene struct {
	ctx          *Context
	newScanBtn   Button
	exportBtn    Button
	exportStatus string
}

// NewResultScene creates the result view for ctx.LastReport.
func NewResultScene(ctx *Context) *ResultScene {
	s := &ResultScene{ctx: ctx}
	s.newScanBtn = Button{W: config.ButtonWidth, H: config.ButtonHeight, Label: "New Scan"}
	s.exportBtn = Button{W: config.ButtonWidth, H: config.ButtonHeight, Label: "Export Report"}
	return s
}

func verdictColor(v scanner.Verdict) color.RGBA {
	switch v {
	case scanner.VerdictMalicious:
		return config.VerdictMaliciousColor
	case scanner.VerdictSuspicious:
		return config.VerdictSuspiciousColor
	default:
		return config.VerdictCleanColor
	}
}

func (s *ResultScene) layout() {
	cx := s.ctx.Surface.Width / 2
	y := s.ctx.Surface.Height - 90
	s.newScanBtn.X = cx - s.newScanBtn.W - 12
	s.newScanBtn.Y = y
	s.exportBtn.X = cx + 12
	s.exportBtn.Y = y
}

// Update handles the result screen actions.
func (s *ResultScene) Update(deltaTime float64) {
	if s.ctx.LastReport == nil {
		// Nothing to show (e.g. entered via a stale history); fall back.
		s.ctx.Manager.Back()
		return
	}
	s.layout()

	if s.newScanBtn.Update() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.ctx.Audio.Play(game.CueClick)
		s.ctx.Manager.Back()
		return
	}

	if s.exportBtn.Update() {
		s.ctx.Audio.Play(game.CueClick)
		path, err := scanner.ExportReport(s.ctx.LastReport)
		switch {
		case err != nil:
			log.Printf("[ResultScene] Export failed: %v", err)
			s.exportStatus = "Export failed: " + err.Error()
		case path == "":
			s.exportStatus = ""
		default:
			s.exportStatus = "Saved to " + path
		}
	}
}

// Draw renders the background and the report.
func (s *ResultScene) Draw(screen *ebiten.Image) {
	s.ctx.Scheduler.Frame(screen)
	r := s.ctx.LastReport
	if r == nil {
		return
	}
	s.layout()

	cx := s.ctx.Surface.Width / 2
	top := 70.0

	drawTextCentered(screen, truncate(r.URL, 70), 15, cx, top, config.MutedTextColor)

	// Verdict badge.
	badgeW, badgeH := 260.0, 56.0
	badgeX, badgeY := cx-badgeW/2, top+35
	clr := verdictColor(r.FinalVerdict)
	vector.StrokeRect(screen, float32(badgeX), float32(badgeY), float32(badgeW), float32(badgeH), 2, clr, false)
	drawTextCentered(screen, string(r.FinalVerdict), 28, cx, badgeY+12, clr)

	drawTextCentered(screen, fmt.Sprintf("Risk intensity: %.2f%%", r.Intensity), 20, cx, badgeY+80, config.TextColor)
	drawTextCentered(screen, fmt.Sprintf("Engines flagged: %d / %d    Classifier confidence: %.4f",
		r.EngineHits, r.TotalEngines, r.Confidence), 14, cx, badgeY+115, config.MutedTextColor)

	// Feature impact breakdown, most influential first.
	listY := badgeY + 160
	drawTextCentered(screen, "Feature impacts", 15, cx, listY, config.AccentColor)
	for i, impact := range r.Impacts {
		line := fmt.Sprintf("%-16s %+.4f", impact.Name, impact.Impact)
		drawTextCentered(screen, line, 13, cx, listY+30+float64(i)*22, config.TextColor)
	}

	s.newScanBtn.Draw(screen)
	s.exportBtn.Draw(screen)

	if s.exportStatus != "" {
		drawTextCentered(screen, truncate(s.exportStatus, 80), 12, cx, s.ctx.Surface.Height-32, config.MutedTextColor)
	}
}
