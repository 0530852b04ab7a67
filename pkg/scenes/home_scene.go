package scenes

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phishy-app/phishy-desktop/pkg/config"
	"github.com/phishy-app/phishy-desktop/pkg/game"
)

// HomeScene is the landing view: the ambient particle background under a
// title, a URL input field and the scan button.
type HomeScene struct {
	ctx     *Context
	input   TextField
	scanBtn Button
}

// NewHomeScene creates the home view. Any previously pending URL is kept
// in the field so Back from the scan screen doesn't lose the input.
func NewHomeScene(ctx *Context) *HomeScene {
	s := &HomeScene{ctx: ctx}
	s.input = TextField{
		W:      config.InputFieldWidth,
		H:      config.InputFieldHeight,
		Value:  ctx.PendingURL,
		MaxLen: config.MaxURLLength,
	}
	s.input.Focus()
	s.scanBtn = Button{W: config.ButtonWidth, H: config.ButtonHeight, Label: "Scan URL"}
	return s
}

// layout positions the widgets against the current surface size, so the
// view follows window resizes.
func (s *HomeScene) layout() {
	cx := s.ctx.Surface.Width / 2
	cy := s.ctx.Surface.Height / 2
	s.input.X = cx - s.input.W/2
	s.input.Y = cy - 10
	s.scanBtn.X = cx - s.scanBtn.W/2
	s.scanBtn.Y = s.input.Y + s.input.H + 24
}

// Update handles typing and the scan trigger.
func (s *HomeScene) Update(deltaTime float64) {
	s.layout()
	s.input.Update(deltaTime)

	submit := s.scanBtn.Update() || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	if submit && strings.TrimSpace(s.input.Value) != "" {
		s.ctx.Audio.Play(game.CueClick)
		s.ctx.PendingURL = strings.TrimSpace(s.input.Value)
		s.ctx.Manager.Push(game.ViewScan)
		return
	}

	// Preference toggles. Reduced motion is read by the scheduler once at
	// startup, so a toggle here takes effect on the next launch.
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && !s.input.focused {
		settings := s.ctx.Settings.GetSettings()
		s.ctx.Settings.SetReducedMotion(!settings.ReducedMotion)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) && !s.input.focused {
		settings := s.ctx.Settings.GetSettings()
		s.ctx.Settings.SetSoundEnabled(!settings.SoundEnabled)
	}
}

// Draw renders the background simulation and the landing UI.
func (s *HomeScene) Draw(screen *ebiten.Image) {
	s.ctx.Scheduler.Frame(screen)
	s.layout()

	cx := s.ctx.Surface.Width / 2
	cy := s.ctx.Surface.Height / 2

	drawTextCentered(screen, "PHISHY", 52, cx, cy-170, config.TextColor)
	drawTextCentered(screen, "Hybrid Threat Detection Engine", 18, cx, cy-100, config.AccentColor)
	drawTextCentered(screen, "Paste a link below to check it against the mock analysis engines.",
		14, cx, cy-50, config.MutedTextColor)

	s.input.Draw(screen, "https://example.com/login")
	s.scanBtn.Draw(screen)

	settings := s.ctx.Settings.GetSettings()
	footer := fmt.Sprintf("M: reduced motion %s (next launch)   S: sound %s   F11: fullscreen",
		onOff(settings.ReducedMotion), onOff(settings.SoundEnabled))
	drawTextCentered(screen, footer, 12, cx, s.ctx.Surface.Height-32, config.MutedTextColor)
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
