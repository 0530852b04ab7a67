package sim

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phishy-app/phishy-desktop/pkg/config"
)

// Mode selects how the scheduler drives the background.
type Mode int

const (
	// ModeContinuous advances the physics and redraws every frame.
	ModeContinuous Mode = iota
	// ModeStatic renders a single frame with no physics update, used when
	// the user prefers reduced motion.
	ModeStatic
)

// Scheduler orchestrates the per-frame work of the background simulation:
// clear the surface, tick the field, draw the particles, then the
// connection lines. The mode is chosen once at startup from the
// reduced-motion preference and never changes mid-run.
//
// The host game loop calls Advance once per tick and Frame once per draw.
// Resize reconfigures the surface and reprojects particles but never
// reseeds the field or restarts the loop.
type Scheduler struct {
	mode    Mode
	surface *Surface
	field   *Field
	stopped bool

	// Static mode renders its single pass into an offscreen image and
	// blits it on subsequent frames; staticPasses counts full field
	// passes for verification.
	staticFrame  *ebiten.Image
	staticPasses int
}

// NewScheduler creates a scheduler over an initialized surface and field.
// reducedMotion selects static mode.
func NewScheduler(surface *Surface, field *Field, reducedMotion bool) *Scheduler {
	mode := ModeContinuous
	if reducedMotion {
		mode = ModeStatic
	}
	return &Scheduler{
		mode:    mode,
		surface: surface,
		field:   field,
	}
}

// Mode returns the mode selected at startup.
func (sc *Scheduler) Mode() Mode {
	return sc.mode
}

// Stop cancels the continuous loop. After Stop returns, no further physics
// step or simulation draw pass executes; frames only clear the surface.
// There is no way to restart a stopped scheduler.
func (sc *Scheduler) Stop() {
	sc.stopped = true
}

// Stopped reports whether Stop has been called.
func (sc *Scheduler) Stopped() bool {
	return sc.stopped
}

// Advance runs one physics step in continuous mode. Static or stopped
// schedulers never move particles.
func (sc *Scheduler) Advance() {
	if sc.stopped || sc.mode != ModeContinuous {
		return
	}
	sc.field.Tick(sc.surface)
}

// Frame renders the background for the current display refresh.
func (sc *Scheduler) Frame(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	if sc.stopped {
		return
	}

	switch sc.mode {
	case ModeContinuous:
		sc.field.Draw(screen)
		DrawConnections(screen, sc.field)
	case ModeStatic:
		if sc.staticFrame == nil {
			sc.renderStaticFrame()
		}
		screen.DrawImage(sc.staticFrame, nil)
	}
}

// renderStaticFrame performs the one-and-only draw pass of static mode:
// field draw plus connections, no physics update, into an offscreen image
// matching the current surface.
func (sc *Scheduler) renderStaticFrame() {
	w, h := int(sc.surface.Width), int(sc.surface.Height)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	sc.staticFrame = ebiten.NewImage(w, h)
	sc.staticFrame.Fill(config.BackgroundColor)
	sc.field.Draw(sc.staticFrame)
	DrawConnections(sc.staticFrame, sc.field)
	sc.staticPasses++
}

// Resize reacts to a viewport change: reconfigure the surface, pull
// out-of-bounds particles back to the new edges, and invalidate the
// cached static frame so it is rebuilt once at the new size. Unchanged
// dimensions are a no-op.
func (sc *Scheduler) Resize(width, height float64) {
	if width == sc.surface.Width && height == sc.surface.Height {
		return
	}
	sc.surface.Configure(width, height)
	sc.field.AdjustToBounds(sc.surface)
	if sc.staticFrame != nil {
		sc.staticFrame.Deallocate()
		sc.staticFrame = nil
	}
}
