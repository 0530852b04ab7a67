package sim

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phishy-app/phishy-desktop/pkg/config"
)

// Particle is one moving point of the background field.
//
// Alpha is fixed at creation and never changes; velocity only changes sign
// on boundary reflection. There is exactly one particle variant, so this
// is a plain record with methods and no polymorphism.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Alpha  float64
}

// newParticle samples a fresh particle: position uniform inside the
// surface, velocity uniform in ±cfg.MaxSpeed per axis, radius in
// [RadiusMin, RadiusMax) and a dim fixed alpha in [AlphaMin, AlphaMax).
func newParticle(rng *rand.Rand, s *Surface, cfg *config.SimulationConfig) Particle {
	return Particle{
		X:      rng.Float64() * s.Width,
		Y:      rng.Float64() * s.Height,
		VX:     (rng.Float64()*2 - 1) * cfg.MaxSpeed,
		VY:     (rng.Float64()*2 - 1) * cfg.MaxSpeed,
		Radius: cfg.RadiusMin + rng.Float64()*(cfg.RadiusMax-cfg.RadiusMin),
		Alpha:  cfg.AlphaMin + rng.Float64()*(cfg.AlphaMax-cfg.AlphaMin),
	}
}

// Update advances the particle by its velocity and reflects it off the
// surface edges. A coordinate that would leave [0, extent] is clamped
// exactly to the boundary and the matching velocity component inverted
// (elastic reflection; the position is never re-randomized).
//
// A particle wedged in a corner with a tiny velocity may clamp-and-reflect
// on consecutive ticks; that shimmer is accepted ambient behavior.
func (p *Particle) Update(s *Surface) {
	p.X += p.VX
	p.Y += p.VY

	if p.X < 0 {
		p.X = 0
		p.VX = -p.VX
	} else if p.X > s.Width {
		p.X = s.Width
		p.VX = -p.VX
	}

	if p.Y < 0 {
		p.Y = 0
		p.VY = -p.VY
	} else if p.Y > s.Height {
		p.Y = s.Height
		p.VY = -p.VY
	}
}

// drawRadius returns the radius actually used for drawing, enforcing the
// configured floor so a degenerate zero-radius circle is never issued.
func (p *Particle) drawRadius(floor float64) float64 {
	if p.Radius < floor {
		return floor
	}
	return p.Radius
}

// Draw paints the particle as a filled circle in the base color with the
// particle's own fixed alpha. Later particles overlap earlier ones in the
// field's iteration order; a nil dst skips drawing so simulation logic
// can run headless in tests and tools.
func (p *Particle) Draw(dst *ebiten.Image, base color.RGBA, radiusFloor float64) {
	if dst == nil {
		return
	}
	clr := color.NRGBA{R: base.R, G: base.G, B: base.B, A: uint8(p.Alpha * 255)}
	vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), float32(p.drawRadius(radiusFloor)), clr, true)
}
