package sim

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phishy-app/phishy-desktop/pkg/config"
)

// Field owns the fixed-size collection of background particles.
//
// The collection size is constant once Init has run; particles are only
// ever replaced wholesale by another Init call, never added or removed
// individually. Iteration order is the creation order, which keeps a
// single run deterministic for a given seed.
type Field struct {
	cfg       *config.SimulationConfig
	rng       *rand.Rand
	particles []Particle
}

// NewField creates an empty field. Call Init before the first frame.
// The seed fixes the random stream so tools and tests can reproduce runs.
func NewField(cfg *config.SimulationConfig, seed int64) *Field {
	return &Field{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Init replaces the entire collection with count freshly sampled
// particles placed inside the current surface bounds.
func (f *Field) Init(count int, s *Surface) {
	f.particles = make([]Particle, count)
	for i := range f.particles {
		f.particles[i] = newParticle(f.rng, s, f.cfg)
	}
}

// Count returns the number of particles in the field.
func (f *Field) Count() int {
	return len(f.particles)
}

// Particles exposes the backing slice for the connection renderer and for
// tests. Callers must not grow or shrink it.
func (f *Field) Particles() []Particle {
	return f.particles
}

// Config returns the simulation parameters the field was built with.
func (f *Field) Config() *config.SimulationConfig {
	return f.cfg
}

// Tick advances every particle by one physics step in iteration order.
// Particles have no inter-particle dependency here, so order is irrelevant
// for correctness, but it stays fixed within a run.
func (f *Field) Tick(s *Surface) {
	for i := range f.particles {
		f.particles[i].Update(s)
	}
}

// Draw paints every particle in iteration order.
func (f *Field) Draw(dst *ebiten.Image) {
	for i := range f.particles {
		f.particles[i].Draw(dst, config.ParticleColor, f.cfg.RadiusFloor)
	}
}

// AdjustToBounds reprojects particles after a surface resize: each
// coordinate is clamped to the new extent. This is a cheap pull-to-edge,
// not a rescale; particles already inside the new bounds are untouched.
// It never changes the particle count or order, so it is safe to run at
// any point between two ticks.
func (f *Field) AdjustToBounds(s *Surface) {
	for i := range f.particles {
		if f.particles[i].X > s.Width {
			f.particles[i].X = s.Width
		}
		if f.particles[i].Y > s.Height {
			f.particles[i].Y = s.Height
		}
	}
}
