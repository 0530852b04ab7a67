package sim

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phishy-app/phishy-desktop/pkg/config"
)

// connection is one qualifying particle pair, identified by field indices
// with a < b, plus the line opacity derived from their distance.
type connection struct {
	a, b  int
	alpha float64
}

// connectionAlpha maps a pair distance to line opacity: a linear decay
// from maxAlpha at distance 0 down to exactly 0 at dist >= threshold.
func connectionAlpha(dist, threshold, maxAlpha float64) float64 {
	if dist >= threshold {
		return 0
	}
	return (1 - dist/threshold) * maxAlpha
}

// connectionsFor scans every unordered pair of distinct particles exactly
// once (the j > i loop yields n*(n-1)/2 pairs) and keeps those strictly
// closer than threshold.
//
// This pass is the simulation's only non-linear cost: O(n²) per frame.
// The particle count and threshold in the config are chosen around that
// trade-off, so the quadratic scan stays cheap enough at interactive
// frame rates without a spatial index.
func connectionsFor(particles []Particle, threshold, maxAlpha float64) []connection {
	var conns []connection
	for i := 0; i < len(particles); i++ {
		for j := i + 1; j < len(particles); j++ {
			dx := particles[i].X - particles[j].X
			dy := particles[i].Y - particles[j].Y
			dist := math.Hypot(dx, dy)
			if dist < threshold {
				conns = append(conns, connection{a: i, b: j, alpha: connectionAlpha(dist, threshold, maxAlpha)})
			}
		}
	}
	return conns
}

// DrawConnections strokes a faded line between every particle pair closer
// than the configured threshold, over whatever the field already drew.
func DrawConnections(dst *ebiten.Image, f *Field) {
	if dst == nil {
		return
	}
	cfg := f.Config()
	particles := f.Particles()
	base := config.LineColor
	for _, c := range connectionsFor(particles, cfg.ConnectionThreshold, cfg.MaxLineAlpha) {
		clr := color.NRGBA{R: base.R, G: base.G, B: base.B, A: uint8(c.alpha * 255)}
		vector.StrokeLine(dst,
			float32(particles[c.a].X), float32(particles[c.a].Y),
			float32(particles[c.b].X), float32(particles[c.b].Y),
			1, clr, true)
	}
}
