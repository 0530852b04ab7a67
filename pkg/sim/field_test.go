package sim

import (
	"testing"

	"github.com/phishy-app/phishy-desktop/pkg/config"
)

// TestFieldInitCount 验证 Init 生成精确数量且全部在界内的粒子
func TestFieldInitCount(t *testing.T) {
	s := &Surface{}
	s.Configure(1000, 800)
	f := NewField(config.DefaultSimulationConfig(), 1)

	f.Init(70, s)

	if f.Count() != 70 {
		t.Fatalf("Count after Init(70): got %d, want 70", f.Count())
	}
	for i, p := range f.Particles() {
		if p.X < 0 || p.X >= s.Width || p.Y < 0 || p.Y >= s.Height {
			t.Errorf("particle %d created out of bounds: (%v, %v)", i, p.X, p.Y)
		}
	}
}

// TestFieldReinitReplacesWholesale 验证重复 Init 整体替换集合
func TestFieldReinitReplacesWholesale(t *testing.T) {
	s := &Surface{}
	s.Configure(500, 500)
	f := NewField(config.DefaultSimulationConfig(), 2)

	f.Init(30, s)
	f.Init(70, s)

	if f.Count() != 70 {
		t.Errorf("Count after second Init: got %d, want 70", f.Count())
	}
}

// TestFieldTickKeepsSize 验证 Tick 不改变粒子数量
func TestFieldTickKeepsSize(t *testing.T) {
	s := &Surface{}
	s.Configure(640, 480)
	f := NewField(config.DefaultSimulationConfig(), 3)
	f.Init(40, s)

	for i := 0; i < 500; i++ {
		f.Tick(s)
	}

	if f.Count() != 40 {
		t.Errorf("Count after ticks: got %d, want 40", f.Count())
	}
	for i, p := range f.Particles() {
		if p.X < 0 || p.X > s.Width || p.Y < 0 || p.Y > s.Height {
			t.Errorf("particle %d out of bounds after ticks: (%v, %v)", i, p.X, p.Y)
		}
	}
}

// TestFieldDeterministicForSeed 相同种子的两个场轨迹完全一致
func TestFieldDeterministicForSeed(t *testing.T) {
	s := &Surface{}
	s.Configure(800, 600)
	cfg := config.DefaultSimulationConfig()

	a := NewField(cfg, 99)
	b := NewField(cfg, 99)
	a.Init(25, s)
	b.Init(25, s)

	for i := 0; i < 200; i++ {
		a.Tick(s)
		b.Tick(s)
	}

	pa, pb := a.Particles(), b.Particles()
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatalf("particle %d diverged: %+v vs %+v", i, pa[i], pb[i])
		}
	}
}

// TestFieldAdjustToBounds 缩小窗口时仅拉回越界粒子
func TestFieldAdjustToBounds(t *testing.T) {
	s := &Surface{}
	s.Configure(1000, 800)
	f := NewField(config.DefaultSimulationConfig(), 4)
	f.Init(50, s)

	// Place a few particles deterministically to cover both cases.
	ps := f.Particles()
	ps[0].X, ps[0].Y = 950, 700 // both axes out after shrink
	ps[1].X, ps[1].Y = 200, 150 // fully inside, must be untouched
	ps[2].X, ps[2].Y = 420, 100 // only x out
	insideX, insideY := ps[1].X, ps[1].Y

	s.Configure(400, 300)
	f.AdjustToBounds(s)

	ps = f.Particles()
	if ps[0].X != 400 || ps[0].Y != 300 {
		t.Errorf("out-of-bounds particle: got (%v, %v), want (400, 300)", ps[0].X, ps[0].Y)
	}
	if ps[1].X != insideX || ps[1].Y != insideY {
		t.Errorf("inside particle moved: got (%v, %v), want (%v, %v)", ps[1].X, ps[1].Y, insideX, insideY)
	}
	if ps[2].X != 400 || ps[2].Y != 100 {
		t.Errorf("x-only particle: got (%v, %v), want (400, 100)", ps[2].X, ps[2].Y)
	}

	for i, p := range ps {
		if p.X > 400 || p.Y > 300 {
			t.Errorf("particle %d still out of bounds: (%v, %v)", i, p.X, p.Y)
		}
	}
	if f.Count() != 50 {
		t.Errorf("Count changed by AdjustToBounds: got %d, want 50", f.Count())
	}
}
