package sim

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phishy-app/phishy-desktop/pkg/config"
)

func newTestScheduler(reducedMotion bool) (*Scheduler, *Surface, *Field) {
	s := &Surface{}
	s.Configure(800, 600)
	f := NewField(config.DefaultSimulationConfig(), 11)
	f.Init(20, s)
	return NewScheduler(s, f, reducedMotion), s, f
}

// TestSchedulerModeSelection 启动时根据动效偏好一次性确定模式
func TestSchedulerModeSelection(t *testing.T) {
	sc, _, _ := newTestScheduler(false)
	if sc.Mode() != ModeContinuous {
		t.Errorf("default mode: got %v, want ModeContinuous", sc.Mode())
	}

	sc, _, _ = newTestScheduler(true)
	if sc.Mode() != ModeStatic {
		t.Errorf("reduced-motion mode: got %v, want ModeStatic", sc.Mode())
	}
}

func snapshot(f *Field) []Particle {
	out := make([]Particle, f.Count())
	copy(out, f.Particles())
	return out
}

func moved(before, after []Particle) bool {
	for i := range before {
		if before[i].X != after[i].X || before[i].Y != after[i].Y {
			return true
		}
	}
	return false
}

// TestSchedulerAdvanceContinuous 连续模式每个 tick 推进物理
func TestSchedulerAdvanceContinuous(t *testing.T) {
	sc, _, f := newTestScheduler(false)
	before := snapshot(f)

	sc.Advance()

	if !moved(before, snapshot(f)) {
		t.Error("continuous Advance did not move any particle")
	}
}

// TestSchedulerStaticNeverAdvances 静态模式不执行物理更新
func TestSchedulerStaticNeverAdvances(t *testing.T) {
	sc, _, f := newTestScheduler(true)
	before := snapshot(f)

	for i := 0; i < 10; i++ {
		sc.Advance()
	}

	if moved(before, snapshot(f)) {
		t.Error("static mode moved particles")
	}
}

// TestSchedulerStaticRendersOnce 静态模式只执行一次完整绘制，其后复用缓存
func TestSchedulerStaticRendersOnce(t *testing.T) {
	sc, _, _ := newTestScheduler(true)
	screen := ebiten.NewImage(800, 600)
	defer screen.Deallocate()

	for i := 0; i < 5; i++ {
		sc.Frame(screen)
	}

	if sc.staticPasses != 1 {
		t.Errorf("static draw passes: got %d, want exactly 1", sc.staticPasses)
	}
}

// TestSchedulerStopCancelsLoop 取消后不再执行任何物理步
func TestSchedulerStopCancelsLoop(t *testing.T) {
	sc, _, f := newTestScheduler(false)

	sc.Stop()
	before := snapshot(f)
	for i := 0; i < 10; i++ {
		sc.Advance()
	}

	if moved(before, snapshot(f)) {
		t.Error("Advance after Stop moved particles")
	}
	if !sc.Stopped() {
		t.Error("Stopped: got false after Stop")
	}
}

// TestSchedulerResizeReprojects 尺寸变化时重投影但不重建场
func TestSchedulerResizeReprojects(t *testing.T) {
	sc, s, f := newTestScheduler(false)
	ps := f.Particles()
	ps[0].X, ps[0].Y = 790, 590

	sc.Resize(400, 300)

	if s.Width != 400 || s.Height != 300 {
		t.Errorf("surface after resize: got %vx%v, want 400x300", s.Width, s.Height)
	}
	if f.Count() != 20 {
		t.Errorf("resize changed particle count: got %d, want 20", f.Count())
	}
	if f.Particles()[0].X != 400 || f.Particles()[0].Y != 300 {
		t.Errorf("particle not reprojected: got (%v, %v), want (400, 300)",
			f.Particles()[0].X, f.Particles()[0].Y)
	}
}

// TestSchedulerResizeUnchangedIsNoop 未变化的尺寸不做任何事
func TestSchedulerResizeUnchangedIsNoop(t *testing.T) {
	sc, _, f := newTestScheduler(false)
	before := snapshot(f)

	sc.Resize(800, 600)

	if moved(before, snapshot(f)) {
		t.Error("no-op resize moved particles")
	}
}
