package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// stubScene 用于测试的空场景，记录更新次数
type stubScene struct {
	view    ViewID
	updates int
}

func (s *stubScene) Update(deltaTime float64) { s.updates++ }
func (s *stubScene) Draw(screen *ebiten.Image) {}

func newTestManager() (*SceneManager, map[ViewID]*stubScene) {
	created := make(map[ViewID]*stubScene)
	sm := NewSceneManager()
	sm.SetSceneFactory(func(view ViewID) Scene {
		s := &stubScene{view: view}
		created[view] = s
		return s
	})
	return sm, created
}

// TestSceneManagerInitialState 无场景时 CurrentView 为空且 Update 不崩溃
func TestSceneManagerInitialState(t *testing.T) {
	sm := NewSceneManager()

	if got := sm.CurrentView(); got != "" {
		t.Errorf("CurrentView: got %q, want empty", got)
	}
	sm.Update(1.0 / 60.0) // must not panic with no active scene
}

// TestSceneManagerPush 验证 Push 切换场景并记录历史
func TestSceneManagerPush(t *testing.T) {
	sm, _ := newTestManager()

	sm.Push(ViewHome)
	sm.Push(ViewScan)

	if got := sm.CurrentView(); got != ViewScan {
		t.Errorf("CurrentView: got %q, want %q", got, ViewScan)
	}
	history := sm.History()
	if len(history) != 2 || history[0] != ViewHome || history[1] != ViewScan {
		t.Errorf("History: got %v, want [home scan]", history)
	}
}

// TestSceneManagerReplace 验证 Replace 替换栈顶而不加深历史
func TestSceneManagerReplace(t *testing.T) {
	sm, _ := newTestManager()

	sm.Push(ViewHome)
	sm.Push(ViewScan)
	sm.Replace(ViewResult)

	history := sm.History()
	if len(history) != 2 || history[1] != ViewResult {
		t.Errorf("History after Replace: got %v, want [home result]", history)
	}
}

// TestSceneManagerBack 验证 Back 弹出栈顶并重建上一个视图
func TestSceneManagerBack(t *testing.T) {
	sm, _ := newTestManager()

	sm.Push(ViewHome)
	sm.Push(ViewScan)
	sm.Replace(ViewResult)
	sm.Back()

	if got := sm.CurrentView(); got != ViewHome {
		t.Errorf("CurrentView after Back: got %q, want %q", got, ViewHome)
	}
	if len(sm.History()) != 1 {
		t.Errorf("History depth after Back: got %d, want 1", len(sm.History()))
	}
}

// TestSceneManagerBackAtRoot 栈底时 Back 不做任何事
func TestSceneManagerBackAtRoot(t *testing.T) {
	sm, _ := newTestManager()

	sm.Push(ViewHome)
	sm.Back()

	if got := sm.CurrentView(); got != ViewHome {
		t.Errorf("CurrentView: got %q, want %q", got, ViewHome)
	}
}

// TestSceneManagerUpdatesActiveSceneOnly 仅活动场景收到 Update
func TestSceneManagerUpdatesActiveSceneOnly(t *testing.T) {
	sm, created := newTestManager()

	sm.Push(ViewHome)
	sm.Push(ViewScan)
	sm.Update(1.0 / 60.0)

	if created[ViewHome].updates != 0 {
		t.Errorf("home scene updates: got %d, want 0", created[ViewHome].updates)
	}
	if created[ViewScan].updates != 1 {
		t.Errorf("scan scene updates: got %d, want 1", created[ViewScan].updates)
	}
}
