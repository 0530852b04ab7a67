package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// ViewID identifies one application view.
type ViewID string

const (
	ViewHome   ViewID = "home"
	ViewScan   ViewID = "scan"
	ViewResult ViewID = "result"
)

// SceneFactory 场景工厂函数类型
// 用于按视图 ID 创建场景，避免包之间的循环依赖
type SceneFactory func(view ViewID) Scene

// SceneManager controls which view is active and keeps the navigation
// history as an ordered stack of view identifiers. Only the active
// scene's Update and Draw run on any given frame.
//
// Navigation never touches the background simulation: scenes share it
// through their construction context, so switching views neither reseeds
// the particle field nor restarts its scheduler.
type SceneManager struct {
	currentScene Scene
	history      []ViewID
	sceneFactory SceneFactory
}

// NewSceneManager creates a manager with no active scene; call
// SetSceneFactory and then Push to enter the first view.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// CurrentView returns the view on top of the history stack, or "" when
// no view has been entered yet.
func (sm *SceneManager) CurrentView() ViewID {
	if len(sm.history) == 0 {
		return ""
	}
	return sm.history[len(sm.history)-1]
}

// History returns a copy of the navigation stack, oldest first.
func (sm *SceneManager) History() []ViewID {
	out := make([]ViewID, len(sm.history))
	copy(out, sm.history)
	return out
}

// Push enters a new view, leaving the current one on the history stack.
func (sm *SceneManager) Push(view ViewID) {
	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return
	}
	scene := sm.sceneFactory(view)
	if scene == nil {
		log.Printf("[SceneManager] 错误: 无法创建场景: %s", view)
		return
	}
	sm.history = append(sm.history, view)
	sm.currentScene = scene
	log.Printf("[SceneManager] Push: %s (depth %d)", view, len(sm.history))
}

// Replace swaps the top of the history stack for another view. Used for
// transient views (the scan screen) that should not be reachable with
// Back once they have completed.
func (sm *SceneManager) Replace(view ViewID) {
	if len(sm.history) == 0 {
		sm.Push(view)
		return
	}
	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return
	}
	scene := sm.sceneFactory(view)
	if scene == nil {
		log.Printf("[SceneManager] 错误: 无法创建场景: %s", view)
		return
	}
	sm.history[len(sm.history)-1] = view
	sm.currentScene = scene
	log.Printf("[SceneManager] Replace: %s (depth %d)", view, len(sm.history))
}

// Back pops the current view and re-enters the previous one. With one or
// zero entries on the stack it does nothing.
func (sm *SceneManager) Back() {
	if len(sm.history) < 2 || sm.sceneFactory == nil {
		return
	}
	sm.history = sm.history[:len(sm.history)-1]
	view := sm.history[len(sm.history)-1]
	scene := sm.sceneFactory(view)
	if scene == nil {
		log.Printf("[SceneManager] 错误: 无法创建场景: %s", view)
		return
	}
	sm.currentScene = scene
	log.Printf("[SceneManager] Back: %s (depth %d)", view, len(sm.history))
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
