package overlay

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is one overlay view. A scene owns its timers and any window
// properties it acquired; Close gives them all back.
type Scene interface {
	// Update advances the scene by dt of frame time.
	Update(dt time.Duration) error

	Draw(screen *ebiten.Image)

	Close()
}

// SceneManager keeps exactly one scene mounted.
type SceneManager struct {
	current Scene
}

func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo mounts scene, tearing down the previous one first.
func (sm *SceneManager) SwitchTo(scene Scene) {
	if sm.current != nil {
		log.Printf("[SceneManager] tearing down %T", sm.current)
		sm.current.Close()
	}
	sm.current = scene
	log.Printf("[SceneManager] mounted %T", scene)
}

func (sm *SceneManager) Current() Scene {
	return sm.current
}

func (sm *SceneManager) Update(dt time.Duration) error {
	if sm.current == nil {
		return nil
	}
	return sm.current.Update(dt)
}

func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

// Close tears down the mounted scene.
func (sm *SceneManager) Close() {
	if sm.current != nil {
		sm.current.Close()
		sm.current = nil
	}
}
