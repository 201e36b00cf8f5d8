package overlay

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/stream-overlay/internal/config"
	"github.com/iburimskiy/stream-overlay/internal/settings"
)

// newScene builds the scene for mode.
func newScene(env *Env, mode Mode) (Scene, error) {
	var (
		s   Scene
		err error
	)
	switch mode {
	case ModeHUD:
		s, err = newHUDScene(env)
	case ModeFeed:
		s, err = newFeedScene(env)
	case ModeSpeed:
		s, err = newSpeedScene(env)
	case ModeHighFive:
		s, err = newHighFiveScene(env)
	case ModeBanner:
		s, err = newBannerScene(env)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownMode, mode)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to mount %s overlay: %w", mode, err)
	}
	return s, nil
}

// App is the ebiten.Game running one overlay mode.
type App struct {
	env      *Env
	settings *settings.Manager
	scenes   *SceneManager
	mode     Mode
	frames   int

	// input edge detection
	prevKey map[ebiten.Key]bool

	lastErr error
}

func NewApp(env *Env, store *settings.Manager, mode Mode) (*App, error) {
	a := &App{
		env:      env,
		settings: store,
		scenes:   NewSceneManager(),
		mode:     mode,
		prevKey:  map[ebiten.Key]bool{},
	}
	s, err := newScene(env, mode)
	if err != nil {
		return nil, err
	}
	a.scenes.SwitchTo(s)
	return a, nil
}

func (a *App) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !a.prevKey[k]
		a.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if justPressed(ebiten.KeyM) {
		a.toggleSound()
	}
	if justPressed(ebiten.KeyF2) {
		if err := a.openConfigDialog(); err != nil {
			log.Printf("[App] config reload failed: %v", err)
			a.lastErr = err
		}
	}

	a.frames++
	return a.scenes.Update(time.Second / time.Duration(ebiten.TPS()))
}

func (a *App) Draw(screen *ebiten.Image) {
	if a.env.transparent() {
		screen.Clear()
	} else {
		drawBackdrop(screen, float64(a.frames)/float64(ebiten.TPS()))
	}
	a.scenes.Draw(screen)

	if a.lastErr != nil {
		ebitenutil.DebugPrintAt(screen, "Error: "+a.lastErr.Error(), 12, a.env.Config.Window.Height-24)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.env.Config.Window.Width, a.env.Config.Window.Height
}

// Close tears down the mounted scene, restoring any window properties it
// changed.
func (a *App) Close() {
	a.scenes.Close()
}

func (a *App) toggleSound() {
	if a.env.Sound == nil {
		return
	}
	enabled := !a.env.Sound.Enabled()
	a.env.Sound.SetEnabled(enabled)
	log.Printf("[App] sound enabled: %v", enabled)
	if a.settings == nil {
		return
	}
	a.settings.SetSoundEnabled(enabled)
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] %v", err)
	}
}

func (a *App) openConfigDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Load Overlay Config"),
		zenity.FileFilters{{
			Name:     "Overlay config",
			Patterns: []string{"*.yaml", "*.yml"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	return a.Reload(filename)
}

// Reload loads a config file and remounts the current overlay with it. On
// error the running overlay is left as it was.
func (a *App) Reload(path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	prev := a.env.Config
	a.env.Config = cfg
	s, err := newScene(a.env, a.mode)
	if err != nil {
		a.env.Config = prev
		return err
	}
	a.scenes.SwitchTo(s)
	a.env.LoadCues()
	a.lastErr = nil
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	log.Printf("[App] reloaded config from %s", path)
	return nil
}
