package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/stream-overlay/internal/backdrop"
	"github.com/iburimskiy/stream-overlay/internal/config"
	"github.com/iburimskiy/stream-overlay/internal/overlay"
	"github.com/iburimskiy/stream-overlay/internal/settings"
	"github.com/iburimskiy/stream-overlay/internal/sim"
	"github.com/iburimskiy/stream-overlay/internal/sound"
)

var (
	overlayFlag     = flag.String("overlay", "", "Overlay to show: hud, feed, speed, highfive, banner (default: last used)")
	configFlag      = flag.String("config", "", "Overlay config YAML (default: built-in)")
	transparentFlag = flag.Bool("transparent", false, "Clear to transparent instead of painting the mock backdrop")
	pickFlag        = flag.Bool("pick", false, "Choose the overlay from a dialog")
	muteFlag        = flag.Bool("mute", false, "Start with sound off")
	verboseFlag     = flag.Bool("v", false, "Enable verbose logging (default off)")
	seedFlag        = flag.Uint64("seed", 0, "Seed for the simulated data (0: random)")
)

func main() {
	flag.Parse()
	if !*verboseFlag {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	if err := run(); err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		_ = zenity.Error(err.Error(), zenity.Title("Stream Overlay"))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}

	store := settings.Open()
	mode, err := chooseMode(store.Settings().Overlay)
	if err != nil {
		return err
	}
	store.SetOverlay(string(mode))
	if err := store.Save(); err != nil {
		log.Printf("[App] %v", err)
	}

	saved := store.Settings()
	player := sound.NewPlayer(saved.SoundEnabled && !*muteFlag, saved.Volume)
	if err := player.Init(); err != nil {
		log.Printf("[App] sound disabled: %v", err)
	}
	defer player.Close()

	fonts, err := overlay.LoadFonts()
	if err != nil {
		return err
	}

	win := overlay.NewWindow(*transparentFlag)
	env := &overlay.Env{
		Config: cfg,
		Rand:   sim.NewRand(*seedFlag),
		Sound:  player,
		Window: win,
		Guard:  backdrop.NewGuard(win),
		Fonts:  fonts,
	}
	env.LoadCues()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(mode.Title() + " - F2: load config, M: sound, Esc/Q: quit")

	app, err := overlay.NewApp(env, store, mode)
	if err != nil {
		return err
	}
	defer app.Close()

	log.Printf("[App] running %s overlay", mode)
	err = ebiten.RunGameWithOptions(app, &ebiten.RunGameOptions{ScreenTransparent: true})
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// chooseMode picks the overlay from the flag, the dialog, or the last
// used one, in that order.
func chooseMode(last string) (overlay.Mode, error) {
	if *overlayFlag != "" {
		return overlay.ParseMode(*overlayFlag)
	}
	if *pickFlag {
		var names []string
		for _, m := range overlay.Modes() {
			names = append(names, string(m))
		}
		picked, err := zenity.List("Choose an overlay", names,
			zenity.Title("Stream Overlay"),
			zenity.DefaultItems(last),
		)
		if err != nil {
			return "", err
		}
		return overlay.ParseMode(picked)
	}
	mode, err := overlay.ParseMode(last)
	if err != nil {
		log.Printf("[App] saved overlay ignored: %v", err)
		return overlay.ModeHUD, nil
	}
	return mode, nil
}
