// Command feedterm previews the rotary feed in a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/stream-overlay/internal/config"
	"github.com/iburimskiy/stream-overlay/internal/feed"
	"github.com/iburimskiy/stream-overlay/internal/schedule"
	"github.com/iburimskiy/stream-overlay/internal/sim"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

var (
	configFlag  = flag.String("config", "", "Overlay config YAML (default: built-in)")
	rotateFlag  = flag.Duration("rotate", 0, "Rotation interval (default: from config)")
	eventFlag   = flag.Duration("event", 0, "New event interval (default: from config)")
	verboseFlag = flag.Bool("v", false, "Log to stderr")
)

var (
	styleTitle     = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	stylePrimary   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleSecondary = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleFaded     = tcell.StyleDefault.Foreground(tcell.ColorGray).Dim(true)
	styleHighlight = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleHelp      = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

type preview struct {
	screen   tcell.Screen
	sched    *schedule.Scheduler
	queue    *feed.Queue
	rotation *feed.Rotation
	events   *sim.EventGenerator
	rotate   time.Duration
}

func newPreview(screen tcell.Screen, cfg *config.Config) (*preview, error) {
	rotate := cfg.Feed.RotateEvery
	if *rotateFlag > 0 {
		rotate = *rotateFlag
	}
	every := cfg.Feed.EventEvery
	if *eventFlag > 0 {
		every = *eventFlag
	}

	q := feed.NewQueue(cfg.Feed.Capacity, cfg.Events.Seed...)
	p := &preview{
		screen:   screen,
		sched:    schedule.New(),
		queue:    q,
		rotation: feed.NewRotation(q),
		events:   sim.NewEventGenerator(sim.NewRand(0), cfg.Events),
		rotate:   rotate,
	}
	if _, err := p.sched.Every(rotate, p.rotation.Advance); err != nil {
		return nil, fmt.Errorf("rotate interval: %w", err)
	}
	if _, err := p.sched.Every(every, p.push); err != nil {
		return nil, fmt.Errorf("event interval: %w", err)
	}
	return p, nil
}

func (p *preview) push() {
	it := p.events.Next()
	p.queue.Push(it)
	log.Printf("[Feed] new event %s", it)
}

// handleInput returns false when the preview should exit.
func (p *preview) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			return false
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'n' || ev.Rune() == ' '):
			p.rotation.Advance()
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'e':
			p.push()
		}
	case *tcell.EventResize:
		p.screen.Sync()
	}
	return true
}

// feedRows returns the placements in the transition range, top to bottom.
func feedRows(frame []feed.Placement) []feed.Placement {
	var rows []feed.Placement
	for _, pl := range frame {
		if pl.Slot.InTransition() {
			rows = append(rows, pl)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Offset < rows[j].Offset })
	return rows
}

func rowStyle(slot feed.Slot) tcell.Style {
	switch slot {
	case feed.SlotPrimary:
		return stylePrimary
	case feed.SlotSecondary:
		return styleSecondary
	default:
		return styleFaded
	}
}

func (p *preview) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		p.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (p *preview) draw() {
	p.screen.Clear()
	_, height := p.screen.Size()

	p.drawText(2, 1, "DATA STREAM", styleTitle)
	idx, ok := p.rotation.ActiveIndex()
	status := "no events"
	if ok {
		status = fmt.Sprintf("%d/%d, next rotation in %v", idx+1, p.queue.Len(), p.untilRotation())
	}
	p.drawText(16, 1, status, styleHelp)

	y := 3
	for _, pl := range feedRows(p.rotation.Frame()) {
		style := rowStyle(pl.Slot)
		marker := "  "
		if pl.Slot == feed.SlotPrimary {
			marker = "> "
		}
		p.drawText(2, y, fmt.Sprintf("%s%-9s %+d  %s", marker, pl.Slot, pl.Offset, pl.Item.Text), style)
		if pl.Item.Highlight != "" {
			hl := style
			if pl.Slot.InActivePair() {
				hl = styleHighlight
			}
			p.drawText(40, y, pl.Item.Highlight, hl)
		}
		y++
	}

	p.drawText(2, height-1, "n/space: rotate  e: new event  q/esc: quit", styleHelp)
	p.screen.Show()
}

// untilRotation is the time left on the rotation timer, rounded to seconds.
func (p *preview) untilRotation() time.Duration {
	left := p.rotate - p.sched.Now()%p.rotate
	return left.Round(time.Second)
}

func (p *preview) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := p.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !p.handleInput(ev) {
				return
			}
		case now := <-ticker.C:
			p.sched.Step(now.Sub(last))
			last = now
			p.draw()
		}
	}
}

func main() {
	flag.Parse()
	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	p, err := newPreview(screen, cfg)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer p.sched.Stop()
	defer screen.Fini()
	p.run()
}
