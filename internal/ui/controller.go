// Package ui wires the retro page effects to a document: the audio control,
// hover and click animations, particles and the Konami bonus.
package ui

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/ingyamilmolinar/retrofx/core/engine"
	"github.com/ingyamilmolinar/retrofx/core/sequence"
	"github.com/ingyamilmolinar/retrofx/internal/audio"
	"github.com/ingyamilmolinar/retrofx/internal/clock"
	"github.com/ingyamilmolinar/retrofx/internal/config"
	"github.com/ingyamilmolinar/retrofx/internal/dom"
	game_log "github.com/ingyamilmolinar/retrofx/internal/log"
)

// ErrMissingElement is returned by Attach when the audio control is absent.
var ErrMissingElement = errors.New("required element not found")

const banner = `
    🎮 JUEGOS SEGURA - Retro Arcade 🎮
    ================================
    Controls:
    - M or Space: Toggle music
    - Click anywhere: Create particles
    - Click title: Reset neon effect

    Welcome to the retro gaming zone!`

type Options struct {
	Document dom.Document
	Config   config.Config
	// NewContext acquires tone contexts for the melody and for clicks.
	NewContext audio.Factory
	Clock      clock.Clock
	Logger     *game_log.Logger
	// Rand drives particle colours and the explode direction.
	Rand *rand.Rand
}

// Controller owns every listener, timer and the music engine of one page.
type Controller struct {
	mu  sync.Mutex
	doc dom.Document
	cfg config.Config
	clk clock.Clock
	log *game_log.Logger
	rnd *rand.Rand

	engine    *engine.Engine
	indicator *Indicator
	palette   Palette
	konami    *sequence.Detector

	toggle dom.Element
	frame  dom.Element
	title  dom.Element

	releases  []func()
	timers    map[uint64]clock.Timer
	nextTimer uint64
	rainbow   bool
	detached  bool
}

/* ───────────────────────── lifecycle ───────────────────────── */

// Attach binds the effects to opts.Document. A zero Config selects the
// defaults.
func Attach(opts Options) (*Controller, error) {
	if opts.Document == nil {
		return nil, fmt.Errorf("%w: document", ErrMissingElement)
	}
	cfg := opts.Config
	if cfg.Selectors.Toggle == "" {
		cfg = config.Default()
	}
	if opts.Clock == nil {
		opts.Clock = clock.Real()
	}
	if opts.Logger == nil {
		opts.Logger = game_log.New(io.Discard, game_log.LevelNone)
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	doc := opts.Document

	toggle, ok := doc.Query(cfg.Selectors.Toggle)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingElement, cfg.Selectors.Toggle)
	}
	icon, ok := doc.Query(cfg.Selectors.Icon)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingElement, cfg.Selectors.Icon)
	}
	palette, err := NewPalette(cfg.Particles.Colors)
	if err != nil {
		return nil, err
	}
	track, err := cfg.Track()
	if err != nil {
		return nil, err
	}

	c := &Controller{
		doc:       doc,
		cfg:       cfg,
		clk:       opts.Clock,
		log:       opts.Logger,
		rnd:       opts.Rand,
		indicator: NewIndicator(toggle, icon, cfg.Indicator),
		palette:   palette,
		konami:    sequence.NewDetector(cfg.Konami.Sequence),
		toggle:    toggle,
		timers:    map[uint64]clock.Timer{},
	}
	c.engine = engine.New(engine.Options{
		NewContext:   opts.NewContext,
		Clock:        opts.Clock,
		Track:        track,
		MelodyVolume: cfg.Audio.MelodyVolume,
		NoteVolume:   cfg.Audio.NoteVolume,
		Envelope:     cfg.Envelope(),
		Click:        cfg.ClickSweep(),
		Logger:       opts.Logger,
		OnChange:     c.indicator.Render,
	})
	c.frame, _ = doc.Query(cfg.Selectors.GameFrame)
	c.title, _ = doc.Query(cfg.Selectors.Title)

	if err := c.injectParticleKeyframes(); err != nil {
		return nil, err
	}
	c.bind()
	c.initAudio()
	c.log.Infof("%s", banner)
	c.intro()
	return c, nil
}

func (c *Controller) bind() {
	c.listen(c.toggle.On("click", func(*dom.Event) { c.engine.Toggle() }))
	c.listen(c.toggle.On("click", func(*dom.Event) { c.engine.PlayClick() }))
	c.listen(c.doc.On("keydown", c.onToggleKey))
	c.listen(c.doc.On("keydown", c.onSequenceKey))
	c.listen(c.doc.On("click", c.onDocumentClick))
	if c.frame != nil {
		c.listen(c.frame.On("mouseenter", c.onFrameEnter))
		c.listen(c.frame.On("mouseleave", c.onFrameLeave))
	}
	if c.title != nil {
		c.listen(c.title.On("click", c.onTitleClick))
	}
}

func (c *Controller) initAudio() {
	if c.engine.Init() {
		c.indicator.Render(c.engine.State())
		return
	}
	c.log.Warnf("[UI] audio not available, hiding %s", c.cfg.Selectors.Toggle)
	c.indicator.Hide()
}

func (c *Controller) listen(release func()) {
	c.mu.Lock()
	c.releases = append(c.releases, release)
	c.mu.Unlock()
}

// Detach removes every listener, cancels pending effects and shuts the
// music down. It is safe to call more than once.
func (c *Controller) Detach() {
	c.mu.Lock()
	if c.detached {
		c.mu.Unlock()
		return
	}
	c.detached = true
	releases := c.releases
	c.releases = nil
	timers := c.timers
	c.timers = map[uint64]clock.Timer{}
	c.mu.Unlock()

	for _, release := range releases {
		release()
	}
	for _, t := range timers {
		t.Stop()
	}
	c.engine.Close()
	c.log.Debugf("[UI] detached")
}

// Toggle flips the music as the audio control would.
func (c *Controller) Toggle() { c.engine.Toggle() }

// State reports the playback state.
func (c *Controller) State() engine.State { return c.engine.State() }

// Pending reports how many effect timers are outstanding.
func (c *Controller) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

// after runs fn once d has elapsed unless the controller is detached first.
func (c *Controller) after(d time.Duration, fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.detached {
		return
	}
	id := c.nextTimer
	c.nextTimer++
	c.timers[id] = c.clk.AfterFunc(d, func() {
		c.mu.Lock()
		_, live := c.timers[id]
		delete(c.timers, id)
		c.mu.Unlock()
		if live {
			fn()
		}
	})
}

/* ───────────────────────── input ───────────────────────── */

func (c *Controller) onToggleKey(e *dom.Event) {
	if !matchesKey(c.cfg.Keys.Toggle, e.Key) {
		return
	}
	if matchesKey(c.cfg.Keys.PreventDefault, e.Key) {
		e.PreventDefault()
	}
	c.engine.Toggle()
}

func matchesKey(keys []string, key string) bool {
	for _, k := range keys {
		if strings.EqualFold(k, key) {
			return true
		}
	}
	return false
}
