package engine

import (
	"errors"
	"io"
	"sync"

	"github.com/ingyamilmolinar/retrofx/core/beat"
	"github.com/ingyamilmolinar/retrofx/core/model"
	"github.com/ingyamilmolinar/retrofx/internal/audio"
	"github.com/ingyamilmolinar/retrofx/internal/clock"
	game_log "github.com/ingyamilmolinar/retrofx/internal/log"
)

// ErrNoContext is returned by PlayNote before a tone context exists.
var ErrNoContext = errors.New("engine: no audio context")

// State is the playback state shown by the audio control.
type State struct {
	Playing bool
	Muted   bool
}

// On reports whether music should be audible.
func (s State) On() bool { return s.Playing && !s.Muted }

// Options configures an Engine. Zero fields take the defaults.
type Options struct {
	NewContext   audio.Factory
	Clock        clock.Clock
	Track        model.Track
	MelodyVolume float64 // per-note peak of the loop, 0.05
	NoteVolume   float64 // PlayNote peak when vol <= 0, 0.1
	Envelope     audio.Envelope
	Click        audio.Sweep
	Logger       *game_log.Logger
	// OnChange is called, without the engine lock held, after every state
	// transition.
	OnChange func(State)
}

// Engine owns the shared tone context, the looping melody and the click
// sound.
type Engine struct {
	mu    sync.Mutex
	opts  Options
	sched *beat.Scheduler
	log   *game_log.Logger

	ctx    audio.Context
	state  State
	voices []audio.Voice
	gen    uint64
	timer  clock.Timer
	closed bool
}

// New returns an engine in the off state. No context is acquired until Init
// or the first Toggle.
func New(opts Options) *Engine {
	if opts.Clock == nil {
		opts.Clock = clock.Real()
	}
	if opts.Track.Len() == 0 {
		opts.Track, _ = model.NewTrack(model.ChiptuneNotes)
	}
	if opts.MelodyVolume <= 0 {
		opts.MelodyVolume = 0.05
	}
	if opts.NoteVolume <= 0 {
		opts.NoteVolume = 0.1
	}
	if opts.Envelope == (audio.Envelope{}) {
		opts.Envelope = audio.DefaultEnvelope
	}
	if opts.Click == (audio.Sweep{}) {
		opts.Click = audio.DefaultClick
	}
	if opts.Logger == nil {
		opts.Logger = game_log.New(io.Discard, game_log.LevelNone)
	}
	e := &Engine{
		opts:  opts,
		sched: beat.NewScheduler(opts.Track),
		log:   opts.Logger,
		state: State{Playing: false, Muted: true},
	}
	e.sched.OnNote = func(step int, n model.Note, at float64) {
		v, err := e.playNoteLocked(n.Freq, at, n.Duration, e.opts.MelodyVolume)
		if err != nil {
			e.log.Debugf("[ENGINE] note %d at %.3f: %v", step, at, err)
			return
		}
		e.voices = append(e.voices, v)
	}
	return e
}

// Init acquires the shared tone context and reports whether synthesis is
// available.
func (e *Engine) Init() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.initLocked()
}

func (e *Engine) initLocked() bool {
	if e.ctx != nil {
		return true
	}
	if e.opts.NewContext == nil {
		e.log.Errorf("[ENGINE] audio not available: %v", audio.ErrUnavailable)
		return false
	}
	ctx, err := e.opts.NewContext()
	if err != nil {
		e.log.Errorf("[ENGINE] audio not available: %v", err)
		return false
	}
	e.ctx = ctx
	e.log.Infof("[ENGINE] 8-bit music system initialized")
	return true
}

// Available reports whether a shared context exists.
func (e *Engine) Available() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ctx != nil
}

// State returns the current playback state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Toggle flips audio on or off. Turning on from a suspended context waits
// for the resume to complete; a toggle issued meanwhile supersedes it.
func (e *Engine) Toggle() {
	e.mu.Lock()
	if e.closed || !e.initLocked() {
		e.mu.Unlock()
		return
	}
	e.gen++
	gen := e.gen
	if e.state.On() {
		e.stopLocked()
		e.state = State{Playing: false, Muted: true}
		s := e.state
		e.mu.Unlock()
		e.log.Debugf("[ENGINE] music off")
		e.notify(s)
		return
	}
	ctx := e.ctx
	e.mu.Unlock()

	if ctx.State() == audio.StateSuspended {
		ctx.Resume(func(err error) {
			if err != nil {
				e.log.Errorf("[ENGINE] resume audio: %v", err)
				return
			}
			e.startIfCurrent(gen)
		})
		return
	}
	e.startIfCurrent(gen)
}

func (e *Engine) startIfCurrent(gen uint64) {
	e.mu.Lock()
	if e.closed || gen != e.gen || e.state.On() {
		e.mu.Unlock()
		return
	}
	e.state = State{Playing: true, Muted: false}
	e.scheduleLocked(gen)
	s := e.state
	e.mu.Unlock()
	e.log.Debugf("[ENGINE] music on")
	e.notify(s)
}

// scheduleLocked lays out one pass from the context's current time and arms
// the timer for the next one.
func (e *Engine) scheduleLocked(gen uint64) {
	ctx := e.ctx
	if ctx.State() == audio.StateSuspended {
		ctx.Resume(nil)
	}
	now := ctx.CurrentTime()
	e.pruneLocked(now)
	total := e.sched.Pass(now)
	e.timer = e.opts.Clock.AfterFunc(clock.Seconds(total), func() {
		e.continueLoop(gen)
	})
}

func (e *Engine) continueLoop(gen uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || gen != e.gen || !e.state.On() {
		return
	}
	e.scheduleLocked(gen)
}

// pruneLocked drops handles of notes that have already ended.
func (e *Engine) pruneLocked(now float64) {
	live := e.voices[:0]
	for _, v := range e.voices {
		if v.End() > now {
			live = append(live, v)
		}
	}
	for i := len(live); i < len(e.voices); i++ {
		e.voices[i] = nil
	}
	e.voices = live
}

// Stop silences every scheduled melody note and cancels the pending pass.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopLocked()
}

func (e *Engine) stopLocked() {
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	for _, v := range e.voices {
		if err := v.Stop(); err != nil {
			if errors.Is(err, audio.ErrVoiceStopped) {
				e.log.Debugf("[ENGINE] voice already stopped")
				continue
			}
			e.log.Warnf("[ENGINE] stop voice: %v", err)
		}
	}
	e.voices = nil
}

// Voices reports how many melody handles are tracked.
func (e *Engine) Voices() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.voices)
}

// PlayNote schedules a single square-wave note on the shared context.
// vol <= 0 selects Options.NoteVolume.
func (e *Engine) PlayNote(freq, start, dur, vol float64) (audio.Voice, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if vol <= 0 {
		vol = e.opts.NoteVolume
	}
	return e.playNoteLocked(freq, start, dur, vol)
}

func (e *Engine) playNoteLocked(freq, start, dur, vol float64) (audio.Voice, error) {
	if e.ctx == nil {
		return nil, ErrNoContext
	}
	return e.ctx.Schedule(audio.NoteTone(freq, start, dur, vol, e.opts.Envelope))
}

// PlayClick plays the UI click on a context of its own, closed once the
// sweep has finished. Failures are logged and otherwise ignored.
func (e *Engine) PlayClick() {
	e.mu.Lock()
	newCtx, clk, sweep, closed := e.opts.NewContext, e.opts.Clock, e.opts.Click, e.closed
	e.mu.Unlock()
	if closed || newCtx == nil {
		return
	}
	ctx, err := newCtx()
	if err != nil {
		e.log.Debugf("[ENGINE] click: %v", err)
		return
	}
	if _, err := ctx.Schedule(audio.SweepTone(ctx.CurrentTime(), sweep)); err != nil {
		e.log.Debugf("[ENGINE] click: %v", err)
		_ = ctx.Close()
		return
	}
	clk.AfterFunc(sweep.Duration, func() {
		if err := ctx.Close(); err != nil {
			e.log.Debugf("[ENGINE] close click context: %v", err)
		}
	})
}

// Close stops the music for good and releases the shared context.
func (e *Engine) Close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	e.gen++
	e.stopLocked()
	wasOn := e.state.On()
	e.state = State{Playing: false, Muted: true}
	ctx := e.ctx
	e.ctx = nil
	e.mu.Unlock()
	if ctx != nil {
		if err := ctx.Close(); err != nil {
			e.log.Debugf("[ENGINE] close context: %v", err)
		}
	}
	if wasOn {
		e.notify(State{Playing: false, Muted: true})
	}
}

func (e *Engine) notify(s State) {
	if e.opts.OnChange != nil {
		e.opts.OnChange(s)
	}
}
